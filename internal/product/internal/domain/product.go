// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package domain

import (
	"github.com/shopspring/decimal"
)

// Kind 商品的具体类型
type Kind string

const (
	KindPhysical Kind = "physical"
	KindDigital  Kind = "digital"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) Valid() bool {
	return k == KindPhysical || k == KindDigital
}

type Product struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	Kind        Kind
	// 只有 Kind 为 KindPhysical 时有意义
	Physical Physical
	// 只有 Kind 为 KindDigital 时有意义
	Digital Digital
	Ctime   int64
	Utime   int64
}

type Physical struct {
	Weight decimal.Decimal
	Stock  int64
}

type Digital struct {
	// 单位 MB
	FileSize     decimal.Decimal
	DownloadLink string
}

func (p Product) IsPhysical() bool {
	return p.Kind == KindPhysical
}

// CheckStock 校验能否买 quantity 件，数字商品永远有货
func (p Product) CheckStock(quantity int64) error {
	if !p.IsPhysical() {
		return nil
	}
	if p.Physical.Stock <= 0 {
		return ErrOutOfStock
	}
	if p.Physical.Stock < quantity {
		return ErrInsufficientStock
	}
	return nil
}

// Details 不同类型的商品返回的字段不同
func (p Product) Details() map[string]any {
	switch p.Kind {
	case KindPhysical:
		return map[string]any{
			"weight": p.Physical.Weight,
			"stock":  p.Physical.Stock,
		}
	case KindDigital:
		return map[string]any{
			"file_size":     p.Digital.FileSize,
			"download_link": p.Digital.DownloadLink,
		}
	default:
		return map[string]any{}
	}
}

// Update 部分更新，nil 表示不修改
type Update struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal

	Weight *decimal.Decimal
	Stock  *int64

	FileSize     *decimal.Decimal
	DownloadLink *string
}

// Apply 只应用属于当前商品类型的字段，其余字段直接忽略
func (p Product) Apply(u Update) Product {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	switch p.Kind {
	case KindPhysical:
		if u.Weight != nil {
			p.Physical.Weight = *u.Weight
		}
		if u.Stock != nil {
			p.Physical.Stock = *u.Stock
		}
	case KindDigital:
		if u.FileSize != nil {
			p.Digital.FileSize = *u.FileSize
		}
		if u.DownloadLink != nil {
			p.Digital.DownloadLink = *u.DownloadLink
		}
	}
	return p
}
