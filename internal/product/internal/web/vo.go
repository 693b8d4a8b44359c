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

package web

import (
	"time"

	"github.com/ecodeclub/webshop/internal/product/internal/domain"
	"github.com/shopspring/decimal"
)

type IDReq struct {
	ID int64 `json:"id"`
}

type ListReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type SearchReq struct {
	Keyword string `json:"keyword"`
	Offset  int    `json:"offset"`
	Limit   int    `json:"limit"`
}

type ListResp struct {
	Total    int64     `json:"total,omitempty"`
	Products []Product `json:"products,omitempty"`
}

type CreateReq struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Kind        string          `json:"kind"`

	Weight decimal.Decimal `json:"weight"`
	Stock  int64           `json:"stock"`

	FileSize     decimal.Decimal `json:"file_size"`
	DownloadLink string          `json:"download_link"`
}

func (r CreateReq) toDomain() domain.Product {
	return domain.Product{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Kind:        domain.Kind(r.Kind),
		Physical: domain.Physical{
			Weight: r.Weight,
			Stock:  r.Stock,
		},
		Digital: domain.Digital{
			FileSize:     r.FileSize,
			DownloadLink: r.DownloadLink,
		},
	}
}

type CreateResp struct {
	ID int64 `json:"id"`
}

// UpdateReq 没传的字段保持不变
type UpdateReq struct {
	ID          int64            `json:"id"`
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`

	Weight *decimal.Decimal `json:"weight"`
	Stock  *int64           `json:"stock"`

	FileSize     *decimal.Decimal `json:"file_size"`
	DownloadLink *string          `json:"download_link"`
}

func (r UpdateReq) toDomain() domain.Update {
	return domain.Update{
		Name:         r.Name,
		Description:  r.Description,
		Price:        r.Price,
		Weight:       r.Weight,
		Stock:        r.Stock,
		FileSize:     r.FileSize,
		DownloadLink: r.DownloadLink,
	}
}

type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Kind        string          `json:"kind"`
	Details     map[string]any  `json:"details"`
	Ctime       string          `json:"ctime,omitempty"`
	Utime       string          `json:"utime,omitempty"`
}

func newProduct(p domain.Product) Product {
	return Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Kind:        p.Kind.String(),
		Details:     p.Details(),
		Ctime:       formatTime(p.Ctime),
		Utime:       formatTime(p.Utime),
	}
}

func formatTime(ms int64) string {
	if ms == 0 {
		return ""
	}
	return time.UnixMilli(ms).UTC().Format(time.DateTime)
}
