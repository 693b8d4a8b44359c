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
	"github.com/ecodeclub/ekit/slice"
	"github.com/shopspring/decimal"
)

const CartItemStatusInCart = "in_cart"

type CartItem struct {
	ID        int64
	UserID    int64
	ProductID int64
	Quantity  int64
	// 始终等于 单价 × Quantity，每次修改数量时重新计算
	TotalPrice decimal.Decimal
	Status     string
	Ctime      int64
	Utime      int64
}

type Cart struct {
	Items []CartItem
}

func (c Cart) Total() decimal.Decimal {
	return decimal.Sum(decimal.Zero, slice.Map(c.Items, func(idx int, src CartItem) decimal.Decimal {
		return src.TotalPrice
	})...)
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
