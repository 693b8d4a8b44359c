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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/webshop/internal/order/internal/domain"
	"github.com/ecodeclub/webshop/internal/order/internal/repository/dao"
	"github.com/shopspring/decimal"
)

var ErrCartItemNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./cart.go -package=repomocks -destination=mocks/cart.mock.go -typed CartRepository
type CartRepository interface {
	// Incr item.Quantity 是这次新增的数量
	Incr(ctx context.Context, item domain.CartItem, unitPrice decimal.Decimal) error
	FindItem(ctx context.Context, uid, productID int64) (domain.CartItem, error)
	FindByUID(ctx context.Context, uid int64) (domain.Cart, error)
	Clear(ctx context.Context, uid int64) (int64, error)
}

type cartRepository struct {
	dao dao.CartDAO
}

func NewCartRepository(d dao.CartDAO) CartRepository {
	return &cartRepository{dao: d}
}

func (r *cartRepository) Incr(ctx context.Context, item domain.CartItem, unitPrice decimal.Decimal) error {
	return r.dao.Incr(ctx, dao.CartItem{
		UserId:    item.UserID,
		ProductId: item.ProductID,
		Quantity:  item.Quantity,
		Status:    domain.CartItemStatusInCart,
	}, unitPrice)
}

func (r *cartRepository) FindItem(ctx context.Context, uid, productID int64) (domain.CartItem, error) {
	item, err := r.dao.Find(ctx, uid, productID)
	if err != nil {
		return domain.CartItem{}, err
	}
	return r.toDomain(item), nil
}

func (r *cartRepository) FindByUID(ctx context.Context, uid int64) (domain.Cart, error) {
	items, err := r.dao.FindByUID(ctx, uid)
	if err != nil {
		return domain.Cart{}, err
	}
	return domain.Cart{
		Items: slice.Map(items, func(idx int, src dao.CartItem) domain.CartItem {
			return r.toDomain(src)
		}),
	}, nil
}

func (r *cartRepository) Clear(ctx context.Context, uid int64) (int64, error) {
	return r.dao.DeleteByUID(ctx, uid)
}

func (r *cartRepository) toDomain(item dao.CartItem) domain.CartItem {
	return domain.CartItem{
		ID:         item.Id,
		UserID:     item.UserId,
		ProductID:  item.ProductId,
		Quantity:   item.Quantity,
		TotalPrice: item.TotalPrice,
		Status:     item.Status,
		Ctime:      item.Ctime,
		Utime:      item.Utime,
	}
}
