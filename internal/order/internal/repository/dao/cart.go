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

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=./cart.go -package=daomocks -destination=mocks/cart.mock.go -typed CartDAO
type CartDAO interface {
	// Incr 同一个用户同一个商品只有一行，已存在时在库里累加 item.Quantity，
	// 总价按 unitPrice 和累加后的数量重算
	Incr(ctx context.Context, item CartItem, unitPrice decimal.Decimal) error
	Find(ctx context.Context, uid, productID int64) (CartItem, error)
	FindByUID(ctx context.Context, uid int64) ([]CartItem, error)
	DeleteByUID(ctx context.Context, uid int64) (int64, error)
}

type CartGORMDAO struct {
	db *egorm.Component
}

func NewCartGORMDAO(db *egorm.Component) CartDAO {
	return &CartGORMDAO{db: db}
}

func (g *CartGORMDAO) Incr(ctx context.Context, item CartItem, unitPrice decimal.Decimal) error {
	now := time.Now().UnixMilli()
	item.Ctime, item.Utime = now, now
	item.TotalPrice = unitPrice.Mul(decimal.NewFromInt(item.Quantity))
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		// MySQL 按顺序赋值，total_price 用的是累加之后的 quantity
		DoUpdates: clause.Set{
			{Column: clause.Column{Name: "quantity"}, Value: gorm.Expr("`quantity` + ?", item.Quantity)},
			{Column: clause.Column{Name: "total_price"}, Value: gorm.Expr("`quantity` * ?", unitPrice)},
			{Column: clause.Column{Name: "status"}, Value: item.Status},
			{Column: clause.Column{Name: "utime"}, Value: now},
		},
	}).Create(&item).Error
}

func (g *CartGORMDAO) Find(ctx context.Context, uid, productID int64) (CartItem, error) {
	var res CartItem
	err := g.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ? AND status = ?", uid, productID, cartStatusInCart).
		First(&res).Error
	return res, err
}

func (g *CartGORMDAO) FindByUID(ctx context.Context, uid int64) ([]CartItem, error) {
	var res []CartItem
	err := g.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", uid, cartStatusInCart).
		Order("id ASC").Find(&res).Error
	return res, err
}

func (g *CartGORMDAO) DeleteByUID(ctx context.Context, uid int64) (int64, error) {
	res := g.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", uid, cartStatusInCart).
		Delete(&CartItem{})
	return res.RowsAffected, res.Error
}

const cartStatusInCart = "in_cart"

type CartItem struct {
	Id         int64           `gorm:"primaryKey;autoIncrement;comment:购物车项自增ID"`
	UserId     int64           `gorm:"not null;uniqueIndex:uniq_user_product;comment:用户ID"`
	ProductId  int64           `gorm:"not null;uniqueIndex:uniq_user_product;comment:商品ID"`
	Quantity   int64           `gorm:"not null;comment:数量"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2);not null;comment:单价乘以数量"`
	Status     string          `gorm:"type:varchar(16);not null;default:'in_cart';comment:状态"`
	Ctime      int64
	Utime      int64
}
