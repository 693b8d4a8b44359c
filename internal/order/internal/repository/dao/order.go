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
	"errors"
	"sort"
	"time"

	"github.com/ego-component/egorm"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrStockNotEnough 条件扣减库存时没有命中任何行
	ErrStockNotEnough = errors.New("库存不足")
	// ErrStatusConflict 订单已经不处于待审批状态
	ErrStatusConflict = errors.New("订单状态已变更")
	// ErrCartChanged 结算期间购物车被并发修改
	ErrCartChanged = errors.New("购物车已变化")
)

const (
	statusPendingApproval = "pending_approval"
	kindExchange          = "exchange"
)

//go:generate mockgen -source=./order.go -package=daomocks -destination=mocks/order.mock.go -typed OrderDAO
type OrderDAO interface {
	// CreatePurchases 在同一个事务内创建购买订单并扣减库存，purchases 与 orders 按下标对应
	CreatePurchases(ctx context.Context, orders []Order, purchases []Purchase, deltas []StockDelta) ([]int64, error)
	// Checkout 在 CreatePurchases 的基础上删除 uid 购物车中的 cartItemIDs
	Checkout(ctx context.Context, uid int64, cartItemIDs []int64, orders []Order, purchases []Purchase, deltas []StockDelta) ([]int64, error)
	CreateReturn(ctx context.Context, o Order, r Return) (int64, error)
	CreateExchange(ctx context.Context, o Order, e Exchange) (int64, error)

	FindByID(ctx context.Context, id int64) (Order, error)
	FindPurchasesByIDs(ctx context.Context, ids []int64) ([]Purchase, error)
	FindReturnsByIDs(ctx context.Context, ids []int64) ([]Return, error)
	FindExchangesByIDs(ctx context.Context, ids []int64) ([]Exchange, error)
	ListByUID(ctx context.Context, uid int64, offset, limit int) ([]Order, error)
	CountByUID(ctx context.Context, uid int64) (int64, error)
	List(ctx context.Context, offset, limit int) ([]Order, error)
	Count(ctx context.Context) (int64, error)

	// Decide 审批退换货，只有处于待审批状态的订单才会被更新
	Decide(ctx context.Context, d Decision) error
}

type OrderGORMDAO struct {
	db *egorm.Component
}

func NewOrderGORMDAO(db *egorm.Component) OrderDAO {
	return &OrderGORMDAO{db: db}
}

func (g *OrderGORMDAO) CreatePurchases(ctx context.Context, orders []Order, purchases []Purchase, deltas []StockDelta) ([]int64, error) {
	var ids []int64
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		ids, err = g.createPurchases(tx, orders, purchases, deltas)
		return err
	})
	return ids, err
}

func (g *OrderGORMDAO) Checkout(ctx context.Context, uid int64, cartItemIDs []int64, orders []Order, purchases []Purchase, deltas []StockDelta) ([]int64, error) {
	var ids []int64
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 先删购物车，并发结算同一个购物车时只有一个能删到全部行
		res := tx.Where("user_id = ? AND id IN ?", uid, cartItemIDs).Delete(&CartItem{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != int64(len(cartItemIDs)) {
			return ErrCartChanged
		}
		var err error
		ids, err = g.createPurchases(tx, orders, purchases, deltas)
		return err
	})
	return ids, err
}

func (g *OrderGORMDAO) createPurchases(tx *gorm.DB, orders []Order, purchases []Purchase, deltas []StockDelta) ([]int64, error) {
	if err := g.applyStockDeltas(tx, deltas); err != nil {
		return nil, err
	}
	now := time.Now().UnixMilli()
	ids := make([]int64, 0, len(orders))
	for i := range orders {
		o, p := orders[i], purchases[i]
		o.Ctime, o.Utime = now, now
		if err := tx.Create(&o).Error; err != nil {
			return nil, err
		}
		p.Id, p.Ctime, p.Utime = o.Id, now, now
		if err := tx.Create(&p).Error; err != nil {
			return nil, err
		}
		ids = append(ids, o.Id)
	}
	return ids, nil
}

// applyStockDeltas 按商品 ID 顺序加锁，避免多个事务交叉扣减时死锁
func (g *OrderGORMDAO) applyStockDeltas(tx *gorm.DB, deltas []StockDelta) error {
	sorted := make([]StockDelta, len(deltas))
	copy(sorted, deltas)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ProductId < sorted[j].ProductId
	})
	now := time.Now().UnixMilli()
	for _, d := range sorted {
		switch {
		case d.Delta < 0:
			n := -d.Delta
			res := tx.Model(&PhysicalStock{}).
				Where("id = ? AND stock >= ?", d.ProductId, n).
				Updates(map[string]any{
					"stock": gorm.Expr("stock - ?", n),
					"utime": now,
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrStockNotEnough
			}
		case d.Delta > 0:
			err := tx.Model(&PhysicalStock{}).
				Where("id = ?", d.ProductId).
				Updates(map[string]any{
					"stock": gorm.Expr("stock + ?", d.Delta),
					"utime": now,
				}).Error
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *OrderGORMDAO) CreateReturn(ctx context.Context, o Order, r Return) (int64, error) {
	now := time.Now().UnixMilli()
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		o.Ctime, o.Utime = now, now
		if err := tx.Create(&o).Error; err != nil {
			return err
		}
		r.Id, r.Ctime, r.Utime = o.Id, now, now
		return tx.Create(&r).Error
	})
	return o.Id, err
}

func (g *OrderGORMDAO) CreateExchange(ctx context.Context, o Order, e Exchange) (int64, error) {
	now := time.Now().UnixMilli()
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		o.Ctime, o.Utime = now, now
		if err := tx.Create(&o).Error; err != nil {
			return err
		}
		e.Id, e.Ctime, e.Utime = o.Id, now, now
		return tx.Create(&e).Error
	})
	return o.Id, err
}

func (g *OrderGORMDAO) FindByID(ctx context.Context, id int64) (Order, error) {
	var res Order
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (g *OrderGORMDAO) FindPurchasesByIDs(ctx context.Context, ids []int64) ([]Purchase, error) {
	var res []Purchase
	if len(ids) == 0 {
		return res, nil
	}
	err := g.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (g *OrderGORMDAO) FindReturnsByIDs(ctx context.Context, ids []int64) ([]Return, error) {
	var res []Return
	if len(ids) == 0 {
		return res, nil
	}
	err := g.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (g *OrderGORMDAO) FindExchangesByIDs(ctx context.Context, ids []int64) ([]Exchange, error) {
	var res []Exchange
	if len(ids) == 0 {
		return res, nil
	}
	err := g.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (g *OrderGORMDAO) ListByUID(ctx context.Context, uid int64, offset, limit int) ([]Order, error) {
	var res []Order
	err := g.db.WithContext(ctx).Where("user_id = ?", uid).
		Order("id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (g *OrderGORMDAO) CountByUID(ctx context.Context, uid int64) (int64, error) {
	var res int64
	err := g.db.WithContext(ctx).Model(&Order{}).Where("user_id = ?", uid).Count(&res).Error
	return res, err
}

func (g *OrderGORMDAO) List(ctx context.Context, offset, limit int) ([]Order, error) {
	var res []Order
	err := g.db.WithContext(ctx).Order("id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (g *OrderGORMDAO) Count(ctx context.Context) (int64, error) {
	var res int64
	err := g.db.WithContext(ctx).Model(&Order{}).Count(&res).Error
	return res, err
}

func (g *OrderGORMDAO) Decide(ctx context.Context, d Decision) error {
	now := d.DecidedAt
	if now == 0 {
		now = time.Now().UnixMilli()
	}
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&Order{}).
			Where("id = ? AND status = ?", d.Id, statusPendingApproval).
			Updates(map[string]any{
				"status": d.Status,
				"utime":  now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrStatusConflict
		}
		fields := map[string]any{
			"admin_notes": d.AdminNotes,
			"utime":       now,
		}
		if d.Approved {
			fields["approved_by"] = d.AdminId
			fields["approved_at"] = now
		} else {
			fields["rejected_by"] = d.AdminId
			fields["rejected_at"] = now
		}
		var ext any = &Return{}
		if d.Kind == kindExchange {
			ext = &Exchange{}
		}
		if err := tx.Model(ext).Where("id = ?", d.Id).Updates(fields).Error; err != nil {
			return err
		}
		return g.applyStockDeltas(tx, d.Deltas)
	})
}

// Order 所有订单共有的部分，Kind 决定扩展表
type Order struct {
	Id         int64           `gorm:"primaryKey;autoIncrement;comment:订单自增ID"`
	SN         string          `gorm:"type:varchar(255);not null;uniqueIndex:uniq_order_sn;comment:订单序列号"`
	UserId     int64           `gorm:"not null;default:0;index:idx_user_id;comment:下单用户ID, 0表示游客"`
	ProductId  int64           `gorm:"not null;index:idx_product_id;comment:商品ID"`
	Quantity   int64           `gorm:"not null;default:1;comment:数量"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2);not null;comment:总价"`
	Status     string          `gorm:"type:varchar(32);not null;comment:订单状态"`
	Kind       string          `gorm:"type:varchar(16);not null;comment:订单类型 purchase/return/exchange"`
	Ctime      int64
	Utime      int64
}

// Purchase 购买订单扩展表，Id 即 orders.id
type Purchase struct {
	Id            int64  `gorm:"primaryKey;autoIncrement:false;comment:订单ID"`
	CustomerEmail string `gorm:"type:varchar(128);not null;default:'';index:idx_customer_email;comment:下单邮箱"`
	CustomerName  string `gorm:"type:varchar(64);not null;default:'';comment:下单人"`
	Ctime         int64
	Utime         int64
}

// Request 退货和换货共有的字段，审批前 approved_* 和 rejected_* 都是 0
type Request struct {
	Reason             string `gorm:"type:varchar(1024);not null;default:'';comment:申请原因"`
	CustomerEmail      string `gorm:"type:varchar(128);not null;default:'';comment:申请时的邮箱"`
	CustomerName       string `gorm:"type:varchar(64);not null;default:'';comment:申请时的姓名"`
	PurchaseDate       int64  `gorm:"not null;default:0;comment:原订单下单时间"`
	OriginalPurchaseId int64  `gorm:"not null;index:idx_original_purchase_id;comment:原购买订单ID"`
	AdminNotes         string `gorm:"type:varchar(1024);not null;default:'';comment:审批备注"`
	ApprovedBy         int64  `gorm:"not null;default:0"`
	ApprovedAt         int64  `gorm:"not null;default:0"`
	RejectedBy         int64  `gorm:"not null;default:0"`
	RejectedAt         int64  `gorm:"not null;default:0"`
}

// Return 退货订单扩展表，Id 即 orders.id
type Return struct {
	Id           int64           `gorm:"primaryKey;autoIncrement:false;comment:订单ID"`
	RefundAmount decimal.Decimal `gorm:"type:decimal(10,2);not null;comment:退款金额"`
	Request      `gorm:"embedded"`
	Ctime        int64
	Utime        int64
}

// Exchange 换货订单扩展表，Id 即 orders.id
type Exchange struct {
	Id           int64 `gorm:"primaryKey;autoIncrement:false;comment:订单ID"`
	NewProductId int64 `gorm:"not null;comment:换成的商品ID"`
	Request      `gorm:"embedded"`
	Ctime        int64
	Utime        int64
}

// PhysicalStock 只映射实体商品扩展表的库存列，表结构由商品模块维护
type PhysicalStock struct {
	Id    int64
	Stock int64
	Utime int64
}

func (PhysicalStock) TableName() string {
	return "physical_products"
}

type StockDelta struct {
	ProductId int64
	Delta     int64
}

type Decision struct {
	Id         int64
	Kind       string
	Approved   bool
	Status     string
	AdminId    int64
	AdminNotes string
	// 毫秒，为 0 时取当前时间
	DecidedAt int64
	Deltas    []StockDelta
}
