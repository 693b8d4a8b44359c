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
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/webshop/internal/order/internal/domain"
	"github.com/ecodeclub/webshop/internal/order/internal/repository/dao"
)

var (
	ErrOrderNotFound  = dao.ErrRecordNotFound
	ErrStockNotEnough = dao.ErrStockNotEnough
	ErrStatusConflict = dao.ErrStatusConflict
	ErrCartChanged    = dao.ErrCartChanged
)

//go:generate mockgen -source=./order.go -package=repomocks -destination=mocks/order.mock.go -typed OrderRepository
type OrderRepository interface {
	CreatePurchase(ctx context.Context, o domain.Order, deltas []domain.StockDelta) (int64, error)
	// Checkout 把购物车中的 items 转换为 orders，两者按下标对应
	Checkout(ctx context.Context, uid int64, items []domain.CartItem, orders []domain.Order, deltas []domain.StockDelta) ([]int64, error)
	CreateReturn(ctx context.Context, o domain.Order) (int64, error)
	CreateExchange(ctx context.Context, o domain.Order) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Order, error)
	ListByUID(ctx context.Context, uid int64, offset, limit int) ([]domain.Order, error)
	TotalByUID(ctx context.Context, uid int64) (int64, error)
	List(ctx context.Context, offset, limit int) ([]domain.Order, error)
	Total(ctx context.Context) (int64, error)
	// Decide o 为审批之后的订单
	Decide(ctx context.Context, o domain.Order, deltas []domain.StockDelta) error
}

type orderRepository struct {
	dao dao.OrderDAO
}

func NewOrderRepository(d dao.OrderDAO) OrderRepository {
	return &orderRepository{dao: d}
}

func (r *orderRepository) CreatePurchase(ctx context.Context, o domain.Order, deltas []domain.StockDelta) (int64, error) {
	ids, err := r.dao.CreatePurchases(ctx, []dao.Order{r.toEntity(o)},
		[]dao.Purchase{r.toPurchaseEntity(o)}, r.toDeltaEntities(deltas))
	if err != nil {
		return 0, err
	}
	return ids[0], nil
}

func (r *orderRepository) Checkout(ctx context.Context, uid int64, items []domain.CartItem, orders []domain.Order, deltas []domain.StockDelta) ([]int64, error) {
	return r.dao.Checkout(ctx, uid,
		slice.Map(items, func(idx int, src domain.CartItem) int64 {
			return src.ID
		}),
		slice.Map(orders, func(idx int, src domain.Order) dao.Order {
			return r.toEntity(src)
		}),
		slice.Map(orders, func(idx int, src domain.Order) dao.Purchase {
			return r.toPurchaseEntity(src)
		}),
		r.toDeltaEntities(deltas))
}

func (r *orderRepository) CreateReturn(ctx context.Context, o domain.Order) (int64, error) {
	return r.dao.CreateReturn(ctx, r.toEntity(o), dao.Return{
		RefundAmount: o.RefundAmount,
		Request:      r.toRequestEntity(o),
	})
}

func (r *orderRepository) CreateExchange(ctx context.Context, o domain.Order) (int64, error) {
	return r.dao.CreateExchange(ctx, r.toEntity(o), dao.Exchange{
		NewProductId: o.NewProductID,
		Request:      r.toRequestEntity(o),
	})
}

func (r *orderRepository) FindByID(ctx context.Context, id int64) (domain.Order, error) {
	o, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	res, err := r.batchWithDetails(ctx, []dao.Order{o})
	if err != nil {
		return domain.Order{}, err
	}
	return res[0], nil
}

func (r *orderRepository) ListByUID(ctx context.Context, uid int64, offset, limit int) ([]domain.Order, error) {
	os, err := r.dao.ListByUID(ctx, uid, offset, limit)
	if err != nil {
		return nil, err
	}
	return r.batchWithDetails(ctx, os)
}

func (r *orderRepository) TotalByUID(ctx context.Context, uid int64) (int64, error) {
	return r.dao.CountByUID(ctx, uid)
}

func (r *orderRepository) List(ctx context.Context, offset, limit int) ([]domain.Order, error) {
	os, err := r.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return r.batchWithDetails(ctx, os)
}

func (r *orderRepository) Total(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

func (r *orderRepository) Decide(ctx context.Context, o domain.Order, deltas []domain.StockDelta) error {
	d := dao.Decision{
		Id:         o.ID,
		Kind:       o.Kind.String(),
		Approved:   o.Status == domain.StatusApproved,
		Status:     o.Status.String(),
		AdminId:    o.Request.ApprovedBy,
		AdminNotes: o.Request.AdminNotes,
		DecidedAt:  o.Request.ApprovedAt,
		Deltas:     r.toDeltaEntities(deltas),
	}
	if !d.Approved {
		d.AdminId, d.DecidedAt = o.Request.RejectedBy, o.Request.RejectedAt
	}
	return r.dao.Decide(ctx, d)
}

// batchWithDetails 按订单类型分批查扩展表
func (r *orderRepository) batchWithDetails(ctx context.Context, os []dao.Order) ([]domain.Order, error) {
	var purchaseIDs, returnIDs, exchangeIDs []int64
	for _, o := range os {
		switch domain.Kind(o.Kind) {
		case domain.KindPurchase:
			purchaseIDs = append(purchaseIDs, o.Id)
		case domain.KindReturn:
			returnIDs = append(returnIDs, o.Id)
		case domain.KindExchange:
			exchangeIDs = append(exchangeIDs, o.Id)
		}
	}
	purchases, err := r.dao.FindPurchasesByIDs(ctx, purchaseIDs)
	if err != nil {
		return nil, fmt.Errorf("查找购买订单失败: %w", err)
	}
	returns, err := r.dao.FindReturnsByIDs(ctx, returnIDs)
	if err != nil {
		return nil, fmt.Errorf("查找退货订单失败: %w", err)
	}
	exchanges, err := r.dao.FindExchangesByIDs(ctx, exchangeIDs)
	if err != nil {
		return nil, fmt.Errorf("查找换货订单失败: %w", err)
	}
	purchaseMap := make(map[int64]dao.Purchase, len(purchases))
	for _, p := range purchases {
		purchaseMap[p.Id] = p
	}
	returnMap := make(map[int64]dao.Return, len(returns))
	for _, ret := range returns {
		returnMap[ret.Id] = ret
	}
	exchangeMap := make(map[int64]dao.Exchange, len(exchanges))
	for _, e := range exchanges {
		exchangeMap[e.Id] = e
	}
	return slice.Map(os, func(idx int, src dao.Order) domain.Order {
		res := r.toDomain(src)
		if p, ok := purchaseMap[src.Id]; ok {
			res.Customer = domain.Customer{Email: p.CustomerEmail, Name: p.CustomerName}
		}
		if ret, ok := returnMap[src.Id]; ok {
			res.RefundAmount = ret.RefundAmount
			r.fillRequest(&res, ret.Request)
		}
		if e, ok := exchangeMap[src.Id]; ok {
			res.NewProductID = e.NewProductId
			r.fillRequest(&res, e.Request)
		}
		return res
	}), nil
}

func (r *orderRepository) fillRequest(o *domain.Order, req dao.Request) {
	o.Customer = domain.Customer{Email: req.CustomerEmail, Name: req.CustomerName}
	o.Request = domain.Request{
		Reason:             req.Reason,
		OriginalPurchaseID: req.OriginalPurchaseId,
		PurchaseDate:       req.PurchaseDate,
		AdminNotes:         req.AdminNotes,
		ApprovedBy:         req.ApprovedBy,
		ApprovedAt:         req.ApprovedAt,
		RejectedBy:         req.RejectedBy,
		RejectedAt:         req.RejectedAt,
	}
}

func (r *orderRepository) toEntity(o domain.Order) dao.Order {
	return dao.Order{
		Id:         o.ID,
		SN:         o.SN,
		UserId:     o.UserID,
		ProductId:  o.ProductID,
		Quantity:   o.Quantity,
		TotalPrice: o.TotalPrice,
		Status:     o.Status.String(),
		Kind:       o.Kind.String(),
	}
}

func (r *orderRepository) toPurchaseEntity(o domain.Order) dao.Purchase {
	return dao.Purchase{
		CustomerEmail: o.Customer.Email,
		CustomerName:  o.Customer.Name,
	}
}

func (r *orderRepository) toRequestEntity(o domain.Order) dao.Request {
	return dao.Request{
		Reason:             o.Request.Reason,
		CustomerEmail:      o.Customer.Email,
		CustomerName:       o.Customer.Name,
		PurchaseDate:       o.Request.PurchaseDate,
		OriginalPurchaseId: o.Request.OriginalPurchaseID,
	}
}

func (r *orderRepository) toDeltaEntities(deltas []domain.StockDelta) []dao.StockDelta {
	return slice.Map(deltas, func(idx int, src domain.StockDelta) dao.StockDelta {
		return dao.StockDelta{ProductId: src.ProductID, Delta: src.Delta}
	})
}

func (r *orderRepository) toDomain(o dao.Order) domain.Order {
	return domain.Order{
		ID:         o.Id,
		SN:         o.SN,
		UserID:     o.UserId,
		ProductID:  o.ProductId,
		Quantity:   o.Quantity,
		TotalPrice: o.TotalPrice,
		Status:     domain.Status(o.Status),
		Kind:       domain.Kind(o.Kind),
		Ctime:      o.Ctime,
		Utime:      o.Utime,
	}
}
