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

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ecodeclub/webshop/internal/order/internal/domain"
	"github.com/ecodeclub/webshop/internal/order/internal/event"
	"github.com/ecodeclub/webshop/internal/order/internal/repository"
	"github.com/ecodeclub/webshop/internal/pkg/sequencenumber"
	"github.com/ecodeclub/webshop/internal/product"
	"github.com/ecodeclub/webshop/internal/user"
	"github.com/gotomicro/ego/core/elog"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

var (
	ErrOrderNotFound     = errors.New("订单不存在")
	ErrProductNotFound   = errors.New("商品不存在")
	ErrOutOfStock        = product.ErrOutOfStock
	ErrInsufficientStock = product.ErrInsufficientStock
	ErrInvalidState      = domain.ErrInvalidState
	ErrForbidden         = domain.ErrForbidden
	ErrInvalidAmount     = domain.ErrInvalidAmount
	ErrInvalidQuantity   = errors.New("购买数量必须大于 0")
	ErrInvalidCustomer   = errors.New("邮箱和姓名不能为空")
)

const (
	snPrefixPurchase = "PUR"
	snPrefixReturn   = "RET"
	snPrefixExchange = "EXC"
)

//go:generate mockgen -source=./order.go -package=ordermocks -destination=../../mocks/order.mock.go -typed Service
type Service interface {
	// Purchase 单件商品直接下单
	Purchase(ctx context.Context, uid, productID, quantity int64) (domain.Order, error)
	// GuestPurchase 游客按商品名称下单，订单不归属任何用户
	GuestPurchase(ctx context.Context, productName string, quantity int64, c domain.Customer) (domain.Order, error)
	CreateReturn(ctx context.Context, uid, purchaseID int64, reason string, refund decimal.Decimal) (domain.Order, error)
	// CreateExchange 创建时不校验新商品库存，审批通过时才扣减
	CreateExchange(ctx context.Context, uid, purchaseID, newProductID int64, reason string) (domain.Order, error)
	ApproveReturn(ctx context.Context, adminID, returnID int64, approved bool, notes string) (domain.Order, error)
	ApproveExchange(ctx context.Context, adminID, exchangeID int64, approved bool, notes string) (domain.Order, error)
	// Decide 根据订单类型审批退货或者换货
	Decide(ctx context.Context, adminID, orderID int64, approved bool, notes string) (domain.Order, error)
	FindByID(ctx context.Context, id int64) (domain.Order, error)
	List(ctx context.Context, uid int64, offset, limit int) ([]domain.Order, int64, error)
	ListAll(ctx context.Context, offset, limit int) ([]domain.Order, int64, error)
}

type service struct {
	repo        repository.OrderRepository
	productSvc  product.Service
	userSvc     user.UserService
	producer    event.OrderEventProducer
	snGenerator *sequencenumber.Generator
	logger      *elog.Component
}

func NewService(repo repository.OrderRepository,
	productSvc product.Service,
	userSvc user.UserService,
	producer event.OrderEventProducer,
	snGenerator *sequencenumber.Generator) Service {
	return &service{
		repo:        repo,
		productSvc:  productSvc,
		userSvc:     userSvc,
		producer:    producer,
		snGenerator: snGenerator,
		logger:      elog.DefaultLogger,
	}
}

func (s *service) Purchase(ctx context.Context, uid, productID, quantity int64) (domain.Order, error) {
	s.logger.Info("开始下单",
		elog.Int64("uid", uid),
		elog.Int64("productID", productID),
		elog.Int64("quantity", quantity))
	if quantity < 1 {
		return domain.Order{}, ErrInvalidQuantity
	}
	p, err := findProduct(ctx, s.productSvc, productID)
	if err != nil {
		return domain.Order{}, err
	}
	u, err := s.userSvc.Profile(ctx, uid)
	if err != nil {
		return domain.Order{}, fmt.Errorf("查找下单用户失败: %w", err)
	}
	return s.purchase(ctx, uid, p, quantity, customerOf(u))
}

func (s *service) GuestPurchase(ctx context.Context, productName string, quantity int64, c domain.Customer) (domain.Order, error) {
	s.logger.Info("开始游客下单",
		elog.String("product", productName),
		elog.String("email", c.Email),
		elog.Int64("quantity", quantity))
	c.Email, c.Name = strings.TrimSpace(c.Email), strings.TrimSpace(c.Name)
	if c.Email == "" || c.Name == "" {
		return domain.Order{}, ErrInvalidCustomer
	}
	if quantity < 1 {
		return domain.Order{}, ErrInvalidQuantity
	}
	p, err := s.productSvc.FindByName(ctx, productName)
	if errors.Is(err, product.ErrProductNotFound) {
		return domain.Order{}, fmt.Errorf("%w: name=%s", ErrProductNotFound, productName)
	}
	if err != nil {
		return domain.Order{}, err
	}
	return s.purchase(ctx, 0, p, quantity, c)
}

func (s *service) purchase(ctx context.Context, uid int64, p product.Product, quantity int64, c domain.Customer) (domain.Order, error) {
	if err := p.CheckStock(quantity); err != nil {
		return domain.Order{}, err
	}
	o := domain.NewPurchase(s.snGenerator.Generate(snPrefixPurchase, uid), uid, p.ID, quantity,
		p.Price.Mul(decimal.NewFromInt(quantity)), c)
	id, err := s.repo.CreatePurchase(ctx, o, takeStock(p, quantity))
	if errors.Is(err, repository.ErrStockNotEnough) {
		return domain.Order{}, fmt.Errorf("%w: productID=%d", ErrInsufficientStock, p.ID)
	}
	if err != nil {
		return domain.Order{}, err
	}
	o.ID = id
	s.logger.Info("下单成功",
		elog.Int64("orderID", o.ID),
		elog.String("sn", o.SN),
		elog.String("total", o.TotalPrice.String()))
	produce(ctx, s.producer, s.logger, newOrderEvent(event.TypePurchaseCompleted, o, 0))
	return o, nil
}

func (s *service) CreateReturn(ctx context.Context, uid, purchaseID int64, reason string, refund decimal.Decimal) (domain.Order, error) {
	s.logger.Info("开始创建退货申请",
		elog.Int64("uid", uid),
		elog.Int64("purchaseID", purchaseID),
		elog.String("refund", refund.String()))
	purchase, u, err := s.findReturnable(ctx, uid, purchaseID)
	if err != nil {
		return domain.Order{}, err
	}
	if err = purchase.CheckRefund(refund); err != nil {
		return domain.Order{}, fmt.Errorf("%w: 原订单总价 %s", err, purchase.TotalPrice.StringFixed(2))
	}
	o := domain.Order{
		SN:         s.snGenerator.Generate(snPrefixReturn, uid),
		UserID:     uid,
		ProductID:  purchase.ProductID,
		Quantity:   purchase.Quantity,
		TotalPrice: refund,
		Status:     domain.StatusPendingApproval,
		Kind:       domain.KindReturn,
		Customer:   customerOf(u),
		Request: domain.Request{
			Reason:             reason,
			OriginalPurchaseID: purchase.ID,
			PurchaseDate:       purchase.Ctime,
		},
		RefundAmount: refund,
	}
	o.ID, err = s.repo.CreateReturn(ctx, o)
	if err != nil {
		return domain.Order{}, err
	}
	s.logger.Info("创建退货申请成功", elog.Int64("orderID", o.ID), elog.String("sn", o.SN))
	produce(ctx, s.producer, s.logger, newOrderEvent(event.TypeReturnRequested, o, 0))
	return o, nil
}

func (s *service) CreateExchange(ctx context.Context, uid, purchaseID, newProductID int64, reason string) (domain.Order, error) {
	s.logger.Info("开始创建换货申请",
		elog.Int64("uid", uid),
		elog.Int64("purchaseID", purchaseID),
		elog.Int64("newProductID", newProductID))
	purchase, u, err := s.findReturnable(ctx, uid, purchaseID)
	if err != nil {
		return domain.Order{}, err
	}
	if _, err = findProduct(ctx, s.productSvc, newProductID); err != nil {
		return domain.Order{}, err
	}
	o := domain.Order{
		SN:         s.snGenerator.Generate(snPrefixExchange, uid),
		UserID:     uid,
		ProductID:  purchase.ProductID,
		Quantity:   purchase.Quantity,
		TotalPrice: purchase.TotalPrice,
		Status:     domain.StatusPendingApproval,
		Kind:       domain.KindExchange,
		Customer:   customerOf(u),
		Request: domain.Request{
			Reason:             reason,
			OriginalPurchaseID: purchase.ID,
			PurchaseDate:       purchase.Ctime,
		},
		NewProductID: newProductID,
	}
	o.ID, err = s.repo.CreateExchange(ctx, o)
	if err != nil {
		return domain.Order{}, err
	}
	s.logger.Info("创建换货申请成功", elog.Int64("orderID", o.ID), elog.String("sn", o.SN))
	produce(ctx, s.producer, s.logger, newOrderEvent(event.TypeExchangeRequested, o, 0))
	return o, nil
}

// findReturnable 客户信息以提交申请时的资料为准
func (s *service) findReturnable(ctx context.Context, uid, purchaseID int64) (domain.Order, user.User, error) {
	purchase, err := s.FindByID(ctx, purchaseID)
	if err != nil {
		return domain.Order{}, user.User{}, err
	}
	if purchase.Kind != domain.KindPurchase {
		return domain.Order{}, user.User{}, fmt.Errorf("%w: 购买订单 id=%d", ErrOrderNotFound, purchaseID)
	}
	u, err := s.userSvc.Profile(ctx, uid)
	if err != nil {
		return domain.Order{}, user.User{}, fmt.Errorf("查找申请用户失败: %w", err)
	}
	if err = purchase.CheckReturnable(uid, u.Email); err != nil {
		return domain.Order{}, user.User{}, err
	}
	return purchase, u, nil
}

func (s *service) ApproveReturn(ctx context.Context, adminID, returnID int64, approved bool, notes string) (domain.Order, error) {
	o, err := s.findByKind(ctx, returnID, domain.KindReturn)
	if err != nil {
		return domain.Order{}, err
	}
	return s.decide(ctx, adminID, o, approved, notes)
}

func (s *service) ApproveExchange(ctx context.Context, adminID, exchangeID int64, approved bool, notes string) (domain.Order, error) {
	o, err := s.findByKind(ctx, exchangeID, domain.KindExchange)
	if err != nil {
		return domain.Order{}, err
	}
	return s.decide(ctx, adminID, o, approved, notes)
}

func (s *service) Decide(ctx context.Context, adminID, orderID int64, approved bool, notes string) (domain.Order, error) {
	o, err := s.FindByID(ctx, orderID)
	if err != nil {
		return domain.Order{}, err
	}
	if !o.Kind.NeedApproval() {
		return domain.Order{}, fmt.Errorf("%w: %s 订单不需要审批", ErrInvalidState, o.Kind)
	}
	return s.decide(ctx, adminID, o, approved, notes)
}

func (s *service) findByKind(ctx context.Context, id int64, kind domain.Kind) (domain.Order, error) {
	o, err := s.FindByID(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	if o.Kind != kind {
		return domain.Order{}, fmt.Errorf("%w: %s id=%d", ErrOrderNotFound, kind, id)
	}
	return o, nil
}

func (s *service) decide(ctx context.Context, adminID int64, o domain.Order, approved bool, notes string) (domain.Order, error) {
	s.logger.Info("开始审批",
		elog.Int64("adminID", adminID),
		elog.Int64("orderID", o.ID),
		elog.String("kind", o.Kind.String()),
		elog.Any("approved", approved))
	decided, err := o.Decide(adminID, approved, notes, time.Now().UnixMilli())
	if err != nil {
		return domain.Order{}, fmt.Errorf("%w: 当前状态 %s", err, o.Status)
	}
	var deltas []domain.StockDelta
	if approved {
		deltas, err = s.restock(ctx, o)
		if err != nil {
			return domain.Order{}, err
		}
	}
	err = s.repo.Decide(ctx, decided, deltas)
	switch {
	case errors.Is(err, repository.ErrStatusConflict):
		return domain.Order{}, fmt.Errorf("%w: 订单已被审批 id=%d", ErrInvalidState, o.ID)
	case errors.Is(err, repository.ErrStockNotEnough):
		return domain.Order{}, fmt.Errorf("%w: productID=%d", ErrOutOfStock, o.NewProductID)
	case err != nil:
		return domain.Order{}, err
	}
	typ := event.TypeOrderRejected
	if approved {
		typ = event.TypeOrderApproved
	}
	s.logger.Info("审批完成",
		elog.Int64("orderID", decided.ID),
		elog.String("status", decided.Status.String()))
	produce(ctx, s.producer, s.logger, newOrderEvent(typ, decided, adminID))
	return decided, nil
}

// restock 退货回补原商品一件；换货回补原商品一件，扣减新商品一件。
// 换成同一件商品时一进一出，库存不变
func (s *service) restock(ctx context.Context, o domain.Order) ([]domain.StockDelta, error) {
	if o.Kind == domain.KindExchange && o.NewProductID == o.ProductID {
		return nil, nil
	}
	var deltas []domain.StockDelta
	original, err := s.productSvc.FindByID(ctx, o.ProductID)
	switch {
	case errors.Is(err, product.ErrProductNotFound):
		// 原商品已下架，无处回补
		s.logger.Warn("原商品不存在，跳过回补库存",
			elog.Int64("orderID", o.ID),
			elog.Int64("productID", o.ProductID))
	case err != nil:
		return nil, err
	case original.IsPhysical():
		deltas = append(deltas, domain.StockDelta{ProductID: original.ID, Delta: 1})
	}
	if o.Kind != domain.KindExchange {
		return deltas, nil
	}
	target, err := findProduct(ctx, s.productSvc, o.NewProductID)
	if err != nil {
		return nil, err
	}
	if target.IsPhysical() {
		if target.Physical.Stock < 1 {
			return nil, fmt.Errorf("%w: productID=%d", ErrOutOfStock, target.ID)
		}
		deltas = append(deltas, domain.StockDelta{ProductID: target.ID, Delta: -1})
	}
	return deltas, nil
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.Order, error) {
	o, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return domain.Order{}, fmt.Errorf("%w: id=%d", ErrOrderNotFound, id)
	}
	return o, err
}

func (s *service) List(ctx context.Context, uid int64, offset, limit int) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		os    []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.ListByUID(ctx, uid, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalByUID(ctx, uid)
		return err
	})
	return os, total, eg.Wait()
}

func (s *service) ListAll(ctx context.Context, offset, limit int) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		os    []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Total(ctx)
		return err
	})
	return os, total, eg.Wait()
}

func findProduct(ctx context.Context, svc product.Service, id int64) (product.Product, error) {
	p, err := svc.FindByID(ctx, id)
	if errors.Is(err, product.ErrProductNotFound) {
		return product.Product{}, fmt.Errorf("%w: id=%d", ErrProductNotFound, id)
	}
	return p, err
}

// takeStock 数字商品不占库存
func takeStock(p product.Product, quantity int64) []domain.StockDelta {
	if !p.IsPhysical() {
		return nil
	}
	return []domain.StockDelta{{ProductID: p.ID, Delta: -quantity}}
}

func customerOf(u user.User) domain.Customer {
	return domain.Customer{Email: u.Email, Name: u.Username}
}

func newOrderEvent(typ string, o domain.Order, adminID int64) event.OrderEvent {
	return event.OrderEvent{
		Type:       typ,
		OrderID:    o.ID,
		SN:         o.SN,
		Kind:       o.Kind.String(),
		Status:     o.Status.String(),
		UserID:     o.UserID,
		ProductID:  o.ProductID,
		Quantity:   o.Quantity,
		TotalPrice: o.TotalPrice,
		AdminID:    adminID,
	}
}

// produce 发送失败只记录日志，不影响主流程
func produce(ctx context.Context, p event.OrderEventProducer, logger *elog.Component, evt event.OrderEvent) {
	if err := p.Produce(ctx, evt); err != nil {
		logger.Error("发送订单事件失败",
			elog.FieldErr(err),
			elog.String("type", evt.Type),
			elog.Int64("orderID", evt.OrderID))
	}
}
