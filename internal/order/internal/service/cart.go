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
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/webshop/internal/order/internal/domain"
	"github.com/ecodeclub/webshop/internal/order/internal/event"
	"github.com/ecodeclub/webshop/internal/order/internal/repository"
	"github.com/ecodeclub/webshop/internal/pkg/sequencenumber"
	"github.com/ecodeclub/webshop/internal/product"
	"github.com/ecodeclub/webshop/internal/user"
	"github.com/gotomicro/ego/core/elog"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCart        = errors.New("购物车为空")
	ErrDuplicateRequest = errors.New("重复请求")
)

type CheckoutConfig struct {
	// RequestExpiration 同一个请求ID在这段时间内只能结算一次
	RequestExpiration time.Duration `yaml:"requestExpiration"`
}

//go:generate mockgen -source=./cart.go -package=ordermocks -destination=../../mocks/cart.mock.go -typed CartService
type CartService interface {
	// Add 重复添加同一个商品会累加数量，并按累加后的数量校验库存
	Add(ctx context.Context, uid, productID, quantity int64) (domain.CartItem, error)
	Get(ctx context.Context, uid int64) (domain.Cart, error)
	// Clear 返回删除的行数，清空空购物车不是错误
	Clear(ctx context.Context, uid int64) (int64, error)
	// Checkout 全部成功或者全部失败，requestID 非空时会去重
	Checkout(ctx context.Context, uid int64, requestID string) ([]int64, error)
}

type cartService struct {
	repo        repository.CartRepository
	orderRepo   repository.OrderRepository
	productSvc  product.Service
	userSvc     user.UserService
	producer    event.OrderEventProducer
	snGenerator *sequencenumber.Generator
	cache       ecache.Cache
	cfg         CheckoutConfig
	logger      *elog.Component
}

func NewCartService(repo repository.CartRepository,
	orderRepo repository.OrderRepository,
	productSvc product.Service,
	userSvc user.UserService,
	producer event.OrderEventProducer,
	snGenerator *sequencenumber.Generator,
	cache ecache.Cache,
	cfg CheckoutConfig) CartService {
	return &cartService{
		repo:        repo,
		orderRepo:   orderRepo,
		productSvc:  productSvc,
		userSvc:     userSvc,
		producer:    producer,
		snGenerator: snGenerator,
		cache:       cache,
		cfg:         cfg,
		logger:      elog.DefaultLogger,
	}
}

func (s *cartService) Add(ctx context.Context, uid, productID, quantity int64) (domain.CartItem, error) {
	if quantity < 1 {
		return domain.CartItem{}, ErrInvalidQuantity
	}
	p, err := findProduct(ctx, s.productSvc, productID)
	if err != nil {
		return domain.CartItem{}, err
	}
	item, err := s.repo.FindItem(ctx, uid, productID)
	switch {
	case errors.Is(err, repository.ErrCartItemNotFound):
		item = domain.CartItem{UserID: uid, ProductID: productID}
	case err != nil:
		return domain.CartItem{}, err
	}
	total := item.Quantity + quantity
	if err = p.CheckStock(total); err != nil {
		return domain.CartItem{}, err
	}
	// 只把增量交给库里累加，并发添加不会互相覆盖
	err = s.repo.Incr(ctx, domain.CartItem{
		UserID:    uid,
		ProductID: productID,
		Quantity:  quantity,
	}, p.Price)
	if err != nil {
		return domain.CartItem{}, err
	}
	item.Quantity = total
	item.TotalPrice = p.Price.Mul(decimal.NewFromInt(total))
	item.Status = domain.CartItemStatusInCart
	return item, nil
}

func (s *cartService) Get(ctx context.Context, uid int64) (domain.Cart, error) {
	return s.repo.FindByUID(ctx, uid)
}

func (s *cartService) Clear(ctx context.Context, uid int64) (int64, error) {
	return s.repo.Clear(ctx, uid)
}

func (s *cartService) Checkout(ctx context.Context, uid int64, requestID string) ([]int64, error) {
	s.logger.Info("开始结算购物车", elog.Int64("uid", uid), elog.String("requestID", requestID))
	if requestID != "" {
		key := s.checkoutRequestKey(requestID)
		ok, err := s.cache.SetNX(ctx, key, uid, s.cfg.RequestExpiration)
		if err != nil {
			return nil, fmt.Errorf("缓存请求ID失败: %w", err)
		}
		if !ok {
			return nil, fmt.Errorf("%w: requestID=%s", ErrDuplicateRequest, requestID)
		}
		ids, err := s.checkout(ctx, uid)
		if err != nil {
			// 失败了允许用同一个请求ID重试
			if _, er := s.cache.Delete(ctx, key); er != nil {
				s.logger.Warn("删除结算请求ID失败", elog.FieldErr(er), elog.String("key", key))
			}
		}
		return ids, err
	}
	return s.checkout(ctx, uid)
}

func (s *cartService) checkout(ctx context.Context, uid int64) ([]int64, error) {
	cart, err := s.repo.FindByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}
	u, err := s.userSvc.Profile(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("查找下单用户失败: %w", err)
	}
	c := customerOf(u)
	orders := make([]domain.Order, 0, len(cart.Items))
	var deltas []domain.StockDelta
	for _, item := range cart.Items {
		p, err1 := findProduct(ctx, s.productSvc, item.ProductID)
		if err1 != nil {
			return nil, err1
		}
		// 加入购物车之后库存可能已经变化，结算时重新校验
		if err1 = p.CheckStock(item.Quantity); err1 != nil {
			return nil, fmt.Errorf("%w: productID=%d", ErrInsufficientStock, p.ID)
		}
		orders = append(orders, domain.NewPurchase(s.snGenerator.Generate(snPrefixPurchase, uid),
			uid, p.ID, item.Quantity, item.TotalPrice, c))
		deltas = append(deltas, takeStock(p, item.Quantity)...)
	}
	ids, err := s.orderRepo.Checkout(ctx, uid, cart.Items, orders, deltas)
	switch {
	case errors.Is(err, repository.ErrStockNotEnough):
		return nil, fmt.Errorf("%w: 结算时库存不足", ErrInsufficientStock)
	case errors.Is(err, repository.ErrCartChanged):
		return nil, fmt.Errorf("%w: 购物车已被结算", ErrEmptyCart)
	case err != nil:
		return nil, err
	}
	s.logger.Info("结算购物车成功", elog.Int64("uid", uid), elog.Any("orderIDs", ids))
	for i := range orders {
		orders[i].ID = ids[i]
		produce(ctx, s.producer, s.logger, newOrderEvent(event.TypePurchaseCompleted, orders[i], 0))
	}
	return ids, nil
}

func (s *cartService) checkoutRequestKey(requestID string) string {
	return fmt.Sprintf("order:checkout:%s", requestID)
}
