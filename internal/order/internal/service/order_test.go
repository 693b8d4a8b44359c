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
	"testing"
	"time"

	"github.com/ecodeclub/webshop/internal/order/internal/domain"
	"github.com/ecodeclub/webshop/internal/order/internal/event"
	evtmocks "github.com/ecodeclub/webshop/internal/order/internal/event/mocks"
	"github.com/ecodeclub/webshop/internal/order/internal/repository"
	repomocks "github.com/ecodeclub/webshop/internal/order/internal/repository/mocks"
	"github.com/ecodeclub/webshop/internal/pkg/sequencenumber"
	"github.com/ecodeclub/webshop/internal/product"
	productmocks "github.com/ecodeclub/webshop/internal/product/mocks"
	"github.com/ecodeclub/webshop/internal/user"
	usermocks "github.com/ecodeclub/webshop/internal/user/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type orderMocks struct {
	repo       *repomocks.MockOrderRepository
	productSvc *productmocks.MockService
	userSvc    *usermocks.MockUserService
	producer   *evtmocks.MockOrderEventProducer
}

func newOrderMocks(ctrl *gomock.Controller) orderMocks {
	return orderMocks{
		repo:       repomocks.NewMockOrderRepository(ctrl),
		productSvc: productmocks.NewMockService(ctrl),
		userSvc:    usermocks.NewMockUserService(ctrl),
		producer:   evtmocks.NewMockOrderEventProducer(ctrl),
	}
}

func (m orderMocks) newService() Service {
	return NewService(m.repo, m.productSvc, m.userSvc, m.producer, newFixedGenerator())
}

func newFixedGenerator() *sequencenumber.Generator {
	return sequencenumber.NewGeneratorWith(func() time.Time {
		return time.UnixMilli(1700000000000)
	}, func() string {
		return "mock"
	})
}

var (
	alice = user.User{Id: 7, Username: "alice", Email: "alice@x.com", Role: user.RoleCustomer}
	bob   = user.User{Id: 8, Username: "bob", Email: "bob@x.com", Role: user.RoleCustomer}
)

func physicalProduct(id, stock int64, price string) product.Product {
	return product.Product{
		ID:       id,
		Name:     "Keyboard",
		Price:    decimal.RequireFromString(price),
		Kind:     product.KindPhysical,
		Physical: product.Physical{Stock: stock},
	}
}

func digitalProduct(id int64, price string) product.Product {
	return product.Product{
		ID:    id,
		Name:  "E-Book",
		Price: decimal.RequireFromString(price),
		Kind:  product.KindDigital,
	}
}

func completedPurchase(id, uid int64, total string) domain.Order {
	return domain.Order{
		ID:         id,
		SN:         "PUR-1",
		UserID:     uid,
		ProductID:  5,
		Quantity:   3,
		TotalPrice: decimal.RequireFromString(total),
		Status:     domain.StatusCompleted,
		Kind:       domain.KindPurchase,
		Customer:   domain.Customer{Email: "alice@x.com", Name: "alice"},
		Ctime:      1699999999000,
	}
}

func TestService_Purchase(t *testing.T) {
	testCases := []struct {
		name      string
		mock      func(m orderMocks)
		productID int64
		quantity  int64
		wantOrder domain.Order
		wantErr   error
	}{
		{
			name: "实体商品扣库存",
			mock: func(m orderMocks) {
				m.productSvc.EXPECT().FindByID(gomock.Any(), int64(5)).Return(physicalProduct(5, 10, "10.00"), nil)
				m.userSvc.EXPECT().Profile(gomock.Any(), int64(7)).Return(alice, nil)
				m.repo.EXPECT().CreatePurchase(gomock.Any(), gomock.Any(), []domain.StockDelta{{ProductID: 5, Delta: -2}}).
					Return(int64(11), nil)
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, evt event.OrderEvent) error {
					assert.Equal(t, event.TypePurchaseCompleted, evt.Type)
					assert.Equal(t, int64(11), evt.OrderID)
					return nil
				})
			},
			productID: 5,
			quantity:  2,
			wantOrder: domain.Order{
				ID:         11,
				SN:         "PUR-17000000000000007mock",
				UserID:     7,
				ProductID:  5,
				Quantity:   2,
				TotalPrice: decimal.RequireFromString("20"),
				Status:     domain.StatusCompleted,
				Kind:       domain.KindPurchase,
				Customer:   domain.Customer{Email: "alice@x.com", Name: "alice"},
			},
		},
		{
			name: "数字商品不占库存",
			mock: func(m orderMocks) {
				m.productSvc.EXPECT().FindByID(gomock.Any(), int64(6)).Return(digitalProduct(6, "5.50"), nil)
				m.userSvc.EXPECT().Profile(gomock.Any(), int64(7)).Return(alice, nil)
				m.repo.EXPECT().CreatePurchase(gomock.Any(), gomock.Any(), gomock.Nil()).Return(int64(12), nil)
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errors.New("mock mq error"))
			},
			productID: 6,
			quantity:  3,
			wantOrder: domain.Order{
				ID:         12,
				SN:         "PUR-17000000000000007mock",
				UserID:     7,
				ProductID:  6,
				Quantity:   3,
				TotalPrice: decimal.RequireFromString("16.5"),
				Status:     domain.StatusCompleted,
				Kind:       domain.KindPurchase,
				Customer:   domain.Customer{Email: "alice@x.com", Name: "alice"},
			},
		},
		{
			name: "售罄",
			mock: func(m orderMocks) {
				m.productSvc.EXPECT().FindByID(gomock.Any(), int64(5)).Return(physicalProduct(5, 0, "10.00"), nil)
				m.userSvc.EXPECT().Profile(gomock.Any(), int64(7)).Return(alice, nil)
			},
			productID: 5,
			quantity:  1,
			wantErr:   ErrOutOfStock,
		},
		{
			name: "库存不足",
			mock: func(m orderMocks) {
				m.productSvc.EXPECT().FindByID(gomock.Any(), int64(5)).Return(physicalProduct(5, 2, "10.00"), nil)
				m.userSvc.EXPECT().Profile(gomock.Any(), int64(7)).Return(alice, nil)
			},
			productID: 5,
			quantity:  3,
			wantErr:   ErrInsufficientStock,
		},
		{
			name: "并发下单时库存被抢光",
			mock: func(m orderMocks) {
				m.productSvc.EXPECT().FindByID(gomock.Any(), int64(5)).Return(physicalProduct(5, 3, "10.00"), nil)
				m.userSvc.EXPECT().Profile(gomock.Any(), int64(7)).Return(alice, nil)
				m.repo.EXPECT().CreatePurchase(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(0), repository.ErrStockNotEnough)
			},
			productID: 5,
			quantity:  3,
			wantErr:   ErrInsufficientStock,
		},
		{
			name: "商品不存在",
			mock: func(m orderMocks) {
				m.productSvc.EXPECT().FindByID(gomock.Any(), int64(99)).Return(product.Product{}, product.ErrProductNotFound)
			},
			productID: 99,
			quantity:  1,
			wantErr:   ErrProductNotFound,
		},
		{
			name:      "数量非法",
			mock:      func(m orderMocks) {},
			productID: 5,
			quantity:  0,
			wantErr:   ErrInvalidQuantity,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newOrderMocks(ctrl)
			tc.mock(m)
			o, err := m.newService().Purchase(context.Background(), 7, tc.productID, tc.quantity)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.True(t, tc.wantOrder.TotalPrice.Equal(o.TotalPrice))
			o.TotalPrice = tc.wantOrder.TotalPrice
			assert.Equal(t, tc.wantOrder, o)
		})
	}
}

func TestService_GuestPurchase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newOrderMocks(ctrl)
	m.productSvc.EXPECT().FindByName(gomock.Any(), "keyboard").Return(physicalProduct(5, 10, "10.00"), nil)
	m.repo.EXPECT().CreatePurchase(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, o domain.Order, deltas []domain.StockDelta) (int64, error) {
			assert.Equal(t, int64(0), o.UserID)
			assert.Equal(t, domain.Customer{Email: "guest@x.com", Name: "Guest"}, o.Customer)
			return 13, nil
		})
	m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)

	svc := m.newService()
	o, err := svc.GuestPurchase(context.Background(), "keyboard", 1, domain.Customer{Email: " guest@x.com ", Name: "Guest"})
	assert.NoError(t, err)
	assert.Equal(t, int64(13), o.ID)

	_, err = svc.GuestPurchase(context.Background(), "keyboard", 1, domain.Customer{Email: "guest@x.com"})
	assert.ErrorIs(t, err, ErrInvalidCustomer)
}

func TestService_CreateReturn(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(m orderMocks)
		uid     int64
		refund  string
		wantErr error
	}{
		{
			name: "创建成功",
			mock: func(m orderMocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(11)).Return(completedPurchase(11, 7, "30.00"), nil)
				m.userSvc.EXPECT().Profile(gomock.Any(), int64(7)).Return(alice, nil)
				m.repo.EXPECT().CreateReturn(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, o domain.Order) (int64, error) {
					assert.Equal(t, domain.StatusPendingApproval, o.Status)
					assert.Equal(t, domain.KindReturn, o.Kind)
					assert.Equal(t, int64(11), o.Request.OriginalPurchaseID)
					assert.Equal(t, int64(1699999999000), o.Request.PurchaseDate)
					assert.Equal(t, int64(3), o.Quantity)
					assert.True(t, decimal.RequireFromString("30").Equal(o.RefundAmount))
					assert.Equal(t, domain.Customer{Email: "alice@x.com", Name: "alice"}, o.Customer)
					return 21, nil
				})
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			},
			uid:    7,
			refund: "30.00",
		},
		{
			name: "原订单不存在",
			mock: func(m orderMocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(11)).Return(domain.Order{}, repository.ErrOrderNotFound)
			},
			uid:     7,
			refund:  "1",
			wantErr: ErrOrderNotFound,
		},
		{
			name: "不能退换退货单",
			mock: func(m orderMocks) {
				o := completedPurchase(11, 7, "30.00")
				o.Kind = domain.KindReturn
				m.repo.EXPECT().FindByID(gomock.Any(), int64(11)).Return(o, nil)
			},
			uid:     7,
			refund:  "1",
			wantErr: ErrOrderNotFound,
		},
		{
			name: "不是自己的订单",
			mock: func(m orderMocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(11)).Return(completedPurchase(11, 7, "30.00"), nil)
				m.userSvc.EXPECT().Profile(gomock.Any(), int64(8)).Return(bob, nil)
			},
			uid:     8,
			refund:  "1",
			wantErr: ErrForbidden,
		},
		{
			name: "原订单未完成",
			mock: func(m orderMocks) {
				o := completedPurchase(11, 7, "30.00")
				o.Status = domain.StatusFailed
				m.repo.EXPECT().FindByID(gomock.Any(), int64(11)).Return(o, nil)
				m.userSvc.EXPECT().Profile(gomock.Any(), int64(7)).Return(alice, nil)
			},
			uid:     7,
			refund:  "1",
			wantErr: ErrInvalidState,
		},
		{
			name: "退款超过原价",
			mock: func(m orderMocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(11)).Return(completedPurchase(11, 7, "30.00"), nil)
				m.userSvc.EXPECT().Profile(gomock.Any(), int64(7)).Return(alice, nil)
			},
			uid:     7,
			refund:  "30.01",
			wantErr: ErrInvalidAmount,
		},
		{
			name: "游客订单按邮箱认领",
			mock: func(m orderMocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(11)).Return(completedPurchase(11, 0, "30.00"), nil)
				m.userSvc.EXPECT().Profile(gomock.Any(), int64(7)).Return(alice, nil)
				m.repo.EXPECT().CreateReturn(gomock.Any(), gomock.Any()).Return(int64(22), nil)
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			},
			uid:    7,
			refund: "10",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newOrderMocks(ctrl)
			tc.mock(m)
			o, err := m.newService().CreateReturn(context.Background(), tc.uid, 11, "broken", decimal.RequireFromString(tc.refund))
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.NotZero(t, o.ID)
			assert.Equal(t, "broken", o.Request.Reason)
		})
	}
}

func TestService_CreateExchange(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(m orderMocks)
		wantErr error
	}{
		{
			name: "新商品没货也能申请",
			mock: func(m orderMocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(11)).Return(completedPurchase(11, 7, "30.00"), nil)
				m.userSvc.EXPECT().Profile(gomock.Any(), int64(7)).Return(alice, nil)
				m.productSvc.EXPECT().FindByID(gomock.Any(), int64(9)).Return(physicalProduct(9, 0, "12.00"), nil)
				m.repo.EXPECT().CreateExchange(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, o domain.Order) (int64, error) {
					assert.Equal(t, int64(9), o.NewProductID)
					assert.Equal(t, int64(5), o.ProductID)
					assert.Equal(t, domain.KindExchange, o.Kind)
					return 31, nil
				})
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "新商品不存在",
			mock: func(m orderMocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(11)).Return(completedPurchase(11, 7, "30.00"), nil)
				m.userSvc.EXPECT().Profile(gomock.Any(), int64(7)).Return(alice, nil)
				m.productSvc.EXPECT().FindByID(gomock.Any(), int64(9)).Return(product.Product{}, product.ErrProductNotFound)
			},
			wantErr: ErrProductNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newOrderMocks(ctrl)
			tc.mock(m)
			_, err := m.newService().CreateExchange(context.Background(), 7, 11, 9, "wrong size")
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func pendingExchange() domain.Order {
	return domain.Order{
		ID:           31,
		UserID:       7,
		ProductID:    5,
		Quantity:     1,
		Status:       domain.StatusPendingApproval,
		Kind:         domain.KindExchange,
		NewProductID: 9,
	}
}

func TestService_ApproveExchange(t *testing.T) {
	testCases := []struct {
		name       string
		mock       func(m orderMocks)
		approved   bool
		wantStatus domain.Status
		wantErr    error
	}{
		{
			name: "同意换货",
			mock: func(m orderMocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(31)).Return(pendingExchange(), nil)
				m.productSvc.EXPECT().FindByID(gomock.Any(), int64(5)).Return(physicalProduct(5, 7, "10.00"), nil)
				m.productSvc.EXPECT().FindByID(gomock.Any(), int64(9)).Return(physicalProduct(9, 1, "12.00"), nil)
				m.repo.EXPECT().Decide(gomock.Any(), gomock.Any(), []domain.StockDelta{
					{ProductID: 5, Delta: 1},
					{ProductID: 9, Delta: -1},
				}).DoAndReturn(func(ctx context.Context, o domain.Order, deltas []domain.StockDelta) error {
					assert.Equal(t, domain.StatusApproved, o.Status)
					assert.Equal(t, int64(1), o.Request.ApprovedBy)
					assert.NotZero(t, o.Request.ApprovedAt)
					assert.Zero(t, o.Request.RejectedBy)
					assert.Equal(t, "ok", o.Request.AdminNotes)
					return nil
				})
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, evt event.OrderEvent) error {
					assert.Equal(t, event.TypeOrderApproved, evt.Type)
					assert.Equal(t, int64(1), evt.AdminID)
					return nil
				})
			},
			approved:   true,
			wantStatus: domain.StatusApproved,
		},
		{
			name: "新商品售罄",
			mock: func(m orderMocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(31)).Return(pendingExchange(), nil)
				m.productSvc.EXPECT().FindByID(gomock.Any(), int64(5)).Return(physicalProduct(5, 7, "10.00"), nil)
				m.productSvc.EXPECT().FindByID(gomock.Any(), int64(9)).Return(physicalProduct(9, 0, "12.00"), nil)
			},
			approved: true,
			wantErr:  ErrOutOfStock,
		},
		{
			name: "换成数字商品",
			mock: func(m orderMocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(31)).Return(pendingExchange(), nil)
				m.productSvc.EXPECT().FindByID(gomock.Any(), int64(5)).Return(physicalProduct(5, 7, "10.00"), nil)
				m.productSvc.EXPECT().FindByID(gomock.Any(), int64(9)).Return(digitalProduct(9, "12.00"), nil)
				m.repo.EXPECT().Decide(gomock.Any(), gomock.Any(), []domain.StockDelta{{ProductID: 5, Delta: 1}}).Return(nil)
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			},
			approved:   true,
			wantStatus: domain.StatusApproved,
		},
		{
			name: "换成同一件售罄商品",
			mock: func(m orderMocks) {
				o := pendingExchange()
				o.NewProductID = 5
				m.repo.EXPECT().FindByID(gomock.Any(), int64(31)).Return(o, nil)
				m.repo.EXPECT().Decide(gomock.Any(), gomock.Any(), gomock.Nil()).Return(nil)
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			},
			approved:   true,
			wantStatus: domain.StatusApproved,
		},
		{
			name: "拒绝不动库存",
			mock: func(m orderMocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(31)).Return(pendingExchange(), nil)
				m.repo.EXPECT().Decide(gomock.Any(), gomock.Any(), gomock.Nil()).
					DoAndReturn(func(ctx context.Context, o domain.Order, deltas []domain.StockDelta) error {
						assert.Equal(t, int64(1), o.Request.RejectedBy)
						assert.Zero(t, o.Request.ApprovedBy)
						assert.Zero(t, o.Request.ApprovedAt)
						return nil
					})
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: domain.StatusRejected,
		},
		{
			name: "已经审批过",
			mock: func(m orderMocks) {
				o := pendingExchange()
				o.Status = domain.StatusApproved
				m.repo.EXPECT().FindByID(gomock.Any(), int64(31)).Return(o, nil)
			},
			approved: true,
			wantErr:  ErrInvalidState,
		},
		{
			name: "并发审批被抢先",
			mock: func(m orderMocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(31)).Return(pendingExchange(), nil)
				m.repo.EXPECT().Decide(gomock.Any(), gomock.Any(), gomock.Nil()).Return(repository.ErrStatusConflict)
			},
			wantErr: ErrInvalidState,
		},
		{
			name: "不是换货单",
			mock: func(m orderMocks) {
				o := pendingExchange()
				o.Kind = domain.KindReturn
				m.repo.EXPECT().FindByID(gomock.Any(), int64(31)).Return(o, nil)
			},
			wantErr: ErrOrderNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newOrderMocks(ctrl)
			tc.mock(m)
			o, err := m.newService().ApproveExchange(context.Background(), 1, 31, tc.approved, "ok")
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantStatus, o.Status)
			assert.Equal(t, "ok", o.Request.AdminNotes)
		})
	}
}

func pendingReturn() domain.Order {
	return domain.Order{
		ID:           21,
		UserID:       7,
		ProductID:    5,
		Quantity:     3,
		TotalPrice:   decimal.RequireFromString("20.00"),
		Status:       domain.StatusPendingApproval,
		Kind:         domain.KindReturn,
		RefundAmount: decimal.RequireFromString("20.00"),
	}
}

func TestService_ApproveReturn(t *testing.T) {
	testCases := []struct {
		name       string
		mock       func(m orderMocks)
		approved   bool
		wantStatus domain.Status
		wantErr    error
	}{
		{
			name: "同意退货",
			mock: func(m orderMocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(21)).Return(pendingReturn(), nil)
				m.productSvc.EXPECT().FindByID(gomock.Any(), int64(5)).Return(physicalProduct(5, 0, "10.00"), nil)
				m.repo.EXPECT().Decide(gomock.Any(), gomock.Any(), []domain.StockDelta{{ProductID: 5, Delta: 1}}).
					DoAndReturn(func(ctx context.Context, o domain.Order, deltas []domain.StockDelta) error {
						assert.Equal(t, domain.StatusApproved, o.Status)
						assert.Equal(t, int64(1), o.Request.ApprovedBy)
						assert.NotZero(t, o.Request.ApprovedAt)
						assert.Zero(t, o.Request.RejectedBy)
						assert.Zero(t, o.Request.RejectedAt)
						return nil
					})
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, evt event.OrderEvent) error {
					assert.Equal(t, event.TypeOrderApproved, evt.Type)
					return nil
				})
			},
			approved:   true,
			wantStatus: domain.StatusApproved,
		},
		{
			name: "拒绝退货",
			mock: func(m orderMocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(21)).Return(pendingReturn(), nil)
				m.repo.EXPECT().Decide(gomock.Any(), gomock.Any(), gomock.Nil()).
					DoAndReturn(func(ctx context.Context, o domain.Order, deltas []domain.StockDelta) error {
						assert.Equal(t, domain.StatusRejected, o.Status)
						assert.Equal(t, int64(1), o.Request.RejectedBy)
						assert.NotZero(t, o.Request.RejectedAt)
						assert.Zero(t, o.Request.ApprovedBy)
						assert.Zero(t, o.Request.ApprovedAt)
						return nil
					})
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, evt event.OrderEvent) error {
					assert.Equal(t, event.TypeOrderRejected, evt.Type)
					return nil
				})
			},
			wantStatus: domain.StatusRejected,
		},
		{
			name: "原商品已下架",
			mock: func(m orderMocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(21)).Return(pendingReturn(), nil)
				m.productSvc.EXPECT().FindByID(gomock.Any(), int64(5)).Return(product.Product{}, product.ErrProductNotFound)
				m.repo.EXPECT().Decide(gomock.Any(), gomock.Any(), gomock.Nil()).Return(nil)
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			},
			approved:   true,
			wantStatus: domain.StatusApproved,
		},
		{
			name: "已经拒绝过",
			mock: func(m orderMocks) {
				o := pendingReturn()
				o.Status = domain.StatusRejected
				m.repo.EXPECT().FindByID(gomock.Any(), int64(21)).Return(o, nil)
			},
			wantErr: ErrInvalidState,
		},
		{
			name: "不是退货单",
			mock: func(m orderMocks) {
				m.repo.EXPECT().FindByID(gomock.Any(), int64(21)).Return(pendingExchange(), nil)
			},
			approved: true,
			wantErr:  ErrOrderNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newOrderMocks(ctrl)
			tc.mock(m)
			o, err := m.newService().ApproveReturn(context.Background(), 1, 21, tc.approved, "checked")
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantStatus, o.Status)
			assert.Equal(t, "checked", o.Request.AdminNotes)
		})
	}
}

func TestService_Decide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newOrderMocks(ctrl)
	ret := pendingExchange()
	ret.Kind = domain.KindReturn
	m.repo.EXPECT().FindByID(gomock.Any(), int64(31)).Return(ret, nil)
	m.productSvc.EXPECT().FindByID(gomock.Any(), int64(5)).Return(physicalProduct(5, 7, "10.00"), nil)
	m.repo.EXPECT().Decide(gomock.Any(), gomock.Any(), []domain.StockDelta{{ProductID: 5, Delta: 1}}).Return(nil)
	m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
	m.repo.EXPECT().FindByID(gomock.Any(), int64(11)).Return(completedPurchase(11, 7, "30.00"), nil)

	svc := m.newService()
	o, err := svc.Decide(context.Background(), 1, 31, true, "")
	assert.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, o.Status)

	// 购买订单不需要审批
	_, err = svc.Decide(context.Background(), 1, 11, true, "")
	assert.ErrorIs(t, err, ErrInvalidState)
}
