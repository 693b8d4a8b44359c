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

	"github.com/ecodeclub/webshop/internal/product/internal/domain"
	repomocks "github.com/ecodeclub/webshop/internal/product/internal/repository/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestService_Create(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) *repomocks.MockProductRepository
		product domain.Product
		wantID  int64
		wantErr error
	}{
		{
			name: "创建实体商品",
			mock: func(ctrl *gomock.Controller) *repomocks.MockProductRepository {
				repo := repomocks.NewMockProductRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(1), nil)
				return repo
			},
			product: domain.Product{
				Name:     "Laptop",
				Price:    decimal.RequireFromString("999.99"),
				Kind:     domain.KindPhysical,
				Physical: domain.Physical{Weight: decimal.RequireFromString("2.5"), Stock: 10},
			},
			wantID: 1,
		},
		{
			name: "创建数字商品",
			mock: func(ctrl *gomock.Controller) *repomocks.MockProductRepository {
				repo := repomocks.NewMockProductRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(2), nil)
				return repo
			},
			product: domain.Product{
				Name:    "E-book",
				Price:   decimal.RequireFromString("19.99"),
				Kind:    domain.KindDigital,
				Digital: domain.Digital{FileSize: decimal.RequireFromString("5.2"), DownloadLink: "https://example.com/ebook"},
			},
			wantID: 2,
		},
		{
			name: "类型非法",
			mock: func(ctrl *gomock.Controller) *repomocks.MockProductRepository {
				return repomocks.NewMockProductRepository(ctrl)
			},
			product: domain.Product{
				Name:  "Unknown",
				Price: decimal.RequireFromString("1"),
				Kind:  domain.Kind("service"),
			},
			wantErr: ErrInvalidVariant,
		},
		{
			name: "名称为空",
			mock: func(ctrl *gomock.Controller) *repomocks.MockProductRepository {
				return repomocks.NewMockProductRepository(ctrl)
			},
			product: domain.Product{
				Name:  "  ",
				Price: decimal.RequireFromString("1"),
				Kind:  domain.KindDigital,
			},
			wantErr: ErrInvalidName,
		},
		{
			name: "价格为0",
			mock: func(ctrl *gomock.Controller) *repomocks.MockProductRepository {
				return repomocks.NewMockProductRepository(ctrl)
			},
			product: domain.Product{
				Name:  "Free",
				Price: decimal.Zero,
				Kind:  domain.KindDigital,
			},
			wantErr: ErrInvalidPrice,
		},
		{
			name: "库存为负数",
			mock: func(ctrl *gomock.Controller) *repomocks.MockProductRepository {
				return repomocks.NewMockProductRepository(ctrl)
			},
			product: domain.Product{
				Name:     "Laptop",
				Price:    decimal.RequireFromString("10"),
				Kind:     domain.KindPhysical,
				Physical: domain.Physical{Stock: -1},
			},
			wantErr: ErrInvalidPrice,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl))
			id, err := svc.Create(context.Background(), tc.product)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantID, id)
		})
	}
}

func TestService_Update(t *testing.T) {
	laptop := domain.Product{
		ID:       1,
		Name:     "Laptop",
		Price:    decimal.RequireFromString("999.99"),
		Kind:     domain.KindPhysical,
		Physical: domain.Physical{Weight: decimal.RequireFromString("2.5"), Stock: 10},
	}
	newPrice := decimal.RequireFromString("899.99")
	stock := int64(5)
	link := "https://example.com/new"
	negative := int64(-3)
	newName := "Gaming Laptop"

	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) *repomocks.MockProductRepository
		update  domain.Update
		wantRes domain.Product
		wantErr error
	}{
		{
			name: "更新价格和库存",
			mock: func(ctrl *gomock.Controller) *repomocks.MockProductRepository {
				repo := repomocks.NewMockProductRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(laptop, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), true).
					DoAndReturn(func(ctx context.Context, p domain.Product, setStock bool) error {
						assert.True(t, newPrice.Equal(p.Price))
						assert.Equal(t, int64(5), p.Physical.Stock)
						return nil
					})
				return repo
			},
			update: domain.Update{Price: &newPrice, Stock: &stock},
			wantRes: domain.Product{
				ID:       1,
				Name:     "Laptop",
				Price:    newPrice,
				Kind:     domain.KindPhysical,
				Physical: domain.Physical{Weight: decimal.RequireFromString("2.5"), Stock: 5},
			},
		},
		{
			name: "不属于该类型的字段被忽略",
			mock: func(ctrl *gomock.Controller) *repomocks.MockProductRepository {
				repo := repomocks.NewMockProductRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(laptop, nil)
				repo.EXPECT().Update(gomock.Any(), laptop, false).Return(nil)
				return repo
			},
			update:  domain.Update{DownloadLink: &link},
			wantRes: laptop,
		},
		{
			name: "只改名字不覆盖库存",
			mock: func(ctrl *gomock.Controller) *repomocks.MockProductRepository {
				repo := repomocks.NewMockProductRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(laptop, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), false).
					DoAndReturn(func(ctx context.Context, p domain.Product, setStock bool) error {
						assert.Equal(t, "Gaming Laptop", p.Name)
						return nil
					})
				return repo
			},
			update:  domain.Update{Name: &newName},
			wantRes: laptop,
		},
		{
			name: "商品不存在",
			mock: func(ctrl *gomock.Controller) *repomocks.MockProductRepository {
				repo := repomocks.NewMockProductRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(domain.Product{}, ErrProductNotFound)
				return repo
			},
			update:  domain.Update{Price: &newPrice},
			wantErr: ErrProductNotFound,
		},
		{
			name: "更新后库存非法",
			mock: func(ctrl *gomock.Controller) *repomocks.MockProductRepository {
				repo := repomocks.NewMockProductRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(laptop, nil)
				return repo
			},
			update:  domain.Update{Stock: &negative},
			wantErr: ErrInvalidPrice,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl))
			res, err := svc.Update(context.Background(), 1, tc.update)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantRes.Physical.Stock, res.Physical.Stock)
			assert.True(t, tc.wantRes.Price.Equal(res.Price))
			assert.Equal(t, tc.wantRes.Digital, res.Digital)
		})
	}
}

func TestService_List(t *testing.T) {
	testCases := []struct {
		name      string
		mock      func(ctrl *gomock.Controller) *repomocks.MockProductRepository
		wantLen   int
		wantTotal int64
		wantErr   error
	}{
		{
			name: "查询成功",
			mock: func(ctrl *gomock.Controller) *repomocks.MockProductRepository {
				repo := repomocks.NewMockProductRepository(ctrl)
				repo.EXPECT().List(gomock.Any(), 0, 10).Return([]domain.Product{{ID: 1}, {ID: 2}}, nil)
				repo.EXPECT().Total(gomock.Any()).Return(int64(12), nil)
				return repo
			},
			wantLen:   2,
			wantTotal: 12,
		},
		{
			name: "统计失败",
			mock: func(ctrl *gomock.Controller) *repomocks.MockProductRepository {
				repo := repomocks.NewMockProductRepository(ctrl)
				repo.EXPECT().List(gomock.Any(), 0, 10).Return([]domain.Product{{ID: 1}}, nil)
				repo.EXPECT().Total(gomock.Any()).Return(int64(0), errors.New("mock db error"))
				return repo
			},
			wantLen: 1,
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl))
			ps, total, err := svc.List(context.Background(), 0, 10)
			assert.Equal(t, tc.wantErr, err)
			if err != nil {
				return
			}
			assert.Len(t, ps, tc.wantLen)
			assert.Equal(t, tc.wantTotal, total)
		})
	}
}
