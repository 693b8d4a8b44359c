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
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/webshop/internal/product/internal/domain"
	"github.com/ecodeclub/webshop/internal/product/internal/errs"
	"github.com/ecodeclub/webshop/internal/product/internal/service"
	productmocks "github.com/ecodeclub/webshop/internal/product/mocks"
	"github.com/ecodeclub/webshop/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAdminHandler_Create(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) service.Service
		req      CreateReq
		wantCode int
		wantResp test.Result[CreateResp]
	}{
		{
			name: "创建成功",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := productmocks.NewMockService(ctrl)
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p domain.Product) (int64, error) {
						assert.Equal(t, domain.KindPhysical, p.Kind)
						assert.Equal(t, int64(10), p.Physical.Stock)
						return 3, nil
					})
				return svc
			},
			req: CreateReq{
				Name:   "Laptop",
				Price:  decimal.RequireFromString("999.99"),
				Kind:   "physical",
				Weight: decimal.RequireFromString("2.5"),
				Stock:  10,
			},
			wantCode: http.StatusOK,
			wantResp: test.Result[CreateResp]{Data: CreateResp{ID: 3}},
		},
		{
			name: "类型非法",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := productmocks.NewMockService(ctrl)
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), service.ErrInvalidVariant)
				return svc
			},
			req: CreateReq{
				Name:  "Unknown",
				Price: decimal.RequireFromString("1"),
				Kind:  "service",
			},
			wantCode: http.StatusOK,
			wantResp: test.Result[CreateResp]{Code: errs.InvalidVariant.Code, Msg: errs.InvalidVariant.Msg},
		},
		{
			name: "系统错误",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := productmocks.NewMockService(ctrl)
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("mock db error"))
				return svc
			},
			req: CreateReq{
				Name:  "E-book",
				Price: decimal.RequireFromString("19.99"),
				Kind:  "digital",
			},
			wantCode: http.StatusInternalServerError,
			wantResp: test.Result[CreateResp]{Code: errs.SystemError.Code, Msg: errs.SystemError.Msg},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := gin.Default()
			NewAdminHandler(tc.mock(ctrl)).PrivateRoutes(server)

			req, err := http.NewRequest(http.MethodPost, "/product/create", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[CreateResp]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func TestHandler_Detail(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) service.Service
		wantCode int
		assertFn func(t *testing.T, res test.Result[Product])
	}{
		{
			name: "数字商品详情",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := productmocks.NewMockService(ctrl)
				svc.EXPECT().FindByID(gomock.Any(), int64(2)).Return(domain.Product{
					ID:    2,
					Name:  "E-book",
					Price: decimal.RequireFromString("19.99"),
					Kind:  domain.KindDigital,
					Digital: domain.Digital{
						FileSize:     decimal.RequireFromString("5.2"),
						DownloadLink: "https://example.com/ebook",
					},
				}, nil)
				return svc
			},
			wantCode: http.StatusOK,
			assertFn: func(t *testing.T, res test.Result[Product]) {
				assert.Equal(t, 0, res.Code)
				assert.Equal(t, "E-book", res.Data.Name)
				assert.Equal(t, "digital", res.Data.Kind)
				assert.True(t, decimal.RequireFromString("19.99").Equal(res.Data.Price))
				assert.Equal(t, "https://example.com/ebook", res.Data.Details["download_link"])
				assert.Equal(t, "5.2", res.Data.Details["file_size"])
			},
		},
		{
			name: "商品不存在",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := productmocks.NewMockService(ctrl)
				svc.EXPECT().FindByID(gomock.Any(), int64(2)).Return(domain.Product{}, service.ErrProductNotFound)
				return svc
			},
			wantCode: http.StatusOK,
			assertFn: func(t *testing.T, res test.Result[Product]) {
				assert.Equal(t, errs.ProductNotFound.Code, res.Code)
				assert.Equal(t, errs.ProductNotFound.Msg, res.Msg)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := gin.Default()
			NewHandler(tc.mock(ctrl)).PublicRoutes(server)

			req, err := http.NewRequest(http.MethodPost, "/product/detail", iox.NewJSONReader(IDReq{ID: 2}))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[Product]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			tc.assertFn(t, recorder.MustScan())
		})
	}
}
