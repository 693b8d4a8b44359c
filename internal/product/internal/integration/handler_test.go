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

//go:build e2e

package integration

import (
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/webshop/internal/product/internal/errs"
	"github.com/ecodeclub/webshop/internal/product/internal/integration/startup"
	"github.com/ecodeclub/webshop/internal/product/internal/repository/dao"
	"github.com/ecodeclub/webshop/internal/product/internal/web"
	"github.com/ecodeclub/webshop/internal/test"
	testioc "github.com/ecodeclub/webshop/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type HandlerTestSuite struct {
	suite.Suite
	server      *egin.Component
	adminServer *egin.Component
	db          *egorm.Component
}

func (s *HandlerTestSuite) SetupSuite() {
	module := startup.InitModule()
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	module.Hdl.PublicRoutes(server.Engine)
	s.server = server

	adminServer := egin.Load("server").Build()
	module.AdminHdl.PrivateRoutes(adminServer.Engine)
	s.adminServer = adminServer

	s.db = testioc.InitDB()
}

func (s *HandlerTestSuite) TearDownTest() {
	for _, table := range []string{"products", "physical_products", "digital_products"} {
		err := s.db.Exec("TRUNCATE TABLE `" + table + "`").Error
		require.NoError(s.T(), err)
	}
}

func (s *HandlerTestSuite) createLaptop(t *testing.T) int64 {
	res := s.post(t, s.adminServer, "/product/create", web.CreateReq{
		Name:        "Laptop",
		Description: "轻薄本",
		Price:       decimal.RequireFromString("999.99"),
		Kind:        "physical",
		Weight:      decimal.RequireFromString("2.5"),
		Stock:       10,
	}, http.StatusOK)
	data := res.Data.(map[string]any)
	return int64(data["id"].(float64))
}

func (s *HandlerTestSuite) post(t *testing.T, server *egin.Component, path string, body any, wantCode int) test.Result[any] {
	req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[any]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, wantCode, recorder.Code)
	return recorder.MustScan()
}

func (s *HandlerTestSuite) TestCreateAndDetail() {
	t := s.T()
	id := s.createLaptop(t)
	require.True(t, id > 0)

	var ext dao.PhysicalProduct
	err := s.db.Where("id = ?", id).First(&ext).Error
	require.NoError(t, err)
	assert.Equal(t, int64(10), ext.Stock)

	req, err := http.NewRequest(http.MethodPost, "/product/detail", iox.NewJSONReader(web.IDReq{ID: id}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.Product]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	res := recorder.MustScan()
	assert.Equal(t, "Laptop", res.Data.Name)
	assert.Equal(t, "physical", res.Data.Kind)
	assert.True(t, decimal.RequireFromString("999.99").Equal(res.Data.Price))
	assert.Equal(t, float64(10), res.Data.Details["stock"])
	assert.Equal(t, "2.5", res.Data.Details["weight"])
}

func (s *HandlerTestSuite) TestCreateFailed() {
	testCases := []struct {
		name     string
		req      web.CreateReq
		wantResp test.Result[any]
	}{
		{
			name: "类型非法",
			req: web.CreateReq{
				Name:  "Consulting",
				Price: decimal.RequireFromString("10"),
				Kind:  "service",
			},
			wantResp: test.Result[any]{Code: errs.InvalidVariant.Code, Msg: errs.InvalidVariant.Msg},
		},
		{
			name: "价格非法",
			req: web.CreateReq{
				Name:  "Free",
				Price: decimal.RequireFromString("-1"),
				Kind:  "digital",
			},
			wantResp: test.Result[any]{Code: errs.InvalidAmount.Code, Msg: errs.InvalidAmount.Msg},
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			res := s.post(t, s.adminServer, "/product/create", tc.req, http.StatusOK)
			assert.Equal(t, tc.wantResp, res)
		})
	}
}

func (s *HandlerTestSuite) TestUpdate() {
	t := s.T()
	id := s.createLaptop(t)
	price := decimal.RequireFromString("899.00")
	stock := int64(3)
	link := "https://example.com/ignored"
	res := s.post(t, s.adminServer, "/product/update", web.UpdateReq{
		ID:           id,
		Price:        &price,
		Stock:        &stock,
		DownloadLink: &link,
	}, http.StatusOK)
	assert.Equal(t, 0, res.Code)

	var p dao.Product
	err := s.db.Where("id = ?", id).First(&p).Error
	require.NoError(t, err)
	assert.True(t, price.Equal(p.Price))
	var ext dao.PhysicalProduct
	err = s.db.Where("id = ?", id).First(&ext).Error
	require.NoError(t, err)
	assert.Equal(t, int64(3), ext.Stock)

	res = s.post(t, s.adminServer, "/product/update", web.UpdateReq{ID: id + 100, Price: &price}, http.StatusOK)
	assert.Equal(t, errs.ProductNotFound.Code, res.Code)
}

func (s *HandlerTestSuite) TestSearch() {
	t := s.T()
	s.createLaptop(t)
	s.post(t, s.adminServer, "/product/create", web.CreateReq{
		Name:         "E-book",
		Price:        decimal.RequireFromString("19.99"),
		Kind:         "digital",
		FileSize:     decimal.RequireFromString("5.2"),
		DownloadLink: "https://example.com/ebook",
	}, http.StatusOK)

	req, err := http.NewRequest(http.MethodPost, "/product/search", iox.NewJSONReader(web.SearchReq{Keyword: "LAP", Limit: 10}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.ListResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	res := recorder.MustScan()
	require.Len(t, res.Data.Products, 1)
	assert.Equal(t, "Laptop", res.Data.Products[0].Name)

	req, err = http.NewRequest(http.MethodPost, "/product/list", iox.NewJSONReader(web.ListReq{Limit: 10}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder = test.NewJSONResponseRecorder[web.ListResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	res = recorder.MustScan()
	assert.Equal(t, int64(2), res.Data.Total)
	assert.Len(t, res.Data.Products, 2)
}

func (s *HandlerTestSuite) TestDelete() {
	t := s.T()
	id := s.createLaptop(t)
	res := s.post(t, s.adminServer, "/product/delete", web.IDReq{ID: id}, http.StatusOK)
	assert.Equal(t, 0, res.Code)

	var cnt int64
	err := s.db.Model(&dao.PhysicalProduct{}).Where("id = ?", id).Count(&cnt).Error
	require.NoError(t, err)
	assert.Equal(t, int64(0), cnt)

	res = s.post(t, s.adminServer, "/product/delete", web.IDReq{ID: id}, http.StatusOK)
	assert.Equal(t, errs.ProductNotFound.Code, res.Code)
}

func TestProductHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
