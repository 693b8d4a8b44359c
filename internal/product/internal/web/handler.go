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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/webshop/internal/product/internal/domain"
	"github.com/ecodeclub/webshop/internal/product/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

// Handler 商品浏览，不需要登录
type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/product")
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/search", ginx.B[SearchReq](h.Search))
	g.POST("/detail", ginx.B[IDReq](h.Detail))
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	ps, total, err := h.svc.List(ctx.Request.Context(), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListResp{
			Total:    total,
			Products: slice.Map(ps, func(idx int, src domain.Product) Product { return newProduct(src) }),
		},
	}, nil
}

func (h *Handler) Search(ctx *ginx.Context, req SearchReq) (ginx.Result, error) {
	ps, err := h.svc.Search(ctx.Request.Context(), req.Keyword, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListResp{
			Total:    int64(len(ps)),
			Products: slice.Map(ps, func(idx int, src domain.Product) Product { return newProduct(src) }),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	p, err := h.svc.FindByID(ctx.Request.Context(), req.ID)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newProduct(p)}, nil
}
