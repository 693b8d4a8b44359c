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

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/product")
	g.POST("/create", ginx.B[CreateReq](h.Create))
	g.POST("/update", ginx.B[UpdateReq](h.Update))
	g.POST("/delete", ginx.B[IDReq](h.Delete))
	g.POST("/list", ginx.B[ListReq](h.List))
}

func (h *AdminHandler) Create(ctx *ginx.Context, req CreateReq) (ginx.Result, error) {
	id, err := h.svc.Create(ctx.Request.Context(), req.toDomain())
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: CreateResp{ID: id}}, nil
}

func (h *AdminHandler) Update(ctx *ginx.Context, req UpdateReq) (ginx.Result, error) {
	p, err := h.svc.Update(ctx.Request.Context(), req.ID, req.toDomain())
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newProduct(p)}, nil
}

func (h *AdminHandler) Delete(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	err := h.svc.Delete(ctx.Request.Context(), req.ID)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
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
