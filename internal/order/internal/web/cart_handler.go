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
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/webshop/internal/order/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &CartHandler{}

type CartHandler struct {
	svc service.CartService
}

func NewCartHandler(svc service.CartService) *CartHandler {
	return &CartHandler{svc: svc}
}

func (h *CartHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/cart")
	g.GET("", ginx.S(h.Get))
	g.POST("/add", ginx.BS[AddCartReq](h.Add))
	g.POST("/clear", ginx.S(h.Clear))
	g.POST("/checkout", ginx.BS[CheckoutReq](h.Checkout))
}

func (h *CartHandler) PublicRoutes(_ *gin.Engine) {}

func (h *CartHandler) Add(ctx *ginx.Context, req AddCartReq, sess session.Session) (ginx.Result, error) {
	item, err := h.svc.Add(ctx.Request.Context(), sess.Claims().Uid, req.ProductID, req.Quantity)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newCartItem(item)}, nil
}

func (h *CartHandler) Get(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	c, err := h.svc.Get(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newCart(c)}, nil
}

func (h *CartHandler) Clear(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	n, err := h.svc.Clear(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: ClearResp{Removed: n}}, nil
}

func (h *CartHandler) Checkout(ctx *ginx.Context, req CheckoutReq, sess session.Session) (ginx.Result, error) {
	ids, err := h.svc.Checkout(ctx.Request.Context(), sess.Claims().Uid, req.RequestID)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: CheckoutResp{OrderIDs: ids}}, nil
}
