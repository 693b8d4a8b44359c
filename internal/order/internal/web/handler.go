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
	"github.com/ecodeclub/webshop/internal/order/internal/domain"
	"github.com/ecodeclub/webshop/internal/order/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/purchase", ginx.BS[PurchaseReq](h.Purchase))
	g.POST("/return", ginx.BS[ReturnReq](h.CreateReturn))
	g.POST("/exchange", ginx.BS[ExchangeReq](h.CreateExchange))
	g.POST("/list", ginx.BS[ListReq](h.List))
	g.POST("/detail", ginx.BS[IDReq](h.Detail))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/guest/purchase", ginx.B[GuestPurchaseReq](h.GuestPurchase))
}

func (h *Handler) Purchase(ctx *ginx.Context, req PurchaseReq, sess session.Session) (ginx.Result, error) {
	o, err := h.svc.Purchase(ctx.Request.Context(), sess.Claims().Uid, req.ProductID, req.Quantity)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newOrder(o)}, nil
}

func (h *Handler) GuestPurchase(ctx *ginx.Context, req GuestPurchaseReq) (ginx.Result, error) {
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	o, err := h.svc.GuestPurchase(ctx.Request.Context(), req.ProductName, quantity, domain.Customer{
		Email: req.CustomerEmail,
		Name:  req.CustomerName,
	})
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newOrder(o)}, nil
}

func (h *Handler) CreateReturn(ctx *ginx.Context, req ReturnReq, sess session.Session) (ginx.Result, error) {
	o, err := h.svc.CreateReturn(ctx.Request.Context(), sess.Claims().Uid, req.PurchaseID, req.Reason, req.RefundAmount)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newOrder(o)}, nil
}

func (h *Handler) CreateExchange(ctx *ginx.Context, req ExchangeReq, sess session.Session) (ginx.Result, error) {
	o, err := h.svc.CreateExchange(ctx.Request.Context(), sess.Claims().Uid, req.PurchaseID, req.NewProductID, req.Reason)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newOrder(o)}, nil
}

// List 只能看到自己的订单
func (h *Handler) List(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	offset, limit := req.page()
	os, total, err := h.svc.List(ctx.Request.Context(), sess.Claims().Uid, offset, limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: ListResp{Total: total, Orders: newOrders(os)}}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	o, err := h.svc.FindByID(ctx.Request.Context(), req.ID)
	if err != nil {
		return errorResult(err)
	}
	if o.UserID != sess.Claims().Uid {
		return errorResult(service.ErrForbidden)
	}
	return ginx.Result{Data: newOrder(o)}, nil
}
