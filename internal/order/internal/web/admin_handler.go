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

// AdminHandler 挂在管理后台，调用方一定是管理员
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/detail", ginx.B[IDReq](h.Detail))
	g.POST("/return/approve", ginx.BS[ApproveReq](h.ApproveReturn))
	g.POST("/exchange/approve", ginx.BS[ApproveReq](h.ApproveExchange))
	g.POST("/approve", ginx.BS[ApproveReq](h.Approve))
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	offset, limit := req.page()
	os, total, err := h.svc.ListAll(ctx.Request.Context(), offset, limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: ListResp{Total: total, Orders: newOrders(os)}}, nil
}

func (h *AdminHandler) Detail(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	o, err := h.svc.FindByID(ctx.Request.Context(), req.ID)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newOrder(o)}, nil
}

func (h *AdminHandler) ApproveReturn(ctx *ginx.Context, req ApproveReq, sess session.Session) (ginx.Result, error) {
	o, err := h.svc.ApproveReturn(ctx.Request.Context(), sess.Claims().Uid, req.ID, req.Approved, req.AdminNotes)
	return h.decided(o, err)
}

func (h *AdminHandler) ApproveExchange(ctx *ginx.Context, req ApproveReq, sess session.Session) (ginx.Result, error) {
	o, err := h.svc.ApproveExchange(ctx.Request.Context(), sess.Claims().Uid, req.ID, req.Approved, req.AdminNotes)
	return h.decided(o, err)
}

func (h *AdminHandler) Approve(ctx *ginx.Context, req ApproveReq, sess session.Session) (ginx.Result, error) {
	o, err := h.svc.Decide(ctx.Request.Context(), sess.Claims().Uid, req.ID, req.Approved, req.AdminNotes)
	return h.decided(o, err)
}

func (h *AdminHandler) decided(o domain.Order, err error) (ginx.Result, error) {
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newOrder(o)}, nil
}
