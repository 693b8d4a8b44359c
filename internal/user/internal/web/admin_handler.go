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
	"github.com/ecodeclub/webshop/internal/user/internal/domain"
	"github.com/ecodeclub/webshop/internal/user/internal/service"
	"github.com/gin-gonic/gin"
)

// AdminHandler 管理员管理用户，可以创建任意角色的用户
type AdminHandler struct {
	userSvc service.UserService
}

func NewAdminHandler(userSvc service.UserService) *AdminHandler {
	return &AdminHandler{userSvc: userSvc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.POST("/create", ginx.B[CreateReq](h.Create))
	users.POST("/list", ginx.B[ListReq](h.List))
	users.POST("/detail", ginx.B[IdReq](h.Detail))
	users.POST("/update", ginx.B[UpdateReq](h.Update))
	users.POST("/delete", ginx.B[IdReq](h.Delete))
}

func (h *AdminHandler) Create(ctx *ginx.Context, req CreateReq) (ginx.Result, error) {
	u, err := h.userSvc.Create(ctx.Request.Context(), domain.User{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newProfile(u)}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	us, total, err := h.userSvc.List(ctx.Request.Context(), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListResp{
			Total: total,
			Users: slice.Map(us, func(idx int, src domain.User) Profile {
				return newProfile(src)
			}),
		},
	}, nil
}

func (h *AdminHandler) Detail(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	u, err := h.userSvc.Profile(ctx.Request.Context(), req.Id)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newProfile(u)}, nil
}

func (h *AdminHandler) Update(ctx *ginx.Context, req UpdateReq) (ginx.Result, error) {
	u, err := h.userSvc.Update(ctx.Request.Context(), domain.User{
		Id:       req.Id,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newProfile(u)}, nil
}

func (h *AdminHandler) Delete(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	err := h.userSvc.Delete(ctx.Request.Context(), req.Id)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}
