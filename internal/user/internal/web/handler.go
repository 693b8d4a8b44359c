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
	"github.com/ecodeclub/webshop/internal/pkg/middleware"
	"github.com/ecodeclub/webshop/internal/user/internal/domain"
	"github.com/ecodeclub/webshop/internal/user/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	userSvc service.UserService
}

func NewHandler(userSvc service.UserService) *Handler {
	return &Handler{
		userSvc: userSvc,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.GET("/profile", ginx.S(h.Profile))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.POST("/signup", ginx.B[SignupReq](h.Signup))
	users.POST("/login", ginx.B[LoginReq](h.Login))
}

// Signup 自己注册的只能是普通用户
func (h *Handler) Signup(ctx *ginx.Context, req SignupReq) (ginx.Result, error) {
	u, err := h.userSvc.Create(ctx.Request.Context(), domain.User{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     domain.RoleCustomer,
	})
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newProfile(u)}, nil
}

// Login 登录成功后 token 放在 X-Access-Token 响应头里
func (h *Handler) Login(ctx *ginx.Context, req LoginReq) (ginx.Result, error) {
	u, err := h.userSvc.Authenticate(ctx.Request.Context(), req.Email, req.Username, req.Password)
	if err != nil {
		return errorResult(err)
	}
	_, err = session.NewSessionBuilder(ctx, u.Id).
		SetJwtData(map[string]string{
			middleware.RoleClaimKey: u.Role.String(),
		}).Build()
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newProfile(u)}, nil
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	u, err := h.userSvc.Profile(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{
		Data: newProfile(u),
	}, nil
}
