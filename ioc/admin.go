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

package ioc

import (
	"net/http"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/webshop/internal/order"
	"github.com/ecodeclub/webshop/internal/pkg/middleware"
	"github.com/ecodeclub/webshop/internal/product"
	"github.com/ecodeclub/webshop/internal/user"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
	"github.com/prometheus/client_golang/prometheus"
)

type AdminServer *egin.Component

func InitAdminServer(sp session.Provider,
	pm *product.Module,
	um *user.Module,
	om *order.Module,
) AdminServer {
	session.SetDefaultProvider(sp)
	res := egin.Load("admin").Build()
	res.Use(corsMiddleware())
	res.Use(middleware.NewMetricsBuilder(prometheus.DefaultRegisterer, "admin").Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	res.Use(middleware.NewCheckRoleMiddlewareBuilder(user.RoleAdministrator.String()).
		WithProvider(sp).Build())
	pm.AdminHdl.PrivateRoutes(res.Engine)
	um.AdminHdl.PrivateRoutes(res.Engine)
	om.AdminHdl.PrivateRoutes(res.Engine)
	return res
}
