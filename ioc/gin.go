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
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/webshop/internal/order"
	"github.com/ecodeclub/webshop/internal/pkg/middleware"
	"github.com/ecodeclub/webshop/internal/product"
	"github.com/ecodeclub/webshop/internal/user"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
	"github.com/prometheus/client_golang/prometheus"
)

func initGinxServer(sp session.Provider,
	pm *product.Module,
	um *user.Module,
	om *order.Module,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(corsMiddleware())
	res.Use(middleware.NewMetricsBuilder(prometheus.DefaultRegisterer, "web").Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	um.Hdl.PublicRoutes(res.Engine)
	pm.Hdl.PublicRoutes(res.Engine)
	om.Hdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	um.Hdl.PrivateRoutes(res.Engine)
	om.Hdl.PrivateRoutes(res.Engine)
	om.CartHdl.PrivateRoutes(res.Engine)
	return res
}

func corsMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			return strings.HasPrefix(origin, "http://localhost") ||
				strings.HasPrefix(origin, "http://127.0.0.1")
		},
	})
}
