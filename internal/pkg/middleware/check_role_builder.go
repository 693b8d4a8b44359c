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

package middleware

import (
	"net/http"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// RoleClaimKey 登录时写入 JWT 的角色字段
const RoleClaimKey = "role"

// CheckRoleMiddlewareBuilder 只看登录凭证里的角色声明，不回查数据库
type CheckRoleMiddlewareBuilder struct {
	roles  []string
	sp     session.Provider
	logger *elog.Component
}

func NewCheckRoleMiddlewareBuilder(roles ...string) *CheckRoleMiddlewareBuilder {
	return &CheckRoleMiddlewareBuilder{
		roles:  roles,
		logger: elog.DefaultLogger,
	}
}

// WithProvider 默认使用 session.DefaultProvider
func (b *CheckRoleMiddlewareBuilder) WithProvider(sp session.Provider) *CheckRoleMiddlewareBuilder {
	b.sp = sp
	return b
}

func (b *CheckRoleMiddlewareBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		sp := b.sp
		if sp == nil {
			sp = session.DefaultProvider()
		}
		gctx := &ginx.Context{Context: ctx}
		sess, err := sp.Get(gctx)
		if err != nil {
			b.logger.Debug("用户未登录", elog.FieldErr(err))
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		role := sess.Claims().Get(RoleClaimKey).StringOrDefault("")
		if !slice.Contains(b.roles, role) {
			b.logger.Warn("角色不匹配，拒绝访问",
				elog.Int64("uid", sess.Claims().Uid),
				elog.String("role", role),
				elog.String("path", ctx.Request.URL.Path))
			ctx.AbortWithStatus(http.StatusForbidden)
			return
		}
		ctx.Next()
	}
}
