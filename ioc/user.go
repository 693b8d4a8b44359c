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
	"context"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/webshop/internal/user"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

// InitUserModule 启动时确保配置里的管理员账号存在
func InitUserModule(db *egorm.Component, ec ecache.Cache, q mq.MQ) *user.Module {
	type AdminConfig struct {
		Username string `yaml:"username"`
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
	}
	var cfg AdminConfig
	err := econf.UnmarshalKey("user.admin", &cfg)
	if err != nil {
		panic(err)
	}
	m := user.InitModule(db, ec, q)
	if cfg.Username == "" {
		elog.DefaultLogger.Warn("没有配置管理员账号")
		return m
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = m.Svc.EnsureAdministrator(ctx, user.User{
		Username: cfg.Username,
		Email:    cfg.Email,
		Password: cfg.Password,
	})
	if err != nil {
		panic(err)
	}
	return m
}
