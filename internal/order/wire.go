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

//go:build wireinject

package order

import (
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/webshop/internal/order/internal/repository"
	"github.com/ecodeclub/webshop/internal/order/internal/service"
	"github.com/ecodeclub/webshop/internal/order/internal/web"
	"github.com/ecodeclub/webshop/internal/pkg/sequencenumber"
	"github.com/ecodeclub/webshop/internal/product"
	"github.com/ecodeclub/webshop/internal/user"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var ServiceSet = wire.NewSet(
	InitTablesOnce,
	initCartDAO,
	initOrderEventProducer,
	initCheckoutConfig,
	repository.NewOrderRepository,
	repository.NewCartRepository,
	sequencenumber.NewGenerator,
	service.NewService,
	service.NewCartService,
)

func InitModule(db *egorm.Component, ec ecache.Cache, q mq.MQ, pm *product.Module, um *user.Module) *Module {
	wire.Build(ServiceSet,
		wire.FieldsOf(new(*product.Module), "Svc"),
		wire.FieldsOf(new(*user.Module), "Svc"),
		web.NewHandler,
		web.NewCartHandler,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"))
	return new(Module)
}
