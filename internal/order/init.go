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

package order

import (
	"sync"
	"time"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/webshop/internal/order/internal/event"
	"github.com/ecodeclub/webshop/internal/order/internal/repository/dao"
	"github.com/ecodeclub/webshop/internal/order/internal/service"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
)

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.OrderDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewOrderGORMDAO(db)
}

func initCartDAO(db *egorm.Component) dao.CartDAO {
	// 购物车和订单共用一次建表
	InitTablesOnce(db)
	return dao.NewCartGORMDAO(db)
}

func initOrderEventProducer(q mq.MQ) event.OrderEventProducer {
	producer, err := event.NewOrderEventProducer(q)
	if err != nil {
		panic(err)
	}
	return producer
}

func initCheckoutConfig() service.CheckoutConfig {
	cfg := service.CheckoutConfig{RequestExpiration: 10 * time.Minute}
	if econf.Get("order.checkout") == nil {
		return cfg
	}
	if err := econf.UnmarshalKey("order.checkout", &cfg); err != nil {
		panic(err)
	}
	return cfg
}
