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
	"github.com/ecodeclub/webshop/internal/order/internal/domain"
	"github.com/ecodeclub/webshop/internal/order/internal/service"
	"github.com/ecodeclub/webshop/internal/order/internal/web"
)

type (
	Handler      = web.Handler
	CartHandler  = web.CartHandler
	AdminHandler = web.AdminHandler
	Service      = service.Service
	CartService  = service.CartService
	Order        = domain.Order
	Kind         = domain.Kind
	Status       = domain.Status
)

const (
	KindPurchase = domain.KindPurchase
	KindReturn   = domain.KindReturn
	KindExchange = domain.KindExchange
)

type Module struct {
	Hdl      *Handler
	CartHdl  *CartHandler
	AdminHdl *AdminHandler
	Svc      Service
	CartSvc  CartService
}
