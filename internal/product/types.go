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

package product

import (
	"github.com/ecodeclub/webshop/internal/product/internal/domain"
	"github.com/ecodeclub/webshop/internal/product/internal/service"
	"github.com/ecodeclub/webshop/internal/product/internal/web"
)

type (
	Handler      = web.Handler
	AdminHandler = web.AdminHandler
	Service      = service.Service
	Product      = domain.Product
	Kind         = domain.Kind
	Physical     = domain.Physical
	Digital      = domain.Digital
)

const (
	KindPhysical = domain.KindPhysical
	KindDigital  = domain.KindDigital
)

var (
	ErrProductNotFound   = service.ErrProductNotFound
	ErrOutOfStock        = domain.ErrOutOfStock
	ErrInsufficientStock = domain.ErrInsufficientStock
)

type Module struct {
	Svc      Service
	Hdl      *Handler
	AdminHdl *AdminHandler
}
