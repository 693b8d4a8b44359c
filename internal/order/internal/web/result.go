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
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/webshop/internal/order/internal/errs"
	"github.com/ecodeclub/webshop/internal/order/internal/service"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
)

// errorResult 业务错误带上具体原因，方便调用方修正参数
func errorResult(err error) (ginx.Result, error) {
	var code errs.ErrorCode
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		code = errs.OrderNotFound
	case errors.Is(err, service.ErrProductNotFound):
		code = errs.ProductNotFound
	case errors.Is(err, service.ErrForbidden):
		code = errs.Forbidden
	case errors.Is(err, service.ErrInvalidState):
		code = errs.InvalidState
	case errors.Is(err, service.ErrInvalidAmount):
		code = errs.InvalidAmount
	case errors.Is(err, service.ErrOutOfStock):
		code = errs.OutOfStock
	case errors.Is(err, service.ErrInsufficientStock):
		code = errs.InsufficientStock
	case errors.Is(err, service.ErrEmptyCart):
		code = errs.EmptyCart
	case errors.Is(err, service.ErrInvalidQuantity):
		code = errs.InvalidQuantity
	case errors.Is(err, service.ErrInvalidCustomer):
		code = errs.InvalidCustomer
	case errors.Is(err, service.ErrDuplicateRequest):
		code = errs.DuplicateRequest
	default:
		return systemErrorResult, err
	}
	return ginx.Result{Code: code.Code, Msg: err.Error()}, nil
}
