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
	"github.com/ecodeclub/webshop/internal/user/internal/errs"
	"github.com/ecodeclub/webshop/internal/user/internal/service"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
)

func errorResult(err error) (ginx.Result, error) {
	var code errs.ErrorCode
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		code = errs.UserNotFound
	case errors.Is(err, service.ErrDuplicateIdentity):
		code = errs.DuplicateIdentity
	case errors.Is(err, service.ErrInvalidCredentials):
		code = errs.InvalidCredentials
	case errors.Is(err, service.ErrInvalidRole):
		code = errs.InvalidRole
	case errors.Is(err, service.ErrInvalidUserInfo):
		code = errs.InvalidUserInfo
	default:
		return systemErrorResult, err
	}
	return ginx.Result{Code: code.Code, Msg: code.Msg}, nil
}
