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
	"time"

	"github.com/ecodeclub/webshop/internal/user/internal/domain"
)

type SignupReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginReq 邮箱和用户名二选一，都传了就用邮箱
type LoginReq struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type Profile struct {
	Id       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Ctime    string `json:"ctime,omitempty"`
}

func newProfile(u domain.User) Profile {
	var ctime string
	if u.Ctime > 0 {
		ctime = time.UnixMilli(u.Ctime).UTC().Format(time.DateTime)
	}
	return Profile{
		Id:       u.Id,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role.String(),
		Ctime:    ctime,
	}
}

type CreateReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UpdateReq 空字段保持不变
type UpdateReq struct {
	Id       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type IdReq struct {
	Id int64 `json:"id"`
}

type ListReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type ListResp struct {
	Total int64     `json:"total,omitempty"`
	Users []Profile `json:"users,omitempty"`
}
