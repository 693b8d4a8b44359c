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

package domain

// Role 用户角色，只有这两种
type Role string

const (
	RoleCustomer      Role = "customer"
	RoleAdministrator Role = "administrator"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleAdministrator
}

func (r Role) IsAdministrator() bool {
	return r == RoleAdministrator
}

type User struct {
	Id       int64
	Username string
	Email    string
	// 创建和更新时是明文，从存储里读出来的是 bcrypt 之后的结果
	Password string `json:"-"`
	Role     Role
	Ctime    int64
	Utime    int64
}
