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

package errs

var (
	SystemError       = ErrorCode{Code: 503001, Msg: "系统错误"}
	OrderNotFound     = ErrorCode{Code: 503002, Msg: "订单不存在"}
	Forbidden         = ErrorCode{Code: 503003, Msg: "无权操作该订单"}
	InvalidState      = ErrorCode{Code: 503004, Msg: "订单状态不允许该操作"}
	InvalidAmount     = ErrorCode{Code: 503005, Msg: "退款金额不能超过原订单总价"}
	OutOfStock        = ErrorCode{Code: 503006, Msg: "商品已售罄"}
	InsufficientStock = ErrorCode{Code: 503007, Msg: "商品库存不足"}
	EmptyCart         = ErrorCode{Code: 503008, Msg: "购物车为空"}
	ProductNotFound   = ErrorCode{Code: 503009, Msg: "商品不存在"}
	InvalidQuantity   = ErrorCode{Code: 503010, Msg: "购买数量非法"}
	DuplicateRequest  = ErrorCode{Code: 503011, Msg: "重复请求"}
	InvalidCustomer   = ErrorCode{Code: 503012, Msg: "客户信息不完整"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
