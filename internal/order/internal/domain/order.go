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

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidState  = errors.New("订单状态不允许该操作")
	ErrForbidden     = errors.New("无权操作该订单")
	ErrInvalidAmount = errors.New("退款金额非法")
)

// Kind 订单的具体类型
type Kind string

const (
	KindPurchase Kind = "purchase"
	KindReturn   Kind = "return"
	KindExchange Kind = "exchange"
)

func (k Kind) String() string {
	return string(k)
}

// NeedApproval 退货和换货需要管理员审批
func (k Kind) NeedApproval() bool {
	return k == KindReturn || k == KindExchange
}

type Status string

const (
	StatusPending         Status = "pending"
	StatusCompleted       Status = "completed"
	StatusFailed          Status = "failed"
	StatusPendingApproval Status = "pending_approval"
	StatusApproved        Status = "approved"
	StatusRejected        Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

type Customer struct {
	Email string
	Name  string
}

type Order struct {
	ID int64
	SN string
	// 0 表示游客下单
	UserID     int64
	ProductID  int64
	Quantity   int64
	TotalPrice decimal.Decimal
	Status     Status
	Kind       Kind
	Customer   Customer
	// 只有 Kind 为 KindReturn 或 KindExchange 时有意义
	Request Request
	// 只有 Kind 为 KindReturn 时有意义
	RefundAmount decimal.Decimal
	// 只有 Kind 为 KindExchange 时有意义
	NewProductID int64
	Ctime        int64
	Utime        int64
}

// Request 退货和换货申请共有的部分
type Request struct {
	Reason             string
	OriginalPurchaseID int64
	// 原订单的下单时间，毫秒
	PurchaseDate int64
	AdminNotes   string
	ApprovedBy   int64
	ApprovedAt   int64
	RejectedBy   int64
	RejectedAt   int64
}

// NewPurchase 购买订单创建即完成
func NewPurchase(sn string, uid, productID, quantity int64, total decimal.Decimal, c Customer) Order {
	return Order{
		SN:         sn,
		UserID:     uid,
		ProductID:  productID,
		Quantity:   quantity,
		TotalPrice: total,
		Status:     StatusCompleted,
		Kind:       KindPurchase,
		Customer:   c,
	}
}

// OwnedBy 登录用户按 ID 判断，游客订单按邮箱判断
func (o Order) OwnedBy(uid int64, email string) bool {
	if o.UserID != 0 {
		return o.UserID == uid
	}
	return email != "" && strings.EqualFold(o.Customer.Email, email)
}

// CheckReturnable 校验 o 能否作为退换货的原订单，先校验归属再校验状态
func (o Order) CheckReturnable(uid int64, email string) error {
	if !o.OwnedBy(uid, email) {
		return ErrForbidden
	}
	if o.Kind != KindPurchase || o.Status != StatusCompleted {
		return ErrInvalidState
	}
	return nil
}

// CheckRefund 退款金额必须为正且不超过原订单总价
func (o Order) CheckRefund(amount decimal.Decimal) error {
	if !amount.IsPositive() || amount.GreaterThan(o.TotalPrice) {
		return ErrInvalidAmount
	}
	return nil
}

// Decide 审批，只能从 StatusPendingApproval 出发，
// 审批人和审批时间只会落在 approved 或 rejected 其中一侧
func (o Order) Decide(adminID int64, approved bool, notes string, now int64) (Order, error) {
	if !o.Kind.NeedApproval() || o.Status != StatusPendingApproval {
		return Order{}, ErrInvalidState
	}
	o.Request.AdminNotes = notes
	if approved {
		o.Status = StatusApproved
		o.Request.ApprovedBy, o.Request.ApprovedAt = adminID, now
	} else {
		o.Status = StatusRejected
		o.Request.RejectedBy, o.Request.RejectedAt = adminID, now
	}
	o.Utime = now
	return o, nil
}

// StockDelta 库存变化，负数为扣减
type StockDelta struct {
	ProductID int64
	Delta     int64
}
