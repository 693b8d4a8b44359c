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

package event

import "github.com/shopspring/decimal"

const (
	TypePurchaseCompleted = "purchase_completed"
	TypeReturnRequested   = "return_requested"
	TypeExchangeRequested = "exchange_requested"
	TypeOrderApproved     = "order_approved"
	TypeOrderRejected     = "order_rejected"
)

type OrderEvent struct {
	Type       string          `json:"type"`
	OrderID    int64           `json:"orderId"`
	SN         string          `json:"sn"`
	Kind       string          `json:"kind"`
	Status     string          `json:"status"`
	UserID     int64           `json:"uid"`
	ProductID  int64           `json:"productId"`
	Quantity   int64           `json:"quantity"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	// 审批事件才有
	AdminID int64 `json:"adminId,omitempty"`
}
