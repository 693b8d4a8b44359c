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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/webshop/internal/order/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

type IDReq struct {
	ID int64 `json:"id"`
}

// ListReq 分页查询，limit 不传默认 10 条
type ListReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

func (r ListReq) page() (int, int) {
	offset, limit := max(r.Offset, 0), r.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	return offset, min(limit, maxLimit)
}

type ListResp struct {
	Total  int64   `json:"total"`
	Orders []Order `json:"orders"`
}

type PurchaseReq struct {
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

// GuestPurchaseReq 游客按商品名称下单，数量不传默认 1
type GuestPurchaseReq struct {
	ProductName   string `json:"productName"`
	Quantity      int64  `json:"quantity"`
	CustomerEmail string `json:"customerEmail"`
	CustomerName  string `json:"customerName"`
}

type ReturnReq struct {
	PurchaseID   int64           `json:"purchaseId"`
	Reason       string          `json:"reason"`
	RefundAmount decimal.Decimal `json:"refundAmount"`
}

type ExchangeReq struct {
	PurchaseID   int64  `json:"purchaseId"`
	NewProductID int64  `json:"newProductId"`
	Reason       string `json:"reason"`
}

type ApproveReq struct {
	ID         int64  `json:"id"`
	Approved   bool   `json:"approved"`
	AdminNotes string `json:"adminNotes"`
}

type Order struct {
	ID            int64           `json:"id"`
	SN            string          `json:"sn"`
	UserID        int64           `json:"userId"`
	ProductID     int64           `json:"productId"`
	Quantity      int64           `json:"quantity"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
	Status        string          `json:"status"`
	Kind          string          `json:"kind"`
	CustomerEmail string          `json:"customerEmail"`
	CustomerName  string          `json:"customerName"`
	Date          string          `json:"date"`
	// 退货和换货的字段不同
	Details map[string]any `json:"details,omitempty"`
}

func newOrder(o domain.Order) Order {
	return Order{
		ID:            o.ID,
		SN:            o.SN,
		UserID:        o.UserID,
		ProductID:     o.ProductID,
		Quantity:      o.Quantity,
		TotalPrice:    o.TotalPrice,
		Status:        o.Status.String(),
		Kind:          o.Kind.String(),
		CustomerEmail: o.Customer.Email,
		CustomerName:  o.Customer.Name,
		Date:          formatTime(o.Ctime),
		Details:       details(o),
	}
}

func newOrders(os []domain.Order) []Order {
	return slice.Map(os, func(idx int, src domain.Order) Order {
		return newOrder(src)
	})
}

func details(o domain.Order) map[string]any {
	var res map[string]any
	switch o.Kind {
	case domain.KindReturn:
		res = map[string]any{"refundAmount": o.RefundAmount}
	case domain.KindExchange:
		res = map[string]any{"newProductId": o.NewProductID}
	default:
		return nil
	}
	req := o.Request
	res["reason"] = req.Reason
	res["originalPurchaseId"] = req.OriginalPurchaseID
	res["purchaseDate"] = formatTime(req.PurchaseDate)
	res["adminNotes"] = req.AdminNotes
	// 审批人只会出现在其中一侧
	if req.ApprovedAt > 0 {
		res["approvedBy"] = req.ApprovedBy
		res["approvedAt"] = formatTime(req.ApprovedAt)
	}
	if req.RejectedAt > 0 {
		res["rejectedBy"] = req.RejectedBy
		res["rejectedAt"] = formatTime(req.RejectedAt)
	}
	return res
}

type AddCartReq struct {
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

type CheckoutReq struct {
	// 可选，防止重复提交
	RequestID string `json:"requestId"`
}

type CheckoutResp struct {
	OrderIDs []int64 `json:"orderIds"`
}

type ClearResp struct {
	Removed int64 `json:"removed"`
}

type CartItem struct {
	ID         int64           `json:"id"`
	ProductID  int64           `json:"productId"`
	Quantity   int64           `json:"quantity"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	Status     string          `json:"status"`
}

type Cart struct {
	Items []CartItem      `json:"items"`
	Total decimal.Decimal `json:"total"`
}

func newCartItem(item domain.CartItem) CartItem {
	return CartItem{
		ID:         item.ID,
		ProductID:  item.ProductID,
		Quantity:   item.Quantity,
		TotalPrice: item.TotalPrice,
		Status:     item.Status,
	}
}

func newCart(c domain.Cart) Cart {
	return Cart{
		Items: slice.Map(c.Items, func(idx int, src domain.CartItem) CartItem {
			return newCartItem(src)
		}),
		Total: c.Total(),
	}
}

func formatTime(ms int64) string {
	if ms == 0 {
		return ""
	}
	return time.UnixMilli(ms).UTC().Format(time.DateTime)
}
