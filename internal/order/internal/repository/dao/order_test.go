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

package dao

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T, conn *sql.DB) *gorm.DB {
	db, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db
}

func TestOrderGORMDAO_Checkout(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(t *testing.T) *sql.DB
		wantIDs []int64
		wantErr error
	}{
		{
			name: "结算成功",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM `cart_items` .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("UPDATE `physical_products` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("INSERT INTO `orders` .*").
					WillReturnResult(sqlmock.NewResult(11, 1))
				mock.ExpectExec("INSERT INTO `purchases` .*").
					WillReturnResult(sqlmock.NewResult(11, 1))
				mock.ExpectCommit()
				return mockDB
			},
			wantIDs: []int64{11},
		},
		{
			name: "库存不足整体回滚",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM `cart_items` .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("UPDATE `physical_products` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
				return mockDB
			},
			wantErr: ErrStockNotEnough,
		},
		{
			name: "购物车被并发结算",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM `cart_items` .*").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
				return mockDB
			},
			wantErr: ErrCartChanged,
		},
		{
			name: "写订单失败整体回滚",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM `cart_items` .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("UPDATE `physical_products` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("INSERT INTO `orders` .*").
					WillReturnError(errors.New("mock db error"))
				mock.ExpectRollback()
				return mockDB
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewOrderGORMDAO(newMockDB(t, tc.mock(t)))
			ids, err := d.Checkout(context.Background(), 7, []int64{3},
				[]Order{{SN: "PUR-1", UserId: 7, ProductId: 5, Quantity: 3,
					TotalPrice: decimal.RequireFromString("30.00"), Status: "completed", Kind: "purchase"}},
				[]Purchase{{CustomerEmail: "alice@x.com", CustomerName: "alice"}},
				[]StockDelta{{ProductId: 5, Delta: -3}})
			assert.Equal(t, tc.wantErr, err)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantIDs, ids)
		})
	}
}

func TestOrderGORMDAO_Decide(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(t *testing.T) *sql.DB
		decision Decision
		wantErr  error
	}{
		{
			name: "同意退货并回补库存",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE `orders` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("UPDATE `returns` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("UPDATE `physical_products` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
				return mockDB
			},
			decision: Decision{Id: 2, Kind: "return", Approved: true, Status: "approved", AdminId: 1,
				Deltas: []StockDelta{{ProductId: 5, Delta: 1}}},
		},
		{
			name: "拒绝换货不动库存",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE `orders` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("UPDATE `exchanges` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
				return mockDB
			},
			decision: Decision{Id: 3, Kind: "exchange", Status: "rejected", AdminId: 1, AdminNotes: "no"},
		},
		{
			name: "重复审批",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE `orders` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
				return mockDB
			},
			decision: Decision{Id: 2, Kind: "return", Approved: true, Status: "approved", AdminId: 1},
			wantErr:  ErrStatusConflict,
		},
		{
			name: "换货新商品售罄整体回滚",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE `orders` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("UPDATE `exchanges` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("UPDATE `physical_products` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("UPDATE `physical_products` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
				return mockDB
			},
			decision: Decision{Id: 3, Kind: "exchange", Approved: true, Status: "approved", AdminId: 1,
				Deltas: []StockDelta{{ProductId: 9, Delta: -1}, {ProductId: 5, Delta: 1}}},
			wantErr: ErrStockNotEnough,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewOrderGORMDAO(newMockDB(t, tc.mock(t)))
			err := d.Decide(context.Background(), tc.decision)
			assert.Equal(t, tc.wantErr, err)
		})
	}
}

func TestCartGORMDAO_DeleteByUID(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectExec("DELETE FROM `cart_items` WHERE .*").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM `cart_items` WHERE .*").
		WillReturnResult(sqlmock.NewResult(0, 0))

	d := NewCartGORMDAO(newMockDB(t, mockDB))
	n, err := d.DeleteByUID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	// 清空空购物车同样成功
	n, err = d.DeleteByUID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartGORMDAO_Incr(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	// 数量在库里累加，不写回读出来的旧值
	mock.ExpectExec("INSERT INTO `cart_items` .* ON DUPLICATE KEY UPDATE " +
		"`quantity`=`quantity` \\+ \\?,`total_price`=`quantity` \\* \\?,`status`=\\?,`utime`=\\?").
		WithArgs(int64(7), int64(5), int64(3), decimal.RequireFromString("29.97"), "in_cart",
			sqlmock.AnyArg(), sqlmock.AnyArg(),
			int64(3), decimal.RequireFromString("9.99"), "in_cart", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 2))

	d := NewCartGORMDAO(newMockDB(t, mockDB))
	err = d.Incr(context.Background(), CartItem{
		UserId:    7,
		ProductId: 5,
		Quantity:  3,
		Status:    cartStatusInCart,
	}, decimal.RequireFromString("9.99"))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
