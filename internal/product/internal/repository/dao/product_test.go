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
		Conn: conn,
		// 如果为 false ，则GORM在初始化时，会先调用 show version
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db
}

func TestProductGORMDAO_CreatePhysical(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(t *testing.T) *sql.DB
		wantID  int64
		wantErr error
	}{
		{
			name: "创建成功",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `products` .*").
					WillReturnResult(sqlmock.NewResult(3, 1))
				mock.ExpectExec("INSERT INTO `physical_products` .*").
					WillReturnResult(sqlmock.NewResult(3, 1))
				mock.ExpectCommit()
				return mockDB
			},
			wantID: 3,
		},
		{
			name: "扩展表写入失败整体回滚",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO `products` .*").
					WillReturnResult(sqlmock.NewResult(4, 1))
				mock.ExpectExec("INSERT INTO `physical_products` .*").
					WillReturnError(errors.New("mock db error"))
				mock.ExpectRollback()
				return mockDB
			},
			wantID:  4,
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewProductGORMDAO(newMockDB(t, tc.mock(t)))
			id, err := d.CreatePhysical(context.Background(), Product{
				Name:  "Keyboard",
				Price: decimal.RequireFromString("49.90"),
				Kind:  "physical",
			}, PhysicalProduct{Weight: decimal.RequireFromString("0.8"), Stock: 10})
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantID, id)
		})
	}
}

func TestProductGORMDAO_Delete(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(t *testing.T) *sql.DB
		wantErr error
	}{
		{
			name: "删除成功",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM `products` .*").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("DELETE FROM `physical_products` .*").WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("DELETE FROM `digital_products` .*").WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
				return mockDB
			},
		},
		{
			name: "商品不存在",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("DELETE FROM `products` .*").WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
				return mockDB
			},
			wantErr: ErrRecordNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewProductGORMDAO(newMockDB(t, tc.mock(t)))
			err := d.Delete(context.Background(), 1)
			assert.Equal(t, tc.wantErr, err)
		})
	}
}

func TestProductGORMDAO_Search(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	rows := sqlmock.NewRows([]string{"id", "name", "description", "price", "kind", "ctime", "utime"}).
		AddRow(1, "iPhone Case", "", "12.50", "physical", 1, 1).
		AddRow(2, "Phone Charger", "", "20.00", "physical", 1, 1)
	mock.ExpectQuery("SELECT \\* FROM `products` WHERE LOWER\\(name\\) LIKE \\?").
		WillReturnRows(rows)

	d := NewProductGORMDAO(newMockDB(t, mockDB))
	res, err := d.Search(context.Background(), "PHONE", 0, 10)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "iPhone Case", res[0].Name)
	assert.True(t, decimal.RequireFromString("12.5").Equal(res[0].Price))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductGORMDAO_SearchEscape(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	// 通配符按字面量匹配
	mock.ExpectQuery("SELECT \\* FROM `products` WHERE LOWER\\(name\\) LIKE \\?").
		WithArgs(`%50\%\_off\\%`, 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "price", "kind", "ctime", "utime"}))

	d := NewProductGORMDAO(newMockDB(t, mockDB))
	res, err := d.Search(context.Background(), `50%_OFF\`, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, res)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductGORMDAO_UpdatePhysical(t *testing.T) {
	testCases := []struct {
		name     string
		setStock bool
		mock     func(t *testing.T) (*sql.DB, sqlmock.Sqlmock)
	}{
		{
			name: "不覆盖库存",
			mock: func(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE `products` SET `description`=\\?,`name`=\\?,`price`=\\?,`utime`=\\? WHERE id = \\?").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("UPDATE `physical_products` SET `utime`=\\?,`weight`=\\? WHERE id = \\?").
					WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), int64(3)).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
				return mockDB, mock
			},
		},
		{
			name:     "明确修改库存",
			setStock: true,
			mock: func(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE `products` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("UPDATE `physical_products` SET `stock`=\\?,`utime`=\\?,`weight`=\\? WHERE id = \\?").
					WithArgs(int64(25), sqlmock.AnyArg(), sqlmock.AnyArg(), int64(3)).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
				return mockDB, mock
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockDB, mock := tc.mock(t)
			d := NewProductGORMDAO(newMockDB(t, mockDB))
			err := d.UpdatePhysical(context.Background(), Product{
				Id:    3,
				Name:  "Gaming Laptop",
				Price: decimal.RequireFromString("999.00"),
			}, PhysicalProduct{Weight: decimal.RequireFromString("2.1"), Stock: 25}, tc.setStock)
			require.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
