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

package database

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestGormTracingPlugin(t *testing.T) {
	testCases := []struct {
		name       string
		mock       func(mock sqlmock.Sqlmock)
		wantErr    bool
		wantName   string
		wantStatus codes.Code
	}{
		{
			name: "查询成功",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM `products`").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
			},
			wantName:   "products SELECT",
			wantStatus: codes.Ok,
		},
		{
			name: "查询失败",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM `products`").
					WillReturnError(errors.New("mock db error"))
			},
			wantErr:    true,
			wantName:   "products SELECT",
			wantStatus: codes.Error,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockDB, mock, err := sqlmock.New()
			require.NoError(t, err)
			tc.mock(mock)
			db, err := gorm.Open(gormMysql.New(gormMysql.Config{
				Conn:                      mockDB,
				SkipInitializeWithVersion: true,
			}), &gorm.Config{
				DisableAutomaticPing:   true,
				SkipDefaultTransaction: true,
			})
			require.NoError(t, err)

			recorder := tracetest.NewSpanRecorder()
			tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
			require.NoError(t, db.Use(&GormTracingPlugin{tracer: tp.Tracer("test")}))

			var res []struct{ Id int64 }
			err = db.WithContext(context.Background()).Table("products").Find(&res).Error
			assert.Equal(t, tc.wantErr, err != nil)

			spans := recorder.Ended()
			require.Len(t, spans, 1)
			assert.Equal(t, tc.wantName, spans[0].Name())
			assert.Equal(t, tc.wantStatus, spans[0].Status().Code)
		})
	}
}
