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
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const (
	instrumentationName = "github.com/ecodeclub/webshop/internal/pkg/database"
	spanKey             = "tracing:span"
)

var _ gorm.Plugin = &GormTracingPlugin{}

// GormTracingPlugin 为每一条 SQL 开一个 client span
type GormTracingPlugin struct {
	tracer trace.Tracer
}

func NewGormTracingPlugin() *GormTracingPlugin {
	return &GormTracingPlugin{
		tracer: otel.GetTracerProvider().Tracer(instrumentationName),
	}
}

func (p *GormTracingPlugin) Name() string {
	return "GormTracingPlugin"
}

func (p *GormTracingPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	return errors.Join(
		cb.Query().Before("gorm:query").Register("tracing:before_query", p.before("SELECT")),
		cb.Query().After("gorm:query").Register("tracing:after_query", p.after("SELECT")),
		cb.Create().Before("gorm:create").Register("tracing:before_create", p.before("INSERT")),
		cb.Create().After("gorm:create").Register("tracing:after_create", p.after("INSERT")),
		cb.Update().Before("gorm:update").Register("tracing:before_update", p.before("UPDATE")),
		cb.Update().After("gorm:update").Register("tracing:after_update", p.after("UPDATE")),
		cb.Delete().Before("gorm:delete").Register("tracing:before_delete", p.before("DELETE")),
		cb.Delete().After("gorm:delete").Register("tracing:after_delete", p.after("DELETE")),
		cb.Raw().Before("gorm:raw").Register("tracing:before_raw", p.before("RAW")),
		cb.Raw().After("gorm:raw").Register("tracing:after_raw", p.after("RAW")),
	)
}

func (p *GormTracingPlugin) before(op string) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		if db.Statement == nil || db.Statement.Context == nil {
			return
		}
		name := op
		if db.Statement.Table != "" {
			name = fmt.Sprintf("%s %s", db.Statement.Table, op)
		}
		ctx, span := p.tracer.Start(db.Statement.Context, name, trace.WithSpanKind(trace.SpanKindClient))
		db.Statement.Context = ctx
		db.Set(spanKey, span)
	}
}

func (p *GormTracingPlugin) after(op string) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		val, ok := db.Get(spanKey)
		if !ok {
			return
		}
		span, ok := val.(trace.Span)
		if !ok {
			return
		}
		defer span.End()
		attrs := []attribute.KeyValue{
			attribute.String("db.system", db.Dialector.Name()),
			attribute.String("db.operation", op),
			attribute.String("db.statement", db.Statement.SQL.String()),
			attribute.Int64("db.rows_affected", db.Statement.RowsAffected),
		}
		if db.Statement.Table != "" {
			attrs = append(attrs, attribute.String("db.table", db.Statement.Table))
		}
		span.SetAttributes(attrs...)
		// 没找到数据是业务上的正常分支
		if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
			span.SetStatus(codes.Error, db.Error.Error())
			return
		}
		span.SetStatus(codes.Ok, "")
	}
}
