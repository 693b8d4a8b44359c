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

package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

type MetricsBuilder struct {
	duration *prometheus.SummaryVec
	total    *prometheus.CounterVec
}

// NewMetricsBuilder server 区分 web 和 admin 两个 HTTP 服务，
// 指标需要注册到 reg 上，测试时可以传入独立的 Registry
func NewMetricsBuilder(reg prometheus.Registerer, server string) *MetricsBuilder {
	labels := prometheus.Labels{"server": server}
	duration := prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Namespace:   "webshop",
		Name:        "http_request_duration_seconds",
		Help:        "HTTP request duration in seconds",
		ConstLabels: labels,
		Objectives: map[float64]float64{
			0.5:  0.05,
			0.9:  0.01,
			0.99: 0.001,
		},
	}, []string{"method", "path", "status_code"})
	total := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   "webshop",
		Name:        "http_requests_total",
		Help:        "Total number of HTTP requests",
		ConstLabels: labels,
	}, []string{"method", "path", "status_code"})
	reg.MustRegister(duration, total)
	return &MetricsBuilder{duration: duration, total: total}
}

func (b *MetricsBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		path := ctx.FullPath()
		if path == "" {
			// 没匹配上路由的请求统一归到一起，避免标签爆炸
			path = "unknown"
		}
		status := strconv.Itoa(ctx.Writer.Status())
		b.duration.WithLabelValues(ctx.Request.Method, path, status).Observe(time.Since(start).Seconds())
		b.total.WithLabelValues(ctx.Request.Method, path, status).Inc()
	}
}
