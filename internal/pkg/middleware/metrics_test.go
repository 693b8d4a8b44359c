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
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsBuilder_Build(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	builder := NewMetricsBuilder(reg, "web")
	server := gin.New()
	server.Use(builder.Build())
	server.GET("/product/:id", func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	for _, path := range []string{"/product/1", "/product/2", "/missing"} {
		recorder := httptest.NewRecorder()
		server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, float64(2), testutil.ToFloat64(builder.total.WithLabelValues(http.MethodGet, "/product/:id", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(builder.total.WithLabelValues(http.MethodGet, "unknown", "404")))
}
