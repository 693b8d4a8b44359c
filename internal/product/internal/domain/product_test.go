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
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProduct_Apply(t *testing.T) {
	name := "new name"
	price := decimal.RequireFromString("19.99")
	weight := decimal.RequireFromString("2.5")
	stock := int64(20)
	link := "https://cdn.example.com/new.zip"
	fileSize := decimal.RequireFromString("128")

	testCases := []struct {
		name   string
		before Product
		update Update
		after  Product
	}{
		{
			name: "实体商品只更新实体字段",
			before: Product{
				ID: 1, Name: "old", Price: decimal.RequireFromString("9.99"), Kind: KindPhysical,
				Physical: Physical{Weight: decimal.RequireFromString("1"), Stock: 10},
			},
			update: Update{Name: &name, Price: &price, Weight: &weight, Stock: &stock, DownloadLink: &link, FileSize: &fileSize},
			after: Product{
				ID: 1, Name: name, Price: price, Kind: KindPhysical,
				Physical: Physical{Weight: weight, Stock: stock},
			},
		},
		{
			name: "数字商品忽略库存和重量",
			before: Product{
				ID: 2, Name: "ebook", Price: decimal.RequireFromString("5"), Kind: KindDigital,
				Digital: Digital{FileSize: decimal.RequireFromString("12"), DownloadLink: "https://cdn.example.com/old.zip"},
			},
			update: Update{Stock: &stock, Weight: &weight, DownloadLink: &link},
			after: Product{
				ID: 2, Name: "ebook", Price: decimal.RequireFromString("5"), Kind: KindDigital,
				Digital: Digital{FileSize: decimal.RequireFromString("12"), DownloadLink: link},
			},
		},
		{
			name:   "空更新",
			before: Product{ID: 3, Name: "keep", Kind: KindPhysical, Physical: Physical{Stock: 1}},
			update: Update{},
			after:  Product{ID: 3, Name: "keep", Kind: KindPhysical, Physical: Physical{Stock: 1}},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.after, tc.before.Apply(tc.update))
		})
	}
}

func TestProduct_Details(t *testing.T) {
	physical := Product{Kind: KindPhysical, Physical: Physical{Weight: decimal.RequireFromString("1.5"), Stock: 3}}
	assert.Equal(t, map[string]any{
		"weight": decimal.RequireFromString("1.5"),
		"stock":  int64(3),
	}, physical.Details())

	digital := Product{Kind: KindDigital, Digital: Digital{FileSize: decimal.RequireFromString("700"), DownloadLink: "https://x"}}
	assert.Equal(t, map[string]any{
		"file_size":     decimal.RequireFromString("700"),
		"download_link": "https://x",
	}, digital.Details())

	assert.Empty(t, Product{Kind: "unknown"}.Details())
}

func TestProduct_CheckStock(t *testing.T) {
	testCases := []struct {
		name     string
		product  Product
		quantity int64
		wantErr  error
	}{
		{name: "库存充足", product: Product{Kind: KindPhysical, Physical: Physical{Stock: 5}}, quantity: 5},
		{name: "售罄", product: Product{Kind: KindPhysical, Physical: Physical{Stock: 0}}, quantity: 1, wantErr: ErrOutOfStock},
		{name: "库存不足", product: Product{Kind: KindPhysical, Physical: Physical{Stock: 2}}, quantity: 3, wantErr: ErrInsufficientStock},
		{name: "数字商品", product: Product{Kind: KindDigital}, quantity: 1000},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.product.CheckStock(tc.quantity), tc.wantErr)
		})
	}
}
