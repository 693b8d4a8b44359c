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

package sequencenumber

import (
	"fmt"
	"strings"
	"time"

	"github.com/lithammer/shortuuid/v4"
)

// snLength 序列号固定长度
const snLength = 32

type Generator struct {
	now  func() time.Time
	uuid func() string
}

func NewGenerator() *Generator {
	return NewGeneratorWith(time.Now, shortuuid.New)
}

// NewGeneratorWith 方便测试时固定时间和随机串
func NewGeneratorWith(now func() time.Time, uuid func() string) *Generator {
	return &Generator{now: now, uuid: uuid}
}

// Generate 生成 前缀-毫秒时间戳 + 用户ID后四位 + 随机串 形式的序列号，
// 例如 PUR-17284012345670042xJ3kD...
// 前缀取大写，总长度截断为 32 位。
func (g *Generator) Generate(prefix string, uid int64) string {
	if uid < 0 {
		uid = -uid
	}
	sn := fmt.Sprintf("%s-%d%04d%s",
		strings.ToUpper(prefix), g.now().UnixMilli(), uid%10000, g.uuid())
	if len(sn) > snLength {
		sn = sn[:snLength]
	}
	return sn
}
