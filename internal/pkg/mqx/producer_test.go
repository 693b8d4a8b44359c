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

package mqx

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderCreated struct {
	SN  string `json:"sn"`
	Uid int64  `json:"uid"`
}

func TestJSONProducer_Produce(t *testing.T) {
	const topic = "order_events_test"
	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(context.Background(), topic, 1))
	consumer, err := q.Consumer(topic, "test")
	require.NoError(t, err)

	p, err := NewJSONProducer[orderCreated](NewTracedMQ(q), topic,
		WithKey(func(evt orderCreated) string { return evt.SN }))
	require.NoError(t, err)

	want := orderCreated{SN: "PUR-001", Uid: 123}
	require.NoError(t, p.Produce(context.Background(), want))

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	msg, err := consumer.Consume(ctx)
	require.NoError(t, err)
	assert.Equal(t, "PUR-001", string(msg.Key))
	var got orderCreated
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, want, got)
}
