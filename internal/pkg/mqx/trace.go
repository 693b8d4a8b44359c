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

	"github.com/ecodeclub/mq-api"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/ecodeclub/webshop/internal/pkg/mqx"

// TracedMQ 只给生产者打点，消费者原样返回
type TracedMQ struct {
	mq.MQ
	tracer trace.Tracer
}

func NewTracedMQ(q mq.MQ) *TracedMQ {
	return &TracedMQ{MQ: q, tracer: otel.GetTracerProvider().Tracer(instrumentationName)}
}

func (t *TracedMQ) Producer(topic string) (mq.Producer, error) {
	p, err := t.MQ.Producer(topic)
	if err != nil {
		return nil, err
	}
	return &tracedProducer{Producer: p, topic: topic, tracer: t.tracer}, nil
}

type tracedProducer struct {
	mq.Producer
	topic  string
	tracer trace.Tracer
}

func (p *tracedProducer) Produce(ctx context.Context, m *mq.Message) (*mq.ProducerResult, error) {
	ctx, span := p.start(ctx, "mq.produce", m)
	defer span.End()
	res, err := p.Producer.Produce(ctx, m)
	p.finish(span, err)
	return res, err
}

func (p *tracedProducer) ProduceWithPartition(ctx context.Context, m *mq.Message, partition int) (*mq.ProducerResult, error) {
	ctx, span := p.start(ctx, "mq.produce_with_partition", m)
	defer span.End()
	span.SetAttributes(attribute.Int("messaging.partition", partition))
	res, err := p.Producer.ProduceWithPartition(ctx, m, partition)
	p.finish(span, err)
	return res, err
}

func (p *tracedProducer) start(ctx context.Context, name string, m *mq.Message) (context.Context, trace.Span) {
	ctx, span := p.tracer.Start(ctx, name, trace.WithSpanKind(trace.SpanKindProducer))
	span.SetAttributes(
		attribute.String("messaging.operation", "produce"),
		attribute.String("messaging.destination", p.topic),
	)
	if m != nil {
		span.SetAttributes(attribute.Int("messaging.message_length", len(m.Value)))
	}
	return ctx, span
}

func (p *tracedProducer) finish(span trace.Span, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}
