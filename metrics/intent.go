package metrics

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/rs/zerolog/log"
	"github.com/sprintertech/sprinter-intents/types"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	ORDER_TTL = time.Minute * 10
)

type IntentMetrics struct {
	ordersCounter      metric.Int64Counter
	failedOrderCounter metric.Int64Counter

	orderTimeHistogram  metric.Float64Histogram
	orderStartTimeCache *ttlcache.Cache[string, time.Time]
}

// NewIntentMetrics initializes metrics of intent order attempts
func NewIntentMetrics(meter metric.Meter) (*IntentMetrics, error) {
	ordersCounter, err := meter.Int64Counter(
		"intents.Orders",
		metric.WithDescription("Number of intent order attempts"),
	)
	if err != nil {
		return nil, err
	}
	failedOrderCounter, err := meter.Int64Counter(
		"intents.FailedOrders",
		metric.WithDescription("Number of failed intent order attempts by error code"),
	)
	if err != nil {
		return nil, err
	}

	orderTimeHistogram, err := meter.Float64Histogram(
		"intents.OrderTime",
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &IntentMetrics{
		ordersCounter:      ordersCounter,
		failedOrderCounter: failedOrderCounter,
		orderTimeHistogram: orderTimeHistogram,
		orderStartTimeCache: ttlcache.New(
			ttlcache.WithTTL[string, time.Time](ORDER_TTL),
		),
	}, nil
}

func (m *IntentMetrics) StartOrder(attemptID string) {
	m.orderStartTimeCache.Set(attemptID, time.Now(), ttlcache.DefaultTTL)
}

// EndOrder records the outcome and duration of an order attempt started with StartOrder.
func (m *IntentMetrics) EndOrder(ctx context.Context, attemptID string, sourceChain string, err error) {
	attrs := []attribute.KeyValue{attribute.String("chain", sourceChain)}
	m.ordersCounter.Add(ctx, 1, metric.WithAttributes(attrs...))
	if err != nil {
		m.failedOrderCounter.Add(ctx, 1, metric.WithAttributes(
			append(attrs, attribute.String("code", string(types.ErrorCodeOf(err))))...))
	}

	startTime := m.orderStartTimeCache.Get(attemptID)
	if startTime == nil {
		log.Warn().Msgf("Order start time with ID %s not found", attemptID)
		return
	}
	m.orderStartTimeCache.Delete(attemptID)

	m.orderTimeHistogram.Record(ctx, time.Since(startTime.Value()).Seconds(), metric.WithAttributes(attrs...))
}
