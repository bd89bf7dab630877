package metrics

import (
	"context"
	"strings"
	"time"

	"github.com/sprintertech/sprinter-intents/config/chain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type HostMetrics struct {
	startTimeGauge       metric.Int64ObservableGauge
	supportedChainsGauge metric.Int64ObservableGauge
}

// NewHostMetrics initializes metrics of the running gateway process and the chains it serves
func NewHostMetrics(meter metric.Meter, supported []chain.Chain, attrs ...attribute.KeyValue) (*HostMetrics, error) {
	startTime := time.Now().Unix()
	opts := metric.WithAttributes(attrs...)
	startTimeGauge, err := meter.Int64ObservableGauge(
		"intents.StartTimeSeconds",
		metric.WithDescription("Start time of the intents gateway"),
		metric.WithInt64Callback(func(ctx context.Context, result metric.Int64Observer) error {
			result.Observe(startTime, opts)
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(supported))
	for i, c := range supported {
		names[i] = string(c)
	}
	chainsOpts := metric.WithAttributes(append(attrs[:len(attrs):len(attrs)], attribute.String("chains", strings.Join(names, ",")))...)
	supportedChainsGauge, err := meter.Int64ObservableGauge(
		"intents.SupportedChains",
		metric.WithDescription("Number of chains orders can be created on"),
		metric.WithInt64Callback(func(ctx context.Context, result metric.Int64Observer) error {
			result.Observe(int64(len(supported)), chainsOpts)
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}

	return &HostMetrics{
		startTimeGauge:       startTimeGauge,
		supportedChainsGauge: supportedChainsGauge,
	}, nil
}
