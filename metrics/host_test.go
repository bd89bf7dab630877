package metrics_test

import (
	"context"
	"testing"

	"github.com/sprintertech/sprinter-intents/config/chain"
	"github.com/sprintertech/sprinter-intents/metrics"
	"github.com/stretchr/testify/suite"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

type HostMetricsTestSuite struct {
	suite.Suite

	reader sdkmetric.Reader
	meter  metric.Meter
}

func TestRunHostMetricsTestSuite(t *testing.T) {
	suite.Run(t, new(HostMetricsTestSuite))
}

func (s *HostMetricsTestSuite) SetupTest() {
	s.reader = sdkmetric.NewManualReader()
	s.meter = sdkmetric.NewMeterProvider(sdkmetric.WithReader(s.reader)).Meter("test")
}

func (s *HostMetricsTestSuite) gauge(name string) metricdata.Gauge[int64] {
	rm := metricdata.ResourceMetrics{}
	s.Nil(s.reader.Collect(context.Background(), &rm))

	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name == name {
				g, ok := m.Data.(metricdata.Gauge[int64])
				s.True(ok)
				return g
			}
		}
	}
	s.Failf("metric not collected", "%s", name)
	return metricdata.Gauge[int64]{}
}

func (s *HostMetricsTestSuite) Test_SupportedChains() {
	_, err := metrics.NewHostMetrics(
		s.meter,
		chain.DefaultRegistry().Supported(),
		attribute.String("version", "v1"),
	)
	s.Nil(err)

	g := s.gauge("intents.SupportedChains")

	s.Len(g.DataPoints, 1)
	s.Equal(int64(2), g.DataPoints[0].Value)
	chains, ok := g.DataPoints[0].Attributes.Value("chains")
	s.True(ok)
	s.Equal("arb,sui", chains.AsString())
	version, ok := g.DataPoints[0].Attributes.Value("version")
	s.True(ok)
	s.Equal("v1", version.AsString())
}

func (s *HostMetricsTestSuite) Test_StartTime() {
	_, err := metrics.NewHostMetrics(s.meter, nil)
	s.Nil(err)

	g := s.gauge("intents.StartTimeSeconds")

	s.Len(g.DataPoints, 1)
	s.Greater(g.DataPoints[0].Value, int64(0))
}
