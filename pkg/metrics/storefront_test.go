package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestStorefrontMetricsExportsCountersAndHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewStorefrontMetrics(reg)

	metrics.ObserveUpstream("products", "success", 120*time.Millisecond)
	metrics.IncCartOp("add_item")
	metrics.IncOrder("success")
	metrics.IncOrder("failure")

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got, err := fetchCounterValue(mfs, "bakery_api_requests_total", "endpoint", "products"); err != nil {
		t.Fatalf("fetch upstream counter: %v", err)
	} else if got != 1 {
		t.Fatalf("expected upstream requests=1, got %f", got)
	}

	if got, err := fetchCounterValue(mfs, "cart_operations_total", "operation", "add_item"); err != nil {
		t.Fatalf("fetch cart op counter: %v", err)
	} else if got != 1 {
		t.Fatalf("expected cart op=1, got %f", got)
	}

	if got, err := fetchCounterValue(mfs, "orders_submitted_total", "outcome", "failure"); err != nil {
		t.Fatalf("fetch order counter: %v", err)
	} else if got != 1 {
		t.Fatalf("expected failed orders=1, got %f", got)
	}

	if got, err := fetchHistogramSum(mfs, "bakery_api_request_duration_seconds", "endpoint", "products"); err != nil {
		t.Fatalf("fetch duration: %v", err)
	} else if got <= 0 {
		t.Fatalf("expected duration sum > 0, got %f", got)
	}
}

func TestStorefrontMetricsNilSafe(t *testing.T) {
	var metrics *StorefrontMetrics
	metrics.ObserveUpstream("products", "success", time.Millisecond)
	metrics.IncCartOp("add_item")
	metrics.IncOrder("success")

	unregistered := NewStorefrontMetrics(nil)
	unregistered.IncCartOp("clear")
}

func fetchCounterValue(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabel(metric.GetLabel(), label, value) {
			return metric.GetCounter().GetValue(), nil
		}
	}
	return 0, fmt.Errorf("metric %q missing label %s=%s", name, label, value)
}

func fetchHistogramSum(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabel(metric.GetLabel(), label, value) {
			return metric.GetHistogram().GetSampleSum(), nil
		}
	}
	return 0, fmt.Errorf("histogram %q missing label %s=%s", name, label, value)
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func matchesLabel(labels []*dto.LabelPair, name, value string) bool {
	for _, label := range labels {
		if label.GetName() == name && label.GetValue() == value {
			return true
		}
	}
	return false
}
