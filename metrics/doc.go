// Package metrics provides observability hooks for document rendering.
//
// It follows the Null Object pattern: the render package defaults to
// NoopRecorder, whose methods compile to nothing, so metrics collection
// never requires nil checks in rendering code. To collect metrics, inject a
// real implementation:
//
//	reg := prometheus.NewRegistry()
//	r := render.New().WithRecorder(metrics.NewPrometheusRecorder(reg))
//
// This keeps zero overhead when metrics are disabled, lets callers swap
// implementations without touching rendering code, and makes tests trivial
// (inject a capturing recorder and assert on it).
package metrics
