// Package metrics records resolution and generation metrics.
//
// Components receive a Recorder and default to NoopRecorder, so metrics
// collection never needs nil checks:
//
//	gen := generator.New(cfg, generator.WithRecorder(metrics.NewPrometheusRecorder(reg)))
//
// One-shot CLI runs have no scrape endpoint; WriteTextfile dumps a registry in
// the node-exporter textfile format instead.
package metrics
