// Package metrics exposes crawl cycle counters in the Prometheus format.
package metrics
