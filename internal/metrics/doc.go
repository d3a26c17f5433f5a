// Package metrics records the outcome of a comparison run in a private
// Prometheus registry and writes it as a node_exporter textfile.
package metrics
