// Package metric holds the prometheus registry and the metrics recorded by
// the configuration server and the gateway, plus the /metrics HTTP handler.
package metric
