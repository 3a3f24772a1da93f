// Package metrics defines the Prometheus collectors exported by the
// activities API. Collectors are registered through promauto at package
// initialization and exposed via the /metrics endpoint wired in cmd/server.
package metrics
