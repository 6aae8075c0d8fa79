package metrics

import "time"

//go:generate mockery --name MetricsProvider --dir . --output ../../mocks/metrics --outpkg mocks --filename MetricsProvider.go
type MetricsProvider interface {
	IncrementHTTPRequests(method, route, status string)
	RecordHTTPRequestDuration(method, route string, duration time.Duration)

	IncrementDatabaseQueries(queryType string, success bool)
	RecordDatabaseQueryDuration(queryType string, duration time.Duration)

	IncrementUserOperations(operation string, success bool)
	IncrementPostOperations(operation string, success bool)

	SetServiceHealth(healthy bool)
}
