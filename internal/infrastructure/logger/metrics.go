package logger

import (
	"context"
	"sync"
	"time"
)

type opStats struct {
	total     int64
	failed    int64
	latencyNs int64
}

type metrics struct {
	mu  sync.Mutex
	ops map[string]*opStats
}

var globalMetrics = &metrics{ops: make(map[string]*opStats)}

type OperationStats struct {
	Total        int64
	Failed       int64
	AvgLatencyMs float64
}

func RecordOperation(operation string, err error, duration time.Duration) {
	globalMetrics.mu.Lock()
	defer globalMetrics.mu.Unlock()

	s, ok := globalMetrics.ops[operation]
	if !ok {
		s = &opStats{}
		globalMetrics.ops[operation] = s
	}
	s.total++
	s.latencyNs += duration.Nanoseconds()
	if err != nil {
		s.failed++
	}
}

func GetMetrics() map[string]OperationStats {
	globalMetrics.mu.Lock()
	defer globalMetrics.mu.Unlock()

	result := make(map[string]OperationStats, len(globalMetrics.ops))
	for op, s := range globalMetrics.ops {
		stats := OperationStats{Total: s.total, Failed: s.failed}
		if s.total > 0 {
			stats.AvgLatencyMs = float64(s.latencyNs) / float64(s.total) / 1e6
		}
		result[op] = stats
	}
	return result
}

func ResetMetrics() {
	globalMetrics.mu.Lock()
	defer globalMetrics.mu.Unlock()
	globalMetrics.ops = make(map[string]*opStats)
}

// TimedOperation runs fn, records its latency and outcome, and logs both.
func TimedOperation(ctx context.Context, operation string, fn func() error) error {
	start := time.Now()
	log := FromContext(ctx).With("operation", operation)
	log.Debug("starting operation")

	err := fn()
	duration := time.Since(start)

	RecordOperation(operation, err, duration)

	if err != nil {
		log.Error("operation failed", "error", err, "duration", duration)
	} else {
		log.Debug("operation completed", "duration", duration)
	}

	return err
}
