// Package redis keeps short-lived shared state in Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"traffic-exchange/internal/core/port"
)

const reportKey = "traffic-exchange:fraud:report"

var _ port.ReportCache = (*ReportCache)(nil)

// ReportCache stores the latest fraud report as JSON with a TTL so every
// instance behind the load balancer serves the same report.
type ReportCache struct {
	client goredis.Cmdable
	ttl    time.Duration
}

func NewReportCache(client goredis.Cmdable, ttl time.Duration) *ReportCache {
	return &ReportCache{client: client, ttl: ttl}
}

// Get returns the cached report, or nil without error when none is cached.
func (c *ReportCache) Get(ctx context.Context) (*port.FraudReport, error) {
	raw, err := c.client.Get(ctx, reportKey).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get fraud report: %w", err)
	}
	var report port.FraudReport
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil, fmt.Errorf("decode fraud report: %w", err)
	}
	return &report, nil
}

func (c *ReportCache) Set(ctx context.Context, report *port.FraudReport) error {
	raw, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode fraud report: %w", err)
	}
	if err := c.client.Set(ctx, reportKey, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("set fraud report: %w", err)
	}
	return nil
}

func (c *ReportCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, reportKey).Err(); err != nil {
		return fmt.Errorf("invalidate fraud report: %w", err)
	}
	return nil
}
