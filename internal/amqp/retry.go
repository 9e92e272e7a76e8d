package amqp

import (
	"context"
	"strings"
	"time"
)

// exponentialBackoff returns the wait before reconnect attempt n, doubling
// from one second and capped at 30 seconds.
func exponentialBackoff(attempt int) time.Duration {
	if attempt < 0 || attempt > 5 {
		return 30 * time.Second
	}
	d := time.Second << uint(attempt)
	if d > 30*time.Second {
		return 30 * time.Second
	}
	return d
}

// isConnectionError reports whether err looks like a broken broker
// connection worth a reconnect rather than a permanent failure.
func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{"connection refused", "connection closed", "connection reset", "eof", "broken pipe"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// ConsumeWithReconnect re-dials and resumes consuming after transient
// connection failures, backing off exponentially between attempts. A
// cancelled context is a clean stop, not an error. prefetch caps in-flight
// deliveries per connection; zero leaves the broker default.
func ConsumeWithReconnect(ctx context.Context, url, exchange, queue string, prefetch int, handler func(*TransactionSyncMessage) error) error {
	attempt := 0
	for {
		if ctx.Err() != nil {
			return nil
		}

		client, err := NewClient(url, exchange, queue)
		if err != nil {
			if !isConnectionError(err) {
				return err
			}
			wait := exponentialBackoff(attempt)
			attempt++
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(wait):
			}
			continue
		}

		attempt = 0
		client.SetPrefetch(prefetch)
		err = client.ConsumeTransactionSync(ctx, handler)
		client.Close()

		if ctx.Err() != nil {
			return nil
		}
		if !isConnectionError(err) {
			return err
		}
	}
}
