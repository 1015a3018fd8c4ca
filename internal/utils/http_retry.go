package utils

import (
	"context"
	"fmt"
	"log"
	"time"
)

// DoWithRetry runs fn until it succeeds, ctx ends or maxRetries is reached.
func DoWithRetry(ctx context.Context, maxRetries int, interval time.Duration, fn func() error) error {
	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}

		log.Printf("[RETRY] attempt %d/%d failed: %v", attempt, maxRetries, err)

		if attempt == maxRetries {
			break
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("retry aborted: %w", ctx.Err())
		case <-time.After(interval):
		}
	}
	return err
}
