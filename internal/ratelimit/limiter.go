package ratelimit

import "context"

// RateLimiter throttles outbound calls per collaborator service, so a large
// dissolution batch cannot flood the account-service contact API.
type RateLimiter interface {
	Allow(ctx context.Context, service string) (bool, error)
	Wait(ctx context.Context, service string) error
}
