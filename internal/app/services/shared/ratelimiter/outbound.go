package ratelimiter

import (
	"context"

	"agenda-care-service/internal/app/config"

	"golang.org/x/time/rate"
)

// OutboundLimiter throttles calls to the upstream FHIR API so bulk admin
// operations (deleteMany, getMany) cannot flood it.
type OutboundLimiter struct {
	limiter *rate.Limiter
}

func NewOutboundLimiter(internalConfig *config.InternalConfig) *OutboundLimiter {
	return &OutboundLimiter{
		limiter: rate.NewLimiter(
			rate.Limit(internalConfig.FHIR.MaxRequestsPerSecond),
			internalConfig.FHIR.MaxBurstRequests,
		),
	}
}

// Wait blocks until a slot is available or the context is done.
func (l *OutboundLimiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}
