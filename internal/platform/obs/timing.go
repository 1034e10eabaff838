package obs

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// RequestID extracts the request ID injected by the API middleware.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// Time measures the duration of an operation and logs it on return,
// including the error when the pointed-to error is non-nil.
//
//	defer obs.Time(ctx, "ors.geocode")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()
	reqID := RequestID(ctx)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			zap.L().Warn("operation failed",
				zap.String("req_id", reqID),
				zap.String("op", name),
				zap.Int64("dur_ms", dur.Milliseconds()),
				zap.Error(*errp),
			)
			return
		}
		zap.L().Debug("operation complete",
			zap.String("req_id", reqID),
			zap.String("op", name),
			zap.Int64("dur_ms", dur.Milliseconds()),
		)
	}
}
