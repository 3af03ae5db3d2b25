package obs

import (
	"time"

	"go.uber.org/zap"
)

// Time logs how long an operation took once the returned func is called.
// Use it with a named error return: defer obs.Time(logger, "op")(&err).
func Time(logger *zap.Logger, name string) func(errp *error) {
	start := time.Now()

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			logger.Debug("op finished",
				zap.String("op", name),
				zap.Int64("dur_ms", dur.Milliseconds()),
				zap.Error(*errp),
			)
			return
		}
		logger.Debug("op finished", zap.String("op", name), zap.Int64("dur_ms", dur.Milliseconds()))
	}
}
