package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// LogErrorHandler returns an ErrorHandler that reports failed requests to logger
func LogErrorHandler(logger *zap.Logger) ErrorHandler {
	return func(err error) {
		if errors.Is(err, context.Canceled) {
			logger.Debug("wallet request canceled")
			return
		}

		var respErr *ResponseError
		if errors.As(err, &respErr) {
			fields := []zap.Field{zap.Int("status", respErr.StatusCode)}
			if respErr.Detail.Code != "" {
				fields = append(fields, zap.String("code", respErr.Detail.Code))
			}
			if text := respErr.Detail.Text(); text != "" {
				fields = append(fields, zap.String("reason", text))
			}
			logger.Warn("wallet backend rejected request", fields...)
			return
		}

		logger.Error("wallet request failed", zap.Error(err))
	}
}
