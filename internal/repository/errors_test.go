package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/AlexZinkM/cardano-wallet/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogErrorHandler(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	handle := LogErrorHandler(zap.New(core))

	handle(&ResponseError{StatusCode: 404, Detail: model.ErrorResponse{Error: "no such wallet", Code: "no_such_wallet"}})
	handle(errors.New("dial tcp: connection refused"))
	handle(fmt.Errorf("request: %w", context.Canceled))

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)

	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "wallet backend rejected request", entries[0].Message)
	fields := entries[0].ContextMap()
	assert.EqualValues(t, 404, fields["status"])
	assert.Equal(t, "no_such_wallet", fields["code"])
	assert.Equal(t, "no such wallet", fields["reason"])

	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "dial tcp: connection refused", entries[1].ContextMap()["error"])

	assert.Equal(t, zapcore.DebugLevel, entries[2].Level)
}

func TestResponseError_PlainBody(t *testing.T) {
	err := newResponseError(502, []byte("bad gateway\n"))
	assert.EqualError(t, err, "502 status: bad gateway")
	assert.Empty(t, err.Detail.Code)
}
