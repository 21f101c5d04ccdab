package usecase

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"news-service/app/utils/logger"
)

func newTestLogger(t *testing.T) *slog.Logger {
	t.Helper()
	l, err := logger.New("debug")
	require.NoError(t, err)
	return l
}
