package logger_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userdir/pkg/logger"
)

func TestNewLogger(t *testing.T) {
	t.Run("success for development environment", func(t *testing.T) {
		log, err := logger.NewLogger(logger.Development, "debug")
		require.NoError(t, err)
		assert.NotNil(t, log)
	})

	t.Run("success for production environment", func(t *testing.T) {
		log, err := logger.NewLogger(logger.Production, "info")
		require.NoError(t, err)
		assert.NotNil(t, log)
	})

	t.Run("success with empty level", func(t *testing.T) {
		log, err := logger.NewLogger(logger.Development, "")
		require.NoError(t, err)
		assert.NotNil(t, log)
	})

	t.Run("error on unknown level", func(t *testing.T) {
		log, err := logger.NewLogger(logger.Development, "loud")
		require.Error(t, err)
		assert.Nil(t, log)
	})
}

func TestFromContext(t *testing.T) {
	t.Run("success when logger exists in context", func(t *testing.T) {
		testLogger, err := logger.NewLogger(logger.Development, "debug")
		require.NoError(t, err)

		ctx := logger.NewContext(context.Background(), testLogger)

		retrievedLogger, err := logger.FromContext(ctx)
		require.NoError(t, err)
		assert.Same(t, testLogger, retrievedLogger)
	})

	t.Run("error when no logger in context", func(t *testing.T) {
		retrievedLogger, err := logger.FromContext(context.Background())
		require.Error(t, err)
		assert.Nil(t, retrievedLogger)
		assert.ErrorIs(t, err, logger.ErrLoggerNotFound)
	})
}

func TestLog(t *testing.T) {
	logger.SetGlobalLogger(nil)
	defer logger.SetGlobalLogger(nil)

	t.Run("returns logger from context when available", func(t *testing.T) {
		contextLogger, err := logger.NewLogger(logger.Development, "debug")
		require.NoError(t, err)

		globalLogger, err := logger.NewLogger(logger.Production, "error")
		require.NoError(t, err)
		logger.SetGlobalLogger(globalLogger)

		ctx := logger.NewContext(context.Background(), contextLogger)

		result := logger.Log(ctx)
		assert.Same(t, contextLogger, result)
	})

	t.Run("returns global logger when no logger in context", func(t *testing.T) {
		globalLogger, err := logger.NewLogger(logger.Development, "info")
		require.NoError(t, err)
		logger.SetGlobalLogger(globalLogger)

		result := logger.Log(context.Background())
		assert.Same(t, globalLogger, result)
	})

	t.Run("returns fallback logger when nothing is configured", func(t *testing.T) {
		logger.SetGlobalLogger(nil)

		result1 := logger.Log(context.Background())
		result2 := logger.Log(context.Background())
		assert.NotNil(t, result1)
		assert.Same(t, result1, result2, "fallback logger should be a singleton")
	})
}

func TestInitGlobalLogger(t *testing.T) {
	logger.SetGlobalLogger(nil)
	defer logger.SetGlobalLogger(nil)

	t.Run("successfully initializes global logger", func(t *testing.T) {
		logger.SetGlobalLogger(nil)

		err := logger.InitGlobalLogger(logger.Development, "debug")
		require.NoError(t, err)
		assert.NotNil(t, logger.Log(context.Background()))
	})

	t.Run("keeps existing global logger", func(t *testing.T) {
		logger.SetGlobalLogger(nil)

		require.NoError(t, logger.InitGlobalLogger(logger.Production, "info"))
		firstLogger := logger.Log(context.Background())

		require.NoError(t, logger.InitGlobalLogger(logger.Development, "debug"))
		secondLogger := logger.Log(context.Background())

		assert.Same(t, firstLogger, secondLogger)
	})

	t.Run("returns wrapped error on bad level", func(t *testing.T) {
		logger.SetGlobalLogger(nil)

		err := logger.InitGlobalLogger(logger.Development, "loud")
		require.Error(t, err)
		assert.ErrorIs(t, err, logger.ErrInitGlobalLogger)
	})
}

func TestRequestID(t *testing.T) {
	t.Run("generated request id is a valid uuid", func(t *testing.T) {
		id := logger.GenerateRequestID()
		_, err := uuid.Parse(id)
		require.NoError(t, err)
	})

	t.Run("context keeps supplied request id", func(t *testing.T) {
		ctx := logger.NewRequestIDContext(context.Background(), "req-1")

		id, ok := logger.GetRequestID(ctx)
		require.True(t, ok)
		assert.Equal(t, "req-1", id)
	})

	t.Run("empty request id is replaced with a generated one", func(t *testing.T) {
		ctx := logger.NewRequestIDContext(context.Background(), "")

		id, ok := logger.GetRequestID(ctx)
		require.True(t, ok)
		assert.NotEmpty(t, id)
	})

	t.Run("no request id in plain context", func(t *testing.T) {
		_, ok := logger.GetRequestID(context.Background())
		assert.False(t, ok)
	})
}
