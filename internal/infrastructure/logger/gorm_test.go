package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func newObservedGormLogger(level gormlogger.LogLevel, opts ...GormLoggerOption) (*GormLogger, *observer.ObservedLogs) {
	core, observed := observer.New(zapcore.DebugLevel)
	return NewGormLogger(zap.New(core), level, opts...), observed
}

func TestGormLoggerTrace(t *testing.T) {
	ctx := context.Background()
	fc := func() (string, int64) { return "SELECT 1", 1 }

	t.Run("logs query at info level", func(t *testing.T) {
		gl, observed := newObservedGormLogger(gormlogger.Info)
		gl.Trace(ctx, time.Now(), fc, nil)
		entries := observed.All()
		require.Len(t, entries, 1)
		assert.Equal(t, "SQL Query", entries[0].Message)
	})

	t.Run("silent logs nothing", func(t *testing.T) {
		gl, observed := newObservedGormLogger(gormlogger.Silent)
		gl.Trace(ctx, time.Now(), fc, errors.New("boom"))
		assert.Empty(t, observed.All())
	})

	t.Run("record not found is ignored", func(t *testing.T) {
		gl, observed := newObservedGormLogger(gormlogger.Error)
		gl.Trace(ctx, time.Now(), fc, gormlogger.ErrRecordNotFound)
		assert.Empty(t, observed.All())
	})

	t.Run("slow query warns", func(t *testing.T) {
		gl, observed := newObservedGormLogger(gormlogger.Warn, WithSlowThreshold(time.Nanosecond))
		gl.Trace(ctx, time.Now().Add(-time.Second), fc, nil)
		entries := observed.All()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	})

	t.Run("error logs with error field", func(t *testing.T) {
		gl, observed := newObservedGormLogger(gormlogger.Error)
		gl.Trace(ctx, time.Now(), fc, errors.New("constraint violation"))
		entries := observed.All()
		require.Len(t, entries, 1)
		assert.Equal(t, "SQL Error", entries[0].Message)
	})
}

func TestMapGormLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, MapGormLogLevel("silent"))
	assert.Equal(t, gormlogger.Info, MapGormLogLevel("debug"))
	assert.Equal(t, gormlogger.Warn, MapGormLogLevel("unset"))
}
