package postgres

import (
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolWaitReport(t *testing.T) {
	prev := sql.DBStats{WaitCount: 10, WaitDuration: time.Second}

	t.Run("no new waits", func(t *testing.T) {
		_, attrs, ok := poolWaitReport(prev, prev)
		assert.False(t, ok)
		assert.Nil(t, attrs)
	})

	t.Run("short waits stay at debug", func(t *testing.T) {
		cur := sql.DBStats{WaitCount: 12, WaitDuration: time.Second + 10*time.Millisecond}

		level, attrs, ok := poolWaitReport(prev, cur)
		assert.True(t, ok)
		assert.Equal(t, slog.LevelDebug, level)
		assert.Equal(t, int64(2), attrs[0].Value.Int64())
		assert.Equal(t, 5*time.Millisecond, attrs[2].Value.Duration())
	})

	t.Run("long waits warn", func(t *testing.T) {
		cur := sql.DBStats{WaitCount: 11, WaitDuration: time.Second + dbPoolWarnDurationThreshold}

		level, _, ok := poolWaitReport(prev, cur)
		assert.True(t, ok)
		assert.Equal(t, slog.LevelWarn, level)
	})
}
