package util

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errDomain = errors.New("domain failure")

func TestWrapErrorf(t *testing.T) {
	err := WrapErrorf(errDomain, ErrNotFound, "location %q missing", "X")

	assert.Equal(t, `location "X" missing`, err.Error())
	assert.ErrorIs(t, err, errDomain)
	assert.Equal(t, ErrNotFound, ErrorCode(err))

	wrapped := fmt.Errorf("outer: %w", err)
	assert.Equal(t, ErrNotFound, ErrorCode(wrapped))
	assert.ErrorIs(t, wrapped, errDomain)
}

func TestErrorCodeDefaultsToInternal(t *testing.T) {
	assert.Equal(t, ErrInternalServerError, ErrorCode(errors.New("plain")))
	assert.Equal(t, ErrInternalServerError, ErrorCode(WrapErrorf(errDomain, nil, "no code")))
}

func TestParseClock(t *testing.T) {
	c, err := ParseClock("08:05")
	require.NoError(t, err)
	assert.Equal(t, 8, c.Hour())
	assert.Equal(t, 5, c.Minute())

	for _, bad := range []string{"", "8am", "24:00", "08:60", "08:05:00"} {
		_, err := ParseClock(bad)
		assert.Error(t, err, bad)
	}
}

func TestReverseG(t *testing.T) {
	in := []int{1, 2, 3}
	out := ReverseG(in)
	assert.Equal(t, []int{3, 2, 1}, out)
	assert.Equal(t, []int{1, 2, 3}, in)
}

func TestStopConcurrentOperation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	assert.False(t, StopConcurrentOperation(ctx))
	cancel()
	assert.True(t, StopConcurrentOperation(ctx))
}

func TestReadConfigWithoutFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	require.NoError(t, ReadConfig(t.TempDir()))
	assert.Equal(t, "csv", viper.GetString("LEDGER_SOURCE"))
	assert.Equal(t, 6060, viper.GetInt("API_PORT"))
	assert.Equal(t, 4, viper.GetInt("BATCH_WORKERS"))
}
