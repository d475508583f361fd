package ledger

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dsnet/compress/bzip2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const sampleLedger = "Location,Congestion_Level,Time\nA,1,08:00\nB,3,08:05\nC,6,08:10\n"

func TestCSVSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "traffic.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleLedger), 0o644))

	l, err := Load(context.Background(), NewCSVSource(path), zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, []string{"A", "B", "C"}, l.Locations())
}

func TestCSVSourceBzip2(t *testing.T) {
	path := filepath.Join(t.TempDir(), "traffic.csv.bz2")
	f, err := os.Create(path)
	require.NoError(t, err)
	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	require.NoError(t, err)
	_, err = bz.Write([]byte(sampleLedger))
	require.NoError(t, err)
	require.NoError(t, bz.Close())
	require.NoError(t, f.Close())

	l, err := NewCSVSource(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, 6, l.At(2).CongestionCount)
}

func TestCSVSourceMissingFile(t *testing.T) {
	_, err := Load(context.Background(), NewCSVSource(filepath.Join(t.TempDir(), "nope.csv")), zap.NewNop())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDataLoad))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestCSVSourceCanceled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "traffic.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleLedger), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewCSVSource(path).Load(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestNewSource(t *testing.T) {
	src, err := NewSource("CSV", "./data/x.csv", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, "csv:./data/x.csv", src.String())

	src, err = NewSource("postgres", "", "postgres://localhost/traffic", "public.traffic_observations", "")
	require.NoError(t, err)
	pg, ok := src.(*PostgresSource)
	require.True(t, ok)
	assert.Equal(t, "id", pg.OrderColumn)
	assert.Equal(t,
		`SELECT location, congestion_level::text, time::text FROM "public"."traffic_observations" ORDER BY "id" ASC`,
		pg.query())

	_, err = NewSource("s3", "", "", "", "")
	assert.True(t, errors.Is(err, ErrDataLoad))
}

func TestTrimSeconds(t *testing.T) {
	assert.Equal(t, "08:05", trimSeconds("08:05:00"))
	assert.Equal(t, "08:05", trimSeconds(" 08:05 "))
	assert.Equal(t, "8am", trimSeconds("8am"))
}
