package main

import (
	"bytes"
	"testing"

	"github.com/lintang-b-s/congestion-router/pkg/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestGenerateProducesParsableLedger(t *testing.T) {
	var buf bytes.Buffer
	err := generate(&buf, rand.New(rand.NewSource(7)), 10, 200, 9, 0.3)
	require.NoError(t, err)

	l, err := ledger.Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, 200, l.Len())
	assert.LessOrEqual(t, len(l.Locations()), 10)

	l.ForObservations(func(i int, o ledger.Observation) {
		assert.GreaterOrEqual(t, o.CongestionCount, 0)
		assert.LessOrEqual(t, o.CongestionCount, 9)
	})
}

func TestGenerateIsSeeded(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, generate(&a, rand.New(rand.NewSource(1)), 5, 50, 5, 0.5))
	require.NoError(t, generate(&b, rand.New(rand.NewSource(1)), 5, 50, 5, 0.5))
	assert.Equal(t, a.String(), b.String())
}
