package congestion

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		name  string
		count int
		want  Band
	}{
		{name: "empty road", count: 0, want: LOOSE},
		{name: "one vehicle", count: 1, want: LOOSE},
		{name: "lower moderate boundary", count: 2, want: MODERATE},
		{name: "upper moderate", count: 4, want: MODERATE},
		{name: "congested boundary", count: 5, want: CONGESTED},
		{name: "heavy", count: 1000, want: CONGESTED},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.count))
		})
	}
}

func TestBandOrdering(t *testing.T) {
	assert.Less(t, LOOSE, MODERATE)
	assert.Less(t, MODERATE, CONGESTED)
}

func TestBandText(t *testing.T) {
	b, err := json.Marshal(struct {
		Band Band `json:"band"`
	}{Band: MODERATE})
	require.NoError(t, err)
	assert.JSONEq(t, `{"band":"Moderate"}`, string(b))

	var out struct {
		Band Band `json:"band"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"band":"Congested"}`), &out))
	assert.Equal(t, CONGESTED, out.Band)

	_, err = ParseBand("Jammed")
	assert.Error(t, err)
	assert.Equal(t, "Band(7)", Band(7).String())
}
