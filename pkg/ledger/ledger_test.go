package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCopiesObservations(t *testing.T) {
	rows := []Observation{
		{Location: "A", CongestionCount: 1, Time: "08:00", Row: 42},
		{Location: "B", CongestionCount: 3, Time: "08:05", Row: 42},
	}
	l := New(rows)

	assert.Equal(t, 0, l.At(0).Row)
	assert.Equal(t, 1, l.At(1).Row)
	assert.Equal(t, 42, rows[0].Row, "caller's slice is left untouched")
	assert.Equal(t, 42, rows[1].Row)

	rows[0].Location = "Z"
	assert.Equal(t, "A", l.At(0).Location)
	assert.Equal(t, []string{"A", "B"}, l.Locations())
}
