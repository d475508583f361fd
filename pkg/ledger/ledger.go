// Package ledger loads the traffic ledger: the ordered, immutable sequence of congestion observations that
// the route graph is derived from.
package ledger

import (
	"time"
)

// Observation is one ledger row.
type Observation struct {
	Location        string
	CongestionCount int
	Time            string    // HH:MM as read from the source
	Clock           time.Time // parsed Time, display only
	Row             int       // 0-based ingestion position
}

// Ledger keeps observations in ingestion order. it is never mutated after New returns.
type Ledger struct {
	observations []Observation
	firstIndex   map[string]int // location -> position of its first observation
	locations    []string       // distinct locations, first appearance order
}

func New(observations []Observation) *Ledger {
	l := &Ledger{
		observations: append([]Observation(nil), observations...),
		firstIndex:   make(map[string]int, len(observations)),
		locations:    make([]string, 0),
	}
	for i := range l.observations {
		l.observations[i].Row = i
		loc := l.observations[i].Location
		if _, ok := l.firstIndex[loc]; ok {
			continue
		}
		l.firstIndex[loc] = i
		l.locations = append(l.locations, loc)
	}
	return l
}

func (l *Ledger) Len() int {
	return len(l.observations)
}

func (l *Ledger) At(i int) Observation {
	return l.observations[i]
}

// ForObservations iterates observations in ledger order.
func (l *Ledger) ForObservations(handle func(i int, o Observation)) {
	for i, o := range l.observations {
		handle(i, o)
	}
}

// FirstObservation returns the earliest observation recorded for location.
func (l *Ledger) FirstObservation(location string) (Observation, bool) {
	i, ok := l.firstIndex[location]
	if !ok {
		return Observation{}, false
	}
	return l.observations[i], true
}

// Locations returns the distinct locations in order of first appearance.
func (l *Ledger) Locations() []string {
	locs := make([]string, len(l.locations))
	copy(locs, l.locations)
	return locs
}
