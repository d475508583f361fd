package engine

import (
	"errors"

	"github.com/lintang-b-s/congestion-router/pkg/congestion"
	"github.com/lintang-b-s/congestion-router/pkg/ledger"
	"github.com/lintang-b-s/congestion-router/pkg/util"
)

var ErrMissingObservation = errors.New("route location has no traffic observation")

// Annotate attaches the congestion band and time of the first ledger observation of every path location.
func Annotate(l *ledger.Ledger, path []string) ([]Stop, error) {
	stops := make([]Stop, 0, len(path))
	for _, loc := range path {
		o, ok := l.FirstObservation(loc)
		if !ok {
			return nil, util.WrapErrorf(ErrMissingObservation, util.ErrInternalServerError,
				"internal error: location %q is in the route graph but has no traffic observation", loc)
		}
		stops = append(stops, Stop{
			Location:        loc,
			Congestion:      congestion.Classify(o.CongestionCount),
			CongestionCount: o.CongestionCount,
			Time:            o.Time,
		})
	}
	return stops, nil
}
