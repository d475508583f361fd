package engine

import (
	"context"
	"errors"

	"github.com/lintang-b-s/congestion-router/pkg/congestion"
	"github.com/lintang-b-s/congestion-router/pkg/engine/routing"
)

type ErrorKind string

const (
	KIND_NONE                ErrorKind = ""
	KIND_UNKNOWN_LOCATION    ErrorKind = "unknown_location"
	KIND_NO_PATH_FOUND       ErrorKind = "no_path_found"
	KIND_MISSING_OBSERVATION ErrorKind = "missing_observation"
	KIND_CANCELED            ErrorKind = "canceled"
	KIND_INTERNAL            ErrorKind = "internal"
)

// Stop is one annotated node of a route.
type Stop struct {
	Location        string          `json:"location"`
	Congestion      congestion.Band `json:"congestion"`
	CongestionCount int             `json:"congestion_count"`
	Time            string          `json:"time"`
}

// RouteResult is either a path (ErrorKind empty) or a structured failure.
type RouteResult struct {
	Path            []Stop
	TotalCongestion float64
	ErrorKind       ErrorKind
	Message         string
	Err             error
}

func (r RouteResult) OK() bool {
	return r.Err == nil
}

// Locations returns the location sequence of the path.
func (r RouteResult) Locations() []string {
	locs := make([]string, len(r.Path))
	for i, s := range r.Path {
		locs[i] = s.Location
	}
	return locs
}

func failed(err error) RouteResult {
	return RouteResult{ErrorKind: KindOf(err), Message: err.Error(), Err: err}
}

// KindOf classifies an error returned by the engine.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KIND_NONE
	case errors.Is(err, routing.ErrUnknownLocation):
		return KIND_UNKNOWN_LOCATION
	case errors.Is(err, routing.ErrNoPathFound):
		return KIND_NO_PATH_FOUND
	case errors.Is(err, ErrMissingObservation):
		return KIND_MISSING_OBSERVATION
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KIND_CANCELED
	default:
		return KIND_INTERNAL
	}
}
