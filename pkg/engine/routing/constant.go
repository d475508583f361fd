package routing

import "errors"

var (
	ErrUnknownLocation = errors.New("location does not exist in the traffic data")
	ErrNoPathFound     = errors.New("no path available between these locations")
)
