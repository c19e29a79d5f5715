package service

import "errors"

var (
	// ErrInvalidPickupLocation is returned when pickup coordinates are invalid.
	ErrInvalidPickupLocation = errors.New("invalid pickup location")

	// ErrInvalidDestinationLocation is returned when destination coordinates are invalid.
	ErrInvalidDestinationLocation = errors.New("invalid destination location")

	// ErrInvalidLocation is returned when location coordinates are invalid.
	ErrInvalidLocation = errors.New("invalid location")

	// ErrRouteNotFound is returned when the router cannot connect pickup and destination.
	ErrRouteNotFound = errors.New("no route found between pickup and destination")

	// ErrRoutingUnavailable is returned when the routing upstream cannot be reached.
	ErrRoutingUnavailable = errors.New("routing service unavailable")

	// ErrVenueDataUnavailable is returned when no venue data can be served,
	// not even from the stale cache.
	ErrVenueDataUnavailable = errors.New("venue data unavailable")

	// ErrEventDataUnavailable is returned when the events upstream cannot be reached.
	ErrEventDataUnavailable = errors.New("event data unavailable")

	// ErrGeocodingUnavailable is returned when the geocoding upstream cannot be reached.
	ErrGeocodingUnavailable = errors.New("geocoding service unavailable")
)
