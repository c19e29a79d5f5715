package fare

import "errors"

var (
	// ErrNegativeDistance is returned when a fare is requested for a
	// negative distance. This is a contract violation and is never
	// silently clamped to zero.
	ErrNegativeDistance = errors.New("distance must not be negative")

	// ErrUnknownTariff is returned when the schedule resolves to a
	// tariff that is not in the table. The default schedule is total so
	// this cannot happen unless the configuration was built without
	// validation.
	ErrUnknownTariff = errors.New("no tariff configured for instant")
)
