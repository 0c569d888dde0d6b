// Package config holds the process-wide planning constants. They are
// compile-time constants so callers can never observe different values
// between two calculations in the same process.
package config

const (
	// Interval is the length of one reporting period in seconds. All
	// call volumes are expressed per Interval, and traffic intensity is
	// callsPerInterval / (Interval / AHT).
	Interval = 3600.0

	// MaxAccuracy is the convergence tolerance for iterative searches.
	// It doubles as the "close enough to certainty" cutoff for service
	// levels: a service level above 1-MaxAccuracy stops the staffing
	// ladder.
	MaxAccuracy = 0.00001
)
