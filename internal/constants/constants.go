package constants

const (
	// Network constants
	DefaultTimeout          = 30 // seconds
	DefaultRetryCount       = 3
	DefaultRetryWaitTime    = 5  // seconds
	DefaultRetryMaxWaitTime = 20 // seconds

	// Session cache constants
	SessionTTL             = 30 // minutes
	SessionCleanupInterval = 10 // minutes

	// Traffic constants
	BytesInGB = 1024 * 1024 * 1024

	// Duration constants
	MillisecondsInDay = 24 * 60 * 60 * 1000
)
