package logging

import (
	"os"
	"strconv"
)

//
// Environment variables.
const (
	EnvDevelopment = "LOG_DEVELOPMENT"
	EnvLevel       = "LOG_LEVEL"
)

//
// Logging settings.
var Settings _Settings

func init() {
	Settings.Load()
}

//
// Settings.
type _Settings struct {
	// Development mode.
	// Console encoder with stack traces at error.
	Development bool
	// Debug threshold.
	// Levels <= threshold are emitted at debug.
	Level int
}

//
// Load settings from the environment.
func (r *_Settings) Load() {
	r.Development = false
	r.Level = 0
	if s, found := os.LookupEnv(EnvDevelopment); found {
		b, err := strconv.ParseBool(s)
		if err == nil {
			r.Development = b
		}
	}
	if s, found := os.LookupEnv(EnvLevel); found {
		n, err := strconv.Atoi(s)
		if err == nil {
			r.Level = n
		}
	}
}

//
// The level is at or below the debug threshold.
func (r *_Settings) atDebug(level int) bool {
	return level <= r.Level
}
