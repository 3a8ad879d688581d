package handlers

import "expvar"

// Counters published at /debug/vars when the debug module is mounted.
var (
	loginOutcomes = expvar.NewMap("wil_login_attempts")
	submissions   = expvar.NewMap("wil_submissions")
)
