package handler

import "time"

// TimeFormat is the standard time format for API responses (RFC3339 with fractional seconds)
const TimeFormat = time.RFC3339Nano

// timestampLayouts are the accepted input layouts for published_at, tried in order.
// Layouts without a zone are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Response messages.
const (
	msgInvalidData     = "The given data was invalid."
	msgUnauthenticated = "Unauthenticated."
	msgBadCredentials  = "Invalid email or password."
	msgForbidden       = "This action is unauthorized."
	msgNotFound        = "Not found."
	msgInternal        = "Internal server error."
	msgBadPage         = "The page parameter must be an integer."
)
