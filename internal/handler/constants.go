package handler

import "time"

// TimeFormat is the standard time format for API responses (RFC3339)
const TimeFormat = time.RFC3339

// DefaultPage is used when the caller omits the page query parameter.
// A caller-supplied page is passed through as-is, including values < 1.
const DefaultPage = 1
