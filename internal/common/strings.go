package common

// UnknownStr is the display value for enum values outside their known range.
const UnknownStr = "unknown"
