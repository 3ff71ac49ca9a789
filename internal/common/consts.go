package common

// UnknownStr is the fallback name for values outside their enum range.
const UnknownStr = "unknown"
