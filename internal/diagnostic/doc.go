// Package diagnostic provides structured, path-qualified errors and
// warnings for configuration validation and code generation.
//
// Key capabilities:
//   - Unknown/invalid option errors with the offending option path
//   - "Did you mean" suggestions for misspelled options
//   - Aggregation across all configured components before failing
package diagnostic
