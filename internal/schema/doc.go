// Package schema provides declarative option schemas for configuration
// blocks: typed validators, defaults, required/optional markers, nested
// blocks, and schema extension.
//
// Validation is a pure function from a raw YAML-decoded map to a normalized
// Config plus diagnostics. Unknown options are reported with the offending
// path and a "did you mean" suggestion; out-of-range and wrong-type values
// carry stable diagnostic codes. No code generation runs on an invalid
// configuration.
package schema
