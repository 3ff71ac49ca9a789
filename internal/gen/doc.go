// Package gen provides deterministic Go code generation for device setup
// code.
//
// Generation approach uses text/template + go/format for readable output.
//
// Core pieces:
//   - Statement IR (declarations, setter calls, registrations)
//   - Build-time object table mapping configuration IDs to variables
//   - Cooperative task scheduler: generation tasks run strictly
//     sequentially; a task whose identifier lookup misses is deferred with
//     its buffered statements discarded and retried once the identifier is
//     declared
package gen
