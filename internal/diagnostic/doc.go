// Package diagnostic provides structured warnings, errors, and
// "why this mapped" explanations for bone mappings.
//
// Key capabilities:
//   - Unknown target bone warnings
//   - Ambiguous auto-fill reports with tied candidates
//   - Skipped and failed constraint reports from apply
package diagnostic
