// Package diagnostic provides structured warnings, errors, and
// statistics collected while deep-copying an object graph.
//
// Key capabilities:
//   - Warnings for aggregates built with the positional initializer heuristic
//   - Warnings for containers replaced by a category default
//   - Per-shape visit counters and cycle cache figures
package diagnostic
