// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, duplicate-submission
// guarding, and exactly one backend mutation per confirmed action.
package commands

// MutationGuard serializes status mutations per order. Acquire returns false
// when a mutation for the key is already in flight; Release must be called on
// completion regardless of outcome.
type MutationGuard interface {
	Acquire(key string) bool
	Release(key string)
}
