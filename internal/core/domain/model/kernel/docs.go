// Package kernel contains shared value objects used across the domain model:
// identifiers, money, and geographic coordinates.
//
// All value objects are immutable and validate their inputs in constructor
// functions. Zero values that cannot be valid (UUID) expose a Validate method
// returning a descriptive error so improperly constructed instances are
// caught when reconstructing entities from external data.
package kernel
