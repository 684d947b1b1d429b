// Package order provides the order read model for the courier workflow:
// the status enumeration with its display metadata, the order snapshot, the
// payment records attached to it, and the list filter.
//
// Key rules:
//   - Status transitions only move forward through the lifecycle; cancel is
//     the only regression and done/canceled are terminal.
//   - A courier may advance an order past assigned only when assigned to it.
//   - Unrecognized status values are preserved, rendered with an unknown
//     label, and never coerced to a valid-looking state.
//
// The permitted-action computation over this model lives in the services
// package; the mutation requests live in the application commands.
package order
