// Package services provides domain services for the courier workflow.
//
// The package includes:
//   - ActionPolicy: the shared read model computing which actions an order
//     offers to a given viewer, consumed by both the list and detail surfaces
//
// Domain services hold logic that spans the order snapshot and the viewer
// identity and therefore does not belong to either model.
package services
