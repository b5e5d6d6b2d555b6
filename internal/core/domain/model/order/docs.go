// Package order implements the Order aggregate: checkout snapshot, delivery
// state machine, delivery settlement and the return sub-workflow.
//
// Delivery states:
//
//	unassigned ──> assigned ──> processing ──> out_for_delivery ──> delivered
//	     ^             │             │                 │
//	     └─────────────┴─────────────┴─────────────────┘
//	                        (unassign)
//
// Return states, only once delivered:
//
//	none ──> pending ──┬──> approved ──> completed
//	                   └──> rejected
//
// Every delivery status change appends a StatusChange to the order history.
package order
