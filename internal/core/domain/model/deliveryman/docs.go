// Package deliveryman models the delivery profile of a user with the
// deliveryman role: the area served, availability, the orders currently held
// (at most MaxAssignedOrders), accumulated earnings and the delivery history.
//
// Eligibility for an order combines availability, area and capacity. An
// AssignmentPolicy lets administrators bypass area and availability; capacity
// is never bypassed.
package deliveryman
