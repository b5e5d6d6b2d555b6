// Package services holds domain services: operations whose rules span more
// than one aggregate and therefore belong to none of them.
//
//   - DeliveryAssigner pairs orders with deliverymen and keeps both sides of
//     an assignment consistent.
//   - PricingCalculator turns checkout lines and an optional coupon into the
//     order's money breakdown.
//
// Services are stateless apart from configuration and never touch storage.
package services
