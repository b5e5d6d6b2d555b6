// Package kernel holds the shared value objects of the storefront domain:
// identifiers (UUID) and delivery areas (Area). Every aggregate package
// depends on kernel and nothing in kernel depends on an aggregate.
package kernel
