// Package services provides the domain services of the loan audit system. They
// hold the workflow logic that needs collaborators an aggregate should not know
// about, such as the clock.
//
// The package includes:
//   - AuditWorkflow: applies a role's action to an order using the injected clock
//   - SelectView: chooses the panel a role sees for an order in a given status
//
// Both are pure: they never persist anything and never modify the orders they receive.
package services
