// Package order provides the Order aggregate of the loan audit workflow and the
// finite-state machine that moves it through its lifecycle.
//
// The package includes:
//   - Order: the aggregate root holding identity, static profile, status and audit data
//   - Status, Role, Action: closed enumerations of the workflow
//   - AuditData: the proposed and approved credit terms attached to an order
//   - ApplyAction: the only way an order's status or audit data ever change
//
// Lifecycle:
//
//	PENDING_UPLOAD ──share──> PENDING_AUDIT ──submitProposal──> PENDING_APPROVAL ──approve──> AUDIT_COMPLETE ··> COMPLETED
//	                               ^                                  │
//	                               └──────────────reject──────────────┘
//
// Each transition is gated by the acting role: the initiator shares, delivery
// submits a proposal, the manager approves or rejects. COMPLETED is reached by a
// disbursement step outside this package and has no outgoing transitions.
package order
