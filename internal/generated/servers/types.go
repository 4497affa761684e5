// Package servers holds the HTTP contract of the loan audit API: the wire
// types, the ServerInterface with its echo bindings and the embedded OpenAPI
// document they are derived from (openapi.yaml).
package servers

import (
	"time"
)

// Defines values for Action.
const (
	ActionApprove        Action = "approve"
	ActionReject         Action = "reject"
	ActionShare          Action = "share"
	ActionSubmitProposal Action = "submitProposal"
)

// Defines values for OrderStatus.
const (
	OrderStatusAUDITCOMPLETE   OrderStatus = "AUDIT_COMPLETE"
	OrderStatusCOMPLETED       OrderStatus = "COMPLETED"
	OrderStatusPENDINGAPPROVAL OrderStatus = "PENDING_APPROVAL"
	OrderStatusPENDINGAUDIT    OrderStatus = "PENDING_AUDIT"
	OrderStatusPENDINGUPLOAD   OrderStatus = "PENDING_UPLOAD"
)

// Defines values for Role.
const (
	RoleDELIVERY  Role = "DELIVERY"
	RoleINITIATOR Role = "INITIATOR"
	RoleMANAGER   Role = "MANAGER"
)

// Defines values for ViewKind.
const (
	ViewKindAPPROVEDSUMMARY       ViewKind = "APPROVED_SUMMARY"
	ViewKindDELIVERYFORM          ViewKind = "DELIVERY_FORM"
	ViewKindDELIVERYWAITING       ViewKind = "DELIVERY_WAITING"
	ViewKindLOCKED                ViewKind = "LOCKED"
	ViewKindMANAGERREVIEW         ViewKind = "MANAGER_REVIEW"
	ViewKindMANAGERWAITING        ViewKind = "MANAGER_WAITING"
	ViewKindPENDINGAPPROVALNOTICE ViewKind = "PENDING_APPROVAL_NOTICE"
)

// Action defines model for Action.
type Action string

// ActionRequest defines model for ActionRequest.
type ActionRequest struct {
	Action          Action    `json:"action"`
	ExpectedVersion *int      `json:"expectedVersion,omitempty"`
	Proposal        *Proposal `json:"proposal,omitempty"`
	Role            Role      `json:"role"`
}

// AuditData defines model for AuditData.
type AuditData struct {
	ApprovedAt  *time.Time `json:"approvedAt,omitempty"`
	Limit       string     `json:"limit"`
	Product     string     `json:"product"`
	Remark      *string    `json:"remark,omitempty"`
	SubmittedAt *time.Time `json:"submittedAt,omitempty"`
}

// Details defines model for Details.
type Details struct {
	CompanyFlow    *string `json:"companyFlow,omitempty"`
	CompanyName    *string `json:"companyName,omitempty"`
	DemandDesc     *string `json:"demandDesc,omitempty"`
	EstablishDate  *string `json:"establishDate,omitempty"`
	LegalPersonAge *string `json:"legalPersonAge,omitempty"`
	MaritalStatus  *string `json:"maritalStatus,omitempty"`
	PersonalAssets *string `json:"personalAssets,omitempty"`
	ReportLink     *string `json:"reportLink,omitempty"`
}

// Documents defines model for Documents.
type Documents struct {
	BusinessLicense bool `json:"businessLicense"`
	CompanyCredit   bool `json:"companyCredit"`
	IdCard          bool `json:"idCard"`
	PersonalCredit  bool `json:"personalCredit"`
}

// Error defines model for Error.
type Error struct {
	Code    int       `json:"code"`
	Fields  *[]string `json:"fields,omitempty"`
	Message string    `json:"message"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	Amount       string     `json:"amount"`
	Channel      *string    `json:"channel,omitempty"`
	CustomerName string     `json:"customerName"`
	Details      *Details   `json:"details,omitempty"`
	Documents    *Documents `json:"documents,omitempty"`
	LoanType     *string    `json:"loanType,omitempty"`
	Phone        *string    `json:"phone,omitempty"`
	Source       *string    `json:"source,omitempty"`
}

// Order defines model for Order.
type Order struct {
	Amount       string      `json:"amount"`
	AuditData    *AuditData  `json:"auditData,omitempty"`
	Channel      *string     `json:"channel,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	CustomerName string      `json:"customerName"`
	Details      Details     `json:"details"`
	Documents    Documents   `json:"documents"`
	Id           string      `json:"id"`
	LoanType     *string     `json:"loanType,omitempty"`
	Phone        *string     `json:"phone,omitempty"`
	Source       *string     `json:"source,omitempty"`
	Status       OrderStatus `json:"status"`
	StatusLabel  string      `json:"statusLabel"`
	TimelineStep int         `json:"timelineStep"`
	Version      int         `json:"version"`
}

// OrderStatus defines model for OrderStatus.
type OrderStatus string

// OrderSummary defines model for OrderSummary.
type OrderSummary struct {
	Amount       string      `json:"amount"`
	Channel      *string     `json:"channel,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	CustomerName string      `json:"customerName"`
	Id           string      `json:"id"`
	LoanType     *string     `json:"loanType,omitempty"`
	Status       OrderStatus `json:"status"`
	StatusLabel  string      `json:"statusLabel"`
	Version      int         `json:"version"`
}

// OrderView defines model for OrderView.
type OrderView struct {
	Actions []Action `json:"actions"`
	Order   Order    `json:"order"`
	View    ViewKind `json:"view"`
}

// Proposal defines model for Proposal.
type Proposal struct {
	Limit   *string `json:"limit,omitempty"`
	Product *string `json:"product,omitempty"`
	Remark  *string `json:"remark,omitempty"`
}

// Role defines model for Role.
type Role string

// Stats defines model for Stats.
type Stats struct {
	Counts []StatusCount `json:"counts"`
	Total  int           `json:"total"`
}

// StatusCount defines model for StatusCount.
type StatusCount struct {
	Count  int         `json:"count"`
	Label  string      `json:"label"`
	Status OrderStatus `json:"status"`
}

// ViewKind defines model for ViewKind.
type ViewKind string

// OrderID defines model for OrderID.
type OrderID = string

// ListOrdersParams defines parameters for ListOrders.
type ListOrdersParams struct {
	Status *[]OrderStatus `form:"status,omitempty" json:"status,omitempty"`

	// Search Substring of the customer name or, case-insensitively, of the order ID.
	Search *string `form:"search,omitempty" json:"search,omitempty"`
}

// GetOrderParams defines parameters for GetOrder.
type GetOrderParams struct {
	Role Role `form:"role" json:"role"`
}

// GetInboxParams defines parameters for GetInbox.
type GetInboxParams struct {
	Role Role `form:"role" json:"role"`
}

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = NewOrder

// ApplyActionJSONRequestBody defines body for ApplyAction for application/json ContentType.
type ApplyActionJSONRequestBody = ActionRequest
