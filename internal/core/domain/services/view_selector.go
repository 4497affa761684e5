package services

import "loanaudit/internal/core/domain/model/order"

// ViewKind is the panel a role sees on the order detail page. Only
// ViewDeliveryForm and ViewManagerReview offer actions.
type ViewKind int

const (
	// ViewLocked (0) tells the role to wait for the initiator to share the
	// order. It is also the answer for anything unrecognized.
	ViewLocked ViewKind = iota

	// ViewDeliveryForm is the limit and product entry form.
	ViewDeliveryForm

	// ViewDeliveryWaiting shows delivery its submitted proposal while others decide.
	ViewDeliveryWaiting

	// ViewManagerReview shows the proposal with approve and reject buttons.
	ViewManagerReview

	// ViewManagerWaiting tells the viewer that delivery is still auditing.
	ViewManagerWaiting

	// ViewApprovedSummary shows the approved limit and product.
	ViewApprovedSummary

	// ViewPendingApprovalNotice tells the initiator the proposal awaits the manager.
	ViewPendingApprovalNotice
)

func getViewKindStrings() map[ViewKind]string {
	return map[ViewKind]string{
		ViewLocked:                "LOCKED",
		ViewDeliveryForm:          "DELIVERY_FORM",
		ViewDeliveryWaiting:       "DELIVERY_WAITING",
		ViewManagerReview:         "MANAGER_REVIEW",
		ViewManagerWaiting:        "MANAGER_WAITING",
		ViewApprovedSummary:       "APPROVED_SUMMARY",
		ViewPendingApprovalNotice: "PENDING_APPROVAL_NOTICE",
	}
}

func (v ViewKind) String() string {
	if str, ok := getViewKindStrings()[v]; ok {
		return str
	}
	return "LOCKED"
}

// IsActionForm reports whether the view lets the role act on the order.
func (v ViewKind) IsActionForm() bool {
	return v == ViewDeliveryForm || v == ViewManagerReview
}

type viewKey struct {
	status order.Status
	role   order.Role
}

var viewTable = map[viewKey]ViewKind{
	{order.PendingUpload, order.Initiator}: ViewLocked,
	{order.PendingUpload, order.Delivery}:  ViewLocked,
	{order.PendingUpload, order.Manager}:   ViewLocked,

	{order.PendingAudit, order.Initiator}: ViewManagerWaiting,
	{order.PendingAudit, order.Delivery}:  ViewDeliveryForm,
	{order.PendingAudit, order.Manager}:   ViewManagerWaiting,

	{order.PendingApproval, order.Initiator}: ViewPendingApprovalNotice,
	{order.PendingApproval, order.Delivery}:  ViewDeliveryWaiting,
	{order.PendingApproval, order.Manager}:   ViewManagerReview,

	{order.AuditComplete, order.Initiator}: ViewApprovedSummary,
	{order.AuditComplete, order.Delivery}:  ViewDeliveryWaiting,
	{order.AuditComplete, order.Manager}:   ViewApprovedSummary,

	{order.Completed, order.Initiator}: ViewApprovedSummary,
	{order.Completed, order.Delivery}:  ViewApprovedSummary,
	{order.Completed, order.Manager}:   ViewApprovedSummary,
}

// SelectView returns the panel role sees for an order in status. It is total:
// any status or role outside the enumerations selects ViewLocked.
func SelectView(role order.Role, status order.Status) ViewKind {
	if view, ok := viewTable[viewKey{status: status, role: role}]; ok {
		return view
	}
	return ViewLocked
}
