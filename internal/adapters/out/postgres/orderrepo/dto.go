// Package orderrepo persists order aggregates in PostgreSQL through GORM and
// serves the read model used by queries. It converts between the domain
// aggregate and its single-table database representation.
package orderrepo

import (
	"time"

	"loanaudit/internal/core/domain/model/order"
)

// OrderDTO is one row of the orders table. Audit columns are NULL until
// delivery submits a proposal; audit_limit decides whether audit data exists.
type OrderDTO struct {
	ID        string       `gorm:"type:varchar(32);primaryKey"`
	Status    int          `gorm:"index;not null"`
	Version   int          `gorm:"not null"`
	CreatedAt time.Time    `gorm:"index;not null"`
	Profile   ProfileDTO   `gorm:"embedded;embeddedPrefix:profile_"`
	Audit     AuditDataDTO `gorm:"embedded;embeddedPrefix:audit_"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ProfileDTO holds the static application fields.
type ProfileDTO struct {
	CustomerName string `gorm:"not null"`
	Phone        string
	Source       string
	Amount       string `gorm:"not null"`
	LoanType     string
	Channel      string

	CompanyName    string
	EstablishDate  string
	LegalPersonAge string
	MaritalStatus  string
	PersonalAssets string
	CompanyFlow    string
	DemandDesc     string `gorm:"type:text"`
	ReportLink     string

	DocIDCard          bool
	DocBusinessLicense bool
	DocCompanyCredit   bool
	DocPersonalCredit  bool
}

// AuditDataDTO holds the proposal and approval columns.
type AuditDataDTO struct {
	Limit       *string
	Product     *string
	Remark      *string `gorm:"type:text"`
	SubmittedAt *time.Time
	ApprovedAt  *time.Time
}

func fromDomain(o *order.Order) OrderDTO {
	p := o.Profile()

	dto := OrderDTO{
		ID:        o.ID().String(),
		Status:    int(o.Status()),
		Version:   o.Version(),
		CreatedAt: o.CreatedAt(),
		Profile: ProfileDTO{
			CustomerName:       p.CustomerName,
			Phone:              p.Phone,
			Source:             p.Source,
			Amount:             p.Amount,
			LoanType:           p.LoanType,
			Channel:            p.Channel,
			CompanyName:        p.Details.CompanyName,
			EstablishDate:      p.Details.EstablishDate,
			LegalPersonAge:     p.Details.LegalPersonAge,
			MaritalStatus:      p.Details.MaritalStatus,
			PersonalAssets:     p.Details.PersonalAssets,
			CompanyFlow:        p.Details.CompanyFlow,
			DemandDesc:         p.Details.DemandDesc,
			ReportLink:         p.Details.ReportLink,
			DocIDCard:          p.Documents.IDCard,
			DocBusinessLicense: p.Documents.BusinessLicense,
			DocCompanyCredit:   p.Documents.CompanyCredit,
			DocPersonalCredit:  p.Documents.PersonalCredit,
		},
	}

	if a := o.AuditData(); a != nil {
		limit, product, remark := a.Limit(), a.Product(), a.Remark()
		dto.Audit = AuditDataDTO{
			Limit:       &limit,
			Product:     &product,
			Remark:      &remark,
			SubmittedAt: a.SubmittedAt(),
			ApprovedAt:  a.ApprovedAt(),
		}
	}

	return dto
}

// toDomain rebuilds the aggregate through RestoreOrder, so rows that break an
// invariant are reported instead of loaded.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := order.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	var auditData *order.AuditData
	if dto.Audit.Limit != nil {
		a, auditErr := order.RestoreAuditData(
			*dto.Audit.Limit,
			deref(dto.Audit.Product),
			deref(dto.Audit.Remark),
			utc(dto.Audit.SubmittedAt),
			utc(dto.Audit.ApprovedAt),
		)
		if auditErr != nil {
			return nil, auditErr
		}
		auditData = &a
	}

	p := dto.Profile
	profile := order.Profile{
		CustomerName: p.CustomerName,
		Phone:        p.Phone,
		Source:       p.Source,
		Amount:       p.Amount,
		LoanType:     p.LoanType,
		Channel:      p.Channel,
		Details: order.Details{
			CompanyName:    p.CompanyName,
			EstablishDate:  p.EstablishDate,
			LegalPersonAge: p.LegalPersonAge,
			MaritalStatus:  p.MaritalStatus,
			PersonalAssets: p.PersonalAssets,
			CompanyFlow:    p.CompanyFlow,
			DemandDesc:     p.DemandDesc,
			ReportLink:     p.ReportLink,
		},
		Documents: order.Documents{
			IDCard:          p.DocIDCard,
			BusinessLicense: p.DocBusinessLicense,
			CompanyCredit:   p.DocCompanyCredit,
			PersonalCredit:  p.DocPersonalCredit,
		},
	}

	return order.RestoreOrder(id, profile, order.Status(dto.Status), auditData, dto.Version, dto.CreatedAt.UTC())
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
