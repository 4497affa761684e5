package http

import (
	"strings"

	"loanaudit/internal/core/application/usecases/queries"
	"loanaudit/internal/core/domain/model/order"
	"loanaudit/internal/core/domain/services"
	"loanaudit/internal/generated/servers"
)

func toProfile(body servers.NewOrder) order.Profile {
	profile := order.Profile{
		CustomerName: strings.TrimSpace(body.CustomerName),
		Phone:        deref(body.Phone),
		Source:       deref(body.Source),
		Amount:       strings.TrimSpace(body.Amount),
		LoanType:     deref(body.LoanType),
		Channel:      deref(body.Channel),
	}

	if d := body.Details; d != nil {
		profile.Details = order.Details{
			CompanyName:    deref(d.CompanyName),
			EstablishDate:  deref(d.EstablishDate),
			LegalPersonAge: deref(d.LegalPersonAge),
			MaritalStatus:  deref(d.MaritalStatus),
			PersonalAssets: deref(d.PersonalAssets),
			CompanyFlow:    deref(d.CompanyFlow),
			DemandDesc:     deref(d.DemandDesc),
			ReportLink:     deref(d.ReportLink),
		}
	}

	if docs := body.Documents; docs != nil {
		profile.Documents = order.Documents{
			IDCard:          docs.IdCard,
			BusinessLicense: docs.BusinessLicense,
			CompanyCredit:   docs.CompanyCredit,
			PersonalCredit:  docs.PersonalCredit,
		}
	}

	return profile
}

func toProposal(p *servers.Proposal) order.Proposal {
	if p == nil {
		return order.Proposal{}
	}
	return order.Proposal{
		Limit:   deref(p.Limit),
		Product: deref(p.Product),
		Remark:  deref(p.Remark),
	}
}

func toOrder(o *order.Order) servers.Order {
	profile := o.Profile()
	d := profile.Details

	resp := servers.Order{
		Id:           o.ID().String(),
		CustomerName: profile.CustomerName,
		Phone:        optional(profile.Phone),
		Source:       optional(profile.Source),
		Amount:       profile.Amount,
		LoanType:     optional(profile.LoanType),
		Channel:      optional(profile.Channel),
		Status:       servers.OrderStatus(o.Status().String()),
		StatusLabel:  o.Status().Label(),
		TimelineStep: o.Status().TimelineStep(),
		Version:      o.Version(),
		CreatedAt:    o.CreatedAt(),
		Details: servers.Details{
			CompanyName:    optional(d.CompanyName),
			EstablishDate:  optional(d.EstablishDate),
			LegalPersonAge: optional(d.LegalPersonAge),
			MaritalStatus:  optional(d.MaritalStatus),
			PersonalAssets: optional(d.PersonalAssets),
			CompanyFlow:    optional(d.CompanyFlow),
			DemandDesc:     optional(d.DemandDesc),
			ReportLink:     optional(d.ReportLink),
		},
		Documents: servers.Documents{
			IdCard:          profile.Documents.IDCard,
			BusinessLicense: profile.Documents.BusinessLicense,
			CompanyCredit:   profile.Documents.CompanyCredit,
			PersonalCredit:  profile.Documents.PersonalCredit,
		},
	}

	if a := o.AuditData(); a != nil {
		resp.AuditData = &servers.AuditData{
			Limit:       a.Limit(),
			Product:     a.Product(),
			Remark:      optional(a.Remark()),
			SubmittedAt: a.SubmittedAt(),
			ApprovedAt:  a.ApprovedAt(),
		}
	}

	return resp
}

func toOrderView(resp queries.GetOrderQueryResponse) servers.OrderView {
	actions := make([]servers.Action, 0, len(resp.Actions))
	for _, action := range resp.Actions {
		actions = append(actions, servers.Action(action.String()))
	}

	return servers.OrderView{
		Order:   toOrder(resp.Order),
		View:    servers.ViewKind(resp.View.String()),
		Actions: actions,
	}
}

func selectView(role order.Role, o *order.Order) services.ViewKind {
	return services.SelectView(role, o.Status())
}

func toOrderSummaries(summaries []queries.OrderSummary) []servers.OrderSummary {
	resp := make([]servers.OrderSummary, 0, len(summaries))
	for _, s := range summaries {
		resp = append(resp, servers.OrderSummary{
			Id:           s.ID.String(),
			CustomerName: s.CustomerName,
			Amount:       s.Amount,
			LoanType:     optional(s.LoanType),
			Channel:      optional(s.Channel),
			Status:       servers.OrderStatus(s.Status.String()),
			StatusLabel:  s.Status.Label(),
			Version:      s.Version,
			CreatedAt:    s.CreatedAt,
		})
	}
	return resp
}

func toStats(resp queries.CountByStatusQueryResponse) servers.Stats {
	counts := make([]servers.StatusCount, 0, len(resp.Counts))
	for _, c := range resp.Counts {
		counts = append(counts, servers.StatusCount{
			Status: servers.OrderStatus(c.Status.String()),
			Label:  c.Status.Label(),
			Count:  c.Count,
		})
	}
	return servers.Stats{Counts: counts, Total: resp.Total}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
