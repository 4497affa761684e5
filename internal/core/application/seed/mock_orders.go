// Package seed loads the demonstration orders the service starts with when
// SEED_MOCK_ORDERS is enabled. One order sits in each workflow stage, so every
// role has something in its inbox on first start.
package seed

import (
	"context"
	"errors"
	"time"

	"loanaudit/internal/core/domain/model/order"
	"loanaudit/internal/core/ports"
	"loanaudit/internal/pkg/errs"
)

// Seed timestamps are wall-clock times in China Standard Time.
var cst = time.FixedZone("CST", 8*60*60)

type mockOrder struct {
	id        string
	profile   order.Profile
	status    order.Status
	version   int
	createdAt time.Time
	audit     *mockAudit
}

type mockAudit struct {
	limit       string
	product     string
	submittedAt time.Time
	approvedAt  time.Time
}

func at(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, cst).UTC()
}

var allDocuments = order.Documents{IDCard: true, BusinessLicense: true, CompanyCredit: true, PersonalCredit: true}

func mockOrders() []mockOrder {
	return []mockOrder{
		{
			id: "OD20251120001",
			profile: order.Profile{
				CustomerName: "王某某",
				Phone:        "138****5678",
				Source:       "中介-张经理",
				Amount:       "500万",
				LoanType:     "企业经营贷",
				Channel:      "张三",
				Details: order.Details{
					CompanyName:    "某某科技有限公司",
					EstablishDate:  "2018-05-12",
					LegalPersonAge: "38岁",
					MaritalStatus:  "已婚",
					PersonalAssets: "房产2套，车辆1台",
					CompanyFlow:    "1500万",
					DemandDesc:     "企业扩大生产经营，需要资金支持",
				},
				Documents: order.Documents{IDCard: true, BusinessLicense: true, CompanyCredit: true},
			},
			status:    order.PendingAudit,
			version:   2,
			createdAt: at(2025, time.November, 20, 0, 0),
		},
		{
			id: "OD20251120002",
			profile: order.Profile{
				CustomerName: "李某某",
				Phone:        "139****1234",
				Source:       "自流量",
				Amount:       "200万",
				LoanType:     "个人消费贷",
				Channel:      "李四",
				Details: order.Details{
					CompanyName:    "个体户李记",
					EstablishDate:  "2020-01-10",
					LegalPersonAge: "29岁",
					MaritalStatus:  "未婚",
					PersonalAssets: "房产1套",
					CompanyFlow:    "500万",
					DemandDesc:     "装修贷款",
				},
				Documents: order.Documents{IDCard: true},
			},
			status:    order.PendingUpload,
			version:   1,
			createdAt: at(2025, time.November, 21, 0, 0),
		},
		{
			id: "OD20251120003",
			profile: order.Profile{
				CustomerName: "赵某某",
				Phone:        "136****8765",
				Source:       "第三方-某平台",
				Amount:       "800万",
				LoanType:     "企业抵押贷",
				Channel:      "张三",
				Details: order.Details{
					CompanyName:    "赵氏贸易",
					EstablishDate:  "2015-11-11",
					LegalPersonAge: "45岁",
					MaritalStatus:  "离异",
					PersonalAssets: "别墅1栋",
					CompanyFlow:    "3000万",
					DemandDesc:     "过桥垫资",
				},
				Documents: allDocuments,
			},
			status:    order.PendingApproval,
			version:   3,
			createdAt: at(2025, time.November, 19, 0, 0),
			audit: &mockAudit{
				limit:       "750万",
				product:     "兴业银行快易贷",
				submittedAt: at(2025, time.November, 20, 10, 0),
			},
		},
		{
			id: "OD20251120004",
			profile: order.Profile{
				CustomerName: "陈某某",
				Phone:        "135****4321",
				Source:       "中介-李经理",
				Amount:       "350万",
				LoanType:     "个人经营贷",
				Channel:      "李四",
				Details: order.Details{
					CompanyName:    "陈氏餐饮",
					EstablishDate:  "2019-03-15",
					LegalPersonAge: "33岁",
					MaritalStatus:  "已婚",
					PersonalAssets: "房产1套",
					CompanyFlow:    "800万",
					DemandDesc:     "开分店",
				},
				Documents: allDocuments,
			},
			status:    order.Completed,
			version:   5,
			createdAt: at(2025, time.November, 15, 0, 0),
			audit: &mockAudit{
				limit:       "350万",
				product:     "建设银行云税贷",
				submittedAt: at(2025, time.November, 15, 9, 0),
				approvedAt:  at(2025, time.November, 15, 11, 0),
			},
		},
		{
			id: "OD20251120005",
			profile: order.Profile{
				CustomerName: "刘某某",
				Phone:        "133****9999",
				Source:       "自流量",
				Amount:       "1200万",
				LoanType:     "企业经营贷",
				Channel:      "王五",
				Details: order.Details{
					CompanyName:    "刘氏物流",
					EstablishDate:  "2010-06-20",
					LegalPersonAge: "50岁",
					MaritalStatus:  "已婚",
					PersonalAssets: "房产3套",
					CompanyFlow:    "5000万",
					DemandDesc:     "购买新车",
				},
				Documents: allDocuments,
			},
			status:    order.AuditComplete,
			version:   4,
			createdAt: at(2025, time.November, 18, 0, 0),
			audit: &mockAudit{
				limit:       "1000万",
				product:     "平安银行宅抵贷",
				submittedAt: at(2025, time.November, 18, 14, 0),
				approvedAt:  at(2025, time.November, 18, 16, 30),
			},
		},
	}
}

// MockOrders builds the demonstration orders through RestoreOrder.
func MockOrders() ([]*order.Order, error) {
	mocks := mockOrders()
	orders := make([]*order.Order, 0, len(mocks))

	for _, m := range mocks {
		o, err := m.build()
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (m mockOrder) build() (*order.Order, error) {
	id, err := order.NewID(m.id)
	if err != nil {
		return nil, err
	}

	var auditData *order.AuditData
	if m.audit != nil {
		submittedAt := m.audit.submittedAt
		var approvedAt *time.Time
		if !m.audit.approvedAt.IsZero() {
			approved := m.audit.approvedAt
			approvedAt = &approved
		}

		a, auditErr := order.RestoreAuditData(m.audit.limit, m.audit.product, "", &submittedAt, approvedAt)
		if auditErr != nil {
			return nil, auditErr
		}
		auditData = &a
	}

	return order.RestoreOrder(id, m.profile, m.status, auditData, m.version, m.createdAt)
}

// Load adds the demonstration orders that are not stored yet in one unit of
// work and returns how many were added. Loading twice adds nothing.
func Load(ctx context.Context, factory ports.UnitOfWorkFactory) (int, error) {
	orders, err := MockOrders()
	if err != nil {
		return 0, err
	}

	uow := factory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	added := 0
	for _, o := range orders {
		_, getErr := repo.Get(ctx, o.ID())
		if getErr == nil {
			continue
		}
		if !errors.Is(getErr, errs.ErrObjectNotFound) {
			return 0, getErr
		}

		if err = repo.Add(ctx, o); err != nil {
			return 0, err
		}
		added++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return added, nil
}
