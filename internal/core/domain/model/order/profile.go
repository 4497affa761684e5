package order

import (
	"errors"
	"strings"

	"loanaudit/internal/pkg/errs"
)

// Profile is the static description of a loan application: who asks, for how
// much, and which documents were uploaded. The workflow reads it but never
// changes it.
type Profile struct {
	CustomerName string
	Phone        string
	Source       string
	Amount       string
	LoanType     string
	Channel      string
	Details      Details
	Documents    Documents
}

// Details are the company and applicant facts collected by the initiator.
type Details struct {
	CompanyName    string
	EstablishDate  string
	LegalPersonAge string
	MaritalStatus  string
	PersonalAssets string
	CompanyFlow    string
	DemandDesc     string
	ReportLink     string
}

// Documents flags which supporting documents have been uploaded.
type Documents struct {
	IDCard          bool
	BusinessLicense bool
	CompanyCredit   bool
	PersonalCredit  bool
}

// Validate requires the customer name and the requested amount.
func (p Profile) Validate() error {
	var errList []error
	if strings.TrimSpace(p.CustomerName) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("customer name"))
	}
	if strings.TrimSpace(p.Amount) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("amount"))
	}
	return errors.Join(errList...)
}

// Uploaded counts the uploaded documents out of the four expected.
func (d Documents) Uploaded() int {
	n := 0
	for _, ok := range []bool{d.IDCard, d.BusinessLicense, d.CompanyCredit, d.PersonalCredit} {
		if ok {
			n++
		}
	}
	return n
}

// Complete reports whether all four documents were uploaded.
func (d Documents) Complete() bool {
	return d.Uploaded() == 4
}
