package invoice

import (
	"regexp"
	"strings"

	"billbook/internal/domain"
)

var (
	gstinPattern = regexp.MustCompile(`^\d{2}[A-Z]{5}\d{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
	ifscPattern  = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
	hsnPattern   = regexp.MustCompile(`^\d{4,8}$`)
	acctPattern  = regexp.MustCompile(`^\d{9,18}$`)
)

// ValidGSTIN reports whether s is a well-formed 15 character GSTIN.
func ValidGSTIN(s string) bool { return gstinPattern.MatchString(s) }

// ValidIFSC reports whether s is a well-formed IFSC code.
func ValidIFSC(s string) bool { return ifscPattern.MatchString(s) }

// ValidHSN reports whether s is a 4 to 8 digit HSN code.
func ValidHSN(s string) bool { return hsnPattern.MatchString(s) }

// ValidAccountNumber reports whether s is a 9 to 18 digit bank account number.
func ValidAccountNumber(s string) bool { return acctPattern.MatchString(s) }

// CheckFormat returns a validation error when value is non-empty and fails
// valid. Empty values pass; presence is checked elsewhere.
func CheckFormat(field, value string, valid func(string) bool) error {
	value = strings.TrimSpace(value)
	if value == "" || valid(value) {
		return nil
	}
	return domain.NewValidationError(field, "does not match expected format")
}

// ValidateCompany checks the seller profile printed on invoices.
func ValidateCompany(c domain.Company) error {
	if strings.TrimSpace(c.Name) == "" {
		return domain.NewValidationError("company.name", "is required")
	}
	checks := []struct {
		field string
		value string
		valid func(string) bool
	}{
		{"company.gstin", c.GSTIN, ValidGSTIN},
		{"company.ifsc", c.IFSC, ValidIFSC},
		{"company.account_number", c.AccountNumber, ValidAccountNumber},
	}
	for _, ch := range checks {
		if err := CheckFormat(ch.field, ch.value, ch.valid); err != nil {
			return err
		}
	}
	return nil
}
