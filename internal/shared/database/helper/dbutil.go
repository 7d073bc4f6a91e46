package helper

import (
	"errors"
	"strings"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// =======================
// STRING
// =======================

func StringPtrValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// TrimmedPtrValue treats nil and whitespace-only input the same way.
func TrimmedPtrValue(s *string) string {
	return strings.TrimSpace(StringPtrValue(s))
}

func StringPtr(s string) *string {
	return &s
}

// =======================
// DECIMAL (Postgres Numeric)
// =======================

func DecimalToNull(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{
		Decimal: *d,
		Valid:   true,
	}
}

func NullDecimalToPtr(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}

func DecimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// =======================
// POSTGRES ERRORS
// =======================

const pqUniqueViolation = "23505"

// IsUniqueViolation reports whether err is a unique_violation raised by
// PostgreSQL. When constraint is non-empty only that constraint matches.
func IsUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	if pqErr.Code != pqUniqueViolation {
		return false
	}
	return constraint == "" || pqErr.Constraint == constraint
}
