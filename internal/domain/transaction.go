package domain

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// Transaction represents one validated ledger entry. Ingestion is responsible
// for producing well-formed records; the analysis packages assume Date and
// Amount are already parsed and never re-validate them.
type Transaction struct {
	ID       string          // assigned at ingestion
	Date     civil.Date      // calendar date, no time-of-day component
	Category string          // free-text category label
	Amount   decimal.Decimal // positive = income, negative = expense
	Currency string          // from "currency", or USD when the source has no currency column
}

// IsExpense reports whether the transaction is an outflow.
func (t Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// YearMonth is a calendar month period: a date truncated to year and month.
type YearMonth struct {
	Year  int
	Month time.Month
}

// MonthOf returns the period containing d.
func MonthOf(d civil.Date) YearMonth {
	return YearMonth{Year: d.Year, Month: d.Month}
}

// Before reports whether m is chronologically before other.
func (m YearMonth) Before(other YearMonth) bool {
	if m.Year != other.Year {
		return m.Year < other.Year
	}
	return m.Month < other.Month
}

// Next returns the following calendar month.
func (m YearMonth) Next() YearMonth {
	if m.Month == time.December {
		return YearMonth{Year: m.Year + 1, Month: time.January}
	}
	return YearMonth{Year: m.Year, Month: m.Month + 1}
}

// String renders the period as "YYYY-MM".
func (m YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}
