// Package ingest loads transaction ledgers from CSV files. Real-world
// exports vary in charset, delimiter and header naming, so loading tries a
// small set of encodings and delimiters and maps common header aliases onto
// the canonical date/category/amount columns before validating every row.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"

	"github.com/dvloznov/ledger-insights/internal/domain"
)

// errLayout marks attempts where the header row did not resolve to the
// required columns: the signal to retry with another delimiter or charset.
// Row-level parse errors are returned to the caller as-is.
var errLayout = errors.New("required columns not found")

// DefaultCurrency is assumed when the source has no currency column.
const DefaultCurrency = "USD"

var delimiters = []rune{',', ';', '\t', '|'}

// columnAliases maps each canonical column to the header names accepted for
// it, in preference order.
var columnAliases = map[string][]string{
	"date":     {"date", "transaction_date", "trans_date"},
	"category": {"category", "description", "type", "transaction_type"},
	"amount":   {"amount", "value", "transaction_amount"},
}

var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"02 Jan 2006",
	"Jan 2, 2006",
}

// LoadCSV reads a transaction ledger from path. The file is decoded as
// UTF-8 when valid, falling back to Windows-1252 and then ISO-8859-1, and
// parsed with the first delimiter whose header row yields the required
// columns. Every row must carry a parseable date and a numeric amount;
// a row that fails validation fails the whole load.
func LoadCSV(path string) ([]domain.Transaction, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: read %s: %w", path, err)
	}
	transactions, err := Load(raw)
	if err != nil {
		return nil, fmt.Errorf("ingest: %s: %w", path, err)
	}
	return transactions, nil
}

// Load parses raw CSV bytes into validated transactions.
func Load(raw []byte) ([]domain.Transaction, error) {
	lastErr := error(errLayout)
	for _, text := range decodings(raw) {
		for _, delimiter := range delimiters {
			transactions, err := parse(text, delimiter)
			if errors.Is(err, errLayout) {
				lastErr = err
				continue
			}
			if err != nil {
				// The header resolved, so this is the right
				// layout and the error is a real data problem.
				return nil, err
			}
			return transactions, nil
		}
	}
	return nil, lastErr
}

// decodings returns the candidate text decodings of raw, best first.
func decodings(raw []byte) []string {
	if utf8.Valid(raw) {
		return []string{string(raw)}
	}
	var candidates []string
	for _, cm := range []*charmap.Charmap{charmap.Windows1252, charmap.ISO8859_1} {
		decoded, err := cm.NewDecoder().Bytes(raw)
		if err != nil {
			continue
		}
		candidates = append(candidates, string(decoded))
	}
	return candidates
}

func parse(text string, delimiter rune) ([]domain.Transaction, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: unreadable header", errLayout)
	}
	for i := range header {
		header[i] = strings.ToLower(strings.TrimSpace(header[i]))
	}

	columns, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}
	currencyIdx := indexOf(header, "currency")

	var transactions []domain.Transaction
	row := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row+1, err)
		}
		row++

		if len(record) != len(header) || isBlank(record) {
			// Mirrors the lenient source behavior: malformed or
			// empty lines are skipped, not fatal.
			continue
		}

		date, err := parseDate(record[columns["date"]])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		amount, err := parseAmount(record[columns["amount"]])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}

		currency := DefaultCurrency
		if currencyIdx >= 0 && strings.TrimSpace(record[currencyIdx]) != "" {
			currency = strings.ToUpper(strings.TrimSpace(record[currencyIdx]))
		}

		transactions = append(transactions, domain.Transaction{
			ID:       uuid.NewString(),
			Date:     date,
			Category: strings.TrimSpace(record[columns["category"]]),
			Amount:   amount,
			Currency: currency,
		})
	}
	return transactions, nil
}

// resolveColumns maps canonical column names to header indices using the
// alias table.
func resolveColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(columnAliases))
	for canonical, aliases := range columnAliases {
		idx := -1
		for _, alias := range aliases {
			if idx = indexOf(header, alias); idx >= 0 {
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("%w: missing %q (accepted: %s)",
				errLayout, canonical, strings.Join(columnAliases[canonical], ", "))
		}
		columns[canonical] = idx
	}
	return columns, nil
}

func indexOf(header []string, name string) int {
	for i, h := range header {
		if h == name {
			return i
		}
	}
	return -1
}

func isBlank(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}

func parseDate(field string) (civil.Date, error) {
	field = strings.TrimSpace(field)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, field); err == nil {
			return civil.DateOf(t), nil
		}
	}
	return civil.Date{}, fmt.Errorf("invalid date %q", field)
}

func parseAmount(field string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(field)
	for _, symbol := range []string{"$", "€", "£", ","} {
		cleaned = strings.ReplaceAll(cleaned, symbol, "")
	}
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q", field)
	}
	return amount, nil
}
