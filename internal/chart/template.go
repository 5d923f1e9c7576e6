package chart

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/MrJamesThe3rd/daftar/internal/encoding"
)

// TemplateAccount is one row of a chart template.
type TemplateAccount struct {
	Code  string
	Title string
	Type  Type
}

// DefaultTemplate is the reference hierarchy seeded into a new fiscal year.
// Posting defaults in config refer to these codes.
func DefaultTemplate() []TemplateAccount {
	return []TemplateAccount{
		{"1", "Current assets", TypeAsset},
		{"11", "Cash and banks", TypeAsset},
		{"1101", "Cash on hand", TypeAsset},
		{"1102", "Bank accounts", TypeAsset},
		{"1103", "Petty cash", TypeAsset},
		{"12", "Receivables", TypeAsset},
		{"1201", "Accounts receivable", TypeAsset},
		{"1202", "Checks receivable", TypeAsset},
		{"1203", "VAT receivable", TypeAsset},
		{"13", "Inventory", TypeAsset},
		{"1301", "Merchandise", TypeAsset},

		{"2", "Non-current assets", TypeAsset},
		{"21", "Property and equipment", TypeAsset},
		{"2101", "Equipment", TypeAsset},
		{"2102", "Furniture and fixtures", TypeAsset},

		{"3", "Current liabilities", TypeLiability},
		{"31", "Payables", TypeLiability},
		{"3101", "Accounts payable", TypeLiability},
		{"3102", "Checks payable", TypeLiability},
		{"3103", "VAT payable", TypeLiability},
		{"32", "Accrued liabilities", TypeLiability},
		{"3201", "Salaries payable", TypeLiability},

		{"4", "Non-current liabilities", TypeLiability},
		{"41", "Long-term loans", TypeLiability},
		{"4101", "Bank loans", TypeLiability},

		{"5", "Equity", TypeEquity},
		{"51", "Capital", TypeEquity},
		{"5101", "Owner's capital", TypeEquity},
		{"52", "Retained earnings", TypeEquity},
		{"5201", "Retained earnings", TypeEquity},

		{"6", "Income", TypeIncome},
		{"61", "Operating income", TypeIncome},
		{"6101", "Sales", TypeIncome},
		{"6102", "Services income", TypeIncome},
		{"62", "Other income", TypeIncome},
		{"6201", "Other income", TypeIncome},

		{"7", "Expenses", TypeExpense},
		{"71", "Cost of sales", TypeExpense},
		{"7101", "Purchases", TypeExpense},
		{"72", "Operating expenses", TypeExpense},
		{"7201", "Salaries", TypeExpense},
		{"7202", "Rent", TypeExpense},
		{"7203", "Bank fees", TypeExpense},
		{"7204", "General expenses", TypeExpense},
	}
}

type column int

const (
	colCode column = iota
	colTitle
	colType
)

// headerNames maps accepted header labels, English and Persian, to columns.
var headerNames = map[string]column{
	"code":         colCode,
	"account_code": colCode,
	"کد":           colCode,
	"کد حساب":      colCode,
	"title":        colTitle,
	"name":         colTitle,
	"account_name": colTitle,
	"عنوان":        colTitle,
	"نام حساب":     colTitle,
	"type":         colType,
	"account_type": colType,
	"نوع":          colType,
	"ماهیت":        colType,
}

var typeNames = map[string]Type{
	"asset":     TypeAsset,
	"liability": TypeLiability,
	"equity":    TypeEquity,
	"income":    TypeIncome,
	"expense":   TypeExpense,
	"دارایی":    TypeAsset,
	"بدهی":      TypeLiability,
	"سرمایه":    TypeEquity,
	"درآمد":     TypeIncome,
	"هزینه":     TypeExpense,
}

// ReadTemplate parses a chart template CSV. The first row must be a header
// naming the code, title and type columns in any order; the delimiter may be
// a comma or a semicolon and the encoding is detected.
func ReadTemplate(r io.Reader) ([]TemplateAccount, error) {
	utf8Reader, err := encoding.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detecting encoding: %w", err)
	}

	data, err := io.ReadAll(utf8Reader)
	if err != nil {
		return nil, fmt.Errorf("reading template: %w", err)
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = sniffDelimiter(data)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading template CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	idx, err := mapHeader(records[0])
	if err != nil {
		return nil, err
	}

	var accounts []TemplateAccount

	for i, rec := range records[1:] {
		if isBlank(rec) {
			continue
		}

		acct, err := parseRow(rec, idx)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}

		accounts = append(accounts, acct)
	}

	return accounts, nil
}

// LoadTemplate reads a chart template from a CSV file.
func LoadTemplate(path string) ([]TemplateAccount, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening chart template: %w", err)
	}
	defer f.Close()

	return ReadTemplate(f)
}

func sniffDelimiter(data []byte) rune {
	header, _, _ := bytes.Cut(data, []byte("\n"))
	if bytes.Count(header, []byte(";")) > bytes.Count(header, []byte(",")) {
		return ';'
	}

	return ','
}

func mapHeader(header []string) (map[column]int, error) {
	idx := make(map[column]int, 3)

	for i, h := range header {
		if c, ok := headerNames[strings.ToLower(strings.TrimSpace(h))]; ok {
			if _, dup := idx[c]; !dup {
				idx[c] = i
			}
		}
	}

	for _, c := range []column{colCode, colTitle, colType} {
		if _, ok := idx[c]; !ok {
			return nil, fmt.Errorf("%w: header %v lacks a code, title or type column", ErrInvalidTemplateRow, header)
		}
	}

	return idx, nil
}

func parseRow(rec []string, idx map[column]int) (TemplateAccount, error) {
	field := func(c column) string {
		if idx[c] >= len(rec) {
			return ""
		}

		return strings.TrimSpace(rec[idx[c]])
	}

	code := NormalizeCode(field(colCode))
	if _, err := LevelOf(code); err != nil {
		return TemplateAccount{}, err
	}

	title := field(colTitle)
	if title == "" {
		return TemplateAccount{}, fmt.Errorf("%w: account %s has no title", ErrInvalidTemplateRow, code)
	}

	typ, ok := typeNames[strings.ToLower(field(colType))]
	if !ok {
		return TemplateAccount{}, fmt.Errorf("%w: account %s has unknown type %q", ErrInvalidTemplateRow, code, field(colType))
	}

	return TemplateAccount{Code: code, Title: title, Type: typ}, nil
}

func isBlank(rec []string) bool {
	return !slices.ContainsFunc(rec, func(s string) bool { return strings.TrimSpace(s) != "" })
}

// sortParentsFirst orders accounts so that every parent precedes its children.
func sortParentsFirst(accounts []TemplateAccount) {
	slices.SortStableFunc(accounts, func(a, b TemplateAccount) int {
		if len(a.Code) != len(b.Code) {
			return len(a.Code) - len(b.Code)
		}

		return strings.Compare(a.Code, b.Code)
	})
}
