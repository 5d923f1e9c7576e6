package chart

import (
	"fmt"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/daftar/internal/fault"
)

var (
	ErrInvalidCode        = fault.New(fault.KindValidation, "invalid_code", "invalid account code")
	ErrInvalidAccount     = fault.New(fault.KindValidation, "invalid_account", "invalid account")
	ErrTypeMismatch       = fault.New(fault.KindValidation, "type_mismatch", "account type differs from its parent")
	ErrDuplicateCode      = fault.New(fault.KindStateConflict, "duplicate_code", "account code already exists")
	ErrParentHasPostings  = fault.New(fault.KindStateConflict, "parent_has_postings", "parent account already has postings")
	ErrAlreadySeeded      = fault.New(fault.KindStateConflict, "already_seeded", "fiscal year already has a chart of accounts")
	ErrUnknownAccount     = fault.New(fault.KindReferential, "unknown_account", "unknown account")
	ErrNotLeafAccount     = fault.New(fault.KindValidation, "not_leaf_account", "account has sub-accounts and cannot take postings")
	ErrAccountInUse       = fault.New(fault.KindInUse, "account_in_use", "account is in use")
	ErrInvalidTemplateRow = fault.New(fault.KindValidation, "invalid_template_row", "invalid chart template row")
)

type Type string

const (
	TypeAsset     Type = "asset"
	TypeLiability Type = "liability"
	TypeEquity    Type = "equity"
	TypeIncome    Type = "income"
	TypeExpense   Type = "expense"
)

func (t Type) Valid() bool {
	switch t {
	case TypeAsset, TypeLiability, TypeEquity, TypeIncome, TypeExpense:
		return true
	}

	return false
}

// DebitNormal reports whether the account type grows with debits.
func (t Type) DebitNormal() bool {
	return t == TypeAsset || t == TypeExpense
}

// Account is one node of a fiscal year's chart. Only leaves take postings.
type Account struct {
	ID           int64
	FiscalYearID int64
	Code         string
	Title        string
	Level        int
	ParentCode   string
	Type         Type
	IsLeaf       bool
	CreatedAt    time.Time
}

// Code widths per level: group, general, subsidiary, detail.
var levelWidths = []int{1, 2, 4, 6}

// MaxLevel is the deepest level a code can have.
const MaxLevel = 4

// LevelOf returns the level encoded by the code's length.
func LevelOf(code string) (int, error) {
	if code == "" {
		return 0, fmt.Errorf("%w: empty code", ErrInvalidCode)
	}

	for _, r := range code {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q is not numeric", ErrInvalidCode, code)
		}
	}

	for i, w := range levelWidths {
		if len(code) == w {
			return i + 1, nil
		}
	}

	return 0, fmt.Errorf("%w: %q has %d digits, want one of %v", ErrInvalidCode, code, len(code), levelWidths)
}

// ParentCode returns the parent's code, or "" for a group account.
func ParentCode(code string) string {
	level, err := LevelOf(code)
	if err != nil || level == 1 {
		return ""
	}

	return code[:levelWidths[level-2]]
}

// CodeAtLevel truncates code to the given level, or returns "" when code is
// shallower than level.
func CodeAtLevel(code string, level int) string {
	if level < 1 || level > MaxLevel || len(code) < levelWidths[level-1] {
		return ""
	}

	return code[:levelWidths[level-1]]
}

// Descends reports whether code sits strictly below ancestor in the tree.
func Descends(code, ancestor string) bool {
	return len(code) > len(ancestor) && strings.HasPrefix(code, ancestor)
}

// NormalizeCode trims the code and maps Persian and Arabic-Indic digits to ASCII.
func NormalizeCode(code string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= '۰' && r <= '۹':
			return '0' + (r - '۰')
		case r >= '٠' && r <= '٩':
			return '0' + (r - '٠')
		}

		return r
	}, strings.TrimSpace(code))
}
