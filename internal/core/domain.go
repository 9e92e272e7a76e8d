package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Income     TransactionType = "income"
	Expense    TransactionType = "expense"
	Savings    TransactionType = "savings"
	Investment TransactionType = "investment"
)

type (
	// TransactionType is one of the four fixed transaction kinds,
	// always stored lower-case.
	TransactionType string

	// Transaction is a single logged entry in the ledger. ID and Date are
	// assigned at creation and never change; Modified is stamped on edit.
	Transaction struct {
		ID           string          `json:"id"`
		Amount       Money           `json:"amount"`
		Type         TransactionType `json:"type"`
		MainCategory string          `json:"mainCategory"`
		SubCategory  string          `json:"subCategory"`
		Date         time.Time       `json:"date"`
		Modified     *time.Time      `json:"modified,omitempty"`
		Currency     string          `json:"currency"`
	}

	// Draft carries the user-editable fields of a transaction.
	Draft struct {
		Amount       Money
		Type         TransactionType
		MainCategory string
		SubCategory  string
	}

	// UserProfile is collected once during onboarding and read-only afterwards.
	UserProfile struct {
		Name     string `json:"name"`
		Age      int    `json:"age"`
		Gender   string `json:"gender"`
		Currency string `json:"currency"`
	}
)

var (
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrInvalidType        = errors.New("invalid transaction type")
	ErrEmptyCategory      = errors.New("empty main category")
	ErrEmptySubcategory   = errors.New("empty subcategory")
	ErrUnknownCategory    = errors.New("unknown category for type")
	ErrUnknownSubcategory = errors.New("unknown subcategory for category")

	ErrEmptyName       = errors.New("empty name")
	ErrInvalidAge      = errors.New("invalid age")
	ErrInvalidGender   = errors.New("invalid gender")
	ErrInvalidCurrency = errors.New("unsupported currency")
)

// ParseTransactionType normalizes a raw type string to one of the four
// fixed transaction types.
func ParseTransactionType(s string) (TransactionType, error) {
	switch t := TransactionType(strings.ToLower(strings.TrimSpace(s))); t {
	case Income, Expense, Savings, Investment:
		return t, nil
	default:
		return "", ErrInvalidType
	}
}

func (t TransactionType) Valid() bool {
	switch t {
	case Income, Expense, Savings, Investment:
		return true
	}
	return false
}

func (t TransactionType) String() string {
	return string(t)
}

// Validate checks field-level constraints of a draft. Taxonomy membership
// is checked separately via ValidateCategory.
func (d Draft) Validate() error {
	if err := d.Amount.Validate(); err != nil {
		return err
	}
	if !d.Type.Valid() {
		return ErrInvalidType
	}
	if strings.TrimSpace(d.MainCategory) == "" {
		return ErrEmptyCategory
	}
	if strings.TrimSpace(d.SubCategory) == "" {
		return ErrEmptySubcategory
	}
	return nil
}

// Genders accepted by the onboarding flow.
var Genders = []string{"Male", "Female", "Other"}

func (p UserProfile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if p.Age < 1 || p.Age > 120 {
		return ErrInvalidAge
	}
	ok := false
	for _, g := range Genders {
		if p.Gender == g {
			ok = true
			break
		}
	}
	if !ok {
		return ErrInvalidGender
	}
	if !SupportedCurrency(p.Currency) {
		return ErrInvalidCurrency
	}
	return nil
}
