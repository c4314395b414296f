// Package validation holds the expense input rules shared by the entry form
// and the CSV reader.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/cashburn/internal/model"
)

// MaxAmountPlaces is the number of decimal places an amount may carry.
const MaxAmountPlaces = 2

// ExpenseInput is raw, unparsed expense input as typed by a user or read
// from a CSV row.
type ExpenseInput struct {
	Date     string `validate:"required,datetime=2006-01-02" field:"date"`
	Amount   string `validate:"required,positive_amount" field:"amount"`
	Category string `validate:"required,expense_category" field:"category"`
}

// Validator wraps the go-playground validator with the expense rules.
type Validator struct {
	validate *validator.Validate
}

// Default returns the shared validator instance. Safe for concurrent use.
var Default = sync.OnceValue(New)

// New creates a validator with the custom expense rules registered.
func New() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)
	_ = v.RegisterValidation("expense_category", validateCategory)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("field"); name != "" {
			return name
		}
		return strings.ToLower(fld.Name)
	})

	return &Validator{validate: v}
}

// validatePositiveAmount accepts decimal strings greater than zero with at
// most two decimal places.
func validatePositiveAmount(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
	if err != nil {
		return false
	}
	if !d.IsPositive() {
		return false
	}
	return d.Equal(d.Truncate(MaxAmountPlaces))
}

func validateCategory(fl validator.FieldLevel) bool {
	_, err := model.ParseCategory(fl.Field().String())
	return err == nil
}

// ValidateExpense checks every field of in and returns a readable error
// naming the first failing field.
func (v *Validator) ValidateExpense(in ExpenseInput) error {
	if err := v.validate.Struct(in); err != nil {
		return formatError(err)
	}
	return nil
}

// ValidateField checks a single value against the rule of the named
// ExpenseInput field ("date", "amount" or "category").
func (v *Validator) ValidateField(field, value string) error {
	var tag string
	switch field {
	case "date":
		tag = "required,datetime=2006-01-02"
	case "amount":
		tag = "required,positive_amount"
	case "category":
		tag = "required,expense_category"
	default:
		return fmt.Errorf("unknown field %q", field)
	}
	if err := v.validate.Var(strings.TrimSpace(value), tag); err != nil {
		return describe(field, err)
	}
	return nil
}

// ToExpense validates in and converts it into a model.Expense.
func (v *Validator) ToExpense(in ExpenseInput) (model.Expense, error) {
	in.Date = strings.TrimSpace(in.Date)
	in.Amount = strings.TrimSpace(in.Amount)
	in.Category = strings.TrimSpace(in.Category)

	if err := v.ValidateExpense(in); err != nil {
		return model.Expense{}, err
	}

	date, err := time.ParseInLocation(model.DateLayout, in.Date, time.Local)
	if err != nil {
		return model.Expense{}, fmt.Errorf("date: %w", err)
	}
	amount, err := decimal.NewFromString(in.Amount)
	if err != nil {
		return model.Expense{}, fmt.Errorf("amount: %w", err)
	}
	category, err := model.ParseCategory(in.Category)
	if err != nil {
		return model.Expense{}, fmt.Errorf("category: %w", err)
	}

	return model.Expense{
		Date:     date,
		Amount:   amount,
		Category: category,
	}, nil
}

func formatError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	return describe(verrs[0].Field(), err)
}

func describe(field string, err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	switch verrs[0].Tag() {
	case "required":
		return fmt.Errorf("%s is required", field)
	case "datetime":
		return fmt.Errorf("%s must be a date like 2006-01-02", field)
	case "positive_amount":
		return fmt.Errorf("%s must be greater than 0 with at most %d decimal places", field, MaxAmountPlaces)
	case "expense_category":
		names := make([]string, len(model.Categories))
		for i, c := range model.Categories {
			names[i] = string(c)
		}
		return fmt.Errorf("%s must be one of %s", field, strings.Join(names, ", "))
	default:
		return fmt.Errorf("%s is invalid", field)
	}
}
