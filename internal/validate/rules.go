package validate

import (
	"fmt"
	"time"
	"unicode/utf8"

	"coronet_planner/internal/models"
)

// Violation is a failed rule
type Violation struct {
	Kind    Kind
	Message string
}

// Rule checks one raw form value. A nil result means the value passed.
// Rules never panic: every input yields either nil or a Violation.
type Rule func(value string) *Violation

// Membership is the set a OneOf rule checks against
type Membership interface {
	Contains(value string) bool
}

// Required fails on an empty value. Whitespace counts as a value, matching
// the form schema's raw length check.
func Required(msg string) Rule {
	return func(value string) *Violation {
		if value == "" {
			return &Violation{Kind: KindMissing, Message: msg}
		}
		return nil
	}
}

// Length fails unless value is exactly n characters long
func Length(n int, msg string) Rule {
	return func(value string) *Violation {
		if utf8.RuneCountInString(value) != n {
			return &Violation{Kind: KindLength, Message: msg}
		}
		return nil
	}
}

// OneOf fails unless value is a member of set
func OneOf(set Membership, msg string) Rule {
	return func(value string) *Violation {
		if set == nil || !set.Contains(value) {
			return &Violation{Kind: KindEnum, Message: msg}
		}
		return nil
	}
}

// Numeric fails when value cannot be coerced to a number
func Numeric(msg string) Rule {
	return func(value string) *Violation {
		if _, err := models.Number(value).Float(); err != nil {
			return &Violation{Kind: KindType, Message: msg}
		}
		return nil
	}
}

// AtLeast coerces value to a number and fails when it is below min
func AtLeast(min float64, msg string) Rule {
	return func(value string) *Violation {
		f, err := models.Number(value).Float()
		if err != nil {
			return &Violation{Kind: KindType, Message: fmt.Sprintf("Expected a number, got %q", value)}
		}
		if f < min {
			return &Violation{Kind: KindRange, Message: msg}
		}
		return nil
	}
}

// NonNegative coerces value to a number and fails when it is below zero
func NonNegative(msg string) Rule {
	return AtLeast(0, msg)
}

// Date fails unless value is a YYYY-MM-DD calendar date
func Date(msg string) Rule {
	return func(value string) *Violation {
		if value == "" {
			return &Violation{Kind: KindMissing, Message: msg}
		}
		if _, err := time.Parse(models.DateLayout, value); err != nil {
			return &Violation{Kind: KindType, Message: fmt.Sprintf("Invalid date %q, expected YYYY-MM-DD", value)}
		}
		return nil
	}
}

// Chain runs rules in order and stops at the first failure, so a field
// reports at most one problem
func Chain(rules ...Rule) Rule {
	return func(value string) *Violation {
		for _, rule := range rules {
			if v := rule(value); v != nil {
				return v
			}
		}
		return nil
	}
}

// Optional skips rules when value is empty. Whitespace is still checked, so
// an optional enum rejects "   ".
func Optional(rules ...Rule) Rule {
	chained := Chain(rules...)
	return func(value string) *Violation {
		if value == "" {
			return nil
		}
		return chained(value)
	}
}

// collector gathers every failure of a record instead of stopping at the first
type collector struct {
	errs Errors
}

func (c *collector) check(path Path, value string, rules ...Rule) {
	if v := Chain(rules...)(value); v != nil {
		c.errs = append(c.errs, FieldError{Path: path, Kind: v.Kind, Message: v.Message})
	}
}

func (c *collector) fail(path Path, kind Kind, msg string) {
	c.errs = append(c.errs, FieldError{Path: path, Kind: kind, Message: msg})
}

func (c *collector) merge(errs Errors) {
	c.errs = append(c.errs, errs...)
}
