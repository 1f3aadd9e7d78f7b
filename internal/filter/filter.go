// Package filter builds the predicates handed to the repositories' findMany operations.
//
// A Predicate is a disjunction of conditions. The resolvers only build predicates; the
// repositories render them into their own query language and never see free text.
package filter

import (
	"fmt"
	"strings"
)

// Field names understood by the link and comment repositories
const (
	FieldDescription = "description"
	FieldURL         = "url"
	FieldLinkID      = "linkId"
)

// Op is a comparison operator
type Op string

const (
	OpContains Op = "contains"
	OpEquals   Op = "equals"
)

// Condition compares a single field against a value
type Condition struct {
	Field string
	Op    Op
	Value interface{}
}

// Predicate matches a record when any of its conditions match.
// The zero value has no conditions and matches every record.
type Predicate struct {
	Any []Condition
}

// Universal returns the always-true predicate
func Universal() Predicate {
	return Predicate{}
}

// IsUniversal reports whether the predicate matches every record
func (p Predicate) IsUniversal() bool {
	return len(p.Any) == 0
}

// Compile turns an optional feed needle into a predicate over description and url.
// A nil or empty needle yields the universal predicate.
func Compile(needle *string) Predicate {
	if needle == nil || *needle == "" {
		return Universal()
	}
	return Predicate{Any: []Condition{
		{Field: FieldDescription, Op: OpContains, Value: *needle},
		{Field: FieldURL, Op: OpContains, Value: *needle},
	}}
}

// Equals builds a single-condition equality predicate
func Equals(field string, value interface{}) Predicate {
	return Predicate{Any: []Condition{{Field: field, Op: OpEquals, Value: value}}}
}

// Matches evaluates the predicate in memory. lookup returns the value of a field for the
// record under test and false when the record has no such field.
func (p Predicate) Matches(lookup func(field string) (interface{}, bool)) bool {
	if p.IsUniversal() {
		return true
	}
	for _, c := range p.Any {
		v, ok := lookup(c.Field)
		if !ok {
			continue
		}
		switch c.Op {
		case OpContains:
			if strings.Contains(fmt.Sprint(v), fmt.Sprint(c.Value)) {
				return true
			}
		case OpEquals:
			if fmt.Sprint(v) == fmt.Sprint(c.Value) {
				return true
			}
		}
	}
	return false
}

func (p Predicate) String() string {
	if p.IsUniversal() {
		return "true"
	}
	parts := make([]string, 0, len(p.Any))
	for _, c := range p.Any {
		parts = append(parts, fmt.Sprintf("%s %s %q", c.Field, c.Op, fmt.Sprint(c.Value)))
	}
	return strings.Join(parts, " OR ")
}
