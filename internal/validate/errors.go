package validate

import (
	"sort"
	"strconv"
	"strings"
)

// Kind classifies a field failure
type Kind string

const (
	KindMissing Kind = "missing" // required value left blank
	KindType    Kind = "type"    // value could not be coerced, e.g. a non-numeric fuel load
	KindRange   Kind = "range"   // number below its minimum
	KindLength  Kind = "length"  // wrong length, e.g. a 3-letter ICAO code
	KindEnum    Kind = "enum"    // value outside its catalog
)

// Path addresses a field of a mission record, e.g. aircraft[2].tailNumber
type Path string

// Root is the empty path of the record itself
const Root Path = ""

// Field appends a named field
func (p Path) Field(name string) Path {
	if p == Root {
		return Path(name)
	}
	return p + "." + Path(name)
}

// Index appends a list field and an element index
func (p Path) Index(name string, i int) Path {
	return p.Field(name) + Path("["+strconv.Itoa(i)+"]")
}

func (p Path) String() string {
	return string(p)
}

// FieldError is one failed field
type FieldError struct {
	Path    Path   `json:"path" yaml:"path"`
	Kind    Kind   `json:"kind" yaml:"kind"`
	Message string `json:"message" yaml:"message"`
}

func (e FieldError) Error() string {
	return string(e.Path) + ": " + e.Message
}

// Errors is the complete set of failures for a record. It implements error
// so that callers which only need a pass/fail can treat it as one.
type Errors []FieldError

func (errs Errors) Error() string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// Has reports whether any failure is recorded at path
func (errs Errors) Has(path Path) bool {
	return len(errs.ForPath(path)) > 0
}

// ForPath returns the failures recorded at path
func (errs Errors) ForPath(path Path) Errors {
	var out Errors
	for _, e := range errs {
		if e.Path == path {
			out = append(out, e)
		}
	}
	return out
}

// sorted orders failures by path then message so a given record always
// reports the same list
func (errs Errors) sorted() Errors {
	sort.SliceStable(errs, func(i, j int) bool {
		if errs[i].Path != errs[j].Path {
			return errs[i].Path < errs[j].Path
		}
		return errs[i].Message < errs[j].Message
	})
	return errs
}
