package constants

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// Term is one of the four fixed academic-period labels.
type Term string

const (
	TermFirst  Term = "FIRST"
	TermSecond Term = "SECOND"
	TermThird  Term = "THIRD"
	TermFinal  Term = "FINAL"
)

var AllTerms = []Term{TermFirst, TermSecond, TermThird, TermFinal}

func (t Term) Valid() bool {
	switch t {
	case TermFirst, TermSecond, TermThird, TermFinal:
		return true
	}
	return false
}

func (t Term) String() string { return string(t) }

// ParseTerm accepts any casing and surrounding spaces.
func ParseTerm(s string) (Term, error) {
	t := Term(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("invalid term %q (want one of FIRST, SECOND, THIRD, FINAL)", s)
	}
	return t, nil
}

func (t Term) Value() (driver.Value, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid term %q", string(t))
	}
	return string(t), nil
}

func (t *Term) Scan(src any) error {
	switch v := src.(type) {
	case string:
		*t = Term(v)
	case []byte:
		*t = Term(string(v))
	case nil:
		*t = ""
	default:
		return fmt.Errorf("cannot scan %T into Term", src)
	}
	return nil
}
