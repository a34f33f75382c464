package bertlv

/*
overlay.go defines the shared shape all universal-type overlays
implement (spec.md §4.4, §9's "single trait/interface... implemented
by each overlay variant"), the Finding type, the restricted-character-
set validation template shared by the string overlays, and a trimmed
Constraint/ConstraintGroup facility.

Grounded on go-asn1plus's constr.go/constr_on.go (Constraint closure
shape, Range/Size generic constructors over golang.org/x/exp/constraints)
and evt.go (Overlay-adjacent "reports findings" concept, here
simplified to a plain slice rather than a bitmask event log).
*/

import "golang.org/x/exp/constraints"

// Finding is a non-fatal conformance deviation noted while parsing a
// universal overlay from an octet source (spec.md §3, §4.4). Findings
// never fail a parse; they accumulate for the caller to inspect.
type Finding struct {
	Rule    string // short machine-stable identifier, e.g. "redundant-sign-octet"
	Comment string // human-readable description
}

func (f Finding) String() string { return f.Comment }

// Overlay is implemented by every universal-type wrapper: it exposes
// its findings and a human-readable one-line comment describing the
// decoded value, independent of the concrete decoded type each
// overlay carries.
type Overlay interface {
	Findings() []Finding
	Comment() string
}

// findingsOf is a small embeddable base most overlays compose to get
// a working Findings() method without repeating the slice plumbing.
type findingsOf struct {
	findings []Finding
}

func (f findingsOf) Findings() []Finding {
	out := make([]Finding, len(f.findings))
	copy(out, f.findings)
	return out
}

func (f *findingsOf) note(rule, comment string) {
	debugFindings("note", rule, comment)
	f.findings = append(f.findings, Finding{Rule: rule, Comment: comment})
}

// Constraint validates a candidate value, returning a
// TypedConstructionError-kind error on violation. ConstraintGroup
// chains several in sequence, short-circuiting on the first failure.
type Constraint func(any) error

type ConstraintGroup []Constraint

func (g ConstraintGroup) Validate(x any) error {
	for _, c := range g {
		if err := c(x); err != nil {
			return err
		}
	}
	return nil
}

// Range returns a Constraint over any ordered type, rejecting values
// outside [minimum, maximum].
func Range[T constraints.Ordered](minimum, maximum T) Constraint {
	return func(x any) error {
		v, ok := x.(T)
		if !ok {
			return typedConstructionErrorf("Range: value is not the expected ordered type")
		}
		if v < minimum || v > maximum {
			return typedConstructionErrorf("Range: value %v out of bounds [%v, %v]", v, minimum, maximum)
		}
		return nil
	}
}

// Lengthy is satisfied by any type reporting a logical length, used
// by Size.
type Lengthy interface {
	Len() int
}

// Size returns a Constraint that rejects values whose Len() falls
// outside [minimum, maximum].
func Size[T Lengthy](minimum, maximum int) Constraint {
	return func(x any) error {
		v, ok := x.(T)
		if !ok {
			return typedConstructionErrorf("Size: value does not implement Lengthy")
		}
		if n := v.Len(); n < minimum || n > maximum {
			return typedConstructionErrorf("Size: length %d out of bounds [%d, %d]", n, minimum, maximum)
		}
		return nil
	}
}

// From returns a Constraint rejecting any rune of a plain string value
// not present in allowed; any other value type is rejected. The string
// overlays do not use it: they check their repertoires through
// validateCharset (PrintableString, TeletexString) or firstNonIA5
// (IA5String).
func From(allowed string) Constraint {
	set := make(map[rune]struct{}, len(allowed))
	for _, r := range allowed {
		set[r] = struct{}{}
	}
	return func(x any) error {
		s, ok := x.(string)
		if !ok {
			return typedConstructionErrorf("From: value is not a string")
		}
		for i, r := range s {
			if _, ok := set[r]; !ok {
				return typedConstructionErrorf("From: character %q at position %d is not allowed", r, i)
			}
		}
		return nil
	}
}

// validateCharset reports the index of the first rune in s absent
// from allowed, or -1 if every rune is permitted. Shared by overlays
// validating a parsed (not yet trusted) string against a repertoire
// without raising -- callers turn a non-negative result into a
// Finding rather than an error.
func validateCharset(s string, allowed map[rune]struct{}) int {
	for i, r := range s {
		if _, ok := allowed[r]; !ok {
			return i
		}
	}
	return -1
}

func runeSet(chars string) map[rune]struct{} {
	set := make(map[rune]struct{}, len(chars))
	for _, r := range chars {
		set[r] = struct{}{}
	}
	return set
}

// runeRange is an inclusive [Lo, Hi] code point range, used by overlays
// whose repertoire is easier to state as ranges than as an enumerated
// string (e.g. TeletexString's scattered Latin-1 and diacritic blocks).
type runeRange struct{ Lo, Hi rune }

func runeRangeSet(ranges ...runeRange) map[rune]struct{} {
	set := make(map[rune]struct{})
	for _, rg := range ranges {
		for r := rg.Lo; r <= rg.Hi; r++ {
			set[r] = struct{}{}
		}
	}
	return set
}
