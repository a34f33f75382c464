package bertlv

/*
set.go implements the Set overlay (spec.md §4.4, tag 0x31) and its
DER re-encode ordering (spec.md §4.4, §8 invariant 5, scenario S6).
Grounded on go-asn1plus's set.go (DER sort-before-encode idea), but
this sorts by the (class, tag-number) pair spec.md prescribes rather
than the teacher's raw byte-compare of encoded elements; the
reflective slice/struct marshaling in the teacher's file is dropped
as schema-driven, per spec.md §1's Non-goals.
*/

import "sort"

// SetTag is the fixed universal tag for SET.
var SetTag = Tag{Class: ClassUniversal, Compound: true, Number: TagSet}

// Set represents the ASN.1 SET type: children are re-emitted in DER
// order (ascending by class, then tag-number), with duplicate tags
// illegal on construction from typed values.
type Set struct {
	findingsOf
	tlv TLV
}

func (s Set) Len() int        { return len(s.tlv.children) }
func (s Set) Children() []TLV { return s.tlv.Children() }
func (s Set) TLV() TLV        { return s.tlv }

func (s Set) Comment() string {
	return "SET (" + itoa(len(s.tlv.children)) + " elements)"
}

func derOrderLess(a, b TLV) bool {
	if a.tag.Class != b.tag.Class {
		return a.tag.Class < b.tag.Class
	}
	return a.tag.Number < b.tag.Number
}

// NewSet constructs a Set from a child list, sorts it into DER order,
// and encodes it as a TLV. Duplicate tags among children raise
// TypedConstructionError (spec.md §4.4, scenario S6).
func NewSet(children []TLV) (Set, TLV, error) {
	sorted := make([]TLV, len(children))
	copy(sorted, children)
	sort.SliceStable(sorted, func(i, j int) bool { return derOrderLess(sorted[i], sorted[j]) })

	for i := 1; i < len(sorted); i++ {
		if sorted[i].tag == sorted[i-1].tag {
			return Set{}, TLV{}, typedConstructionErrorf("Set: duplicate tag %s among typed children", sorted[i].tag.String())
		}
	}

	tlv, err := NewConstructed(SetTag, sorted)
	if err != nil {
		return Set{}, TLV{}, err
	}
	return Set{tlv: tlv}, tlv, nil
}

// DecodeSet decodes tlv as SET. Per spec.md §4.4: on parse, duplicate
// tags or ordering violations are recorded as findings (the first
// occurrence of a duplicated tag is kept, later ones dropped) rather
// than raised, since the source octets may be untrusted BER rather
// than DER. The returned Set holds its children in DER order; tlv
// itself is left unchanged.
func DecodeSet(tlv TLV) (Set, error) {
	if !tlv.Compound() || tlv.tag.Number != TagSet {
		return Set{}, shapeMismatch("Set", tlv)
	}

	s := Set{tlv: tlv}

	ordered := true
	for i := 1; i < len(tlv.children); i++ {
		if derOrderLess(tlv.children[i], tlv.children[i-1]) {
			ordered = false
			break
		}
	}
	if !ordered {
		s.note("der-ordering-violation", "SET children are not in ascending (class, tag) order")
	}

	seen := make(map[Tag]bool, len(tlv.children))
	var deduped []TLV
	dup := false
	for _, c := range tlv.children {
		if seen[c.tag] {
			dup = true
			continue
		}
		seen[c.tag] = true
		deduped = append(deduped, c)
	}
	if dup {
		s.note("duplicate-tag", "SET contains duplicate tags; first occurrence kept")
		s.tlv.children = deduped
	}
	if !ordered {
		sorted := make([]TLV, len(s.tlv.children))
		copy(sorted, s.tlv.children)
		sort.SliceStable(sorted, func(i, j int) bool { return derOrderLess(sorted[i], sorted[j]) })
		s.tlv.children = sorted
	}

	return s, nil
}
