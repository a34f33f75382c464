package bertlv

/*
seq.go implements the Sequence overlay (spec.md §4.4, tag 0x30).
Grounded on go-asn1plus's seq.go only for the universal SEQUENCE tag
convention (getSequenceTag's default of class universal, tag 16,
constructed); the reflective struct-marshaling machinery in the
teacher's file (marshalSequence, unmarshalSequence, struct-tag field
walking) is schema-driven ASN.1 compilation, out of scope per spec.md
§1's Non-goals -- this overlay is a thin, always-valid wrapper over
TLV's own child list, since SEQUENCE has no ordering or uniqueness
constraint beyond what TLV already provides.
*/

// SequenceTag is the fixed universal tag for SEQUENCE.
var SequenceTag = Tag{Class: ClassUniversal, Compound: true, Number: TagSequence}

// Sequence represents the ASN.1 SEQUENCE type: an ordered child list,
// re-emitted in insertion order.
type Sequence struct {
	findingsOf
	tlv TLV
}

func (s Sequence) Len() int        { return len(s.tlv.children) }
func (s Sequence) Children() []TLV { return s.tlv.Children() }
func (s Sequence) TLV() TLV        { return s.tlv }

func (s Sequence) Comment() string {
	return "SEQUENCE (" + itoa(len(s.tlv.children)) + " elements)"
}

// NewSequence constructs a Sequence from a child list and encodes it
// as a TLV. Always valid (spec.md §4.4: "Always valid").
func NewSequence(children []TLV) (Sequence, TLV, error) {
	tlv, err := NewConstructed(SequenceTag, children)
	if err != nil {
		return Sequence{}, TLV{}, err
	}
	return Sequence{tlv: tlv}, tlv, nil
}

// DecodeSequence decodes tlv as SEQUENCE.
func DecodeSequence(tlv TLV) (Sequence, error) {
	if !tlv.Compound() || tlv.tag.Number != TagSequence {
		return Sequence{}, shapeMismatch("Sequence", tlv)
	}
	return Sequence{tlv: tlv}, nil
}
