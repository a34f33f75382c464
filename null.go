package bertlv

/*
null.go implements the NULL overlay (spec.md §4.4, tag 5). Grounded
on go-asn1plus's null.go (no-decoded-value primitive, fixed zero
length).
*/

// NullTag is the fixed universal tag for NULL.
var NullTag = Tag{Class: ClassUniversal, Compound: false, Number: TagNull}

// Null represents the ASN.1 NULL type. It carries no decoded value.
type Null struct {
	findingsOf
}

// NewNull returns the canonical NULL TLV.
func NewNull() TLV {
	tlv, _ := NewPrimitive(NullTag, nil)
	return tlv
}

// DecodeNull validates that tlv is shaped as NULL: primitive, tag 5,
// empty value-field.
func DecodeNull(tlv TLV) (Null, error) {
	if tlv.Compound() || tlv.tag.Number != TagNull {
		return Null{}, shapeMismatch("Null", tlv)
	}
	if len(tlv.value) != 0 {
		return Null{}, typedConstructionErrorf("Null: value-field must be empty, got %d octets", len(tlv.value))
	}
	return Null{}, nil
}

func (Null) Comment() string { return "NULL" }
