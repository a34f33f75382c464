package bertlv

/*
bool.go implements the Boolean overlay (spec.md §4.4, tag 1).
Grounded on go-asn1plus's bool.go (Boolean bool, Byte()/Bool()/String()
accessor shape) -- the type conversion switch in NewBoolean is kept
but narrowed to the literal Go types a typed constructor should accept.
*/

// BooleanTag is the fixed universal tag for BOOLEAN.
var BooleanTag = Tag{Class: ClassUniversal, Compound: false, Number: TagBoolean}

// Boolean represents the ASN.1 BOOLEAN type.
type Boolean struct {
	findingsOf
	value bool
}

// Bool returns the receiver's decoded value.
func (b Boolean) Bool() bool { return b.value }

// Byte returns the DER-canonical wire encoding of b: 0xFF for true,
// 0x00 for false.
func (b Boolean) Byte() byte {
	if b.value {
		return 0xFF
	}
	return 0x00
}

func (b Boolean) String() string { return bool2str(b.value) }

func (b Boolean) Comment() string {
	if b.value {
		return "BOOLEAN true"
	}
	return "BOOLEAN false"
}

// NewBoolean constructs a Boolean from a native bool and encodes it
// as a TLV.
func NewBoolean(x bool, cs ...Constraint) (Boolean, TLV, error) {
	var group ConstraintGroup = cs
	if err := group.Validate(x); err != nil {
		return Boolean{}, TLV{}, err
	}
	b := Boolean{value: x}
	value := []byte{0x00}
	if x {
		value[0] = 0xFF
	}
	tlv, _ := NewPrimitive(BooleanTag, value)
	return b, tlv, nil
}

// DecodeBoolean decodes tlv as BOOLEAN. Per spec.md §4.4: the
// value-field must be exactly one octet; any non-zero byte is true.
// A non-0xFF true byte is conforming BER but not DER-canonical, so
// it is recorded as a finding rather than rejected.
func DecodeBoolean(tlv TLV) (Boolean, error) {
	if tlv.Compound() || tlv.tag.Number != TagBoolean {
		return Boolean{}, shapeMismatch("Boolean", tlv)
	}
	if len(tlv.value) != 1 {
		return Boolean{}, typedConstructionErrorf("Boolean: value-field must be exactly 1 octet, got %d", len(tlv.value))
	}

	b := Boolean{value: tlv.value[0] != 0x00}
	if b.value && tlv.value[0] != 0xFF {
		b.note("non-canonical-true-byte", "BOOLEAN true encoded with non-0xFF byte "+hexstr(tlv.value))
	}
	return b, nil
}
