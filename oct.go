package bertlv

/*
oct.go implements the OctetString overlay (spec.md §4.4, tag 4).
Grounded on go-asn1plus's oct.go (String()/Len() accessor shape) --
the teacher constrains content to the Latin-1 range via OctetSpec, but
spec.md's table marks OCTET STRING "Always valid": this overlay
carries the raw byte sequence without any character-set constraint.
*/

// OctetStringTag is the fixed universal tag for OCTET STRING.
var OctetStringTag = Tag{Class: ClassUniversal, Compound: false, Number: TagOctetString}

// OctetString represents the ASN.1 OCTET STRING type: an arbitrary
// byte sequence.
type OctetString struct {
	findingsOf
	Bytes []byte
}

func (o OctetString) Len() int       { return len(o.Bytes) }
func (o OctetString) String() string { return string(o.Bytes) }
func (o OctetString) Comment() string {
	return "OCTET STRING (" + itoa(len(o.Bytes)) + " octets)"
}

// NewOctetString constructs an OctetString from raw bytes and encodes
// it as a TLV. Always valid; constraints are available for callers
// wanting to bound length or content.
func NewOctetString(value []byte, cs ...Constraint) (OctetString, TLV, error) {
	o := OctetString{Bytes: cloneBytes(value)}
	var group ConstraintGroup = cs
	if err := group.Validate(o); err != nil {
		return OctetString{}, TLV{}, err
	}
	tlv, _ := NewPrimitive(OctetStringTag, o.Bytes)
	return o, tlv, nil
}

// DecodeOctetString decodes tlv as OCTET STRING. Always succeeds for
// a primitive tag-4 node.
func DecodeOctetString(tlv TLV) (OctetString, error) {
	if tlv.Compound() || tlv.tag.Number != TagOctetString {
		return OctetString{}, shapeMismatch("OctetString", tlv)
	}
	return OctetString{Bytes: cloneBytes(tlv.value)}, nil
}
