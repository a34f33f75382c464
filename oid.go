package bertlv

/*
oid.go implements the ObjectIdentifier overlay (spec.md §4.4, tag 6)
and its RelativeOID sibling. Grounded on go-asn1plus's oid.go: the
VLQ encode/decode (encodeVLQ, the subidentifier accumulation loop in
readBER), the 40*a+b first-two-arc packing (decodeFirstArcs), and the
numeric dotted-string validator (isNumericOID/isValidOIDPrefix).
Trimmed of the reflective write()/read() Packet-bound methods and the
IntSlice/Uint64Slice conversions tied to the teacher's external-type
interop surface (encoding/asn1, crypto/x509) which SPEC_FULL.md does
not call for.
*/

import "math/big"

// OIDTag is the fixed universal tag for OBJECT IDENTIFIER.
var OIDTag = Tag{Class: ClassUniversal, Compound: false, Number: TagOID}

// ObjectIdentifier represents the ASN.1 OBJECT IDENTIFIER type: an
// ordered, non-negative arc list with at least two elements.
type ObjectIdentifier struct {
	findingsOf
	arcs []*big.Int
}

func (o ObjectIdentifier) Len() int { return len(o.arcs) }

func (o ObjectIdentifier) String() string {
	parts := make([]string, len(o.arcs))
	for i, a := range o.arcs {
		parts[i] = a.String()
	}
	return join(parts, ".")
}

func (o ObjectIdentifier) Comment() string {
	if name, ok := oidFriendlyNames[o.String()]; ok {
		return "OBJECT IDENTIFIER " + o.String() + " (" + name + ")"
	}
	return "OBJECT IDENTIFIER " + o.String()
}

// Eq reports whether o and other name the same arc sequence.
func (o ObjectIdentifier) Eq(other ObjectIdentifier) bool {
	if len(o.arcs) != len(other.arcs) {
		return false
	}
	for i := range o.arcs {
		if o.arcs[i].Cmp(other.arcs[i]) != 0 {
			return false
		}
	}
	return true
}

// NewObjectIdentifier constructs an ObjectIdentifier from a dotted
// decimal string (e.g. "1.2.840.113549") and encodes it as a TLV.
func NewObjectIdentifier(dotted string, cs ...Constraint) (ObjectIdentifier, TLV, error) {
	arcs, err := parseDottedOID(dotted)
	if err != nil {
		return ObjectIdentifier{}, TLV{}, err
	}
	o := ObjectIdentifier{arcs: arcs}
	var group ConstraintGroup = cs
	if err := group.Validate(o); err != nil {
		return ObjectIdentifier{}, TLV{}, err
	}

	wire, err := encodeOIDArcs(arcs)
	if err != nil {
		return ObjectIdentifier{}, TLV{}, err
	}
	tlv, _ := NewPrimitive(OIDTag, wire)
	return o, tlv, nil
}

func parseDottedOID(dotted string) ([]*big.Int, error) {
	if !isNumericOID(dotted) {
		return nil, typedConstructionErrorf("ObjectIdentifier: %q is not a valid numeric OID", dotted)
	}
	parts := split(dotted, ".")
	arcs := make([]*big.Int, len(parts))
	for i, p := range parts {
		v, ok := new(big.Int).SetString(p, 10)
		if !ok {
			return nil, typedConstructionErrorf("ObjectIdentifier: arc %q is not numeric", p)
		}
		arcs[i] = v
	}
	if len(arcs) < 2 {
		return nil, typedConstructionErrorf("ObjectIdentifier: must have at least 2 arcs")
	}
	return arcs, nil
}

func isNumericOID(id string) bool {
	if !isValidOIDPrefix(id) {
		return false
	}
	var last rune
	for i, c := range id {
		switch {
		case c == '.':
			if last == c || i == len(id)-1 {
				return false
			}
			last = '.'
		case c >= '0' && c <= '9':
			last = c
		default:
			return false
		}
	}
	return true
}

func isValidOIDPrefix(id string) bool {
	parts := split(id, ".")
	if len(parts) < 2 {
		return false
	}
	root, err := atoi(parts[0])
	if err != nil || root < 0 || root > 2 {
		return false
	}
	sub, err := atoi(parts[1])
	if err != nil {
		return false
	}
	if root != 2 && !(sub >= 0 && sub <= 39) {
		return false
	}
	return true
}

// encodeOIDArcs packs arcs per X.690 §8.19: the first two arcs are
// combined as 40*a+b, remaining arcs are VLQ-encoded.
func encodeOIDArcs(arcs []*big.Int) ([]byte, error) {
	if len(arcs) < 2 {
		return nil, typedConstructionErrorf("ObjectIdentifier: must have at least 2 arcs")
	}
	first, second := arcs[0], arcs[1]
	forty := big.NewInt(40)

	if first.Cmp(big.NewInt(2)) > 0 {
		return nil, typedConstructionErrorf("ObjectIdentifier: first arc must be 0, 1, or 2")
	}
	if first.Cmp(big.NewInt(2)) < 0 && second.Cmp(forty) >= 0 {
		return nil, typedConstructionErrorf("ObjectIdentifier: second arc must be < 40 unless first arc is 2")
	}

	combined := new(big.Int).Mul(first, forty)
	combined.Add(combined, second)

	var content []byte
	content = append(content, encodeVLQ(combined)...)
	for _, a := range arcs[2:] {
		content = append(content, encodeVLQ(a)...)
	}
	return content, nil
}

// encodeVLQ returns the base-128 variable-length-quantity encoding of
// n, continuation bit set on all but the last octet.
func encodeVLQ(n *big.Int) []byte {
	if n.Sign() == 0 {
		return []byte{0x00}
	}
	var out []byte
	v := new(big.Int).Set(n)
	base := big.NewInt(128)
	rem := new(big.Int)
	for v.Sign() > 0 {
		v.DivMod(v, base, rem)
		out = append([]byte{byte(rem.Uint64())}, out...)
	}
	for i := 0; i < len(out)-1; i++ {
		out[i] |= 0x80
	}
	return out
}

// DecodeObjectIdentifier decodes tlv as OBJECT IDENTIFIER per spec.md
// §4.4: first octet packs 40*a+b; remaining arcs are VLQ base-128.
// A truncated continuation sequence (high bit set with no terminator)
// cannot be decoded and is a hard error, per spec.md §4.4's "invalid
// sentinel OID" note.
func DecodeObjectIdentifier(tlv TLV) (ObjectIdentifier, error) {
	if tlv.Compound() || tlv.tag.Number != TagOID {
		return ObjectIdentifier{}, shapeMismatch("ObjectIdentifier", tlv)
	}
	arcs, err := decodeVLQArcs(tlv.value)
	if err != nil {
		return ObjectIdentifier{}, err
	}
	if len(arcs) == 0 {
		return ObjectIdentifier{}, typedConstructionErrorf("ObjectIdentifier: empty value-field")
	}

	first, second := splitFirstArc(arcs[0])
	full := append([]*big.Int{first, second}, arcs[1:]...)
	return ObjectIdentifier{arcs: full}, nil
}

func decodeVLQArcs(data []byte) ([]*big.Int, error) {
	var arcs []*big.Int
	sub := new(big.Int)
	i := 0
	for i < len(data) {
		sub.SetInt64(0)
		for {
			sub.Lsh(sub, 7)
			sub.Or(sub, big.NewInt(int64(data[i]&0x7F)))
			last := data[i]&0x80 == 0
			i++
			if last {
				break
			}
			if i >= len(data) {
				return nil, typedConstructionErrorf("ObjectIdentifier: truncated subidentifier (no terminating octet)")
			}
		}
		arcs = append(arcs, new(big.Int).Set(sub))
	}
	return arcs, nil
}

func splitFirstArc(combined *big.Int) (first, second *big.Int) {
	forty := big.NewInt(40)
	eighty := big.NewInt(80)
	if combined.Cmp(eighty) < 0 {
		first = new(big.Int)
		second = new(big.Int)
		first.DivMod(combined, forty, second)
		return first, second
	}
	first = big.NewInt(2)
	second = new(big.Int).Sub(combined, eighty)
	return first, second
}

// RelativeOIDTag is the fixed universal tag for RELATIVE-OID.
var RelativeOIDTag = Tag{Class: ClassUniversal, Compound: false, Number: 13}

// RelativeOID represents the ASN.1 RELATIVE-OID type: an arc sequence
// interpreted relative to some base ObjectIdentifier. Not named in
// spec.md's 14-type table, but kept as a cheap supplement (same VLQ
// machinery as ObjectIdentifier, no 40*a+b packing).
type RelativeOID struct {
	findingsOf
	arcs []*big.Int
}

func (r RelativeOID) Len() int { return len(r.arcs) }

func (r RelativeOID) String() string {
	parts := make([]string, len(r.arcs))
	for i, a := range r.arcs {
		parts[i] = a.String()
	}
	return join(parts, ".")
}

func (r RelativeOID) Comment() string { return "RELATIVE-OID " + r.String() }

// Absolute returns the ObjectIdentifier formed by appending r's arcs
// to base's.
func (r RelativeOID) Absolute(base ObjectIdentifier) ObjectIdentifier {
	out := make([]*big.Int, 0, len(base.arcs)+len(r.arcs))
	out = append(out, base.arcs...)
	out = append(out, r.arcs...)
	return ObjectIdentifier{arcs: out}
}

// NewRelativeOID constructs a RelativeOID from a dotted decimal
// string and encodes it as a TLV.
func NewRelativeOID(dotted string) (RelativeOID, TLV, error) {
	parts := split(dotted, ".")
	if len(parts) < 1 {
		return RelativeOID{}, TLV{}, typedConstructionErrorf("RelativeOID: must have at least 1 arc")
	}
	arcs := make([]*big.Int, len(parts))
	for i, p := range parts {
		v, ok := new(big.Int).SetString(p, 10)
		if !ok || v.Sign() < 0 {
			return RelativeOID{}, TLV{}, typedConstructionErrorf("RelativeOID: arc %q is not a non-negative integer", p)
		}
		arcs[i] = v
	}

	var content []byte
	for _, a := range arcs {
		content = append(content, encodeVLQ(a)...)
	}
	tlv, _ := NewPrimitive(RelativeOIDTag, content)
	return RelativeOID{arcs: arcs}, tlv, nil
}

// DecodeRelativeOID decodes tlv as RELATIVE-OID.
func DecodeRelativeOID(tlv TLV) (RelativeOID, error) {
	if tlv.Compound() || tlv.tag.Number != 13 {
		return RelativeOID{}, shapeMismatch("RelativeOID", tlv)
	}
	arcs, err := decodeVLQArcs(tlv.value)
	if err != nil {
		return RelativeOID{}, err
	}
	return RelativeOID{arcs: arcs}, nil
}
