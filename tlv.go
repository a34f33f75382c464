package bertlv

/*
tlv.go implements the TLV model (spec.md §3, §4.3): the tagged-union
node with Primitive and Constructed shapes, its construction
invariants, equality, child navigation, and deterministic re-encode.
Grounded on go-asn1plus's tlv.go (tlvString/tlvEqual/encodeTLV shape)
and skythen/bertlv's BerTLV (children-slice constructed representation,
Bytes()/Children()/FirstChild() navigation style).
*/

// TLV is an immutable tagged-union node: Primitive nodes own an opaque
// value octet sequence; Constructed nodes own an ordered child list.
// Never mutate a TLV after construction -- every mutating-looking
// operation (Append) returns a new value.
type TLV struct {
	tag      Tag
	value    []byte
	children []TLV

	// lengthOctets records the octet-width of the length-field as
	// read from a source, so over-padded long forms can be
	// re-emitted faithfully if a caller asks for the original
	// encoding. encoded() always ignores this and emits minimum form
	// (spec.md §4.2).
	lengthOctets int
}

// NewPrimitive constructs a Primitive TLV from a tag and owned value
// octets. Rejects a tag whose Compound bit is set.
func NewPrimitive(tag Tag, value []byte) (TLV, error) {
	if tag.Compound {
		return TLV{}, typedConstructionErrorf("primitive constructor given a constructed-bit tag %s", tag.String())
	}
	return TLV{tag: tag, value: cloneBytes(value)}, nil
}

// NewConstructed constructs a Constructed TLV from a tag and a child
// list. Rejects a tag whose Compound bit is clear.
func NewConstructed(tag Tag, children []TLV) (TLV, error) {
	if !tag.Compound {
		return TLV{}, typedConstructionErrorf("constructed constructor given a primitive-bit tag %s", tag.String())
	}
	cp := make([]TLV, len(children))
	copy(cp, children)
	return TLV{tag: tag, children: cp}, nil
}

// Tag returns the node's tag.
func (t TLV) Tag() Tag { return t.tag }

// Compound reports whether t is a Constructed node.
func (t TLV) Compound() bool { return t.tag.Compound }

// Value returns a defensive copy of the primitive value octets, or
// nil for a Constructed node.
func (t TLV) Value() []byte {
	if t.Compound() {
		return nil
	}
	return cloneBytes(t.value)
}

// Children returns an immutable view of t's children, or nil for a
// Primitive node.
func (t TLV) Children() []TLV {
	if !t.Compound() {
		return nil
	}
	out := make([]TLV, len(t.children))
	copy(out, t.children)
	return out
}

// LengthOctets returns the octet-width of the length-field as read
// from a source, or 0 for a TLV built directly from a constructor
// rather than Read. Per spec.md §4.2's preservation requirement, this
// lets a caller detect an over-padded long-form length on the
// original encoding; Encoded() itself always re-emits the
// minimum-octet form regardless of this value.
func (t TLV) LengthOctets() int { return t.lengthOctets }

// Canonical reports whether the length-field t was parsed from
// already used the minimum-octet form -- i.e. whether Encoded() would
// reproduce the original length-field octet-for-octet. Always true
// for a TLV built directly from a constructor (spec.md §9's "canonical?
// yes/no flag" resolution to the over-padded-length Open Question).
func (t TLV) Canonical() bool {
	if t.lengthOctets == 0 {
		return true
	}
	return len(EncodeLength(int64(t.contentLen()))) == t.lengthOctets
}

func (t TLV) contentLen() int {
	if !t.Compound() {
		return len(t.value)
	}
	n := 0
	for _, c := range t.children {
		n += len(c.Encoded())
	}
	return n
}

// Find returns the occurrence-th child (0-based; occurrence <= 0
// means the first) whose tag equals tag, searching only direct
// children in declared order (spec.md §4.3: "depth-one only").
func (t TLV) Find(tag Tag, occurrence int) (TLV, bool) {
	if occurrence < 0 {
		occurrence = 0
	}
	seen := 0
	for _, c := range t.children {
		if c.tag == tag {
			if seen == occurrence {
				return c, true
			}
			seen++
		}
	}
	return TLV{}, false
}

// Append returns a new Constructed node with child appended; t is
// unchanged. Panics if t is not Constructed (a programmer error, not
// a data error -- mirrors the constructor's own invariant check).
func (t TLV) Append(child TLV) TLV {
	if !t.Compound() {
		panic("bertlv: Append on a primitive TLV")
	}
	out := make([]TLV, len(t.children), len(t.children)+1)
	copy(out, t.children)
	out = append(out, child)
	return TLV{tag: t.tag, children: out}
}

// Equal reports whether t and other have equal tags and equal
// value-content (byte-equal for primitives, recursively equal
// element-wise for constructed nodes), per spec.md §3.
func (t TLV) Equal(other TLV) bool {
	if t.tag != other.tag {
		return false
	}
	if t.Compound() != other.Compound() {
		return false
	}
	if !t.Compound() {
		return bytesEqual(t.value, other.value)
	}
	if len(t.children) != len(other.children) {
		return false
	}
	for i := range t.children {
		if !t.children[i].Equal(other.children[i]) {
			return false
		}
	}
	return true
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Encoded deterministically re-encodes t: tag-field, minimum-octet
// length-field, then either raw value octets (primitive) or the
// concatenated Encoded() output of children (constructed). Always
// canonical length form regardless of how t was parsed (spec.md
// §4.2, §4.3).
func (t TLV) Encoded() (out []byte) {
	debugEncode("Encoded", "enter", t)
	defer func() { debugEncode("Encoded", "exit", out) }()

	tagBytes := EncodeTag(t.tag)

	if !t.Compound() {
		lenBytes := EncodeLength(int64(len(t.value)))
		out = make([]byte, 0, len(tagBytes)+len(lenBytes)+len(t.value))
		out = append(out, tagBytes...)
		out = append(out, lenBytes...)
		out = append(out, t.value...)
		return
	}

	var body []byte
	for _, c := range t.children {
		body = append(body, c.Encoded()...)
	}
	lenBytes := EncodeLength(int64(len(body)))
	out = make([]byte, 0, len(tagBytes)+len(lenBytes)+len(body))
	out = append(out, tagBytes...)
	out = append(out, lenBytes...)
	out = append(out, body...)
	return
}

// String renders a brief debug form: "{Tag, Compound:bool, N octets}"
// for primitives, "{Tag, Compound:bool, N children}" for constructed.
func (t TLV) String() string {
	if !t.Compound() {
		return "{" + t.tag.String() + ", Compound:" + bool2str(false) +
			", " + itoa(len(t.value)) + " octets}"
	}
	return "{" + t.tag.String() + ", Compound:" + bool2str(true) +
		", " + itoa(len(t.children)) + " children}"
}
