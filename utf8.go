package bertlv

/*
utf8.go implements the UTF8String overlay (spec.md §4.4, tag 12).
Grounded on go-asn1plus's utf8.go (UTF8Spec's use of utf8.ValidString
for validation) -- Go's unicode/utf8 package already rejects
overlong forms, lone surrogates, and code points beyond U+10FFFF per
RFC 3629, so no custom validator is needed beyond utf8OK.
*/

// UTF8StringTag is the fixed universal tag for UTF8String.
var UTF8StringTag = Tag{Class: ClassUniversal, Compound: false, Number: TagUTF8String}

// UTF8String represents the ASN.1 UTF8String type.
type UTF8String struct {
	findingsOf
	value string
}

func (u UTF8String) Len() int       { return len(u.value) }
func (u UTF8String) String() string { return u.value }
func (u UTF8String) Comment() string {
	return "UTF8String " + quoteForComment(u.value)
}

// NewUTF8String constructs a UTF8String from a Go string, rejecting
// invalid UTF-8 (spec.md §4.4, scenario-class: TypedConstructionError
// on an impossible argument).
func NewUTF8String(s string, cs ...Constraint) (UTF8String, TLV, error) {
	if !utf8OK(s) {
		return UTF8String{}, TLV{}, typedConstructionErrorf("UTF8String: %q is not valid UTF-8", s)
	}
	u := UTF8String{value: s}
	var group ConstraintGroup = cs
	if err := group.Validate(u); err != nil {
		return UTF8String{}, TLV{}, err
	}
	tlv, _ := NewPrimitive(UTF8StringTag, []byte(s))
	return u, tlv, nil
}

// DecodeUTF8String decodes tlv as UTF8String. Per spec.md §4.4: the
// value-field must be valid UTF-8 per RFC 3629; this is a hard
// validity rule even on parse (not a finding), since a non-UTF-8
// value-field cannot be interpreted as text at all.
func DecodeUTF8String(tlv TLV) (UTF8String, error) {
	if tlv.Compound() || tlv.tag.Number != TagUTF8String {
		return UTF8String{}, shapeMismatch("UTF8String", tlv)
	}
	if !utf8OK(string(tlv.value)) {
		return UTF8String{}, typedConstructionErrorf("UTF8String: value-field is not valid UTF-8")
	}
	return UTF8String{value: string(tlv.value)}, nil
}

// quoteForComment renders s wrapped in double quotes for a one-line
// comment, truncating long values.
func quoteForComment(s string) string {
	const maxLen = 40
	if len(s) > maxLen {
		s = s[:maxLen] + "..."
	}
	return `"` + s + `"`
}
