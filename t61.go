package bertlv

/*
t61.go implements the TeletexString overlay (spec.md §4.4, tag 20),
the ITU-T Rec. T.61 teletex repertoire. Grounded on go-asn1plus's
t61.go: the same scattered code point ranges (tab-through-shift-in
controls, space-through-digits, the two Latin alphabet blocks, the
Latin-1 supplement, the T.61 diacritic combining marks, and a handful
of one-off currency/typographic code points), reimplemented here via
overlay.go's runeRangeSet rather than a 65536-bit bitmap.
*/

var teletexStringCharset = runeRangeSet(
	runeRange{0x0009, 0x000F},
	runeRange{0x0020, 0x0039},
	runeRange{0x0041, 0x005B},
	runeRange{0x0061, 0x007A},
	runeRange{0x00A0, 0x00FF},
	runeRange{0x008B, 0x008C},
	runeRange{0x0126, 0x0127},
	runeRange{0x0131, 0x0132},
	runeRange{0x0140, 0x0142},
	runeRange{0x0149, 0x014A},
	runeRange{0x0152, 0x0153},
	runeRange{0x0166, 0x0167},
	runeRange{0x0300, 0x0304},
	runeRange{0x0306, 0x0308},
	runeRange{0x030A, 0x030C},
	runeRange{0x0327, 0x0328},
	runeRange{0x009B, 0x009B},
	runeRange{0x005C, 0x005C},
	runeRange{0x005D, 0x005D},
	runeRange{0x005F, 0x005F},
	runeRange{0x003F, 0x003F},
	runeRange{0x007C, 0x007C},
	runeRange{0x007F, 0x007F},
	runeRange{0x001D, 0x001D},
	runeRange{0x0111, 0x0111},
	runeRange{0x0138, 0x0138},
	runeRange{0x0332, 0x0332},
	runeRange{0x2126, 0x2126},
	runeRange{0x013F, 0x013F},
	runeRange{0x014B, 0x014B},
)

// TeletexStringTag is the fixed universal tag for TeletexString.
var TeletexStringTag = Tag{Class: ClassUniversal, Compound: false, Number: TagTeletexString}

// TeletexString represents the ASN.1 TeletexString (T61String) type:
// legacy teletex text, retained for interoperability with existing
// certificate fields.
type TeletexString struct {
	findingsOf
	value string
}

func (t TeletexString) Len() int        { return len(t.value) }
func (t TeletexString) String() string  { return t.value }
func (t TeletexString) Comment() string { return "TeletexString " + quoteForComment(t.value) }

// NewTeletexString constructs a TeletexString, rejecting characters
// outside the T.61 repertoire.
func NewTeletexString(s string, cs ...Constraint) (TeletexString, TLV, error) {
	if i := validateCharset(s, teletexStringCharset); i >= 0 {
		return TeletexString{}, TLV{}, typedConstructionErrorf("TeletexString: illegal character at byte %d", i)
	}
	t := TeletexString{value: s}
	var group ConstraintGroup = cs
	if err := group.Validate(t); err != nil {
		return TeletexString{}, TLV{}, err
	}
	tlv, _ := NewPrimitive(TeletexStringTag, []byte(s))
	return t, tlv, nil
}

// DecodeTeletexString decodes tlv as TeletexString. A character
// outside the T.61 repertoire is recorded as a finding, not an error,
// since teletex-encoded legacy sources are not always strictly
// conformant.
func DecodeTeletexString(tlv TLV) (TeletexString, error) {
	if tlv.Compound() || tlv.tag.Number != TagTeletexString {
		return TeletexString{}, shapeMismatch("TeletexString", tlv)
	}
	s := string(tlv.value)
	t := TeletexString{value: s}
	if i := validateCharset(s, teletexStringCharset); i >= 0 {
		t.note("illegal-character", "TeletexString contains a character outside the T.61 repertoire at byte "+itoa(i))
	}
	return t, nil
}
