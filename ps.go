package bertlv

/*
ps.go implements the PrintableString overlay (spec.md §4.4, tag 19).
Grounded on go-asn1plus's ps.go: the exact repertoire set (the bitmap
built in its init()), reimplemented here as a plain rune set via
overlay.go's runeSet/validateCharset template rather than a 65536-bit
bitmap -- this package's strings are short (CV-certificate fields),
so the bitmap's O(1)-lookup optimization isn't worth the 8KB of
static data.
*/

var printableStringCharset = runeSet(" '()+,-./:=?0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz")

// PrintableStringTag is the fixed universal tag for PrintableString.
var PrintableStringTag = Tag{Class: ClassUniversal, Compound: false, Number: TagPrintableString}

// PrintableString represents the ASN.1 PrintableString type: text
// restricted to the X.680 §41.4 repertoire.
type PrintableString struct {
	findingsOf
	value string
}

func (p PrintableString) Len() int        { return len(p.value) }
func (p PrintableString) String() string  { return p.value }
func (p PrintableString) Comment() string { return "PrintableString " + quoteForComment(p.value) }

// NewPrintableString constructs a PrintableString from s, rejecting
// characters outside the repertoire (spec.md §4.4, scenario S5).
func NewPrintableString(s string, cs ...Constraint) (PrintableString, TLV, error) {
	if i := validateCharset(s, printableStringCharset); i >= 0 {
		return PrintableString{}, TLV{}, typedConstructionErrorf("PrintableString: illegal character at byte %d", i)
	}
	p := PrintableString{value: s}
	var group ConstraintGroup = cs
	if err := group.Validate(p); err != nil {
		return PrintableString{}, TLV{}, err
	}
	tlv, _ := NewPrimitive(PrintableStringTag, []byte(s))
	return p, tlv, nil
}

// DecodePrintableString decodes tlv as PrintableString. A value-field
// containing disallowed characters is still decoded, with a finding
// recorded (spec.md §4.4's findings policy applies per-overlay; only
// construction from a typed value raises).
func DecodePrintableString(tlv TLV) (PrintableString, error) {
	if tlv.Compound() || tlv.tag.Number != TagPrintableString {
		return PrintableString{}, shapeMismatch("PrintableString", tlv)
	}
	s := string(tlv.value)
	p := PrintableString{value: s}
	if i := validateCharset(s, printableStringCharset); i >= 0 {
		p.note("illegal-character", "PrintableString contains a character outside the X.680 repertoire at byte "+itoa(i))
	}
	return p, nil
}
