package bertlv

/*
ia5.go implements the IA5String overlay (spec.md §4.4, tag 22): one
octet per character, the seven-bit ASCII repertoire of ITU-T Rec.
T.50. Grounded on go-asn1plus's ia5.go for the overlay shape
(Len/String/constructor), but spec.md's table is stricter than the
teacher's 0x00-0xFF acceptance -- IA5 proper is seven-bit, so
validation here rejects the eighth bit rather than allowing the full
Latin-1 range. GermanVariant is a supplemental convenience (spec.md §9
allows enrichment beyond the distilled table) translating the IA5
positions used by the T.50 German national-replacement variant to the
German characters they stand for.
*/

// IA5StringTag is the fixed universal tag for IA5String.
var IA5StringTag = Tag{Class: ClassUniversal, Compound: false, Number: TagIA5String}

// IA5String represents the ASN.1 IA5String type: seven-bit ASCII text.
type IA5String struct {
	findingsOf
	value string
}

func (a IA5String) Len() int        { return len(a.value) }
func (a IA5String) String() string  { return a.value }
func (a IA5String) Comment() string { return "IA5String " + quoteForComment(a.value) }

func firstNonIA5(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7F {
			return i
		}
	}
	return -1
}

// NewIA5String constructs an IA5String, rejecting any byte with its
// high bit set.
func NewIA5String(s string, cs ...Constraint) (IA5String, TLV, error) {
	if i := firstNonIA5(s); i >= 0 {
		return IA5String{}, TLV{}, typedConstructionErrorf("IA5String: illegal octet 0x%02X at byte %d", s[i], i)
	}
	a := IA5String{value: s}
	var group ConstraintGroup = cs
	if err := group.Validate(a); err != nil {
		return IA5String{}, TLV{}, err
	}
	tlv, _ := NewPrimitive(IA5StringTag, []byte(s))
	return a, tlv, nil
}

// DecodeIA5String decodes tlv as IA5String. A high-bit-set octet is
// recorded as a finding rather than raised, since IA5 sources in the
// wild sometimes smuggle Latin-1 bytes.
func DecodeIA5String(tlv TLV) (IA5String, error) {
	if tlv.Compound() || tlv.tag.Number != TagIA5String {
		return IA5String{}, shapeMismatch("IA5String", tlv)
	}
	s := string(tlv.value)
	a := IA5String{value: s}
	if i := firstNonIA5(s); i >= 0 {
		a.note("illegal-octet", "IA5String contains a high-bit-set octet at byte "+itoa(i))
	}
	return a, nil
}

// germanVariant maps T.50 German national-replacement positions to
// the characters they substitute for in the IA5 repertoire.
var germanVariant = map[byte]byte{
	'@': 0xA7, // §
	'[': 0xC4, // Ä
	'\\': 0xD6, // Ö
	']': 0xDC, // Ü
	'{': 0xE4, // ä
	'|': 0xF6, // ö
	'}': 0xFC, // ü
	'~': 0xDF, // ß
}

// GermanVariant translates s from the IA5 German national-replacement
// variant to its Latin-1 rendering, leaving unmapped bytes unchanged.
func GermanVariant(s string) string {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		if r, ok := germanVariant[s[i]]; ok {
			out[i] = r
		} else {
			out[i] = s[i]
		}
	}
	return string(out)
}
