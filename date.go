package bertlv

/*
date.go implements the Date overlay (spec.md §4.4, tag 0x1F1F / the
high-tag-number encoding of UNIVERSAL 31). Grounded on go-asn1plus's
time.go Date type (parseDate/formatDate's fixed-width digit-pack
approach), but corrected to the undashed "20060102" layout spec.md's
table specifies -- the teacher's Date uses dashed "2006-01-02", which
is the DATE-TIME-adjacent convention its own original source followed,
not the octet layout this codec's table calls for.
*/

import "time"

// DateTag is the fixed universal tag for DATE (high-tag-number form,
// UNIVERSAL class, tag number 31).
var DateTag = Tag{Class: ClassUniversal, Compound: false, Number: TagDate}

// Date represents the ASN.1 DATE type: calendar date only, encoded as
// eight UTF-8 digits YYYYMMDD with no separators.
type Date struct {
	findingsOf
	when time.Time
}

func (d Date) Time() time.Time { return d.when }
func (d Date) String() string  { return formatDateDigits(d.when) }
func (d Date) Comment() string { return "DATE " + d.String() }

func parseDateDigits(s string) (time.Time, error) {
	if len(s) != 8 {
		return time.Time{}, errDateFormat
	}
	for i := 0; i < 8; i++ {
		if !utcDigit(s[i]) {
			return time.Time{}, errDateFormat
		}
	}
	toInt := func(b0, b1 byte) int { return int(b0-'0')*10 + int(b1-'0') }
	year := toInt(s[0], s[1])*100 + toInt(s[2], s[3])
	month := toInt(s[4], s[5])
	day := toInt(s[6], s[7])
	if month == 0 || month > 12 || day == 0 || day > 31 {
		return time.Time{}, errDateFormat
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

func formatDateDigits(t time.Time) string {
	var b [8]byte
	put2 := func(i, v int) {
		b[i] = byte('0' + v/10)
		b[i+1] = byte('0' + v%10)
	}
	year := t.Year()
	b[0] = byte('0' + (year/1000)%10)
	b[1] = byte('0' + (year/100)%10)
	b[2] = byte('0' + (year/10)%10)
	b[3] = byte('0' + year%10)
	put2(4, int(t.Month()))
	put2(6, t.Day())
	return string(b[:])
}

// NewDate constructs a Date from an 8-digit YYYYMMDD string.
func NewDate(s string, cs ...Constraint) (Date, TLV, error) {
	t, err := parseDateDigits(s)
	if err != nil {
		return Date{}, TLV{}, typedConstructionErrorf("Date: %v", err)
	}
	d := Date{when: t}
	var group ConstraintGroup = cs
	if err := group.Validate(d); err != nil {
		return Date{}, TLV{}, err
	}
	tlv, _ := NewPrimitive(DateTag, []byte(s))
	return d, tlv, nil
}

// DecodeDate decodes tlv as DATE.
func DecodeDate(tlv TLV) (Date, error) {
	if tlv.Compound() || tlv.tag.Number != TagDate {
		return Date{}, shapeMismatch("Date", tlv)
	}
	t, err := parseDateDigits(string(tlv.value))
	if err != nil {
		return Date{}, typedConstructionErrorf("Date: %v", err)
	}
	return Date{when: t}, nil
}
