package bertlv

/*
utctime.go implements the UTCTime overlay (spec.md §4.4, tag 23),
supporting all four permitted forms: YYMMDDhhmmZ, YYMMDDhhmmssZ,
YYMMDDhhmm(+|-)hhmm, and YYMMDDhhmmss(+|-)hhmm. Grounded on
go-asn1plus's time.go: parseUTCCore/parseUTCTimezone/formatUTCTime and
the two-digit year mapping (00-49 -> 20xx, 50-99 -> 19xx) are ported
near-verbatim, stripped of the codec-registration/reflection plumbing
and the Temporal interface layer this package has no use for --
UTCTime here carries a time.Time directly, since
spec.md's GeneralizedTime/DateTime/TimeOfDay/Duration types aren't
part of the fourteen-type table this codec implements.
*/

import "time"

// UTCTimeTag is the fixed universal tag for UTCTime.
var UTCTimeTag = Tag{Class: ClassUniversal, Compound: false, Number: TagUTCTime}

// UTCTime represents the ASN.1 UTCTime type.
type UTCTime struct {
	findingsOf
	when time.Time
}

func (u UTCTime) Time() time.Time { return u.when }
func (u UTCTime) String() string  { return formatUTCTime(u.when) }
func (u UTCTime) Comment() string { return "UTCTime " + u.String() }

func utcDigit(b byte) bool     { return '0' <= b && b <= '9' }
func utcToInt(b0, b1 byte) int { return int(b0-'0')*10 + int(b1-'0') }

func parseUTCCore(s string) (yy, mm, dd, hr, mn, sc, next int, err error) {
	if len(s) < 11 {
		err = errUTCTimeFormat
		return
	}
	for k := 0; k < 10; k++ {
		if !utcDigit(s[k]) {
			err = errUTCTimeFormat
			return
		}
	}
	if utcDigit(s[10]) && (len(s) < 12 || !utcDigit(s[11])) {
		err = errUTCTimeFormat
		return
	}

	hasSec := utcDigit(s[10])
	yy = utcToInt(s[0], s[1])
	mm = utcToInt(s[2], s[3])
	dd = utcToInt(s[4], s[5])
	hr = utcToInt(s[6], s[7])
	mn = utcToInt(s[8], s[9])

	if hasSec {
		sc = utcToInt(s[10], s[11])
		next = 12
		if len(s) < 13 {
			err = errUTCTimeFormat
		}
	} else {
		sc = 0
		next = 10
	}
	return
}

func parseUTCTimezone(s string, idx int) (loc *time.Location, err error) {
	if idx >= len(s) {
		return nil, errUTCTimeFormat
	}
	switch s[idx] {
	case 'Z':
		if idx != len(s)-1 {
			return nil, errUTCTimeFormat
		}
		return time.UTC, nil
	case '+', '-':
		if idx+5 != len(s) {
			return nil, errUTCTimeFormat
		}
		for k := 1; k <= 4; k++ {
			if !utcDigit(s[idx+k]) {
				return nil, errUTCTimeFormat
			}
		}
		hh := utcToInt(s[idx+1], s[idx+2])
		mm := utcToInt(s[idx+3], s[idx+4])
		if hh > 23 || mm > 59 {
			return nil, errUTCTimeFormat
		}
		off := (hh*60 + mm) * 60
		if s[idx] == '-' {
			off = -off
		}
		return time.FixedZone("", off), nil
	default:
		return nil, errUTCTimeFormat
	}
}

func parseUTCTime(s string) (t time.Time, err error) {
	yy, mo, dd, hr, mn, sc, i, err := parseUTCCore(s)
	if err != nil {
		return time.Time{}, err
	}
	loc, err := parseUTCTimezone(s, i)
	if err != nil {
		return time.Time{}, err
	}
	if yy < 50 {
		yy += 2000
	} else {
		yy += 1900
	}
	return time.Date(yy, time.Month(mo), dd, hr, mn, sc, 0, loc), nil
}

func formatUTCTime(t time.Time) string {
	var b [11]byte
	put2 := func(idx, v int) {
		b[idx] = byte('0' + v/10)
		b[idx+1] = byte('0' + v%10)
	}
	put2(0, t.Year()%100)
	put2(2, int(t.Month()))
	put2(4, t.Day())
	put2(6, t.Hour())
	put2(8, t.Minute())
	b[10] = 'Z'
	return string(b[:])
}

// NewUTCTime constructs a UTCTime from any of the four permitted text
// forms.
func NewUTCTime(s string, cs ...Constraint) (UTCTime, TLV, error) {
	t, err := parseUTCTime(s)
	if err != nil {
		return UTCTime{}, TLV{}, typedConstructionErrorf("UTCTime: %v", err)
	}
	u := UTCTime{when: t}
	var group ConstraintGroup = cs
	if err := group.Validate(u); err != nil {
		return UTCTime{}, TLV{}, err
	}
	tlv, _ := NewPrimitive(UTCTimeTag, []byte(s))
	return u, tlv, nil
}

// DecodeUTCTime decodes tlv as UTCTime, failing for text that doesn't
// parse as one of the four permitted forms -- a malformed timestamp
// cannot be given a value at all, so this is not a finding.
func DecodeUTCTime(tlv TLV) (UTCTime, error) {
	if tlv.Compound() || tlv.tag.Number != TagUTCTime {
		return UTCTime{}, shapeMismatch("UTCTime", tlv)
	}
	t, err := parseUTCTime(string(tlv.value))
	if err != nil {
		return UTCTime{}, typedConstructionErrorf("UTCTime: %v", err)
	}
	return UTCTime{when: t}, nil
}
