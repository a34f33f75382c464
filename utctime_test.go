package bertlv

import "testing"

func TestNewUTCTimeZForm(t *testing.T) {
	u, tlv, err := NewUTCTime("250102123000Z")
	if err != nil {
		t.Fatalf("NewUTCTime: %v", err)
	}
	if u.Time().Year() != 2025 || u.Time().Month() != 1 || u.Time().Day() != 2 {
		t.Fatalf("Time() = %v, want 2025-01-02", u.Time())
	}
	if !bytesEqual(tlv.Value(), []byte("250102123000Z")) {
		t.Fatalf("Value() mismatch")
	}
}

func TestNewUTCTimeTwoDigitYearMapping(t *testing.T) {
	early, _, err := NewUTCTime("491231235959Z")
	if err != nil {
		t.Fatalf("NewUTCTime: %v", err)
	}
	if early.Time().Year() != 2049 {
		t.Fatalf("yy=49 should map to 2049, got %d", early.Time().Year())
	}

	late, _, err := NewUTCTime("500101000000Z")
	if err != nil {
		t.Fatalf("NewUTCTime: %v", err)
	}
	if late.Time().Year() != 1950 {
		t.Fatalf("yy=50 should map to 1950, got %d", late.Time().Year())
	}
}

func TestNewUTCTimeOffsetForm(t *testing.T) {
	u, _, err := NewUTCTime("2501021230-0500")
	if err != nil {
		t.Fatalf("NewUTCTime: %v", err)
	}
	_, offset := u.Time().Zone()
	if offset != -5*3600 {
		t.Fatalf("zone offset = %d, want %d", offset, -5*3600)
	}
}

func TestNewUTCTimeRejectsMalformed(t *testing.T) {
	if _, _, err := NewUTCTime("not-a-time"); err == nil {
		t.Fatalf("expected error for malformed UTCTime text")
	}
}

func TestDecodeUTCTime(t *testing.T) {
	tlv, _ := NewPrimitive(UTCTimeTag, []byte("250102123000Z"))
	u, err := DecodeUTCTime(tlv)
	if err != nil {
		t.Fatalf("DecodeUTCTime: %v", err)
	}
	if u.String() != "2501021230Z" {
		t.Fatalf("String() = %q, want %q", u.String(), "2501021230Z")
	}
}

func TestDecodeUTCTimeShapeMismatch(t *testing.T) {
	tlv, _ := NewConstructed(Tag{Class: ClassUniversal, Compound: true, Number: TagSequence}, nil)
	if _, err := DecodeUTCTime(tlv); Kind(err) != ShapeMismatch {
		t.Fatalf("expected ShapeMismatch")
	}
}
