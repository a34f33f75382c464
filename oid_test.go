package bertlv

import "testing"

func TestNewObjectIdentifier(t *testing.T) {
	o, tlv, err := NewObjectIdentifier("1.2.840.113549")
	if err != nil {
		t.Fatalf("NewObjectIdentifier: %v", err)
	}
	if o.String() != "1.2.840.113549" {
		t.Fatalf("String() = %q, want %q", o.String(), "1.2.840.113549")
	}
	want := []byte{0x2A, 0x86, 0x48, 0x86, 0xF7, 0x0D}
	if !bytesEqual(tlv.Value(), want) {
		t.Fatalf("encoded OID = % X, want % X", tlv.Value(), want)
	}
}

func TestNewObjectIdentifierRejectsNonNumeric(t *testing.T) {
	if _, _, err := NewObjectIdentifier("1.x.3"); err == nil {
		t.Fatalf("expected error for a non-numeric arc")
	}
}

func TestNewObjectIdentifierRejectsShort(t *testing.T) {
	if _, _, err := NewObjectIdentifier("1"); err == nil {
		t.Fatalf("expected error for fewer than 2 arcs")
	}
}

func TestDecodeObjectIdentifier(t *testing.T) {
	tlv, _ := NewPrimitive(OIDTag, []byte{0x2A, 0x86, 0x48, 0x86, 0xF7, 0x0D})
	o, err := DecodeObjectIdentifier(tlv)
	if err != nil {
		t.Fatalf("DecodeObjectIdentifier: %v", err)
	}
	if o.String() != "1.2.840.113549" {
		t.Fatalf("String() = %q, want %q", o.String(), "1.2.840.113549")
	}
}

func TestDecodeObjectIdentifierTruncated(t *testing.T) {
	tlv, _ := NewPrimitive(OIDTag, []byte{0x2A, 0x86})
	if _, err := DecodeObjectIdentifier(tlv); err == nil {
		t.Fatalf("expected error decoding a truncated VLQ subidentifier")
	}
}

func TestObjectIdentifierEq(t *testing.T) {
	a, _, _ := NewObjectIdentifier("1.2.3")
	b, _, _ := NewObjectIdentifier("1.2.3")
	c, _, _ := NewObjectIdentifier("1.2.4")
	if !a.Eq(b) {
		t.Fatalf("expected equal OIDs to compare equal")
	}
	if a.Eq(c) {
		t.Fatalf("expected differing OIDs to compare unequal")
	}
}

func TestNewRelativeOIDAndAbsolute(t *testing.T) {
	base, _, _ := NewObjectIdentifier("1.2.840")
	rel, tlv, err := NewRelativeOID("113549.1")
	if err != nil {
		t.Fatalf("NewRelativeOID: %v", err)
	}
	if tlv.Tag().Number != 13 {
		t.Fatalf("RelativeOID tag number = %d, want 13", tlv.Tag().Number)
	}
	abs := rel.Absolute(base)
	if abs.String() != "1.2.840.113549.1" {
		t.Fatalf("Absolute() = %q, want %q", abs.String(), "1.2.840.113549.1")
	}
}

func TestDecodeRelativeOID(t *testing.T) {
	_, tlv, _ := NewRelativeOID("8571.1")
	rel, err := DecodeRelativeOID(tlv)
	if err != nil {
		t.Fatalf("DecodeRelativeOID: %v", err)
	}
	if rel.String() != "8571.1" {
		t.Fatalf("String() = %q, want %q", rel.String(), "8571.1")
	}
}
