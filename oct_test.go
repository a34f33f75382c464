package bertlv

import "testing"

func TestNewOctetString(t *testing.T) {
	o, tlv, err := NewOctetString([]byte("hello"))
	if err != nil {
		t.Fatalf("NewOctetString: %v", err)
	}
	if o.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", o.Len())
	}
	if !bytesEqual(tlv.Value(), []byte("hello")) {
		t.Fatalf("Value() = %q, want %q", tlv.Value(), "hello")
	}
}

func TestDecodeOctetString(t *testing.T) {
	tlv, _ := NewPrimitive(OctetStringTag, []byte("hi"))
	o, err := DecodeOctetString(tlv)
	if err != nil {
		t.Fatalf("DecodeOctetString: %v", err)
	}
	if o.String() != "hi" {
		t.Fatalf("String() = %q, want %q", o.String(), "hi")
	}
}

func TestDecodeOctetStringEmpty(t *testing.T) {
	tlv, _ := NewPrimitive(OctetStringTag, nil)
	o, err := DecodeOctetString(tlv)
	if err != nil {
		t.Fatalf("DecodeOctetString: %v", err)
	}
	if o.Len() != 0 {
		t.Fatalf("expected zero-length OCTET STRING to decode cleanly")
	}
}

func TestDecodeOctetStringShapeMismatch(t *testing.T) {
	tlv, _ := NewConstructed(Tag{Class: ClassUniversal, Compound: true, Number: TagSequence}, nil)
	if _, err := DecodeOctetString(tlv); Kind(err) != ShapeMismatch {
		t.Fatalf("expected ShapeMismatch")
	}
}
