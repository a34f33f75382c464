package bertlv

import "testing"

func TestNewNull(t *testing.T) {
	tlv := NewNull()
	if tlv.Compound() {
		t.Fatalf("expected primitive NULL")
	}
	if len(tlv.Value()) != 0 {
		t.Fatalf("NULL value-field must be empty, got %d octets", len(tlv.Value()))
	}
}

func TestDecodeNull(t *testing.T) {
	if _, err := DecodeNull(NewNull()); err != nil {
		t.Fatalf("DecodeNull: %v", err)
	}
}

func TestDecodeNullNonEmptyValue(t *testing.T) {
	tlv, _ := NewPrimitive(NullTag, []byte{0x00})
	if _, err := DecodeNull(tlv); err == nil {
		t.Fatalf("expected error decoding NULL with a non-empty value-field")
	}
}

func TestDecodeNullShapeMismatch(t *testing.T) {
	tlv, _ := NewConstructed(Tag{Class: ClassUniversal, Compound: true, Number: TagSequence}, nil)
	if _, err := DecodeNull(tlv); Kind(err) != ShapeMismatch {
		t.Fatalf("expected ShapeMismatch")
	}
}
