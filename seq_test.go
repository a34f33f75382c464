package bertlv

import "testing"

func TestNewSequence(t *testing.T) {
	at, _ := NewPrimitive(IntegerTag, []byte{0x01})
	bt, _ := NewPrimitive(IntegerTag, []byte{0x02})

	s, tlv, err := NewSequence([]TLV{at, bt})
	if err != nil {
		t.Fatalf("NewSequence: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	if !tlv.Compound() {
		t.Fatalf("expected constructed TLV")
	}
	if s.Children()[0].Value()[0] != 0x01 || s.Children()[1].Value()[0] != 0x02 {
		t.Fatalf("SEQUENCE must preserve insertion order")
	}
}

func TestDecodeSequence(t *testing.T) {
	at, _ := NewPrimitive(IntegerTag, []byte{0x01})
	tlv, _ := NewConstructed(SequenceTag, []TLV{at})
	s, err := DecodeSequence(tlv)
	if err != nil {
		t.Fatalf("DecodeSequence: %v", err)
	}
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
}

func TestDecodeSequenceShapeMismatch(t *testing.T) {
	tlv, _ := NewPrimitive(OctetStringTag, nil)
	if _, err := DecodeSequence(tlv); Kind(err) != ShapeMismatch {
		t.Fatalf("expected ShapeMismatch")
	}
}
