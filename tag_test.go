package bertlv

import (
	"bytes"
	"testing"
)

func TestTagEncodeDecodeSymmetry(t *testing.T) {
	// spec.md §8 property 3: for any valid Tag, DecodeTag(EncodeTag(t))
	// reproduces t and consumes exactly len(EncodeTag(t)) octets.
	cases := []Tag{
		{Class: ClassUniversal, Compound: false, Number: 0},
		{Class: ClassUniversal, Compound: true, Number: 16},
		{Class: ClassApplication, Compound: false, Number: 30},
		{Class: ClassContextSpecific, Compound: true, Number: 31},
		{Class: ClassPrivate, Compound: false, Number: 127},
		{Class: ClassContextSpecific, Compound: true, Number: 128},
		{Class: ClassUniversal, Compound: false, Number: 16384},
	}
	for _, want := range cases {
		enc := EncodeTag(want)
		got, consumed, err := DecodeTag(enc)
		if err != nil {
			t.Fatalf("DecodeTag(%v) = %v", want, err)
		}
		if consumed != len(enc) {
			t.Fatalf("DecodeTag consumed %d octets, want %d", consumed, len(enc))
		}
		if got != want {
			t.Fatalf("round-tripped tag = %+v, want %+v", got, want)
		}
	}
}

func TestDecodeTagEmpty(t *testing.T) {
	if _, _, err := DecodeTag(nil); Kind(err) != MalformedTag {
		t.Fatalf("expected MalformedTag decoding empty tag octets, got %v", err)
	}
}

func TestDecodeTagRedundantEncoding(t *testing.T) {
	// 0x1F (high-tag-number form) followed by a continuation octet
	// whose low 7 bits are zero: a non-canonical leading digit.
	if _, _, err := DecodeTag([]byte{0x1F, 0x80, 0x01}); Kind(err) != MalformedTag {
		t.Fatalf("expected MalformedTag for redundant leading continuation octet, got %v", err)
	}
}

func TestDecodeTagShortFormRequired(t *testing.T) {
	// High-tag-number form encoding a number < 31 must be rejected;
	// 30 fits in the single-octet short form.
	if _, _, err := DecodeTag([]byte{0x1F, 0x1E}); Kind(err) != MalformedTag {
		t.Fatalf("expected MalformedTag for a multi-octet tag encoding a short-form number, got %v", err)
	}
}

func TestDecodeTagTruncatedContinuation(t *testing.T) {
	if _, _, err := DecodeTag([]byte{0x1F, 0x81}); Kind(err) != MalformedTag {
		t.Fatalf("expected MalformedTag for a tag missing its final continuation octet, got %v", err)
	}
}

func TestDecodeTagTooLong(t *testing.T) {
	// Nine continuation octets (all with the high bit set) exceed the
	// 8-octet cap.
	b := []byte{0x1F, 0x81, 0x81, 0x81, 0x81, 0x81, 0x81, 0x81, 0x81, 0x01}
	if _, _, err := DecodeTag(b); Kind(err) != TagTooLong {
		t.Fatalf("expected TagTooLong, got %v", err)
	}
}

func TestReadTagMatchesDecodeTag(t *testing.T) {
	tag := Tag{Class: ClassApplication, Compound: true, Number: 1000}
	enc := EncodeTag(tag)
	src := NewSliceSource(append(append([]byte{}, enc...), 0xFF))

	raw, err := ReadTag(src)
	if err != nil {
		t.Fatalf("ReadTag: %v", err)
	}
	if !bytes.Equal(raw, enc) {
		t.Fatalf("ReadTag = % X, want % X", raw, enc)
	}
	if src.Offset() != len(enc) {
		t.Fatalf("ReadTag consumed %d octets, want %d", src.Offset(), len(enc))
	}

	got, consumed, err := DecodeTag(raw)
	if err != nil {
		t.Fatalf("DecodeTag: %v", err)
	}
	if consumed != len(enc) || got != tag {
		t.Fatalf("DecodeTag(ReadTag(...)) = %+v, want %+v", got, tag)
	}
}

func TestReadTagUnderflow(t *testing.T) {
	src := NewSliceSource([]byte{0x1F, 0x81})
	if _, err := ReadTag(src); Kind(err) != TruncatedSource {
		t.Fatalf("expected TruncatedSource, got %v", err)
	}
}
