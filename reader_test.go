package bertlv

import (
	"bytes"
	"testing"
)

func TestReadSliceSource(t *testing.T) {
	tlv, err := Read(NewSliceSource([]byte{0x02, 0x01, 0x05}))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if tlv.Tag().Number != TagInteger || !bytes.Equal(tlv.Value(), []byte{0x05}) {
		t.Fatalf("Read() = %+v, want INTEGER 05", tlv)
	}
}

func TestReadStreamSource(t *testing.T) {
	r := bytes.NewReader([]byte{0x04, 0x02, 0xAB, 0xCD})
	tlv, err := Read(NewStreamSource(r))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !bytes.Equal(tlv.Value(), []byte{0xAB, 0xCD}) {
		t.Fatalf("Read() value = % X, want AB CD", tlv.Value())
	}
}

// TestBufferSourceAtomicRestoreOnUnderflow covers spec.md §4.5/§7's
// requirement that a failed Read against a Resettable source restores
// the pre-read position atomically, so a caller can Grow the buffer
// and retry from the same mark rather than from wherever the failed
// read happened to stop.
func TestBufferSourceAtomicRestoreOnUnderflow(t *testing.T) {
	buf := NewBufferSource()
	buf.Grow([]byte{0x30, 0x03, 0x02, 0x01})

	if _, err := Read(buf); Kind(err) != TruncatedSource {
		t.Fatalf("expected TruncatedSource on an underflowing read, got %v", err)
	}
	if buf.Offset() != 0 {
		t.Fatalf("Offset() = %d after failed Read, want 0 (position not restored)", buf.Offset())
	}

	buf.Grow([]byte{0x05})
	tlv, err := Read(buf)
	if err != nil {
		t.Fatalf("Read after Grow: %v", err)
	}
	if !tlv.Compound() || len(tlv.Children()) != 1 {
		t.Fatalf("Read() after retry = %+v, want one-child SEQUENCE", tlv)
	}
	if buf.Offset() != 5 {
		t.Fatalf("Offset() = %d after successful Read, want 5", buf.Offset())
	}
}

func TestBufferSourceNestedUnderflowRestoresOuterMark(t *testing.T) {
	// The inner INTEGER is truncated; Read must restore the buffer to
	// offset 0, not to wherever readNode's recursion had reached.
	buf := NewBufferSource()
	buf.Grow([]byte{0x30, 0x03, 0x02, 0x02, 0x00})

	if _, err := Read(buf); Kind(err) != TruncatedSource {
		t.Fatalf("expected TruncatedSource, got %v", err)
	}
	if buf.Offset() != 0 {
		t.Fatalf("Offset() = %d after failed nested Read, want 0", buf.Offset())
	}
}

func TestSliceSourceReadNUnderflow(t *testing.T) {
	src := NewSliceSource([]byte{0x01, 0x02})
	if _, err := src.ReadN(3); Kind(err) != TruncatedSource {
		t.Fatalf("expected TruncatedSource, got %v", err)
	}
}

func TestReadIndefiniteMissingEOC(t *testing.T) {
	// Indefinite-length SEQUENCE with one child and no terminating EOC.
	data := []byte{0x30, 0x80, 0x02, 0x01, 0x00}
	if _, err := Read(NewSliceSource(data)); Kind(err) != TruncatedSource {
		t.Fatalf("expected TruncatedSource for a missing End-of-Content, got %v", err)
	}
}

func TestReadIndefinitePrimitiveRejected(t *testing.T) {
	// A primitive tag (INTEGER) cannot carry an indefinite length.
	data := []byte{0x02, 0x80, 0x00, 0x00}
	if _, err := Read(NewSliceSource(data)); Kind(err) != MalformedLength {
		t.Fatalf("expected MalformedLength for indefinite length on a primitive, got %v", err)
	}
}

func TestReadOverConsumedChildren(t *testing.T) {
	// Declared length of 2 but the child INTEGER needs 3 octets.
	data := []byte{0x30, 0x02, 0x02, 0x01, 0x00}
	if _, err := Read(NewSliceSource(data)); Kind(err) != MalformedLength {
		t.Fatalf("expected MalformedLength for over-consumed children, got %v", err)
	}
}
