package bertlv

import (
	"strings"
	"testing"
)

func TestCompact(t *testing.T) {
	tlv, _ := NewPrimitive(OctetStringTag, []byte{0xAB, 0xCD})
	got := Compact(tlv, "-")
	want := "04-02-abcd"
	if got != want {
		t.Fatalf("Compact() = %q, want %q", got, want)
	}
}

func TestCompactConstructed(t *testing.T) {
	inner, _ := NewPrimitive(IntegerTag, []byte{0x01})
	seq, _ := NewConstructed(SequenceTag, []TLV{inner})
	got := Compact(seq, "-")
	if !strings.Contains(got, "30-") {
		t.Fatalf("Compact() = %q, expected SEQUENCE tag prefix", got)
	}
}

func TestTreeScenarioS1(t *testing.T) {
	src := NewSliceSource([]byte{0x30, 0x06, 0x02, 0x01, 0x05, 0x02, 0x01, 0x07})
	tlv, err := Read(src)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	got := Tree(tlv, "|  ")
	want := "30 06 \n|  02 01 05 \n|  02 01 07"
	if got != want {
		t.Fatalf("Tree() = %q, want %q", got, want)
	}
}

func TestTree(t *testing.T) {
	inner, _ := NewPrimitive(IntegerTag, []byte{0x01})
	seq, _ := NewConstructed(SequenceTag, []TLV{inner})
	got := Tree(seq, "  ")
	want := "30 03 \n  02 01 01"
	if got != want {
		t.Fatalf("Tree() = %q, want %q", got, want)
	}
}

func TestTreeSymbolicMarkers(t *testing.T) {
	inner, _ := NewPrimitive(IntegerTag, []byte{0x01})
	seq, _ := NewConstructed(SequenceTag, []TLV{inner})
	got := Tree(seq, "\n")
	if !strings.Contains(got, treeMarkers+"02 01 01") {
		t.Fatalf("Tree() with symbolic prefix = %q, expected a leading marker before the nested node", got)
	}
}

func TestCommented(t *testing.T) {
	tlv, _ := NewPrimitive(BooleanTag, []byte{0xFF})
	got := Commented(tlv, "  ")
	if !strings.Contains(got, "BOOLEAN true") {
		t.Fatalf("Commented() = %q, expected a BOOLEAN comment", got)
	}
}

func TestCommentedExpandsNestedOctetString(t *testing.T) {
	inner, _ := NewPrimitive(IntegerTag, []byte{0x2A})
	nested := inner.Encoded()
	outerTLV, _ := NewPrimitive(OctetStringTag, nested)

	got := Commented(outerTLV, "  ")
	if !strings.Contains(got, "nested TLV") {
		t.Fatalf("Commented() = %q, expected nested-TLV expansion", got)
	}
	if !strings.Contains(got, "INTEGER") {
		t.Fatalf("Commented() = %q, expected the expanded INTEGER child", got)
	}
}
