package bertlv

/*
eoc.go implements the End-of-Content overlay (spec.md §4.4, tag 0):
the sentinel TLV terminating an indefinite-length constructed value.
Grounded on go-asn1plus's null.go (empty-value primitive overlay
shape) -- the terminator of an indefinite-length value never appears
as a child in a parsed tree (reader.go strips it), so this overlay
exists for callers constructing or recognizing the sentinel directly.
An End-of-Content node inside a definite-length value is kept as an
ordinary child.
*/

// EndOfContent represents the tag-0, zero-length primitive sentinel
// terminating an indefinite-length value. It carries no decoded value.
type EndOfContent struct {
	findingsOf
}

// EndOfContentTag is the fixed tag identifying an End-of-Content node.
var EndOfContentTag = Tag{Class: ClassUniversal, Compound: false, Number: TagEndOfContent}

// NewEndOfContent returns the canonical End-of-Content TLV.
func NewEndOfContent() TLV {
	tlv, _ := NewPrimitive(EndOfContentTag, nil)
	return tlv
}

// DecodeEndOfContent validates that tlv is shaped as End-of-Content:
// primitive, tag 0, empty value.
func DecodeEndOfContent(tlv TLV) (EndOfContent, error) {
	if tlv.Compound() {
		return EndOfContent{}, shapeMismatch("EndOfContent", tlv)
	}
	if tlv.tag.Number != TagEndOfContent {
		return EndOfContent{}, shapeMismatch("EndOfContent", tlv)
	}
	if len(tlv.value) != 0 {
		return EndOfContent{}, typedConstructionErrorf("EndOfContent: value-field must be empty")
	}
	return EndOfContent{}, nil
}

func (EndOfContent) Comment() string { return "END-OF-CONTENT" }
