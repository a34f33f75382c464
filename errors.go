package bertlv

/*
errors.go contains the error taxonomy (spec.md §7) and the helpers used
to attach positional context -- an offset within the parsed source and
a hex excerpt of the offending octets -- to every parse failure.
*/

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"
)

// ErrorKind classifies a parse or construction failure. Kinds, not
// concrete types: callers switch on Kind(), not on the dynamic type of
// the returned error.
type ErrorKind uint8

const (
	_ ErrorKind = iota

	// MalformedTag indicates tag octets that violate ISO/IEC 8825-1
	// structure (bad continuation bits, redundant encoding, etc).
	MalformedTag

	// TagTooLong indicates a tag exceeds the implementation's
	// 8-octet cap.
	TagTooLong

	// MalformedLength indicates length octets that violate the
	// spec, e.g. an indefinite form on a primitive element.
	MalformedLength

	// LengthOverflow indicates a declared length exceeds the
	// addressable range.
	LengthOverflow

	// TruncatedSource indicates the octet source ended before the
	// expected octets were read.
	TruncatedSource

	// TypedConstructionError indicates a caller supplied a typed
	// value that cannot be encoded (e.g. a PrintableString with
	// illegal characters).
	TypedConstructionError

	// ShapeMismatch indicates a requested typed accessor does not
	// match the found node (e.g. an Integer accessor used against
	// a Sequence).
	ShapeMismatch
)

func (k ErrorKind) String() string {
	switch k {
	case MalformedTag:
		return "MalformedTag"
	case TagTooLong:
		return "TagTooLong"
	case MalformedLength:
		return "MalformedLength"
	case LengthOverflow:
		return "LengthOverflow"
	case TruncatedSource:
		return "TruncatedSource"
	case TypedConstructionError:
		return "TypedConstructionError"
	case ShapeMismatch:
		return "ShapeMismatch"
	default:
		return "Unknown"
	}
}

// codecError is the concrete error type produced by this package. It
// always knows its Kind; Offset and Excerpt are filled in when the
// failure happened while reading from a positioned source.
type codecError struct {
	kind    ErrorKind
	msg     string
	offset  int
	haveOff bool
	excerpt []byte
}

func (e *codecError) Error() string {
	if !e.haveOff {
		return e.msg
	}
	return fmt.Sprintf("%s (offset %d, near %s)", e.msg, e.offset, hexstr(e.excerpt))
}

// Kind returns the ErrorKind of err, or 0 if err was not produced by
// this package.
func Kind(err error) ErrorKind {
	var ce *codecError
	if errors.As(err, &ce) {
		return ce.kind
	}
	return 0
}

// Offset returns the source offset at which err was detected, and
// whether a offset was recorded at all.
func Offset(err error) (int, bool) {
	var ce *codecError
	if errors.As(err, &ce) {
		return ce.offset, ce.haveOff
	}
	return 0, false
}

// Excerpt returns the hex string of the offending octets recorded
// alongside err, if any.
func Excerpt(err error) string {
	var ce *codecError
	if errors.As(err, &ce) {
		return hexstr(ce.excerpt)
	}
	return ""
}

var errCache sync.Map

func newErr(kind ErrorKind, msg string) error {
	key := [2]any{kind, msg}
	if v, hit := errCache.Load(key); hit {
		return v.(error)
	}
	e := &codecError{kind: kind, msg: msg}
	errCache.Store(key, e)
	return e
}

// errorf builds a one-off codecError (not cached -- these carry
// interpolated details and are not worth deduplicating).
func errorf(kind ErrorKind, format string, args ...any) error {
	return &codecError{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// atOffset wraps err (preserving its Kind via errors.As) with the
// position and a hex excerpt of the bytes surrounding it, per
// spec.md §7's "offset + hex excerpt" requirement. The excerpt is
// capped at 16 octets so long buffers don't blow up error messages.
func atOffset(err error, offset int, data []byte) error {
	if err == nil {
		return nil
	}
	var ce *codecError
	if !errors.As(err, &ce) {
		ce = &codecError{kind: 0, msg: err.Error()}
	} else {
		cp := *ce
		ce = &cp
	}
	ce.offset = offset
	ce.haveOff = true
	end := offset + 16
	if end > len(data) {
		end = len(data)
	}
	start := offset
	if start > len(data) {
		start = len(data)
	}
	if start < 0 {
		start = 0
	}
	ce.excerpt = data[start:end]
	return errors.Wrap(ce, "bertlv")
}

var (
	errEmptyTag          = newErr(MalformedTag, "tag octets are empty")
	errBadTagContinuation = newErr(MalformedTag, "truncated high-tag-number form")
	errRedundantTag      = newErr(MalformedTag, "redundant tag encoding: leading continuation octet is zero")
	errShortTagForm      = newErr(MalformedTag, "multi-octet tag encodes a number that requires the short form")
	errTagTooLong        = newErr(TagTooLong, "tag-field exceeds the 8-octet cap")

	errEmptyLength       = newErr(MalformedLength, "length octets are empty")
	errLengthTruncated   = newErr(TruncatedSource, "length octets truncated")
	errLengthOverflow    = newErr(LengthOverflow, "length exceeds the 63-bit addressable range")
	errIndefinitePrimitive = newErr(MalformedLength, "indefinite length used on a primitive element")

	errTruncatedValue    = newErr(TruncatedSource, "value octets truncated")
	errTruncatedContainer = newErr(TruncatedSource, "constructed content truncated before declared length was consumed")
	errOverConsumed      = newErr(MalformedLength, "children over-consumed the declared length")
	errMissingEOC        = newErr(TruncatedSource, "indefinite-length constructed element missing End-of-Content")

	errSourceUnderflow = newErr(TruncatedSource, "octet source ended before expected octets were read")

	errUTCTimeFormat = newErr(TypedConstructionError, "value does not match a permitted UTCTime form")
	errDateFormat    = newErr(TypedConstructionError, "value is not an 8-digit YYYYMMDD DATE")
)

func shapeMismatch(wantOverlay string, tlv TLV) error {
	shape := "Constructed"
	if !tlv.Compound() {
		shape = "Primitive"
	}
	return errorf(ShapeMismatch, "%s accessor used against a %s node (tag %s)",
		wantOverlay, shape, tlv.Tag().String())
}

func typedConstructionErrorf(format string, args ...any) error {
	return errorf(TypedConstructionError, format, args...)
}
