package bertlv

/*
int.go implements the Integer overlay (spec.md §4.4, tag 2;
§9 "arbitrary-precision integer arithmetic" design note): an
unbounded two's-complement signed integer, stored as a native int64
when it fits and falling back to *big.Int otherwise. Grounded on
go-asn1plus's int.go: the big/native split (Integer{big, native,
bigInt}), encodeIntegerContent/decodeIntegerContent (minimal two's
complement encode/decode), and bEToInteger/bigToInteger/uint64ToInteger
constructors, trimmed of the reflective codec-registration machinery
(RegisterIntegerAlias, integerCodec[T]) that belonged to the teacher's
schema-driven marshaler.
*/

import "math/big"

// IntegerTag is the fixed universal tag for INTEGER.
var IntegerTag = Tag{Class: ClassUniversal, Compound: false, Number: TagInteger}

// Integer represents the ASN.1 INTEGER type: an arbitrary-precision
// signed integer. A zero value is int64(0).
type Integer struct {
	findingsOf
	big    bool
	native int64
	bigInt *big.Int
}

// IsBig reports whether the decoded value overflows int64.
func (i Integer) IsBig() bool { return i.big }

// Native returns the int64 value. Only meaningful when IsBig is false.
func (i Integer) Native() int64 { return i.native }

// Big returns the *big.Int form, constructing one on the fly when the
// value is natively represented.
func (i Integer) Big() *big.Int {
	if i.big {
		return i.bigInt
	}
	return big.NewInt(i.native)
}

func (i Integer) String() string {
	if i.big {
		return i.bigInt.String()
	}
	return fmtInt(i.native, 10)
}

func (i Integer) Comment() string { return "INTEGER " + i.String() }

// NewInteger constructs an Integer from a native int64 and encodes
// it as a minimal two's-complement TLV.
func NewInteger(x int64, cs ...Constraint) (Integer, TLV, error) {
	var group ConstraintGroup = cs
	if err := group.Validate(x); err != nil {
		return Integer{}, TLV{}, err
	}
	i := Integer{native: x}
	tlv, _ := NewPrimitive(IntegerTag, encodeIntegerContent(big.NewInt(x)))
	return i, tlv, nil
}

// NewBigInteger constructs an Integer from an arbitrary-precision
// value and encodes it as a minimal two's-complement TLV.
func NewBigInteger(x *big.Int, cs ...Constraint) (Integer, TLV, error) {
	var group ConstraintGroup = cs
	if err := group.Validate(x); err != nil {
		return Integer{}, TLV{}, err
	}
	i := bigToInteger(x)
	tlv, _ := NewPrimitive(IntegerTag, encodeIntegerContent(x))
	return i, tlv, nil
}

// DecodeInteger decodes tlv as INTEGER. Per spec.md §4.4: the value-
// field must be non-empty, and the nine most-significant bits must
// not all be equal (a redundant sign octet) -- a parsed value
// violating this is still decoded, with a finding recorded, per the
// findings policy (spec.md §4.4, scenario S4).
func DecodeInteger(tlv TLV) (Integer, error) {
	if tlv.Compound() || tlv.tag.Number != TagInteger {
		return Integer{}, shapeMismatch("Integer", tlv)
	}
	if len(tlv.value) == 0 {
		return Integer{}, typedConstructionErrorf("Integer: value-field must be non-empty")
	}

	i := bigToInteger(decodeIntegerContent(tlv.value))
	if redundantSignOctet(tlv.value) {
		i.note("redundant-sign-octet", "9 MSBit all equal")
	}
	return i, nil
}

// redundantSignOctet reports whether the nine most-significant bits
// of a two's-complement encoding are all equal -- i.e. the leading
// octet could have been dropped without changing the represented
// value (spec.md §4.4, scenario S4).
func redundantSignOctet(b []byte) bool {
	if len(b) < 2 {
		return false
	}
	if b[0] == 0x00 && b[1]&0x80 == 0 {
		return true
	}
	if b[0] == 0xFF && b[1]&0x80 != 0 {
		return true
	}
	return false
}

func bigToInteger(v *big.Int) Integer {
	if v.IsInt64() {
		return Integer{native: v.Int64()}
	}
	return Integer{big: true, bigInt: v}
}

// decodeIntegerContent interprets encoded as a two's-complement
// big-endian integer.
func decodeIntegerContent(encoded []byte) *big.Int {
	val := new(big.Int).SetBytes(encoded)
	if len(encoded) > 0 && encoded[0]&0x80 != 0 {
		bitLen := uint(len(encoded) * 8)
		twoPow := new(big.Int).Lsh(big.NewInt(1), bitLen)
		val.Sub(val, twoPow)
	}
	return val
}

// encodeIntegerContent returns the minimal two's-complement big-endian
// encoding of i.
func encodeIntegerContent(i *big.Int) []byte {
	if i.Sign() >= 0 {
		b := i.Bytes()
		if len(b) == 0 {
			b = []byte{0x00}
		}
		if b[0]&0x80 != 0 {
			b = append([]byte{0x00}, b...)
		}
		return b
	}

	abs := new(big.Int).Abs(i)
	n := (abs.BitLen() + 7) / 8
	if n == 0 {
		n = 1
	}
	min := new(big.Int).Lsh(big.NewInt(1), uint(8*n-1))
	min.Neg(min)
	if i.Cmp(min) < 0 {
		n++
	}
	mod := new(big.Int).Lsh(big.NewInt(1), uint(8*n))
	value := new(big.Int).Add(mod, i)
	return value.Bytes()
}
