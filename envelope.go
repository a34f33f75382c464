package bertlv

/*
envelope.go implements the base64/hex-text construction and
serialization entry points spec.md §6 lists alongside the octet-source
and tag/value/children constructors already on TLV and the overlays.
Grounded on go-asn1plus's common.go hex/base64 helpers (itself a thin
wrapper over encoding/hex and encoding/base64, which this package
mirrors via common.go's hexstr/hexdec/b64str/b64dec aliases).
*/

// FromHex decodes s as a hex string and reads exactly one TLV from the
// resulting octets, per spec.md §6's "construct ... from a base64/
// hex-text envelope".
func FromHex(s string) (TLV, error) {
	raw, err := hexdec(s)
	if err != nil {
		return TLV{}, typedConstructionErrorf("FromHex: %v", err)
	}
	return Read(NewSliceSource(raw))
}

// FromBase64 decodes s as standard base64 and reads exactly one TLV
// from the resulting octets.
func FromBase64(s string) (TLV, error) {
	raw, err := b64dec(s)
	if err != nil {
		return TLV{}, typedConstructionErrorf("FromBase64: %v", err)
	}
	return Read(NewSliceSource(raw))
}

// Hex renders tlv's DER-canonical encoding as a hex string.
func (t TLV) Hex() string { return hexstr(t.Encoded()) }

// Base64 renders tlv's DER-canonical encoding as a standard base64
// string.
func (t TLV) Base64() string { return b64str(t.Encoded()) }
