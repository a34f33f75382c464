//go:build !bertlv_debug

package bertlv

/*
trace_off.go is the no-op half of the build-tag-gated tracer.
Grounded on go-asn1plus's trc_off.go.
*/

func debugTag(_ string, _ ...any)      {}
func debugLength(_ string, _ ...any)   {}
func debugParse(_ string, _ ...any)    {}
func debugEncode(_ string, _ ...any)   {}
func debugFindings(_ string, _ ...any) {}
