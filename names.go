package bertlv

/*
names.go implements the global OID friendly-name lookup table
(spec.md §9: "a lookup table keyed by canonical OID dotted form,
injected into the overlay's comment renderer as a pure function").
Grounded on the PKCS/X.509 arc names commonly embedded by ASN.1
toolchains; entries here are limited to a small representative set
of common PKCS and X.509 arcs.
*/

var oidFriendlyNames = map[string]string{
	"1.2.840.113549.1.1.1":  "rsaEncryption",
	"1.2.840.113549.1.1.11": "sha256WithRSAEncryption",
	"1.2.840.113549.1.7.1":  "data",
	"1.2.840.113549.1.9.1":  "emailAddress",
	"2.5.4.3":                "commonName",
	"2.5.4.6":                "countryName",
	"2.5.4.10":               "organizationName",
	"2.5.4.11":               "organizationalUnitName",
	"2.5.29.15":               "keyUsage",
	"2.5.29.17":               "subjectAltName",
	"2.5.29.19":               "basicConstraints",
}

// OIDName returns the friendly name registered for dotted (the
// canonical dotted-decimal form of an ObjectIdentifier), and whether
// one was found.
func OIDName(dotted string) (string, bool) {
	name, ok := oidFriendlyNames[dotted]
	return name, ok
}

// RegisterOIDName adds or overrides a friendly name for dotted,
// available to every ObjectIdentifier.Comment() call afterward.
func RegisterOIDName(dotted, name string) {
	oidFriendlyNames[dotted] = name
}
