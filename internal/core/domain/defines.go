package domain

import (
	"encoding/base64"
	"slices"
	"strings"
	"unicode/utf8"
)

// DefineSeparator separates encoded definitions in the raw dart-defines property.
const DefineSeparator = ","

// DefineMap maps definition names to their values.
type DefineMap map[string]string

// Keys returns the definition names in sorted order.
func (m DefineMap) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Lookup returns the value for key and whether it is present.
func (m DefineMap) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// DecodeDefines decodes a comma separated list of base64 encoded KEY=VALUE tokens.
//
// Malformed tokens are dropped: undecodable base64 (line breaks included), invalid UTF-8,
// a missing '=' or an empty key.
// Later duplicates overwrite earlier ones. A blank input yields an empty map.
func DecodeDefines(raw string) DefineMap {
	defines := DefineMap{}
	if strings.TrimSpace(raw) == "" {
		return defines
	}

	for token := range strings.SplitSeq(raw, DefineSeparator) {
		key, value, ok := decodeDefine(strings.TrimSpace(token))
		if !ok {
			continue
		}
		defines[key] = value
	}

	return defines
}

// EncodeDefine encodes a single definition the way the Flutter tool passes it to Gradle.
func EncodeDefine(key, value string) string {
	return base64.StdEncoding.EncodeToString([]byte(key + "=" + value))
}

func decodeDefine(token string) (string, string, bool) {
	// The stdlib decoders skip line breaks; a token carrying one is malformed.
	if token == "" || strings.ContainsAny(token, "\r\n") {
		return "", "", false
	}

	data, err := decodeBase64(token)
	if err != nil || !utf8.Valid(data) {
		return "", "", false
	}

	decoded := string(data)
	sep := strings.IndexByte(decoded, '=')
	if sep <= 0 {
		return "", "", false
	}

	return decoded[:sep], decoded[sep+1:], true
}

// decodeBase64 accepts padded input, or unpadded input whose length is not a multiple of four.
// Padding, when present, must be complete.
func decodeBase64(token string) ([]byte, error) {
	if len(token)%4 == 0 {
		return base64.StdEncoding.DecodeString(token)
	}
	return base64.RawStdEncoding.DecodeString(token)
}
