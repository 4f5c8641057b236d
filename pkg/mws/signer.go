package mws

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/url"
	"slices"
	"strings"
)

const (
	signatureMethod  = "HmacSHA256"
	signatureVersion = "2"
)

// Sign computes a version 2 request signature over the canonical form of
// params. The Signature parameter itself is never part of the input.
func Sign(method, host, path string, params url.Values, secret string) string {
	if path == "" {
		path = "/"
	}

	var sb strings.Builder
	sb.WriteString(strings.ToUpper(method))
	sb.WriteByte('\n')
	sb.WriteString(strings.ToLower(host))
	sb.WriteByte('\n')
	sb.WriteString(path)
	sb.WriteByte('\n')
	sb.WriteString(CanonicalQuery(params))

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(sb.String()))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// CanonicalQuery joins params sorted by key in byte order, with keys and
// values percent-encoded per RFC 3986.
func CanonicalQuery(params url.Values) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		if k == "Signature" {
			continue
		}
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var sb strings.Builder
	for _, k := range keys {
		values := slices.Clone(params[k])
		slices.Sort(values)
		for _, v := range values {
			if sb.Len() > 0 {
				sb.WriteByte('&')
			}
			sb.WriteString(percentEncode(k))
			sb.WriteByte('=')
			sb.WriteString(percentEncode(v))
		}
	}
	return sb.String()
}

// percentEncode leaves only the RFC 3986 unreserved set untouched, so a
// space becomes %20 and a tilde stays literal.
func percentEncode(s string) string {
	const hex = "0123456789ABCDEF"

	var sb strings.Builder
	sb.Grow(len(s))
	for i := range len(s) {
		c := s[i]
		if isUnreserved(c) {
			sb.WriteByte(c)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(hex[c>>4])
		sb.WriteByte(hex[c&0x0f])
	}
	return sb.String()
}

func isUnreserved(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	case c == '-', c == '_', c == '.', c == '~':
		return true
	}
	return false
}
