package payfast

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"sort"
	"strings"
)

const (
	FieldSignature  = "signature"
	FieldPassphrase = "passphrase"
)

var (
	ErrMissingSignature  = errors.New("payfast: signature field missing")
	ErrSignatureMismatch = errors.New("payfast: signature mismatch")
)

const upperhex = "0123456789ABCDEF"

// Encode percent-encodes s with the encodeURIComponent unreserved set
// (A-Z a-z 0-9 - _ . ! ~ * ' ( )) and writes spaces as '+'.
func Encode(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == ' ':
			sb.WriteByte('+')
		case unreserved(c):
			sb.WriteByte(c)
		default:
			sb.WriteByte('%')
			sb.WriteByte(upperhex[c>>4])
			sb.WriteByte(upperhex[c&15])
		}
	}
	return sb.String()
}

func unreserved(c byte) bool {
	if 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' {
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}

func sortedKeys(fields map[string]string, skip ...string) []string {
	keys := make([]string, 0, len(fields))
outer:
	for k := range fields {
		for _, s := range skip {
			if k == s {
				continue outer
			}
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SignatureString builds the pre-hash string for an outbound payment request.
// Every field is followed by '&' and the passphrase term is always present.
func SignatureString(fields map[string]string, passphrase string) string {
	var sb strings.Builder
	for _, k := range sortedKeys(fields, FieldSignature, FieldPassphrase) {
		sb.WriteString(k)
		sb.WriteString("=")
		sb.WriteString(Encode(fields[k]))
		sb.WriteString("&")
	}
	sb.WriteString("passphrase=")
	sb.WriteString(Encode(passphrase))
	return sb.String()
}

// GenerateSignature signs outbound payment fields.
func GenerateSignature(fields map[string]string, passphrase string) string {
	return digest(SignatureString(fields, passphrase))
}

// VerificationString builds the pre-hash string for an inbound notification.
// Only the signature field is dropped; the passphrase term is added when non-empty.
func VerificationString(fields map[string]string, passphrase string) string {
	keys := sortedKeys(fields, FieldSignature)
	pairs := make([]string, 0, len(keys)+1)
	for _, k := range keys {
		pairs = append(pairs, k+"="+Encode(fields[k]))
	}
	if passphrase != "" {
		pairs = append(pairs, "passphrase="+Encode(passphrase))
	}
	return strings.Join(pairs, "&")
}

// VerifySignature checks the signature carried by a notification.
// It never mutates fields.
func VerifySignature(fields map[string]string, passphrase string) error {
	received, ok := fields[FieldSignature]
	if !ok {
		return ErrMissingSignature
	}
	if digest(VerificationString(fields, passphrase)) != received {
		return ErrSignatureMismatch
	}
	return nil
}

func digest(s string) string {
	hash := md5.Sum([]byte(s))
	return hex.EncodeToString(hash[:])
}
