package service

import (
	"crypto/sha512"
	"encoding/hex"
	"io"
)

// SHA512Signer implements ports.Signer: lowercase hex SHA-512 over the
// values concatenated with no separator.
//
// The credentials are among the signed values, so the digest is a
// shared-secret checksum rather than a MAC. Anyone who sees a request and
// knows the field order can recompute it.
type SHA512Signer struct{}

// NewSHA512Signer creates a new signer.
func NewSHA512Signer() *SHA512Signer {
	return &SHA512Signer{}
}

// Sign hashes orderedValues in the order given. Values are used as-is:
// no trimming, no re-encoding.
func (s *SHA512Signer) Sign(orderedValues []string) string {
	h := sha512.New()
	for _, v := range orderedValues {
		_, _ = io.WriteString(h, v)
	}
	return hex.EncodeToString(h.Sum(nil))
}
