// Package fingerprint computes content digests used to detect whether a
// stored document has changed since import. MD5 is used for change
// detection only, not for anything security sensitive.
package fingerprint

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"

	"warraq/internal/domain"
)

// Sum returns the MD5 digest of data as a 32-character uppercase hex
// string. Equal inputs always produce equal digests; a single-byte edit
// changes the digest with overwhelming probability. A nil slice is a
// validation error, never silently treated as empty content.
func Sum(data []byte) (string, error) {
	if data == nil {
		return "", fmt.Errorf("fingerprint: %w: nil content", domain.ErrInvalidInput)
	}
	digest := md5.Sum(data)
	return strings.ToUpper(hex.EncodeToString(digest[:])), nil
}

// SumText fingerprints a string. Strings cannot be nil, so SumText is
// total; the empty string digests like any other input.
func SumText(text string) string {
	sum, _ := Sum(append(make([]byte, 0, len(text)), text...))
	return sum
}
