package common

import (
	"encoding/hex"
	"fmt"
	"runtime"
	"strings"
)

const (
	SeedLen = 32 // sr25519 mini secret key length
)

// StripHexPrefix removes a single leading "0x" or "0X".
// Only the prefix is removed: "0x00ab" -> "00ab", never "ab".
func StripHexPrefix(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}

// DecodeSeedHex decodes a hex seed (optionally 0x-prefixed) into exactly SeedLen bytes.
// Caller owns the returned array and should Wipe it after use.
func DecodeSeedHex(s string) ([SeedLen]byte, error) {
	var seed [SeedLen]byte

	raw := StripHexPrefix(s)
	if len(raw) != hex.EncodedLen(SeedLen) {
		return seed, fmt.Errorf("expected %d hex characters, got %d", hex.EncodedLen(SeedLen), len(raw))
	}

	n, err := hex.Decode(seed[:], []byte(raw))
	if err != nil {
		Wipe(seed[:])
		return seed, fmt.Errorf("malformed hex: %w", err)
	}
	if n != SeedLen {
		Wipe(seed[:])
		return seed, fmt.Errorf("expected %d bytes, got %d", SeedLen, n)
	}

	return seed, nil
}

// Wipe overwrites a byte slice with zeros
func Wipe(b []byte) {
	clear(b)
	runtime.KeepAlive(b)
}
