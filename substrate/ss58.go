package substrate

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"
)

const (
	// DefaultPrefix is the generic substrate network id, used by bittensor.
	DefaultPrefix uint16 = 42

	maxPrefix      = 16383
	checksumLen    = 2 // for 32-byte account ids
	publicKeyLen   = 32
	simplePrefixes = 64
)

var ss58Pre = []byte("SS58PRE")

// ErrInvalidAddress is returned by DecodeSS58 for anything that is not a
// well-formed, correctly checksummed 32-byte SS58 account address.
var ErrInvalidAddress = errors.New("invalid ss58 address")

// EncodeSS58 encodes a 32-byte public key as an SS58 address for network prefix.
func EncodeSS58(pub []byte, prefix uint16) (string, error) {
	if len(pub) != publicKeyLen {
		return "", fmt.Errorf("public key must be %d bytes, got %d", publicKeyLen, len(pub))
	}
	ident, err := prefixBytes(prefix)
	if err != nil {
		return "", err
	}

	payload := make([]byte, 0, len(ident)+publicKeyLen+checksumLen)
	payload = append(payload, ident...)
	payload = append(payload, pub...)
	payload = append(payload, checksum(payload)...)

	return base58.Encode(payload), nil
}

// DecodeSS58 returns the public key and network prefix carried by address.
func DecodeSS58(address string) ([]byte, uint16, error) {
	data, err := base58.Decode(address)
	if err != nil || len(data) == 0 {
		return nil, 0, ErrInvalidAddress
	}

	var (
		prefix    uint16
		prefixLen int
	)
	switch {
	case data[0] < simplePrefixes:
		prefix, prefixLen = uint16(data[0]), 1
	case data[0] < 128:
		if len(data) < 2 {
			return nil, 0, ErrInvalidAddress
		}
		lower := (data[0]&0b0011_1111)<<2 | data[1]>>6
		upper := data[1] & 0b0011_1111
		prefix, prefixLen = uint16(lower)|uint16(upper)<<8, 2
	default:
		return nil, 0, ErrInvalidAddress
	}

	if len(data) != prefixLen+publicKeyLen+checksumLen {
		return nil, 0, ErrInvalidAddress
	}

	body := data[:prefixLen+publicKeyLen]
	if !bytes.Equal(checksum(body), data[len(body):]) {
		return nil, 0, ErrInvalidAddress
	}

	return append([]byte{}, data[prefixLen:len(body)]...), prefix, nil
}

// ValidatePrefix reports whether prefix can be used to encode addresses.
func ValidatePrefix(prefix uint16) error {
	_, err := prefixBytes(prefix)
	return err
}

func prefixBytes(prefix uint16) ([]byte, error) {
	switch {
	case prefix == 46 || prefix == 47:
		return nil, fmt.Errorf("ss58 prefix %d is reserved", prefix)
	case prefix < simplePrefixes:
		return []byte{byte(prefix)}, nil
	case prefix <= maxPrefix:
		first := byte((prefix&0b0000_0000_1111_1100)>>2) | 0b0100_0000
		second := byte(prefix>>8) | byte(prefix&0b0000_0000_0000_0011)<<6
		return []byte{first, second}, nil
	default:
		return nil, fmt.Errorf("ss58 prefix %d out of range", prefix)
	}
}

// checksum is the first bytes of blake2b-512("SS58PRE" || data)
func checksum(data []byte) []byte {
	sum := blake2b.Sum512(append(append([]byte{}, ss58Pre...), data...))
	return sum[:checksumLen]
}
