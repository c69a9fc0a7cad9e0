package crypto

import (
	"bytes"

	"github.com/CreativeBuilds/bittensor-key-recovery/internal/model"
)

// Tag prefixes every NaCl-encrypted bittensor keyfile.
var Tag = []byte("$NACL")

// IsContainer reports whether blob starts with the $NACL tag.
func IsContainer(blob []byte) bool {
	return bytes.HasPrefix(blob, Tag)
}

// SplitContainer checks the tag and returns the secret box that follows it.
// The returned slice aliases blob.
func SplitContainer(blob []byte) ([]byte, error) {
	if !IsContainer(blob) {
		return nil, &model.FormatError{}
	}
	return blob[len(Tag):], nil
}
