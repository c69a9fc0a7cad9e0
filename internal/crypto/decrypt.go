package crypto

import (
	"fmt"

	"github.com/CreativeBuilds/bittensor-key-recovery/internal/common"
	"github.com/CreativeBuilds/bittensor-key-recovery/internal/model"

	"golang.org/x/crypto/nacl/secretbox"
)

const (
	// NonceLen is the secret box nonce prepended to every box.
	NonceLen = 24
)

// Open authenticates and decrypts a secret box laid out as nonce || mac || ciphertext,
// the encoding produced by PyNaCl's SecretBox.encrypt.
// Any failure, including a box too short to hold nonce and mac, is an
// AuthenticationError; no plaintext is returned unless the mac verified.
func Open(key *[KeyLen]byte, box []byte) ([]byte, error) {
	if len(box) < NonceLen+secretbox.Overhead {
		return nil, &model.AuthenticationError{}
	}

	var nonce [NonceLen]byte
	copy(nonce[:], box[:NonceLen])

	plaintext, ok := secretbox.Open(nil, box[NonceLen:], &nonce, key)
	if !ok {
		return nil, &model.AuthenticationError{}
	}
	return plaintext, nil
}

// DecryptKeyfile reads a $NACL container and returns its plaintext.
// The tag is checked before the password is touched, so a foreign file never
// costs a key derivation.
// password must be []byte for security (caller should zero it after use).
// The derived key is wiped before returning on every path.
func DecryptKeyfile(blob, password []byte, kdf KeyDeriver) ([]byte, error) {
	box, err := SplitContainer(blob)
	if err != nil {
		return nil, err
	}

	key, err := kdf.DeriveKey(password)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	defer common.Wipe(key[:])

	return Open(key, box)
}
