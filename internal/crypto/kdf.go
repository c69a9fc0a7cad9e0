package crypto

import (
	"fmt"

	"golang.org/x/crypto/argon2"
)

// KeyDeriver turns a password into a secret box key.
type KeyDeriver interface {
	DeriveKey(password []byte) (*[KeyLen]byte, error)
}

// Argon2iDeriver derives keys with Argon2i v1.3, the algorithm behind
// libsodium's crypto_pwhash_argon2i.
type Argon2iDeriver struct {
	params Params
}

// NewDeriver creates a deriver bound to params.
func NewDeriver(params Params) (*Argon2iDeriver, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid kdf params: %w", err)
	}
	return &Argon2iDeriver{params: params}, nil
}

// DeriveKey runs Argon2i over password. It blocks for the whole computation;
// with SensitiveParams that is 512 MiB of memory and several seconds of CPU.
// The caller owns the key and must wipe it.
func (d *Argon2iDeriver) DeriveKey(password []byte) (*[KeyLen]byte, error) {
	p := d.params
	derived := argon2.Key(password, p.Salt[:], p.Time, p.Memory, p.Threads, KeyLen)

	key := new([KeyLen]byte)
	copy(key[:], derived)
	clear(derived)

	return key, nil
}
