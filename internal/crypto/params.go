package crypto

import (
	"errors"
	"fmt"
)

const (
	// KeyLen is the secret box key size (libsodium crypto_secretbox_KEYBYTES).
	KeyLen = 32
	// SaltLen is the Argon2i salt size (libsodium crypto_pwhash_SALTBYTES).
	SaltLen = 16

	// libsodium crypto_pwhash_argon2i_{OPS,MEM}LIMIT_SENSITIVE.
	// These are part of the $NACL file format: changing them makes every
	// existing cold key unreadable.
	sensitiveOpsLimit = 8
	sensitiveMemLimit = 536870912 // bytes, 512 MiB

	// libsodium runs argon2 single-lane
	argon2Threads = 1
)

// nacl salt baked into the bittensor keyfile format
var keyfileSalt = [SaltLen]byte{
	0x13, 0x71, 0x83, 0xdf, 0xf1, 0x5a, 0x09, 0xbc,
	0x9c, 0x90, 0xb5, 0x51, 0x87, 0x39, 0xe9, 0xb1,
}

// Params are the Argon2i inputs for one key derivation.
// A Params value is immutable once built; SensitiveParams is the only
// preset that opens real cold keys, lower presets exist for tests.
type Params struct {
	Salt    [SaltLen]byte
	Time    uint32 // passes (opslimit)
	Memory  uint32 // KiB
	Threads uint8
}

// SensitiveParams returns the pinned parameters of the $NACL format.
func SensitiveParams() Params {
	return Params{
		Salt:    keyfileSalt,
		Time:    sensitiveOpsLimit,
		Memory:  sensitiveMemLimit / 1024,
		Threads: argon2Threads,
	}
}

// Validate rejects parameter sets argon2 would panic on or libsodium would refuse.
func (p Params) Validate() error {
	if p.Time < 1 {
		return errors.New("argon2i needs at least one pass")
	}
	if p.Threads < 1 {
		return errors.New("argon2i needs at least one lane")
	}
	if p.Memory < 8*uint32(p.Threads) {
		return fmt.Errorf("argon2i memory must be at least %d KiB", 8*uint32(p.Threads))
	}
	return nil
}
