package substrate

import (
	"bytes"
	"errors"

	"github.com/CreativeBuilds/bittensor-key-recovery/internal/common"
)

// SR25519 rebuilds sr25519 keypairs and renders them for one SS58 network.
type SR25519 struct {
	Prefix uint16
}

// NewSR25519 returns a reconstructor for the given SS58 network prefix.
// Reserved and out-of-range prefixes are rejected here, before any key work.
func NewSR25519(prefix uint16) (SR25519, error) {
	if err := ValidatePrefix(prefix); err != nil {
		return SR25519{}, err
	}
	return SR25519{Prefix: prefix}, nil
}

// DeriveKeypair returns the public key and SS58 address for seed.
func (s SR25519) DeriveKeypair(seed [common.SeedLen]byte) ([32]byte, string, error) {
	kp, err := KeypairFromSeed(seed)
	if err != nil {
		return [32]byte{}, "", err
	}
	defer kp.Wipe()

	if err := selfCheck(kp); err != nil {
		return [32]byte{}, "", err
	}

	address, err := kp.Address(s.Prefix)
	if err != nil {
		return [32]byte{}, "", err
	}
	return kp.PublicKey(), address, nil
}

// MnemonicOf returns the BIP-39 phrase whose entropy is seed.
func (s SR25519) MnemonicOf(seed [common.SeedLen]byte) (string, error) {
	return MnemonicFromSeed(seed[:])
}

// SeedFromPhrase returns the mini secret a substrate wallet derives from phrase.
func (s SR25519) SeedFromPhrase(phrase string) ([common.SeedLen]byte, error) {
	return MiniSecretFromPhrase(phrase, "")
}

// SameAccount reports whether address encodes pub, whatever its network prefix.
func (s SR25519) SameAccount(address string, pub [32]byte) (bool, error) {
	decoded, _, err := DecodeSS58(address)
	if err != nil {
		return false, err
	}
	return bytes.Equal(decoded, pub[:]), nil
}

// selfCheck signs a fixed message and verifies it, so a keypair that cannot
// sign for its own public key is never reported.
func selfCheck(kp *Keypair) error {
	msg := []byte("bittensor-key-recovery self-check")
	sig, err := kp.Sign(msg)
	if err != nil {
		return err
	}
	if !kp.Verify(msg, sig) {
		return errors.New("sr25519 self-check failed: signature does not verify")
	}
	return nil
}
