package substrate

import (
	"crypto/sha512"
	"fmt"

	"github.com/CreativeBuilds/bittensor-key-recovery/internal/common"

	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/pbkdf2"
)

const (
	substrateBIP39Rounds = 2048
)

// MnemonicFromSeed returns the BIP-39 phrase encoding seed as entropy.
// A 32-byte seed yields 24 words.
func MnemonicFromSeed(seed []byte) (string, error) {
	phrase, err := bip39.NewMnemonic(seed)
	if err != nil {
		return "", fmt.Errorf("failed to encode mnemonic: %w", err)
	}
	return phrase, nil
}

// MiniSecretFromPhrase derives the sr25519 mini secret substrate wallets
// create from a phrase (substrate-bip39): PBKDF2-HMAC-SHA512 over the
// phrase's entropy, salted with "mnemonic"+password, truncated to 32 bytes.
// This is what a bittensor keyfile stores as secretSeed next to secretPhrase.
func MiniSecretFromPhrase(phrase, password string) ([common.SeedLen]byte, error) {
	var seed [common.SeedLen]byte

	entropy, err := bip39.EntropyFromMnemonic(phrase)
	if err != nil {
		return seed, fmt.Errorf("invalid mnemonic: %w", err)
	}
	defer common.Wipe(entropy)

	derived := pbkdf2.Key(entropy, []byte("mnemonic"+password), substrateBIP39Rounds, 64, sha512.New)
	defer common.Wipe(derived)

	copy(seed[:], derived[:common.SeedLen])
	return seed, nil
}
