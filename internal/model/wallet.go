package model

import "github.com/CreativeBuilds/bittensor-key-recovery/internal/common"

// KeyfileData represents the decrypted JSON payload of a cold-key file.
// Every field is optional; nil means the key was absent or null.
type KeyfileData struct {
	SecretSeed   *string `json:"secretSeed"`   // hex, optionally 0x-prefixed
	SecretPhrase *string `json:"secretPhrase"` // mnemonic the seed was created from
	SS58Address  *string `json:"ss58Address"`  // informational only, never trusted
}

// HasSeed reports whether the record carries private material.
// A seed that is empty once the 0x prefix and whitespace are removed counts as absent.
func (d *KeyfileData) HasSeed() bool {
	return d.SecretSeed != nil && common.StripHexPrefix(*d.SecretSeed) != ""
}

// StoredPhrase returns the stored mnemonic, or "" when absent.
func (d *KeyfileData) StoredPhrase() string {
	if d.SecretPhrase == nil {
		return ""
	}
	return *d.SecretPhrase
}

// StoredAddress returns the stored SS58 address, or "" when absent.
func (d *KeyfileData) StoredAddress() string {
	if d.SS58Address == nil {
		return ""
	}
	return *d.SS58Address
}

// Outcome is the terminal state of one unlock run.
type Outcome int

const (
	// NoSeedPresent means the container decrypted but holds only public data.
	NoSeedPresent Outcome = iota + 1
	// KeypairDerived means a seed was recovered and the keypair rebuilt from it.
	KeypairDerived
)

func (o Outcome) String() string {
	switch o {
	case NoSeedPresent:
		return "no-seed"
	case KeypairDerived:
		return "keypair-derived"
	default:
		return "unknown"
	}
}
