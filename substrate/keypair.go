package substrate

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/CreativeBuilds/bittensor-key-recovery/internal/common"

	"github.com/ChainSafe/go-schnorrkel"
)

const signatureLen = 64

// signingContext is the schnorrkel context substrate signs extrinsics under
var signingContext = []byte("substrate")

// Keypair is an sr25519 keypair rebuilt from a 32-byte mini secret.
// Building it involves no randomness: the same seed always gives the same keys.
type Keypair struct {
	seed   [common.SeedLen]byte
	secret *schnorrkel.SecretKey
	public *schnorrkel.PublicKey
}

// KeypairFromSeed expands seed the way substrate does (ed25519 expansion mode)
// and derives the public key.
func KeypairFromSeed(seed [common.SeedLen]byte) (*Keypair, error) {
	mini, err := schnorrkel.NewMiniSecretKeyFromRaw(seed)
	if err != nil {
		return nil, fmt.Errorf("invalid sr25519 seed: %w", err)
	}

	secret := mini.ExpandEd25519()
	public, err := secret.Public()
	if err != nil {
		return nil, fmt.Errorf("failed to derive sr25519 public key: %w", err)
	}

	return &Keypair{seed: seed, secret: secret, public: public}, nil
}

// PublicKey returns the 32-byte compressed ristretto public key.
func (k *Keypair) PublicKey() [publicKeyLen]byte {
	return k.public.Encode()
}

// Address returns the SS58 encoding of the public key for network prefix.
func (k *Keypair) Address(prefix uint16) (string, error) {
	pub := k.PublicKey()
	return EncodeSS58(pub[:], prefix)
}

// SeedHex returns the seed as lowercase hex without a 0x prefix.
func (k *Keypair) SeedHex() string {
	return hex.EncodeToString(k.seed[:])
}

// Sign signs msg under the substrate signing context.
func (k *Keypair) Sign(msg []byte) ([]byte, error) {
	if k.secret == nil {
		return nil, errors.New("keypair has been wiped")
	}
	sig, err := k.secret.Sign(schnorrkel.NewSigningContext(signingContext, msg))
	if err != nil {
		return nil, fmt.Errorf("failed to sign: %w", err)
	}
	enc := sig.Encode()
	return enc[:], nil
}

// Verify checks a 64-byte signature over msg against the keypair's public key.
func (k *Keypair) Verify(msg, signature []byte) bool {
	if len(signature) != signatureLen {
		return false
	}
	var raw [signatureLen]byte
	copy(raw[:], signature)

	sig := new(schnorrkel.Signature)
	if err := sig.Decode(raw); err != nil {
		return false
	}

	ok, err := k.public.Verify(sig, schnorrkel.NewSigningContext(signingContext, msg))
	return err == nil && ok
}

// Wipe zeroes the copy of the seed held by the keypair.
// The expanded schnorrkel secret lives in library-owned scalars and is
// released to the garbage collector with the keypair.
func (k *Keypair) Wipe() {
	common.Wipe(k.seed[:])
	k.secret = nil
}
