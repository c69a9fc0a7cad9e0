package coldkey

import (
	"crypto/subtle"
	"encoding/json"
	"fmt"

	"github.com/CreativeBuilds/bittensor-key-recovery/internal/common"
	"github.com/CreativeBuilds/bittensor-key-recovery/internal/crypto"
	"github.com/CreativeBuilds/bittensor-key-recovery/internal/model"

	"github.com/sirupsen/logrus"
)

// Reconstructor rebuilds public key material from a recovered seed.
type Reconstructor interface {
	DeriveKeypair(seed [common.SeedLen]byte) ([32]byte, string, error)
	MnemonicOf(seed [common.SeedLen]byte) (string, error)
	SeedFromPhrase(phrase string) ([common.SeedLen]byte, error)
	SameAccount(address string, pub [32]byte) (bool, error)
}

// Result is what one successful unlock produced.
// Everything except StoredAddress is derived from the seed alone.
type Result struct {
	Outcome       model.Outcome
	SeedHex       string
	PublicKey     [32]byte
	Address       string
	Mnemonic      string
	StoredAddress string   // ss58Address as found in the keyfile
	Warnings      []string // disagreements between the keyfile and the derived keys
}

// Unlocker runs the decrypt and reconstruct pipeline for one keyfile at a time.
type Unlocker struct {
	kdf  crypto.KeyDeriver
	keys Reconstructor
	log  logrus.FieldLogger
}

// NewUnlocker creates an Unlocker. A nil log discards diagnostics.
func NewUnlocker(kdf crypto.KeyDeriver, keys Reconstructor, log logrus.FieldLogger) *Unlocker {
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l
	}
	return &Unlocker{kdf: kdf, keys: keys, log: log}
}

// Unlock decrypts blob with password and rebuilds the keypair it holds.
// password must be []byte for security (caller should zero it after use).
// Errors are *model.FormatError, *model.AuthenticationError or *model.DecodeError;
// a keyfile without a seed is not an error but a NoSeedPresent result.
func (u *Unlocker) Unlock(blob, password []byte) (*Result, error) {
	plaintext, err := crypto.DecryptKeyfile(blob, password, u.kdf)
	if err != nil {
		u.log.WithField("format_error", model.IsFormatError(err)).Debug("keyfile not opened")
		return nil, err
	}
	defer common.Wipe(plaintext) // wipe decrypted bytes from memory
	u.log.Debug("keyfile decrypted")

	var data model.KeyfileData
	if err := json.Unmarshal(plaintext, &data); err != nil {
		return nil, &model.DecodeError{Field: "payload", Message: "not a JSON key record", Err: err}
	}

	res := &Result{StoredAddress: data.StoredAddress()}
	if !data.HasSeed() {
		u.log.Debug("no secretSeed in keyfile")
		res.Outcome = model.NoSeedPresent
		return res, nil
	}

	seed, err := common.DecodeSeedHex(*data.SecretSeed)
	if err != nil {
		return nil, &model.DecodeError{Field: "secretSeed", Err: err}
	}
	defer common.Wipe(seed[:])
	u.log.Debug("seed parsed")

	if err := u.reconstruct(res, seed); err != nil {
		return nil, err
	}
	u.crossCheck(res, &data, seed)

	res.Outcome = model.KeypairDerived
	u.log.WithField("address", res.Address).Debug("keypair derived")
	return res, nil
}

func (u *Unlocker) reconstruct(res *Result, seed [common.SeedLen]byte) error {
	pub, address, err := u.keys.DeriveKeypair(seed)
	if err != nil {
		return &model.DecodeError{Field: "secretSeed", Message: "cannot derive keypair", Err: err}
	}

	mnemonic, err := u.keys.MnemonicOf(seed)
	if err != nil {
		return &model.DecodeError{Field: "secretSeed", Message: "cannot encode mnemonic", Err: err}
	}

	res.SeedHex = fmt.Sprintf("%x", seed[:])
	res.PublicKey = pub
	res.Address = address
	res.Mnemonic = mnemonic
	return nil
}

// crossCheck compares the keyfile's own address and phrase with the derived keys.
// Mismatches become warnings; the derived values stay authoritative.
func (u *Unlocker) crossCheck(res *Result, data *model.KeyfileData, seed [common.SeedLen]byte) {
	if stored := data.StoredAddress(); stored != "" {
		same, err := u.keys.SameAccount(stored, res.PublicKey)
		switch {
		case err != nil:
			res.Warnings = append(res.Warnings, fmt.Sprintf("stored ss58Address %q is not a valid address", stored))
		case !same:
			res.Warnings = append(res.Warnings, fmt.Sprintf("stored ss58Address %s does not match the seed (derived %s)", stored, res.Address))
		}
	}

	phrase := data.StoredPhrase()
	if phrase == "" {
		return
	}
	// a phrase can encode the seed directly or be its substrate-bip39 source
	if subtle.ConstantTimeCompare([]byte(phrase), []byte(res.Mnemonic)) == 1 {
		return
	}
	fromPhrase, err := u.keys.SeedFromPhrase(phrase)
	if err != nil {
		res.Warnings = append(res.Warnings, "stored secretPhrase is not a valid mnemonic")
		return
	}
	defer common.Wipe(fromPhrase[:])

	if subtle.ConstantTimeCompare(fromPhrase[:], seed[:]) != 1 {
		res.Warnings = append(res.Warnings, "stored secretPhrase does not produce the stored seed")
	}
}
