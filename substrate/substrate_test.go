package substrate

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/CreativeBuilds/bittensor-key-recovery/internal/common"

	"github.com/stretchr/testify/require"
)

const (
	// subkey inspect //Alice
	aliceSeed    = "e5be9a5092b81bca64be81d212e7f2f9eba183bb7a90954f7b76361f6edb5c0a"
	alicePublic  = "d43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d"
	aliceAddress = "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY"

	// subkey inspect "bottom drive obey lake curtain smoke basket hold race lonely fit walk"
	devPhrase  = "bottom drive obey lake curtain smoke basket hold race lonely fit walk"
	devSeed    = "fac7959dbfe72f052e5a0c3c8d6530f202b02fd8f9f5ca3580ec8deb7797479e"
	devPublic  = "46ebddef8cd9bb167dc30878d7113b7e168e6f0646beffd77d69d39bad76b47a"
	devAddress = "5DfhGyQdFobKM8NsWvEeAKk5EQQgYe9AydgJ7rMB6E1EqRzV"

	// all-zero mini secret, network 42
	zeroSeedAddress = "5H728gLgx4yuCSVEwGCAfLo3RtzTau9F6cTNqNJtrqqjACWq"
)

func mustSeed(t *testing.T, s string) [common.SeedLen]byte {
	t.Helper()
	seed, err := common.DecodeSeedHex(s)
	require.NoError(t, err)
	return seed
}

func TestKeypairFromSeedVectors(t *testing.T) {
	for _, tc := range []struct {
		seed, public, address string
	}{
		{aliceSeed, alicePublic, aliceAddress},
		{devSeed, devPublic, devAddress},
	} {
		kp, err := KeypairFromSeed(mustSeed(t, tc.seed))
		require.NoError(t, err)

		pub := kp.PublicKey()
		require.Equal(t, tc.public, hex.EncodeToString(pub[:]))

		addr, err := kp.Address(DefaultPrefix)
		require.NoError(t, err)
		require.Equal(t, tc.address, addr)
		require.Equal(t, tc.seed, kp.SeedHex())
	}
}

func TestKeypairDeterministic(t *testing.T) {
	seed := mustSeed(t, strings.Repeat("00", common.SeedLen))
	scheme, err := NewSR25519(DefaultPrefix)
	require.NoError(t, err)

	pub1, addr1, err := scheme.DeriveKeypair(seed)
	require.NoError(t, err)
	pub2, addr2, err := scheme.DeriveKeypair(seed)
	require.NoError(t, err)

	require.Equal(t, pub1, pub2)
	require.Equal(t, addr1, addr2)
	require.Equal(t, zeroSeedAddress, addr1)

	decoded, prefix, err := DecodeSS58(addr1)
	require.NoError(t, err)
	require.Equal(t, DefaultPrefix, prefix)
	require.Equal(t, pub1[:], decoded)
}

func TestKeypairSignVerify(t *testing.T) {
	kp, err := KeypairFromSeed(mustSeed(t, aliceSeed))
	require.NoError(t, err)

	msg := []byte("unlock")
	sig, err := kp.Sign(msg)
	require.NoError(t, err)
	require.Len(t, sig, 64)

	require.True(t, kp.Verify(msg, sig))
	require.False(t, kp.Verify([]byte("other"), sig))
	require.False(t, kp.Verify(msg, sig[:10]))

	kp.Wipe()
	require.Equal(t, strings.Repeat("00", common.SeedLen), kp.SeedHex())
	_, err = kp.Sign(msg)
	require.Error(t, err)
}

func TestEncodeSS58(t *testing.T) {
	zero := make([]byte, 32)
	addr, err := EncodeSS58(zero, DefaultPrefix)
	require.NoError(t, err)
	require.Equal(t, "5C4hrfjw9DjXZTzV3MwzrrAr9P1MJhSrvWGWqi1eSuyUpnhM", addr)

	alice, _ := hex.DecodeString(alicePublic)
	addr, err = EncodeSS58(alice, 0)
	require.NoError(t, err)
	require.Equal(t, "15oF4uVJwmo4TdGW7VfQxNLavjCXviqxT9S1MgbjMNHr6Sp5", addr)

	_, err = EncodeSS58(zero[:31], DefaultPrefix)
	require.Error(t, err)
	_, err = EncodeSS58(zero, 46)
	require.Error(t, err)
	_, err = EncodeSS58(zero, 16384)
	require.Error(t, err)
}

func TestSS58RoundTripFullPrefix(t *testing.T) {
	alice, _ := hex.DecodeString(alicePublic)
	for _, prefix := range []uint16{0, 2, 42, 63, 64, 255, 1284, 16383} {
		addr, err := EncodeSS58(alice, prefix)
		require.NoError(t, err)

		pub, got, err := DecodeSS58(addr)
		require.NoError(t, err, "prefix %d", prefix)
		require.Equal(t, prefix, got)
		require.Equal(t, alice, pub)
	}
}

func TestDecodeSS58Rejects(t *testing.T) {
	// last character changed: checksum mismatch
	bad := aliceAddress[:len(aliceAddress)-1] + "Z"
	for _, addr := range []string{"", "0OIl", bad, "5C4hrfjw9DjXZTzV3Mwz", aliceAddress + "1"} {
		_, _, err := DecodeSS58(addr)
		require.ErrorIs(t, err, ErrInvalidAddress, "address %q", addr)
	}
}

func TestMnemonicFromSeed(t *testing.T) {
	phrase, err := MnemonicFromSeed(make([]byte, 32))
	require.NoError(t, err)
	require.Equal(t, strings.Repeat("abandon ", 23)+"art", phrase)

	words := strings.Fields(phrase)
	require.Len(t, words, 24)

	_, err = MnemonicFromSeed(make([]byte, 7))
	require.Error(t, err)
}

func TestMiniSecretFromPhrase(t *testing.T) {
	seed, err := MiniSecretFromPhrase(devPhrase, "")
	require.NoError(t, err)
	require.Equal(t, devSeed, hex.EncodeToString(seed[:]))

	_, err = MiniSecretFromPhrase("not a real phrase", "")
	require.Error(t, err)
}

func TestNewSR25519RejectsBadPrefix(t *testing.T) {
	for _, prefix := range []uint16{46, 47, 16384, 65535} {
		_, err := NewSR25519(prefix)
		require.Error(t, err, "prefix %d", prefix)
		require.Error(t, ValidatePrefix(prefix))
	}
	for _, prefix := range []uint16{0, 2, 42, 45, 48, 63, 64, 16383} {
		scheme, err := NewSR25519(prefix)
		require.NoError(t, err, "prefix %d", prefix)
		require.Equal(t, prefix, scheme.Prefix)
	}
}

func TestSelfCheck(t *testing.T) {
	kp, err := KeypairFromSeed(mustSeed(t, aliceSeed))
	require.NoError(t, err)
	require.NoError(t, selfCheck(kp))

	kp.Wipe()
	require.Error(t, selfCheck(kp))
}
