package common

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStripHexPrefix(t *testing.T) {
	cases := map[string]string{
		"0xabcd":   "abcd",
		"0Xabcd":   "abcd",
		"abcd":     "abcd",
		"0x00ab":   "00ab",
		"000xab":   "000xab",
		"  0xff  ": "ff",
		"0x":       "",
		"":         "",
	}
	for in, want := range cases {
		require.Equal(t, want, StripHexPrefix(in), "input %q", in)
	}
}

func TestDecodeSeedHex(t *testing.T) {
	zero := strings.Repeat("00", SeedLen)

	seed, err := DecodeSeedHex("0x" + zero)
	require.NoError(t, err)
	require.Equal(t, [SeedLen]byte{}, seed)

	// leading zero nibbles must survive prefix stripping
	seed, err = DecodeSeedHex("0x00" + strings.Repeat("ab", SeedLen-1))
	require.NoError(t, err)
	require.Equal(t, byte(0x00), seed[0])
	require.Equal(t, byte(0xab), seed[SeedLen-1])

	seed, err = DecodeSeedHex(strings.ToUpper(strings.Repeat("ff", SeedLen)))
	require.NoError(t, err)
	require.Equal(t, byte(0xff), seed[0])
}

func TestDecodeSeedHexRejects(t *testing.T) {
	for _, in := range []string{
		"",
		"0x",
		strings.Repeat("00", SeedLen-1),
		strings.Repeat("00", SeedLen+1),
		strings.Repeat("zz", SeedLen),
		"0x" + strings.Repeat("0", 2*SeedLen-1) + "g",
	} {
		_, err := DecodeSeedHex(in)
		require.Error(t, err, "input %q", in)
	}
}

func TestWipe(t *testing.T) {
	b := []byte{1, 2, 3}
	Wipe(b)
	require.Equal(t, []byte{0, 0, 0}, b)
	Wipe(nil)
}
