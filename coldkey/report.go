package coldkey

import (
	"fmt"
	"io"

	"github.com/CreativeBuilds/bittensor-key-recovery/internal/model"

	"github.com/fatih/color"
	"github.com/skip2/go-qrcode"
)

var (
	okMark   = color.New(color.FgGreen, color.Bold)
	warnMark = color.New(color.FgYellow)
)

// WriteReport prints res in the human-readable layout of the unlock tool.
// Warnings go to warnings (usually stderr) so stdout stays parseable.
func WriteReport(out, warnings io.Writer, res *Result, showQR bool) error {
	okMark.Fprintln(out, "\n✓  decrypted")

	if res.Outcome == model.NoSeedPresent {
		fmt.Fprintln(out, "No seed found – file only holds public data")
		if res.StoredAddress != "" {
			fmt.Fprintln(out, "SS58 addr  :", res.StoredAddress, "(stored)")
		}
		return nil
	}

	fmt.Fprintln(out, "Seed (hex) :", res.SeedHex)
	fmt.Fprintln(out, "SS58 addr  :", res.Address)
	fmt.Fprintln(out, "Mnemonic   :", res.Mnemonic)

	for _, w := range res.Warnings {
		warnMark.Fprintln(warnings, "warning:", w)
	}

	if showQR {
		qr, err := AddressQR(res.Address)
		if err != nil {
			return err
		}
		fmt.Fprint(out, qr)
	}
	return nil
}

// AddressQR renders address as a QR code made of terminal block characters.
func AddressQR(address string) (string, error) {
	qr, err := qrcode.New(address, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to create QR code: %w", err)
	}
	return qr.ToSmallString(false), nil
}
