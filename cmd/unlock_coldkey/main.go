// Dump the seed, address and mnemonic held in a $NACL-encrypted bittensor cold key.
// Usage: unlock_coldkey [--qr] [--ss58-prefix N] ~/.bittensor/wallets/<name>/coldkey
package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/CreativeBuilds/bittensor-key-recovery/coldkey"
	"github.com/CreativeBuilds/bittensor-key-recovery/internal/config"
	"github.com/CreativeBuilds/bittensor-key-recovery/internal/crypto"
	"github.com/CreativeBuilds/bittensor-key-recovery/internal/model"
	"github.com/CreativeBuilds/bittensor-key-recovery/substrate"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// errUsage is returned after usage has already been printed
var errUsage = errors.New("usage")

func main() {
	if err := newApp().Run(os.Args); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, describe(err))
		}
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "unlock_coldkey",
		Usage:     "dump the seed / mnemonic from a $NACL-encrypted bittensor cold key",
		UsageText: "unlock_coldkey [--qr] [--ss58-prefix N] [-v] /path/to/coldkey\n\nFlags are only read before the path.",
		ArgsUsage: "/path/to/coldkey",
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  "ss58-prefix",
				Usage: "network prefix for the derived address (overrides COLDKEY_SS58_PREFIX)",
			},
			&cli.BoolFlag{
				Name:  "qr",
				Usage: "also print the derived address as a QR code",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log pipeline steps to stderr",
			},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 1 {
		fmt.Fprintf(c.App.ErrWriter, "usage: %s [--qr] [--ss58-prefix N] [-v] %s\n", c.App.Name, c.App.ArgsUsage)
		fmt.Fprintln(c.App.ErrWriter, "flags must come before the path")
		return errUsage
	}

	if err := config.Init(); err != nil {
		return err
	}

	log.SetOutput(c.App.ErrWriter)
	log.SetLevel(config.GetLogLevel())
	if c.Bool("verbose") {
		log.SetLevel(log.DebugLevel)
	}

	prefix := config.GetSS58Prefix()
	if c.IsSet("ss58-prefix") {
		if c.Uint("ss58-prefix") > math.MaxUint16 {
			return fmt.Errorf("ss58 prefix %d out of range", c.Uint("ss58-prefix"))
		}
		prefix = uint16(c.Uint("ss58-prefix"))
	}
	scheme, err := substrate.NewSR25519(prefix)
	if err != nil {
		return err
	}
	showQR := config.GetShowQR() || c.Bool("qr")

	// read the file first: no password prompt for a missing or foreign file
	filePath := c.Args().First()
	blob, err := coldkey.ReadKeyfile(filePath)
	if err != nil {
		return err
	}
	defer clear(blob)
	if !crypto.IsContainer(blob) {
		return &model.FormatError{}
	}

	kdf, err := crypto.NewDeriver(crypto.SensitiveParams())
	if err != nil {
		return err
	}
	unlocker := coldkey.NewUnlocker(kdf, scheme, log.WithField("file", filePath))

	password, err := config.ReadPassword("Cold-key password: ")
	if err != nil {
		return err
	}
	defer clear(password) // Always clear password from memory

	res, err := unlocker.Unlock(blob, password)
	if err != nil {
		return err
	}

	return coldkey.WriteReport(c.App.Writer, c.App.ErrWriter, res, showQR)
}

// describe turns pipeline errors into the one-line messages shown to the user
func describe(err error) string {
	red := color.New(color.FgRed).SprintFunc()
	switch {
	case model.IsFormatError(err):
		return red("✗  not a $NACL key-file")
	case model.IsAuthenticationError(err):
		return red("✗  wrong password")
	case model.IsDecodeError(err):
		return red("✗  decrypted, but " + err.Error())
	default:
		return red("✗  " + err.Error())
	}
}
