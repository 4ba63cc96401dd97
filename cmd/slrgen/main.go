/*
Slrgen computes the SLR(1) ACTION/GOTO table for a context-free grammar.

It reads a grammar, either from a file or typed inline, and prints the
rendered parse table to stdout. No grammar state is ever persisted between
runs.

Usage:

	slrgen [flags]

The flags are:

	-v, --version
		Give the current version of slrgen and then exit.

	-f, --format {text|binary|html}
		Select the table renderer. Defaults to "text".

	--serve ADDR
		Serve the rendered table as HTML on ADDR instead of printing it.

	--config FILE
		Read ambient presentation settings (format, ancillary blocks, serve
		address) from a TOML file. Flags given on the command line override
		the file.

	-a, --ancillary
		Print terminals, non-terminals, the augmented grammar, and
		FIRST/FOLLOW sets before the table.
*/
package main

import (
	"fmt"
	"os"

	"github.com/dekarrin/slrgen/internal/slrapp"
	"github.com/dekarrin/slrgen/internal/slrconfig"
	"github.com/dekarrin/slrgen/internal/version"
	"github.com/spf13/pflag"
)

var (
	flagVersion   = pflag.BoolP("version", "v", false, "Gives the version info")
	flagFormat    = pflag.StringP("format", "f", "", "Table renderer to use: text, binary, or html")
	flagServe     = pflag.String("serve", "", "Serve the rendered table as HTML on this address instead of printing it")
	flagConfig    = pflag.String("config", "", "Read ambient presentation settings from a TOML file")
	flagAncillary = pflag.BoolP("ancillary", "a", false, "Print terminals, non-terminals, augmented grammar, and FIRST/FOLLOW sets before the table")
)

func main() {
	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	cfg := slrconfig.Default()
	if *flagConfig != "" {
		loaded, err := slrconfig.Load(*flagConfig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			os.Exit(slrapp.ExitIOError)
		}
		cfg = loaded
	}

	if *flagFormat != "" {
		cfg.Format = slrconfig.Format(*flagFormat)
	}
	if *flagAncillary {
		cfg.Ancillary = true
	}

	opts := slrapp.OptionsFromConfig(cfg)
	if *flagServe != "" {
		opts.ServeAddr = *flagServe
	}

	os.Exit(slrapp.Run(opts))
}
