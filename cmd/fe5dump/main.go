// SPDX-License-Identifier: MIT
// Source: github.com/thracia776/fe5comp

// Command fe5dump decodes one compressed chunk from a ROM file (or any
// byte blob) and writes the decompressed bytes to stdout or a file.
package main

import (
	"flag"
	"os"

	"github.com/apex/log"
	clihandler "github.com/apex/log/handlers/cli"

	"github.com/thracia776/fe5comp"
	"github.com/thracia776/fe5comp/internal/romaddr"
)

func main() {
	log.SetHandler(clihandler.Default)

	if err := run(os.Args[1:]); err != nil {
		log.WithError(err).Fatal("fe5dump failed")
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("fe5dump", flag.ExitOnError)
	offsetFlag := fs.Int("offset", 0, "flat ROM file offset to start decoding at")
	loromFlag := fs.Int("lorom", 0, "LoROM CPU address to start decoding at (overrides -offset)")
	outPath := fs.String("out", "", "file to write decompressed bytes to (default: stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() < 1 {
		log.Error("usage: fe5dump [-offset N | -lorom N] [-out path] <rom-file>")
		os.Exit(2)
	}

	rom, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return err
	}

	offset := *offsetFlag
	if *loromFlag != 0 {
		offset = romaddr.FromLoROM(*loromFlag)
	}

	log.WithField("offset", offset).WithField("rom_len", len(rom)).Info("decoding chunk")

	out, consumed, err := fe5comp.Decompress(rom, offset)
	if err != nil {
		return err
	}

	log.WithField("consumed", consumed).WithField("decoded_len", len(out.Bytes())).Info("decode complete")

	if *outPath == "" {
		_, err = os.Stdout.Write(out.Bytes())
		return err
	}
	return os.WriteFile(*outPath, out.Bytes(), 0o644)
}
