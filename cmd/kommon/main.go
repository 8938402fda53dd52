/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/voedger/kommon/pkg/goutils/cobrau"
)

//go:embed version
var version string

func main() {
	if err := execRootCmd(os.Args, version); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func execRootCmd(args []string, ver string) error {
	rootCmd := cobrau.PrepareRootCmd(
		"kommon",
		"hash, compare and format values the way kommon library does",
		args,
		ver,
		newHashCmd(),
		newFormatCmd(),
	)

	return cobrau.ExecCommandAndCatchInterrupt(rootCmd)
}
