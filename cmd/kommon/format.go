/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voedger/kommon/pkg/collect"
	"github.com/voedger/kommon/pkg/msgfmt"
)

func newFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format TEMPLATE [ARG...]",
		Short: "Replace %s placeholders of template with args",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmtArgs := collect.Map(collect.Slice(args[1:]), func(s string) any { return s })
			_, err := fmt.Fprintln(cmd.OutOrStdout(), msgfmt.Format(args[0], fmtArgs...))
			return err
		},
	}
}
