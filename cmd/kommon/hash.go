/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/voedger/kommon/pkg/collect"
	"github.com/voedger/kommon/pkg/goutils/logger"
	"github.com/voedger/kommon/pkg/objects"
)

func newHashCmd() *cobra.Command {
	var each bool
	cmd := &cobra.Command{
		Use:   "hash VALUE...",
		Short: "Print hash code of values",
		Long: `Print hash code of values combined by HashAll.
Integers are hashed as int64, numeric float literals as float64, true and false as bool,
anything else (including NaN and Inf words) as string.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := collect.Map(collect.Slice(args), parseValue)
			if logger.IsVerbose() {
				logger.Verbose("hashing", objects.ToStringOf(values))
			}
			out := cmd.OutOrStdout()
			if each {
				return collect.ForEachError(collect.Slice(args), func(arg string) error {
					_, err := fmt.Fprintf(out, "%s\t%d\n", arg, objects.HashCodeOfAny(parseValue(arg)))
					return err
				})
			}
			_, err := fmt.Fprintln(out, objects.HashAll(values[0], values[1:]...))
			return err
		},
	}
	cmd.Flags().BoolVar(&each, "each", false, "print hash code of each value")
	return cmd
}

func parseValue(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// ParseFloat also accepts NaN and Inf words
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	return s
}
