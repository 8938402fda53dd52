/*
* Copyright (c) 2023-present unTill Pro, Ltd.
 */

package cobrau

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voedger/kommon/pkg/config"
	"github.com/voedger/kommon/pkg/goutils/logger"
)

/*

Flags of every command:

  -v, --verbose       Print verbose output (detailed level)
      --trace         Print trace output   (most detailed level)

Persistent flags:

      --config FILE   YAML config, see config.Config. KOMMON_* environment variables override it

*/

func addFlagsToCommands(cmd *cobra.Command) {
	cmd.Flags().BoolP("verbose", "v", false, "Enable verbose output")
	cmd.Flags().Bool("trace", false, "Enable extremely verbose output")
	cmd.InitDefaultHelpFlag()
	cmd.SilenceErrors = true

	for _, subCmd := range cmd.Commands() {
		addFlagsToCommands(subCmd)
	}
}

// PrepareRootCmd returns root command with version subcommand and cmds.
//
// Before any command runs the config is loaded and applied, then -v and --trace flags raise the log level
func PrepareRootCmd(use string, short string, args []string, version string, cmds ...*cobra.Command) *cobra.Command {
	var configFile string

	var rootCmd = &cobra.Command{
		Use:   use,
		Short: short,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFile(configFile)
			if err != nil {
				return err
			}
			if err := cfg.Apply(); err != nil {
				return err
			}
			if ok, _ := cmd.Flags().GetBool("trace"); ok {
				logger.SetLogLevel(logger.LogLevelTrace)
				logger.Verbose("Using logger.LogLevelTrace...")
			} else if ok, _ := cmd.Flags().GetBool("verbose"); ok {
				logger.SetLogLevel(logger.LogLevelVerbose)
				logger.Verbose("Using logger.LogLevelVerbose...")
			}
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML config file")

	var versionCmd = &cobra.Command{
		Use:     "version",
		Short:   "Print the current version",
		Aliases: []string{"ver"},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", cmd.Root().Name(), version)
		},
	}

	rootCmd.SetArgs(args[1:])
	rootCmd.AddCommand(cmds...)

	rootCmd.InitDefaultCompletionCmd()
	addFlagsToCommands(rootCmd)

	rootCmd.AddCommand(versionCmd)
	rootCmd.SilenceUsage = true
	return rootCmd
}
