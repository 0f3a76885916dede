package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose     bool
	configPath  string
	envFile     string
	catalogPath string
	logFile     string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "twisted",
		Short:         "Twisted Colors: browse and shop abstract art from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return validateRootFlags(flags)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, open the storefront
			return runShop(cmd, flags, "")
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML settings file")
	cmd.PersistentFlags().StringVar(&flags.envFile, "env-file", "", "Path to a dotenv file (default: ./.env when present)")
	cmd.PersistentFlags().StringVar(&flags.catalogPath, "catalog", "", "Path to a YAML catalog replacing the built-in one")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file")

	cmd.AddCommand(newShopCmd(flags))
	cmd.AddCommand(newCatalogCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
