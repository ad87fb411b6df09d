// Package cli provides the command-line interface for netcarve.
package cli

import (
	"github.com/p4th0r/netcarve/internal/config"
	"github.com/spf13/cobra"
)

// AddFlags adds all flags to the root command.
func AddFlags(cmd *cobra.Command, cfg *config.Config) {
	// Exclusion input
	cmd.Flags().StringVarP(&cfg.Addresses, "addresses", "a", "", "Comma or whitespace separated addresses of hosts and/or networks to be excluded")
	cmd.Flags().StringVarP(&cfg.AddressesFile, "addresses-file", "f", "", "Path to an exclusion list file (one entry per line, # comments)")

	// Output shaping
	cmd.Flags().StringVarP(&cfg.Separator, "separator", "s", "\n", "Separator for the list of resulting networks")
	cmd.Flags().StringVarP(&cfg.Prefix, "prefix", "p", "", "Prefix to put before each resulting network, for example \"ip route add \"")
	cmd.Flags().StringVarP(&cfg.Postfix, "postfix", "P", "", "Postfix to be placed after each resulting network, for example \" via tun0\"")
	cmd.Flags().BoolVar(&cfg.JSON, "json", false, "Emit the result as a JSON document")

	// Behavior
	cmd.Flags().BoolVarP(&cfg.Ignore, "ignore", "i", false, "Ignore non-valid excluded addresses instead of failing")
	cmd.Flags().BoolVarP(&cfg.Quiet, "quiet", "q", false, "Suppress diagnostic output")
	cmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "Show debug output")
}
