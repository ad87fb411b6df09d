// netcarve computes the set-difference between a target CIDR network and a
// list of excluded hosts/subnets, printing the minimal collapsed list of CIDR
// blocks that cover the remainder.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/p4th0r/netcarve/internal/cli"
)

// version is set via ldflags at build time
var version = "dev"

func main() {
	rootCmd := cli.NewRootCmd(version)
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintln(os.Stderr, exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		// Flag parsing and other cobra-level failures count as bad input.
		fmt.Fprintf(os.Stderr, "[netcarve] Error: %v\n", err)
		os.Exit(cli.ExitBadAddresses)
	}
}
