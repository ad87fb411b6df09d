// Package cli provides the root command and main execution flow for netcarve.
package cli

import (
	"errors"
	"fmt"
	"net/netip"
	"os"

	"github.com/p4th0r/netcarve/internal/classify"
	"github.com/p4th0r/netcarve/internal/config"
	"github.com/p4th0r/netcarve/internal/logging"
	"github.com/p4th0r/netcarve/internal/netcalc"
	"github.com/p4th0r/netcarve/internal/output"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for netcarve.
func NewRootCmd(version ...string) *cobra.Command {
	ver := "dev"
	if len(version) > 0 && version[0] != "" {
		ver = version[0]
	}
	cfg := &config.Config{}

	cmd := &cobra.Command{
		Use:   "netcarve [OPTIONS] <network>",
		Short: "Carve excluded hosts and subnets out of a CIDR network",
		Long: `netcarve computes the set-difference between a target network and a list of
excluded hosts/subnets, printing the minimal collapsed set of CIDR blocks that
cover everything in the target except the exclusions.

Typical use is generating routing or firewall configuration that covers a
network minus a few holes:

  netcarve 10.0.0.0/8 -a "10.1.1.1,10.1.1.2" -p "ip route add " -P " via tun0"

Exit codes:
  0  success (including an empty result when the target is fully excluded)
  1  the target network is not a valid network string
  2  missing/invalid addresses argument, or (without --ignore) one or more
     excluded addresses failed classification`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Network = args[0]
			return runCarve(cfg)
		},
	}

	AddFlags(cmd, cfg)

	cmd.AddCommand(NewVersionCmd(ver))
	cmd.AddCommand(NewCompletionCmd())

	return cmd
}

func runCarve(cfg *config.Config) error {
	logger := logging.NewStderrLogger(cfg.Quiet, cfg.Verbose)

	// Parse the target first: an invalid target is its own failure mode and
	// takes precedence over a missing addresses argument.
	target, err := netcalc.ParseNetwork(cfg.Network)
	if err != nil {
		logger.Debug("target parse: %v", err)
		return exitErrorf(ExitInvalidTarget, "%s is not a valid ip network.", cfg.Network)
	}

	if err := cfg.Validate(); err != nil {
		return exitErrorf(ExitBadAddresses, "%s", err.Error())
	}

	res, err := classifyInput(target, cfg)
	if err != nil {
		if errors.Is(err, classify.ErrAmbiguous) {
			return exitErrorf(ExitBadAddresses, "%s is not a valid ip network.", cfg.Addresses)
		}
		return exitErrorf(ExitBadAddresses, "%v", err)
	}

	accepted := res.Accepted()
	logger.Debug("classified %d entries: %d accepted, %d invalid, %d misfitting, %d irrelevant",
		len(res.Items), len(accepted),
		len(res.ByCategory(classify.Invalid)),
		len(res.ByCategory(classify.Mismatched)),
		len(res.ByCategory(classify.Irrelevant)))

	if res.HasErrors() {
		if !cfg.Ignore {
			return exitErrorf(ExitBadAddresses, "%s", res.Report())
		}
		logger.Debug("ignoring %d non-valid excluded entries", len(res.Items)-len(accepted))
	}

	// Zero accepted exclusions leaves the target untouched.
	if len(accepted) == 0 {
		return printResult(cfg, target, nil, []netip.Prefix{target})
	}

	nets := netcalc.ExcludeAddresses(target, accepted)
	logger.Debug("excluded %d networks from %s, %d remaining blocks", len(accepted), target, len(nets))

	return printResult(cfg, target, accepted, nets)
}

// classifyInput classifies the -a string and/or the -f file and merges the
// results.
func classifyInput(target netip.Prefix, cfg *config.Config) (*classify.Result, error) {
	res := &classify.Result{}

	if cfg.Addresses != "" {
		r, err := classify.Classify(target, cfg.Addresses)
		if err != nil {
			return nil, err
		}
		res.Merge(r)
	}

	if cfg.AddressesFile != "" {
		r, err := classify.FromFile(target, cfg.AddressesFile)
		if err != nil {
			return nil, err
		}
		res.Merge(r)
	}

	return res, nil
}

// printResult writes the final network list to stdout. A fully-excluded
// target yields no output at all (exit code 0).
func printResult(cfg *config.Config, target netip.Prefix, excluded, nets []netip.Prefix) error {
	if cfg.JSON {
		doc, err := output.Encode(output.Document(target, excluded, nets))
		if err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		fmt.Fprintln(os.Stdout, doc)
		return nil
	}

	if len(nets) == 0 {
		return nil
	}

	text := output.Render(output.Options{
		Separator: cfg.Separator,
		Prefix:    cfg.Prefix,
		Postfix:   cfg.Postfix,
	}, nets)
	fmt.Fprintln(os.Stdout, text)
	return nil
}
