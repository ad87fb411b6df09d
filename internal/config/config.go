// Package config provides the unified configuration struct for netcarve.
package config

import "fmt"

// AddressesHelp describes the expected form of the addresses argument. It is
// reused in the missing-argument error so the message stays in sync with the
// flag help text.
const AddressesHelp = "comma or whitespace separated addresses of hosts and/or networks to be excluded"

// Config holds all parsed CLI state for a netcarve run. It is filled once
// during flag parsing and treated as immutable afterwards.
type Config struct {
	// Positional argument
	Network string // target network in CIDR notation

	// Exclusion input (at least one required)
	Addresses     string // raw -a/--addresses value
	AddressesFile string // -f/--addresses-file path

	// Output options
	Separator string // between result entries (default newline)
	Prefix    string // before each result entry
	Postfix   string // after each result entry
	JSON      bool   // emit a JSON document instead of plain text

	// Behavior
	Ignore  bool // ignore invalid/misfitting/irrelevant addresses
	Quiet   bool
	Verbose bool
}

// Validate checks that the configuration is complete enough to run.
// The target network string itself is validated later, because its failure
// carries a different exit code than a missing addresses argument.
func (c *Config) Validate() error {
	if c.Network == "" {
		return fmt.Errorf("no target network specified")
	}
	if c.Addresses == "" && c.AddressesFile == "" {
		return fmt.Errorf("Missing addresses argument. It must be a %s.", AddressesHelp)
	}
	return nil
}
