// Package netcalc provides CIDR network primitives — parsing, containment,
// splitting, collapsing — and the exclusion engine that computes the minimal
// set of CIDR blocks covering a target network minus a set of excluded
// subnets.
package netcalc

import (
	"fmt"
	"net/netip"
	"strings"
)

// ParseNetwork parses a string as a CIDR network. A bare host address is
// treated as a single-address network (/32 for IPv4, /128 for IPv6).
// A prefix with host bits set beyond the prefix length is rejected: the base
// address must be the first address of the block.
func ParseNetwork(s string) (netip.Prefix, error) {
	if strings.Contains(s, "/") {
		p, err := netip.ParsePrefix(s)
		if err != nil {
			return netip.Prefix{}, fmt.Errorf("invalid network %q: %w", s, err)
		}
		if p.Addr().Zone() != "" {
			return netip.Prefix{}, fmt.Errorf("invalid network %q: zoned addresses are not networks", s)
		}
		if p != p.Masked() {
			return netip.Prefix{}, fmt.Errorf("invalid network %q: host bits set", s)
		}
		return p, nil
	}

	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Prefix{}, fmt.Errorf("invalid address %q: %w", s, err)
	}
	if addr.Zone() != "" {
		return netip.Prefix{}, fmt.Errorf("invalid address %q: zoned addresses are not networks", s)
	}
	return netip.PrefixFrom(addr, addr.BitLen()), nil
}

// SameFamily reports whether both networks belong to the same address family.
func SameFamily(a, b netip.Prefix) bool {
	return a.Addr().Is4() == b.Addr().Is4()
}

// SubnetOf reports whether a's address range is contained in b's.
// A network is a subnet of itself.
func SubnetOf(a, b netip.Prefix) bool {
	return a.Bits() >= b.Bits() && b.Contains(a.Addr())
}

// SupernetOf reports whether a's address range contains b's.
func SupernetOf(a, b netip.Prefix) bool {
	return SubnetOf(b, a)
}

// StrictSubnetOf reports whether a is a subnet of b and not equal to b.
func StrictSubnetOf(a, b netip.Prefix) bool {
	return a != b && SubnetOf(a, b)
}

// Compare orders networks by (family, base address, prefix length).
// IPv4 sorts before IPv6; for equal base addresses the shorter prefix
// (larger block) sorts first.
func Compare(a, b netip.Prefix) int {
	if c := a.Addr().Compare(b.Addr()); c != 0 {
		return c
	}
	return a.Bits() - b.Bits()
}

// Split bisects a network into its two equal halves at prefix length +1.
// Splitting a single-address network is an error.
func Split(p netip.Prefix) (lower, upper netip.Prefix, err error) {
	bits := p.Bits() + 1
	if bits > p.Addr().BitLen() {
		return netip.Prefix{}, netip.Prefix{}, fmt.Errorf("cannot split single-address network %s", p)
	}
	lower = netip.PrefixFrom(p.Addr(), bits)

	if p.Addr().Is4() {
		a := p.Addr().As4()
		a[(bits-1)/8] |= 1 << (7 - (bits-1)%8)
		upper = netip.PrefixFrom(netip.AddrFrom4(a), bits)
	} else {
		a := p.Addr().As16()
		a[(bits-1)/8] |= 1 << (7 - (bits-1)%8)
		upper = netip.PrefixFrom(netip.AddrFrom16(a), bits)
	}
	return lower, upper, nil
}
