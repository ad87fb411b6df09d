package netcalc

import (
	"fmt"
	"net/netip"
)

// Exclude computes the set of CIDR blocks exactly covering target minus ex,
// by repeatedly bisecting target and keeping the half that does not contain
// ex. Excluding the target from itself yields an empty set. It is an error
// if ex is not contained in target or the families differ.
func Exclude(target, ex netip.Prefix) ([]netip.Prefix, error) {
	target = target.Masked()
	ex = ex.Masked()

	if !SameFamily(target, ex) {
		return nil, fmt.Errorf("address family mismatch: %s vs %s", target, ex)
	}
	if !SubnetOf(ex, target) {
		return nil, fmt.Errorf("%s is not contained in %s", ex, target)
	}
	if ex == target {
		return nil, nil
	}
	return excludeContained(target, ex), nil
}

// excludeContained performs the binary split. Caller guarantees ex is a
// strict subnet of target.
func excludeContained(target, ex netip.Prefix) []netip.Prefix {
	var out []netip.Prefix
	cur := target
	for cur.Bits() < ex.Bits() {
		lower, upper, err := Split(cur)
		if err != nil {
			// Unreachable: cur strictly contains ex, so cur has spare bits.
			panic(err)
		}
		if SubnetOf(ex, lower) {
			out = append(out, upper)
			cur = lower
		} else {
			out = append(out, lower)
			cur = upper
		}
	}
	return out
}

// ExcludeAddresses computes the minimal collapsed sequence of CIDR blocks
// covering target minus the union of the exclusions, ordered by base address
// then prefix length.
//
// Callers must pass exclusions that are subnets of target in target's
// family; the classifier guarantees this. Exclusions that are not contained
// in the target are skipped rather than reported.
func ExcludeAddresses(target netip.Prefix, exclusions []netip.Prefix) []netip.Prefix {
	target = target.Masked()

	collapsed := Collapse(exclusions)
	if len(collapsed) == 0 {
		return []netip.Prefix{target}
	}

	seen := make(map[netip.Prefix]struct{})
	var working []netip.Prefix
	for _, ex := range collapsed {
		if !SameFamily(ex, target) || !SubnetOf(ex, target) {
			continue
		}
		if ex == target {
			continue // remainder is empty, nothing to split
		}
		for _, n := range excludeContained(target, ex) {
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			working = append(working, n)
		}
	}

	// Splitting the target around each exclusion independently leaves blocks
	// that still cover the other exclusions; drop every block that nests with
	// any exclusion. This check is deliberately subnet/supernet only, not a
	// general overlap test: collapsed, target-contained exclusions cannot
	// partially overlap the split blocks.
	var kept []netip.Prefix
	for _, n := range working {
		contaminated := false
		for _, ex := range collapsed {
			if SubnetOf(ex, n) || SupernetOf(ex, n) {
				contaminated = true
				break
			}
		}
		if !contaminated {
			kept = append(kept, n)
		}
	}

	// Collapse sorts, so the sequence comes back ordered by base address and
	// prefix length.
	return Collapse(kept)
}
