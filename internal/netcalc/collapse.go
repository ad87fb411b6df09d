package netcalc

import (
	"net/netip"
	"sort"
)

// Collapse merges a set of networks into the minimal equivalent set of CIDR
// blocks: duplicates and nested blocks are dropped, and adjacent sibling
// blocks are merged into their parent until no merge is possible. The result
// is sorted by (family, base address, prefix length).
func Collapse(nets []netip.Prefix) []netip.Prefix {
	if len(nets) == 0 {
		return nil
	}

	seen := make(map[netip.Prefix]struct{}, len(nets))
	work := make([]netip.Prefix, 0, len(nets))
	for _, n := range nets {
		n = n.Masked()
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		work = append(work, n)
	}

	for {
		sort.Slice(work, func(i, j int) bool { return Compare(work[i], work[j]) < 0 })

		// Drop blocks nested inside an earlier, larger block. After sorting,
		// a container always precedes its contents.
		kept := work[:0]
		for _, n := range work {
			if len(kept) > 0 && SameFamily(n, kept[len(kept)-1]) && SubnetOf(n, kept[len(kept)-1]) {
				continue
			}
			kept = append(kept, n)
		}
		work = kept

		merged := false
		out := make([]netip.Prefix, 0, len(work))
		for i := 0; i < len(work); i++ {
			if i+1 < len(work) && siblings(work[i], work[i+1]) {
				out = append(out, netip.PrefixFrom(work[i].Addr(), work[i].Bits()-1))
				merged = true
				i++
				continue
			}
			out = append(out, work[i])
		}
		work = out

		if !merged {
			return work
		}
	}
}

// siblings reports whether a and b are the lower and upper halves of the
// same parent block.
func siblings(a, b netip.Prefix) bool {
	if !SameFamily(a, b) || a.Bits() != b.Bits() || a.Bits() == 0 {
		return false
	}
	parent := netip.PrefixFrom(a.Addr(), a.Bits()-1)
	if parent != parent.Masked() {
		return false // a is an upper half, not aligned to the parent
	}
	lower, upper, err := Split(parent)
	return err == nil && lower == a && upper == b
}
