// Package classify partitions raw exclusion input into accepted, invalid,
// mismatched, and irrelevant entries relative to a target network.
package classify

import (
	"errors"
	"fmt"
	"net/netip"
	"sort"
	"strings"
	"unicode"

	"github.com/p4th0r/netcarve/internal/netcalc"
)

// ErrAmbiguous is returned when the addresses string is neither a single
// parseable network nor a comma- or whitespace-delimited list.
var ErrAmbiguous = errors.New("ambiguous addresses string")

// Category is the classification outcome for a single entry.
type Category int

const (
	Accepted   Category = iota // subnet of the target, correct family
	Invalid                    // not parseable as a host or network
	Mismatched                 // wrong address family
	Irrelevant                 // equal to, supernet of, or disjoint from the target
)

// String returns the category name as used in error reports.
func (c Category) String() string {
	switch c {
	case Accepted:
		return "accepted"
	case Invalid:
		return "invalid"
	case Mismatched:
		return "misfitting"
	case Irrelevant:
		return "irrelevant"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// Item is a single classified entry.
type Item struct {
	Raw      string       // token as provided by the user, trimmed
	Category Category     // classification outcome
	Network  netip.Prefix // parsed network; zero value when Category is Invalid
}

// Result holds the classified entries for one addresses argument.
type Result struct {
	Items []Item
}

// Classify partitions the raw addresses string against the target network.
//
// If the whole string parses as one network it is classified alone. Otherwise
// the string is split on commas if it contains any, on whitespace if it
// contains any, and is rejected with ErrAmbiguous if neither. Tokens are
// trimmed, empty tokens dropped, duplicates collapsed.
func Classify(target netip.Prefix, raw string) (*Result, error) {
	raw = strings.TrimSpace(raw)

	if net, err := netcalc.ParseNetwork(raw); err == nil {
		return &Result{Items: []Item{classifyNetwork(target, raw, net)}}, nil
	}

	tokens, err := splitTokens(raw)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	for _, tok := range tokens {
		res.add(classifyToken(target, tok))
	}
	return res, nil
}

// splitTokens applies the delimiter policy: commas win over whitespace, and a
// single undelimited token that reaches this point already failed to parse as
// a network, so it is ambiguous.
func splitTokens(raw string) ([]string, error) {
	var parts []string
	switch {
	case strings.Contains(raw, ","):
		parts = strings.Split(raw, ",")
	case strings.IndexFunc(raw, unicode.IsSpace) >= 0:
		parts = strings.Fields(raw)
	default:
		return nil, fmt.Errorf("%w: %q", ErrAmbiguous, raw)
	}

	seen := make(map[string]struct{}, len(parts))
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		tokens = append(tokens, p)
	}
	return tokens, nil
}

func classifyToken(target netip.Prefix, tok string) Item {
	net, err := netcalc.ParseNetwork(tok)
	if err != nil {
		return Item{Raw: tok, Category: Invalid}
	}
	return classifyNetwork(target, tok, net)
}

// classifyNetwork places a parsed network into its category. Equality with
// the target counts as accepted: excluding the whole target is a valid
// (empty-remainder) operation, not an irrelevant input.
func classifyNetwork(target netip.Prefix, raw string, net netip.Prefix) Item {
	switch {
	case !netcalc.SameFamily(net, target):
		return Item{Raw: raw, Category: Mismatched, Network: net}
	case !netcalc.SubnetOf(net, target):
		return Item{Raw: raw, Category: Irrelevant, Network: net}
	default:
		return Item{Raw: raw, Category: Accepted, Network: net}
	}
}

// add appends an entry unless the same raw token is already present.
func (r *Result) add(it Item) {
	for _, existing := range r.Items {
		if existing.Raw == it.Raw {
			return
		}
	}
	r.Items = append(r.Items, it)
}

// Merge appends another result's entries, dropping duplicates.
func (r *Result) Merge(other *Result) {
	seen := make(map[string]struct{}, len(r.Items))
	for _, it := range r.Items {
		seen[it.Raw] = struct{}{}
	}
	for _, it := range other.Items {
		if _, ok := seen[it.Raw]; ok {
			continue
		}
		seen[it.Raw] = struct{}{}
		r.Items = append(r.Items, it)
	}
}

// Accepted returns the networks classified as accepted exclusions.
func (r *Result) Accepted() []netip.Prefix {
	var nets []netip.Prefix
	for _, it := range r.Items {
		if it.Category == Accepted {
			nets = append(nets, it.Network)
		}
	}
	return nets
}

// ByCategory returns the entries in the given category.
func (r *Result) ByCategory(c Category) []Item {
	var items []Item
	for _, it := range r.Items {
		if it.Category == c {
			items = append(items, it)
		}
	}
	return items
}

// HasErrors reports whether any entry failed classification.
func (r *Result) HasErrors() bool {
	for _, it := range r.Items {
		if it.Category != Accepted {
			return true
		}
	}
	return false
}

// Report builds the human-readable error report: one line per non-empty
// error category, items space-joined and sorted, label pluralized when the
// category holds more than one entry.
func (r *Result) Report() string {
	var lines []string
	for _, c := range []Category{Invalid, Mismatched, Irrelevant} {
		items := r.ByCategory(c)
		if len(items) == 0 {
			continue
		}

		strs := make([]string, 0, len(items))
		for _, it := range items {
			if c == Mismatched {
				strs = append(strs, it.Network.String())
			} else {
				strs = append(strs, it.Raw)
			}
		}
		sort.Strings(strs)

		plural := ""
		if len(strs) > 1 {
			plural = "es"
		}
		lines = append(lines, fmt.Sprintf("%s address%s: %s", c, plural, strings.Join(strs, " ")))
	}
	return strings.Join(lines, "\n")
}
