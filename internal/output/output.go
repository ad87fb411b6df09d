// Package output renders the resulting network list in text or JSON form.
package output

import (
	"net/netip"
	"strings"
)

// Options controls text rendering of the result list.
type Options struct {
	Separator string // inserted between entries
	Prefix    string // prepended to each entry
	Postfix   string // appended to each entry
}

// Render formats the networks as prefix+network+postfix joined by the
// separator, with surrounding whitespace trimmed. An empty list renders as
// the empty string.
func Render(opts Options, nets []netip.Prefix) string {
	entries := make([]string, 0, len(nets))
	for _, n := range nets {
		entries = append(entries, opts.Prefix+n.String()+opts.Postfix)
	}
	return strings.TrimSpace(strings.Join(entries, opts.Separator))
}
