package output

import (
	"encoding/json"
	"net/netip"
	"testing"
)

func prefixes(t *testing.T, ss ...string) []netip.Prefix {
	t.Helper()
	out := make([]netip.Prefix, 0, len(ss))
	for _, s := range ss {
		p, err := netip.ParsePrefix(s)
		if err != nil {
			t.Fatalf("parsing %q: %v", s, err)
		}
		out = append(out, p)
	}
	return out
}

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		nets []string
		want string
	}{
		{
			name: "default newline separator",
			opts: Options{Separator: "\n"},
			nets: []string{"10.0.0.0/9", "10.128.0.0/10"},
			want: "10.0.0.0/9\n10.128.0.0/10",
		},
		{
			name: "route commands",
			opts: Options{Separator: "\n", Prefix: "ip route add ", Postfix: " via tun0"},
			nets: []string{"10.0.0.0/9", "10.128.0.0/10"},
			want: "ip route add 10.0.0.0/9 via tun0\nip route add 10.128.0.0/10 via tun0",
		},
		{
			name: "custom separator",
			opts: Options{Separator: ", "},
			nets: []string{"10.0.0.0/9", "10.128.0.0/10"},
			want: "10.0.0.0/9, 10.128.0.0/10",
		},
		{
			name: "surrounding whitespace trimmed",
			opts: Options{Separator: "\n", Prefix: "  "},
			nets: []string{"10.0.0.0/9"},
			want: "10.0.0.0/9",
		},
		{
			name: "empty list",
			opts: Options{Separator: "\n"},
			nets: nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(tt.opts, prefixes(t, tt.nets...))
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDocumentEncode(t *testing.T) {
	target := prefixes(t, "10.0.0.0/8")[0]
	excluded := prefixes(t, "10.1.0.0/16")
	nets := prefixes(t, "10.0.0.0/16", "10.2.0.0/15")

	encoded, err := Encode(Document(target, excluded, nets))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var doc ResultDoc
	if err := json.Unmarshal([]byte(encoded), &doc); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if doc.Target != "10.0.0.0/8" {
		t.Errorf("target = %q", doc.Target)
	}
	if len(doc.Excluded) != 1 || doc.Excluded[0] != "10.1.0.0/16" {
		t.Errorf("excluded = %v", doc.Excluded)
	}
	if len(doc.Networks) != 2 || doc.Networks[1] != "10.2.0.0/15" {
		t.Errorf("networks = %v", doc.Networks)
	}
}

func TestDocumentEmptyListsStayArrays(t *testing.T) {
	target := prefixes(t, "192.168.0.0/24")[0]

	encoded, err := Encode(Document(target, prefixes(t, "192.168.0.0/24"), nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(encoded), &raw); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if string(raw["networks"]) == "null" {
		t.Error("networks should encode as [] for a fully excluded target")
	}
}
