package netcalc

import (
	"net/netip"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func nets(t *testing.T, ss ...string) []netip.Prefix {
	t.Helper()
	out := make([]netip.Prefix, 0, len(ss))
	for _, s := range ss {
		out = append(out, mustNet(t, s))
	}
	return out
}

func strs(ps []netip.Prefix) []string {
	if len(ps) == 0 {
		return nil
	}
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.String())
	}
	return out
}

func TestCollapse(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "empty",
			in:   nil,
			want: nil,
		},
		{
			name: "single",
			in:   []string{"10.0.0.0/8"},
			want: []string{"10.0.0.0/8"},
		},
		{
			name: "duplicates",
			in:   []string{"10.0.0.0/8", "10.0.0.0/8"},
			want: []string{"10.0.0.0/8"},
		},
		{
			name: "nested dropped",
			in:   []string{"10.1.0.0/16", "10.0.0.0/8", "10.1.2.0/24"},
			want: []string{"10.0.0.0/8"},
		},
		{
			name: "siblings merge",
			in:   []string{"10.0.0.0/9", "10.128.0.0/9"},
			want: []string{"10.0.0.0/8"},
		},
		{
			name: "merge cascades",
			in:   []string{"10.0.0.0/10", "10.64.0.0/10", "10.128.0.0/9"},
			want: []string{"10.0.0.0/8"},
		},
		{
			name: "adjacent but not siblings",
			in:   []string{"10.64.0.0/10", "10.128.0.0/10"},
			want: []string{"10.64.0.0/10", "10.128.0.0/10"},
		},
		{
			name: "adjacent hosts odd boundary",
			in:   []string{"10.1.1.1/32", "10.1.1.2/32"},
			want: []string{"10.1.1.1/32", "10.1.1.2/32"},
		},
		{
			name: "adjacent hosts even boundary",
			in:   []string{"10.1.1.2/32", "10.1.1.3/32"},
			want: []string{"10.1.1.2/31"},
		},
		{
			name: "disjoint stay separate",
			in:   []string{"192.168.0.0/24", "10.0.0.0/24"},
			want: []string{"10.0.0.0/24", "192.168.0.0/24"},
		},
		{
			name: "v6 siblings merge",
			in:   []string{"2001:db8:8000::/33", "2001:db8::/33"},
			want: []string{"2001:db8::/32"},
		},
		{
			name: "mixed families never merge",
			in:   []string{"10.0.0.0/9", "2001:db8::/32", "10.128.0.0/9"},
			want: []string{"10.0.0.0/8", "2001:db8::/32"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Collapse(nets(t, tt.in...))
			if diff := cmp.Diff(tt.want, strs(got)); diff != "" {
				t.Errorf("Collapse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCollapseIdempotent(t *testing.T) {
	in := nets(t,
		"10.0.0.0/16", "10.2.0.0/15", "10.4.0.0/14", "10.8.0.0/13",
		"10.16.0.0/12", "10.32.0.0/11", "10.64.0.0/10", "10.128.0.0/9",
	)
	once := Collapse(in)
	twice := Collapse(once)
	require.Equal(t, once, twice)
}
