package classify

import (
	"bufio"
	"fmt"
	"net/netip"
	"os"
	"strings"
)

// FromFile reads an exclusion list file and classifies each entry against
// the target. One entry per line; empty lines and lines starting with "#"
// are skipped. A line may itself hold a comma- or whitespace-separated list.
func FromFile(target netip.Prefix, path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening addresses file %q: %w", path, err)
	}
	defer f.Close()

	res := &Result{}
	scanner := bufio.NewScanner(f)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Unlike the -a string, a file line is an unambiguous record: a line
		// that is neither a list nor a network is just an invalid entry.
		for _, tok := range splitLine(line) {
			res.add(classifyToken(target, tok))
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading addresses file %q: %w", path, err)
	}
	return res, nil
}

func splitLine(line string) []string {
	var parts []string
	if strings.Contains(line, ",") {
		parts = strings.Split(line, ",")
	} else {
		parts = strings.Fields(line)
	}

	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}
