package output

import (
	"encoding/json"
	"net/netip"
)

// ResultDoc is the machine-readable form of a run, written when --json is set.
type ResultDoc struct {
	Target   string   `json:"target"`
	Excluded []string `json:"excluded"`
	Networks []string `json:"networks"`
}

// Document builds a ResultDoc from the target, the applied exclusions, and
// the resulting networks.
func Document(target netip.Prefix, excluded, nets []netip.Prefix) ResultDoc {
	doc := ResultDoc{
		Target:   target.String(),
		Excluded: make([]string, 0, len(excluded)),
		Networks: make([]string, 0, len(nets)),
	}
	for _, n := range excluded {
		doc.Excluded = append(doc.Excluded, n.String())
	}
	for _, n := range nets {
		doc.Networks = append(doc.Networks, n.String())
	}
	return doc
}

// Encode serializes the document as indented JSON.
func Encode(doc ResultDoc) (string, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
