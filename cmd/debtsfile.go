package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/debtplan"
)

// LoadDebts reads the debts of a JSON file, see DecodeDebts.
func LoadDebts(path, selector string) ([]debtplan.Debt, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open debts file %q: %w", path, err)
	}
	defer f.Close()

	debts, err := DecodeDebts(f, selector)
	if err != nil {
		return nil, fmt.Errorf("could not decode debts file %q: %w", path, err)
	}
	return debts, nil
}

// DecodeDebts decodes a JSON document and returns the debts found at the
// JSONPath selector ("$" or empty for the whole document). The selection is
// either a list of debts or a single one.
func DecodeDebts(r io.Reader, selector string) ([]debtplan.Debt, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}

	if selector != "" && selector != "$" {
		v, err := jsonpath.Get(selector, doc)
		if err != nil {
			return nil, fmt.Errorf("error selecting %q: %w", selector, err)
		}
		doc = v
	}

	// a wildcard selects one list per match: a list of lists is flattened.
	if list, ok := doc.([]any); ok && len(list) > 0 {
		var flat []any
		for _, item := range list {
			inner, ok := item.([]any)
			if !ok {
				flat = nil
				break
			}
			flat = append(flat, inner...)
		}
		if flat != nil {
			doc = flat
		}
	}

	// go back to JSON to use the Debt decoding.
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	if _, ok := doc.(map[string]any); ok {
		var d debtplan.Debt
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, err
		}
		return []debtplan.Debt{d}, nil
	}
	var debts []debtplan.Debt
	if err := json.Unmarshal(raw, &debts); err != nil {
		return nil, fmt.Errorf("%q does not select a list of debts: %w", selector, err)
	}
	return debts, nil
}
