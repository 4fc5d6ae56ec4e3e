package common

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// CMS clients historically posted quasi-JSON for small sub-documents:
// unquoted keys ({name:"A"}) and single-quoted strings ({'name':'A'}).
// DecodeLoose accepts strict JSON first and only then attempts a repair,
// so well-formed input never passes through the rewrite.

var unquotedKeyRe = regexp.MustCompile(`([{,]\s*)([A-Za-z_][A-Za-z0-9_]*)\s*:`)

// DecodeLoose unmarshals s into v, tolerating unquoted keys and single
// quotes. The label names the field in the returned error.
func DecodeLoose(s, label string, v any) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("invalid %s JSON", label)
	}

	if err := json.Unmarshal([]byte(s), v); err == nil {
		return nil
	}

	repaired := unquotedKeyRe.ReplaceAllString(s, `$1"$2":`)
	repaired = strings.ReplaceAll(repaired, "'", `"`)

	if err := json.Unmarshal([]byte(repaired), v); err != nil {
		return fmt.Errorf("invalid %s JSON", label)
	}
	return nil
}
