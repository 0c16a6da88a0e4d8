package dto

import "encoding/json"

// unmarshalWithAliases decodes data into dst after folding legacy field names
// into their canonical ones. aliases maps legacy name → canonical name; a legacy
// key is only applied when the canonical key is absent, so canonical input always
// wins. Request DTOs that must stay compatible with the old clients declare their
// alias table next to the struct and apply it in UnmarshalJSON.
func unmarshalWithAliases(data []byte, aliases map[string]string, dst any) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for legacy, canonical := range aliases {
		v, ok := raw[legacy]
		if !ok {
			continue
		}
		if _, exists := raw[canonical]; !exists {
			raw[canonical] = v
		}
	}
	merged, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	return json.Unmarshal(merged, dst)
}
