package app

import (
	"encoding/json"
	"fmt"
)

// decodeDocument converts a raw exported document into its typed form.
func decodeDocument(raw map[string]any, dst any) error {
	b, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return fmt.Errorf("decode document %v: %w", raw["_id"], err)
	}
	return nil
}

// docID returns the _id of a raw document for logging.
func docID(raw map[string]any) string {
	if s, ok := raw["_id"].(string); ok {
		return s
	}
	return ""
}
