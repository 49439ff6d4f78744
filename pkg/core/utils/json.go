package utils

import (
	"encoding/json"
	"fmt"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
)

// RepairJSON fixes the common defects of model-produced JSON (single quotes,
// trailing commas, markdown code fences, unclosed brackets) before decoding.
func RepairJSON(malformed string) (string, error) {
	repaired, err := jsonrepair.RepairJSON(malformed)
	if err != nil {
		return "", fmt.Errorf("JSON repair failed: %w", err)
	}
	return repaired, nil
}

// DecodeModelJSON repairs raw model output and unmarshals it into v.
func DecodeModelJSON(raw string, v interface{}) error {
	repaired, err := RepairJSON(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(repaired), v); err != nil {
		return fmt.Errorf("model output is not valid JSON after repair: %w", err)
	}
	return nil
}
