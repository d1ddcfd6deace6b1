package request

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a plan request from a YAML file. The file uses the same
// field names as the JSON API payload.
func LoadFile(path string) (PlanRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PlanRequest{}, fmt.Errorf("read request file: %w", err)
	}
	var req PlanRequest
	if err := yaml.Unmarshal(data, &req); err != nil {
		return PlanRequest{}, &MalformedRequestError{Field: path, Reason: fmt.Sprintf("parse yaml: %v", err)}
	}
	return req, nil
}
