package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"azmig/internal/resource"
)

// FileProvider reads a JSON inventory export: an array of objects in the
// shape an Azure Resource Graph query returns (id, name, type, resourceGroup,
// location, subscriptionId, plus arbitrary nested attributes).
type FileProvider struct {
	Path string
}

func NewFileProvider(path string) (*FileProvider, error) {
	if path == "" {
		return nil, fmt.Errorf("inventory path required")
	}
	return &FileProvider{Path: path}, nil
}

func (p *FileProvider) List(ctx context.Context) ([]resource.Resource, error) {
	raw, err := os.ReadFile(p.Path)
	if err != nil {
		return nil, fmt.Errorf("read inventory: %w", err)
	}

	var records []map[string]any
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse inventory %s: %w", p.Path, err)
	}

	resources := make([]resource.Resource, 0, len(records))
	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		resources = append(resources, fromRecord(rec))
	}
	return resources, nil
}

// wellKnownFields are lifted out of the raw record into typed fields; all
// remaining keys stay in the open property map for condition lookups.
var wellKnownFields = map[string]struct{}{
	"id": {}, "name": {}, "type": {}, "resourcegroup": {},
	"location": {}, "subscriptionid": {}, "subscriptionname": {},
	"injectedissues": {},
}

func fromRecord(rec map[string]any) resource.Resource {
	res := resource.Resource{
		ID:               str(rec["id"]),
		Name:             str(rec["name"]),
		Type:             str(rec["type"]),
		ResourceGroup:    str(rec["resourceGroup"]),
		Location:         str(rec["location"]),
		SubscriptionID:   str(rec["subscriptionId"]),
		SubscriptionName: str(rec["subscriptionName"]),
		Properties:       map[string]any{},
		InjectedIssues:   injectedIssues(rec["injectedIssues"]),
	}
	for key, val := range rec {
		if _, known := wellKnownFields[strings.ToLower(key)]; known {
			continue
		}
		res.Properties[key] = val
	}
	return res
}

func injectedIssues(v any) []resource.InjectedIssue {
	if v == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var issues []resource.InjectedIssue
	if err := json.Unmarshal(raw, &issues); err != nil {
		return nil
	}
	return issues
}

func str(v any) string {
	s, _ := v.(string)
	return s
}
