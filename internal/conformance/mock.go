package conformance

import (
	"strings"

	"azmig/internal/resource"
)

// mockResource synthesizes the minimal resource record for one matrix row:
// just the resource type plus condition-trigger properties sniffed from the
// row's free-text notes.
//
// The sniffing is a deliberately crude bridge between unstructured reference
// text and structured rule conditions. Exactly three keywords are
// recognized; widening the list changes which conformance failures are
// caught, so keep it as-is.
func mockResource(row MatrixRow) resource.Resource {
	res := resource.Resource{
		ID:             "/subscriptions/00000000-0000-0000-0000-000000000000/resourceGroups/conformance/providers/" + row.FullType() + "/mock",
		Name:           "mock",
		Type:           row.FullType(),
		ResourceGroup:  "conformance",
		Location:       "westeurope",
		SubscriptionID: "00000000-0000-0000-0000-000000000000",
		Properties:     map[string]any{},
	}

	notes := strings.ToLower(row.Notes)
	if strings.Contains(notes, "standard") {
		res.Properties["sku"] = map[string]any{"name": "Standard"}
	}
	if strings.Contains(notes, "incremental") {
		setNested(res.Properties, "properties", "incremental", true)
	}
	if strings.Contains(notes, "running") {
		setNested(res.Properties, "properties", "state", "Running")
	}
	return res
}

func setNested(m map[string]any, outer, key string, value any) {
	inner, ok := m[outer].(map[string]any)
	if !ok {
		inner = map[string]any{}
		m[outer] = inner
	}
	inner[key] = value
}
