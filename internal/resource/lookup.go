package resource

import "strings"

// Lookup resolves a dotted path (e.g. "sku.name") against the resource's
// property tree. Absence is a first-class result: a missing or nil value at
// any segment returns ok=false, never an error. Path segments are matched as
// given, with no case normalization.
//
// Lookup walks only the open Properties map; the well-known identity fields
// are typed and read directly by callers.
func Lookup(res Resource, dottedPath string) (any, bool) {
	if dottedPath == "" {
		return nil, false
	}
	var current any = res.Properties
	for _, segment := range strings.Split(dottedPath, ".") {
		node, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = node[segment]
		if !ok || current == nil {
			return nil, false
		}
	}
	return current, true
}
