// Package inventory supplies resource records to the engine. Discovery
// against live cloud APIs is a collaborator concern; this package defines the
// provider boundary and a file-backed implementation for exported
// inventories.
package inventory

import (
	"context"

	"azmig/internal/resource"
)

// Provider yields the resource records for one assessment run.
type Provider interface {
	List(ctx context.Context) ([]resource.Resource, error)
}
