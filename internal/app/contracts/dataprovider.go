package contracts

import (
	"context"

	"github.com/goccy/go-json"
)

// ListParams carries the query surface of the admin list views. Filters map
// one-to-one onto FHIR search parameters.
type ListParams struct {
	Filters map[string]string
}

// ResourceTransformer adapts one FHIR resource type to its admin shapes. The
// data provider falls back to raw passthrough for types without one.
type ResourceTransformer interface {
	TransformShow(raw json.RawMessage) (any, error)
	TransformList(raws []json.RawMessage) (any, error)
}

type DataProvider interface {
	GetList(ctx context.Context, resourceType string, params ListParams) (any, int, error)
	GetOne(ctx context.Context, resourceType, id string) (any, error)
	GetMany(ctx context.Context, resourceType string, ids []string) (any, error)
	Create(ctx context.Context, resourceType string, payload map[string]any) (any, error)
	Update(ctx context.Context, resourceType, id string, payload map[string]any) (any, error)
	Delete(ctx context.Context, resourceType, id string) error
	DeleteMany(ctx context.Context, resourceType string, ids []string) ([]string, error)
}
