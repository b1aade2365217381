// pkg/provider/provider.go

package provider

import (
	"context"

	"lifeplan/entities"
)

// Stays suggests lodging for the plan location.
type Stays interface {
	Stays(ctx context.Context, in entities.PlanInput, seed string) ([]entities.Place, error)
}

// Places suggests gyms and coworking spaces.
type Places interface {
	Places(ctx context.Context, in entities.PlanInput, seed string) (gyms, coworks []entities.Place, err error)
}

// Social suggests events and meetups.
type Social interface {
	Social(ctx context.Context, in entities.PlanInput, seed string) ([]entities.Place, error)
}

// Client bundles the three lookups a plan needs.
type Client interface {
	Stays
	Places
	Social
}
