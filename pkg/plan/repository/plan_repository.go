package repository

import (
	"context"
	"errors"

	"lifeplan/entities"
)

// ErrNotFound is returned when no plan has the requested id.
var ErrNotFound = errors.New("plan not found")

// PlanRepository stores plans and their append-only version history.
type PlanRepository interface {
	Create(ctx context.Context, in entities.PlanInput, out entities.PlanOutput) (*entities.PlanArtifact, error)
	AddVersion(ctx context.Context, id string, out entities.PlanOutput) (*entities.PlanArtifact, error)
	Get(ctx context.Context, id string) (*entities.PlanArtifact, error)
	// List orders plans by descending version count.
	List(ctx context.Context) ([]entities.PlanArtifact, error)
}
