package service

import (
	"context"

	"lifeplan/entities"
	"lifeplan/pkg/plan/types"
)

type PlanService interface {
	Generate(ctx context.Context, req *types.GenerateRequest) (*entities.PlanOutput, error)
	Create(ctx context.Context, req *types.GenerateRequest) (*entities.PlanArtifact, error)
	// Rerun regenerates from the stored input and appends a version. A nil seed means now.
	Rerun(ctx context.Context, id string, seed *string) (*entities.PlanArtifact, error)
	Get(ctx context.Context, id string) (*entities.PlanArtifact, error)
	List(ctx context.Context, limit int) ([]entities.PlanArtifact, error)
	Share(ctx context.Context, id string) (string, error)
	OpenShared(token string) (*entities.PlanArtifact, error)
}
