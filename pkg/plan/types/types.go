package types

import "lifeplan/entities"

// GenerateRequest is the body of POST /api/plan/generate and POST /api/plans.
type GenerateRequest struct {
	Input *entities.PlanInput `json:"input" validate:"required"`
	Seed  *string             `json:"seed,omitempty"`
}

// RerunRequest is the body of POST /api/plans/:id/versions.
type RerunRequest struct {
	Seed *string `json:"seed,omitempty"`
}

type GenerateResponse struct {
	Output *entities.PlanOutput `json:"output"`
}

type ShareResponse struct {
	Token string `json:"token"`
	Path  string `json:"path"`
}
