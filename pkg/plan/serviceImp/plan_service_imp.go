package serviceImp

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"lifeplan/entities"
	"lifeplan/pkg/clock"
	"lifeplan/pkg/codec"
	"lifeplan/pkg/generator"
	"lifeplan/pkg/metrics"
	planrepo "lifeplan/pkg/plan/repository"
	"lifeplan/pkg/plan/types"
)

type PlanSvc struct {
	gen   *generator.Generator
	repo  planrepo.PlanRepository
	clock clock.Clock
	log   zerolog.Logger
}

func NewPlanService(gen *generator.Generator, repo planrepo.PlanRepository, c clock.Clock, log zerolog.Logger) *PlanSvc {
	if c == nil {
		c = clock.System()
	}
	return &PlanSvc{gen: gen, repo: repo, clock: c, log: log}
}

// DefaultSeed is used when a generate request carries no seed. The budget is printed
// in plain decimal, so budgets of 1e21 and up read "100...0" rather than "1e+21".
func DefaultSeed(in entities.PlanInput, now time.Time) string {
	budget := strconv.FormatFloat(in.Budget, 'f', -1, 64)
	return fmt.Sprintf("%s-%d-%s-%d", in.Location, in.Weeks, budget, now.UnixMilli())
}

// RerunSeed is used when a re-run carries no seed.
func RerunSeed(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}

func (s *PlanSvc) Generate(ctx context.Context, req *types.GenerateRequest) (*entities.PlanOutput, error) {
	if err := types.ValidateGenerate(req); err != nil {
		return nil, err
	}
	seed := DefaultSeed(*req.Input, s.clock.Now())
	if req.Seed != nil {
		seed = *req.Seed
	}
	return s.build(ctx, *req.Input, seed)
}

func (s *PlanSvc) Create(ctx context.Context, req *types.GenerateRequest) (*entities.PlanArtifact, error) {
	out, err := s.Generate(ctx, req)
	if err != nil {
		return nil, err
	}
	p, err := s.repo.Create(ctx, *req.Input, *out)
	if err != nil {
		return nil, fmt.Errorf("create plan: %w", err)
	}
	metrics.VersionsAppendedTotal.Inc()
	s.log.Info().Str("plan_id", p.ID).Str("seed", out.Provenance.Seed).Msg("plan created")
	return p, nil
}

func (s *PlanSvc) Rerun(ctx context.Context, id string, seed *string) (*entities.PlanArtifact, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	sd := RerunSeed(s.clock.Now())
	if seed != nil {
		sd = *seed
	}
	out, err := s.build(ctx, p.Input, sd)
	if err != nil {
		return nil, err
	}
	p, err = s.repo.AddVersion(ctx, id, *out)
	if err != nil {
		return nil, err
	}
	metrics.VersionsAppendedTotal.Inc()
	s.log.Info().Str("plan_id", p.ID).Int("version", p.LastVersion()).Str("seed", sd).Msg("plan re-run")
	return p, nil
}

func (s *PlanSvc) Get(ctx context.Context, id string) (*entities.PlanArtifact, error) {
	return s.repo.Get(ctx, id)
}

// List returns at most limit plans, most-versioned first. limit <= 0 returns all.
func (s *PlanSvc) List(ctx context.Context, limit int) ([]entities.PlanArtifact, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (s *PlanSvc) Share(ctx context.Context, id string) (string, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return codec.Encode(p)
}

func (s *PlanSvc) OpenShared(token string) (*entities.PlanArtifact, error) {
	p, err := codec.Decode(token)
	if err != nil {
		metrics.ShareDecodeFailuresTotal.Inc()
		return nil, err
	}
	return p, nil
}

func (s *PlanSvc) build(ctx context.Context, in entities.PlanInput, seed string) (*entities.PlanOutput, error) {
	start := time.Now()
	out, err := s.gen.Build(ctx, in, seed)
	metrics.GenerationDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.PlansGeneratedTotal.WithLabelValues(string(in.Currency), metrics.OutcomeError).Inc()
		s.log.Error().Err(err).Str("seed", seed).Msg("plan generation failed")
		return nil, fmt.Errorf("generate plan: %w", err)
	}
	outcome := metrics.OutcomeOK
	if len(out.Budget.Warnings) > 0 {
		outcome = metrics.OutcomeOverBudget
	}
	metrics.PlansGeneratedTotal.WithLabelValues(string(in.Currency), outcome).Inc()
	return out, nil
}
