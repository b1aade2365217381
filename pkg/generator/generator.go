// Package generator assembles a PlanOutput from an input and a seed string.
// Every pick is a function of the hashed seed; only provenance.generatedAt reads the clock.
package generator

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"lifeplan/entities"
	"lifeplan/pkg/clock"
	"lifeplan/pkg/provider"
	"lifeplan/pkg/seed"
)

var areas = []string{"Central", "Riverside", "Old Town", "Business District", "Creative Quarter", "Midtown"}

var whyReasons = []string{
	"Short commutes to cowork + gym",
	"High density of food options",
	"Easy social entry points (events/meetups)",
}

// ProvenanceNote is attached to every generated plan.
const ProvenanceNote = "MVP uses mock providers. Plug real APIs later without changing UI."

type Generator struct {
	providers provider.Client
	clock     clock.Clock
}

func New(p provider.Client, c clock.Clock) *Generator {
	if c == nil {
		c = clock.System()
	}
	return &Generator{providers: p, clock: c}
}

// HomeBaseArea picks the neighbourhood summary for a seed.
func HomeBaseArea(seedStr string) string {
	return seed.Pick(areas, seed.Hash(seedStr))
}

// Build runs one generation. The three provider lookups are independent and run concurrently.
func (g *Generator) Build(ctx context.Context, in entities.PlanInput, seedStr string) (*entities.PlanOutput, error) {
	var (
		stays, gyms, coworks, social []entities.Place
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		stays, err = g.providers.Stays(egCtx, in, seedStr)
		if err != nil {
			return fmt.Errorf("stays: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		var err error
		gyms, coworks, err = g.providers.Places(egCtx, in, seedStr)
		if err != nil {
			return fmt.Errorf("places: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		var err error
		social, err = g.providers.Social(egCtx, in, seedStr)
		if err != nil {
			return fmt.Errorf("social: %w", err)
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	why := make([]string, len(whyReasons))
	copy(why, whyReasons)

	return &entities.PlanOutput{
		Summary:  entities.Summary{HomeBaseArea: HomeBaseArea(seedStr), Why: why},
		Stays:    stays,
		Gyms:     gyms,
		Coworks:  coworks,
		Social:   social,
		Schedule: WeeklySchedule(),
		Budget:   ComputeBudget(in),
		Provenance: entities.Provenance{
			GeneratedAt: clock.Format(g.clock.Now()),
			Seed:        seedStr,
			Notes:       []string{ProvenanceNote},
		},
	}, nil
}
