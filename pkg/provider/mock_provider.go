// pkg/provider/mock_provider.go

package provider

import (
	"context"
	"math"

	"lifeplan/entities"
	"lifeplan/pkg/seed"
)

var (
	gymNames = []string{
		"Iron District Gym",
		"Prime Barbell Club",
		"Functional Factory",
		"City Strength Lab",
		"Atlas Fitness",
		"Pulse Training Room",
	}
	coworkNames = []string{
		"Grid Cowork",
		"Mono Workspace",
		"Studio Deskhouse",
		"Concrete & Coffee",
		"Paperplane Cowork",
		"Linework Office",
	}
	socialNames = []string{
		"Language exchange night",
		"Board game meetup",
		"Tech founder meetup",
		"Salsa social",
		"Rooftop bar (early hours)",
		"Live jazz / indie show",
		"Running club",
	}
	staySuffixes = []string{
		"Studio Loft",
		"City Apartment",
		"Minimal Hotel",
		"Boutique Stay",
		"Riverside Room",
		"Modern Micro-suite",
	}
)

const (
	StayCount   = 3
	GymCount    = 3
	CoworkCount = 3
	SocialCount = 5
)

type mockClient struct{}

// NewMock returns a provider that fabricates entries from static pools, picked by the hashed seed.
func NewMock() Client { return &mockClient{} }

func (m *mockClient) Stays(ctx context.Context, in entities.PlanInput, seedStr string) ([]entities.Place, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	names := make([]string, len(staySuffixes))
	for i, s := range staySuffixes {
		names[i] = in.Location + " " + s
	}
	s := seed.Hash(seedStr) + seed.OffsetStays
	return Synthesize(entities.SourceBooking, names, s, StayCount, "stay"), nil
}

func (m *mockClient) Places(ctx context.Context, _ entities.PlanInput, seedStr string) ([]entities.Place, []entities.Place, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	s := seed.Hash(seedStr)
	gyms := Synthesize(entities.SourceGoogle, gymNames, s+seed.OffsetGyms, GymCount, "gym")
	coworks := Synthesize(entities.SourceGoogle, coworkNames, s+seed.OffsetCoworks, CoworkCount, "cowork")
	return gyms, coworks, nil
}

func (m *mockClient) Social(ctx context.Context, _ entities.PlanInput, seedStr string) ([]entities.Place, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s := seed.Hash(seedStr) + seed.OffsetSocial
	return Synthesize(entities.SourceReddit, socialNames, s, SocialCount, "social"), nil
}

// Synthesize builds count entries from pool. Entry i takes pool[(n+7i) mod len] and a
// rating of 4.0..4.5 from (n+i) mod 10. Names are not deduplicated.
func Synthesize(src entities.Source, pool []string, n int64, count int, tag string) []entities.Place {
	out := make([]entities.Place, count)
	for i := 0; i < count; i++ {
		out[i] = entities.Place{
			Name:   seed.Pick(pool, n+int64(i)*7),
			Source: src,
			Rating: Rating(n + int64(i)),
			Notes:  tag,
			Tags:   []string{tag},
		}
	}
	return out
}

// Rating maps n to one of 4.0, 4.1, ... 4.5.
func Rating(n int64) float64 {
	step := float64(n % 10)
	return math.Round((4+step/20)*10) / 10
}
