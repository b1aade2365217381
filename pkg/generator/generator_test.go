package generator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifeplan/entities"
	"lifeplan/pkg/clock"
	"lifeplan/pkg/provider"
)

var bangkok = entities.PlanInput{Weeks: 1, Location: "Bangkok", Budget: 1200, Currency: entities.CurrencyUSD}

func TestBuild_FixedSeed(t *testing.T) {
	now := time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)
	g := New(provider.NewMock(), clock.Fixed(now))

	out, err := g.Build(context.Background(), bangkok, "fixed-test-seed")
	require.NoError(t, err)

	assert.Equal(t, "Old Town", out.Summary.HomeBaseArea)
	assert.Len(t, out.Summary.Why, 3)
	assert.Len(t, out.Stays, 3)
	assert.Len(t, out.Gyms, 3)
	assert.Len(t, out.Coworks, 3)
	assert.Len(t, out.Social, 5)
	assert.Equal(t, "Bangkok Minimal Hotel", out.Stays[0].Name)
	assert.Equal(t, 901, out.Budget.Total)
	assert.Empty(t, out.Budget.Warnings)

	assert.Equal(t, "2026-10-14T09:30:00.000Z", out.Provenance.GeneratedAt)
	assert.Equal(t, "fixed-test-seed", out.Provenance.Seed)
	assert.Equal(t, []string{ProvenanceNote}, out.Provenance.Notes)
}

func TestBuild_DeterministicExceptGeneratedAt(t *testing.T) {
	ctx := context.Background()
	a, err := New(provider.NewMock(), clock.Fixed(time.Unix(100, 0))).Build(ctx, bangkok, "repeat-me")
	require.NoError(t, err)
	b, err := New(provider.NewMock(), clock.Fixed(time.Unix(5000, 0))).Build(ctx, bangkok, "repeat-me")
	require.NoError(t, err)

	assert.NotEqual(t, a.Provenance.GeneratedAt, b.Provenance.GeneratedAt)
	b.Provenance.GeneratedAt = a.Provenance.GeneratedAt
	assert.Equal(t, a, b)
}

func TestBuild_SeedSensitivity(t *testing.T) {
	g := New(provider.NewMock(), nil)
	ctx := context.Background()
	a, err := g.Build(ctx, bangkok, "seed-a")
	require.NoError(t, err)
	b, err := g.Build(ctx, bangkok, "seed-b")
	require.NoError(t, err)

	// picks are a function of the hash, so the same hash gives the same area
	assert.Equal(t, HomeBaseArea("seed-a"), a.Summary.HomeBaseArea)
	assert.Equal(t, HomeBaseArea("seed-b"), b.Summary.HomeBaseArea)
	differs := a.Summary.HomeBaseArea != b.Summary.HomeBaseArea ||
		a.Stays[0].Name != b.Stays[0].Name ||
		a.Gyms[0].Name != b.Gyms[0].Name ||
		a.Coworks[0].Name != b.Coworks[0].Name
	assert.True(t, differs)
}

func TestWeeklySchedule_Fixed(t *testing.T) {
	s := WeeklySchedule()
	require.Len(t, s, 7)
	days := make([]string, len(s))
	for i, d := range s {
		days[i] = d.Day
	}
	assert.Equal(t, []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}, days)
	assert.Equal(t, entities.ScheduleBlock{Label: "Cowork", Start: "09:30", End: "12:30"}, s[4].Blocks[0])
	assert.Equal(t, "Reset", s[6].Blocks[0].Label)
}

type failingSocial struct{ provider.Client }

func (failingSocial) Social(context.Context, entities.PlanInput, string) ([]entities.Place, error) {
	return nil, errors.New("upstream down")
}

func TestBuild_ProviderError(t *testing.T) {
	g := New(failingSocial{provider.NewMock()}, nil)
	_, err := g.Build(context.Background(), bangkok, "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "social: upstream down")
}
