package repositoryImp

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifeplan/entities"
	"lifeplan/pkg/clock"
	kvImp "lifeplan/pkg/kv/repositoryImp"
	"lifeplan/pkg/plan/repository"
)

var input = entities.PlanInput{Weeks: 1, Location: "Bangkok", Budget: 1200, Currency: entities.CurrencyUSD}

func output(seed string) entities.PlanOutput {
	return entities.PlanOutput{Summary: entities.Summary{HomeBaseArea: "Central"}, Provenance: entities.Provenance{Seed: seed}}
}

type tick struct{ t time.Time }

func (c *tick) Now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

func counterIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("plan%08d", n)
	}
}

func newRepo(t *testing.T) repository.PlanRepository {
	t.Helper()
	c := &tick{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	return New(kvImp.NewMemory(), c, zerolog.Nop(), WithIDGenerator(counterIDs()))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Bangkok — 1w — USD 1,200", Title(input))
	assert.Equal(t, "Chiang Mai — 3w — THB 45,000.5", Title(entities.PlanInput{Weeks: 3, Location: "Chiang Mai", Budget: 45000.5, Currency: entities.CurrencyTHB}))
}

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	assert.Len(t, a, 12)
	assert.NotEqual(t, a, b)
	assert.Regexp(t, `^[0-9a-f]{12}$`, a)
}

func TestCreate_FirstVersion(t *testing.T) {
	ctx := context.Background()
	r := newRepo(t)

	p, err := r.Create(ctx, input, output("s1"))
	require.NoError(t, err)
	assert.Equal(t, "plan00000001", p.ID)
	assert.Equal(t, "Bangkok — 1w — USD 1,200", p.Title)
	assert.Equal(t, input, p.Input)
	require.Len(t, p.Versions, 1)
	assert.Equal(t, 1, p.Versions[0].Version)
	assert.Equal(t, "2026-01-01T00:00:01.000Z", p.Versions[0].CreatedAt)

	got, err := r.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestAddVersion_AppendsInOrder(t *testing.T) {
	ctx := context.Background()
	r := newRepo(t)
	p, err := r.Create(ctx, input, output("s1"))
	require.NoError(t, err)

	for i := 2; i <= 4; i++ {
		before, err := r.Get(ctx, p.ID)
		require.NoError(t, err)

		after, err := r.AddVersion(ctx, p.ID, output(fmt.Sprintf("s%d", i)))
		require.NoError(t, err)
		require.Len(t, after.Versions, i)
		assert.Equal(t, before.LastVersion()+1, after.LastVersion())
		assert.Equal(t, before.Versions, after.Versions[:i-1])
		assert.Equal(t, p.ID, after.ID)
		assert.Equal(t, p.Input, after.Input)
	}
}

func TestAddVersion_NotFound(t *testing.T) {
	_, err := newRepo(t).AddVersion(context.Background(), "nope", output("x"))
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGet_NotFound(t *testing.T) {
	_, err := newRepo(t).Get(context.Background(), "nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestList_ByVersionCountDesc(t *testing.T) {
	ctx := context.Background()
	r := newRepo(t)
	a, _ := r.Create(ctx, input, output("a"))
	b, _ := r.Create(ctx, input, output("b"))
	c, _ := r.Create(ctx, input, output("c"))
	_, _ = r.AddVersion(ctx, b.ID, output("b2"))
	_, _ = r.AddVersion(ctx, b.ID, output("b3"))
	_, _ = r.AddVersion(ctx, c.ID, output("c2"))

	list, err := r.List(ctx)
	require.NoError(t, err)
	ids := []string{list[0].ID, list[1].ID, list[2].ID}
	assert.Equal(t, []string{b.ID, c.ID, a.ID}, ids)
}

func TestList_TiesKeepCreationOrder(t *testing.T) {
	ctx := context.Background()
	r := newRepo(t)
	var want []string
	for i := 0; i < 5; i++ {
		p, err := r.Create(ctx, input, output("x"))
		require.NoError(t, err)
		want = append(want, p.ID)
	}
	list, err := r.List(ctx)
	require.NoError(t, err)
	var got []string
	for _, p := range list {
		got = append(got, p.ID)
	}
	assert.Equal(t, want, got)
}

func TestLoad_CorruptStateReadsEmpty(t *testing.T) {
	ctx := context.Background()
	store := kvImp.NewMemory()
	require.NoError(t, store.Set(ctx, StorageKey, []byte("{not json")))
	r := New(store, clock.System(), zerolog.Nop())

	list, err := r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	p, err := r.Create(ctx, input, output("fresh"))
	require.NoError(t, err)
	got, err := r.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
}

func TestCreate_SharedStoreSeesPlans(t *testing.T) {
	ctx := context.Background()
	store := kvImp.NewMemory()
	r1 := New(store, clock.System(), zerolog.Nop())
	p, err := r1.Create(ctx, input, output("x"))
	require.NoError(t, err)

	r2 := New(store, clock.System(), zerolog.Nop())
	got, err := r2.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Title, got.Title)
}
