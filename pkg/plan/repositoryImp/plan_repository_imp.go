package repositoryImp

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"lifeplan/entities"
	"lifeplan/pkg/clock"
	kvrepo "lifeplan/pkg/kv/repository"
	"lifeplan/pkg/plan/repository"
)

// StorageKey holds the whole id -> artifact map.
const StorageKey = "wlp_plans_v1"

const idLength = 12

type planRepo struct {
	mu    sync.Mutex
	store kvrepo.Store
	clock clock.Clock
	log   zerolog.Logger
	newID func() string
}

type Option func(*planRepo)

// WithIDGenerator replaces the uuid-derived id source.
func WithIDGenerator(f func() string) Option { return func(r *planRepo) { r.newID = f } }

func New(store kvrepo.Store, c clock.Clock, log zerolog.Logger, opts ...Option) repository.PlanRepository {
	if c == nil {
		c = clock.System()
	}
	r := &planRepo{store: store, clock: c, log: log, newID: NewID}
	for _, o := range opts {
		o(r)
	}
	return r
}

// NewID returns a short URL-safe id.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:idLength]
}

var titlePrinter = message.NewPrinter(language.English)

// Title renders "<location> — <weeks>w — <currency> <budget>" with en-US digit grouping.
func Title(in entities.PlanInput) string {
	amount := titlePrinter.Sprintf("%v", number.Decimal(in.Budget, number.MaxFractionDigits(3)))
	return fmt.Sprintf("%s — %dw — %s %s", in.Location, in.Weeks, in.Currency, amount)
}

func (r *planRepo) Create(ctx context.Context, in entities.PlanInput, out entities.PlanOutput) (*entities.PlanArtifact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	id := r.newID()
	for {
		if _, taken := all[id]; !taken {
			break
		}
		id = r.newID()
	}
	p := entities.PlanArtifact{
		ID:    id,
		Title: Title(in),
		Input: in,
		Versions: []entities.PlanVersion{
			{Version: 1, CreatedAt: clock.Format(r.clock.Now()), Output: out},
		},
	}
	all[id] = p
	if err := r.saveAll(ctx, all); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *planRepo) AddVersion(ctx context.Context, id string, out entities.PlanOutput) (*entities.PlanArtifact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	existing, ok := all[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	versions := make([]entities.PlanVersion, len(existing.Versions), len(existing.Versions)+1)
	copy(versions, existing.Versions)
	versions = append(versions, entities.PlanVersion{
		Version:   existing.LastVersion() + 1,
		CreatedAt: clock.Format(r.clock.Now()),
		Output:    out,
	})
	existing.Versions = versions
	all[id] = existing
	if err := r.saveAll(ctx, all); err != nil {
		return nil, err
	}
	return &existing, nil
}

func (r *planRepo) Get(ctx context.Context, id string) (*entities.PlanArtifact, error) {
	all, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	p, ok := all[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r *planRepo) List(ctx context.Context) ([]entities.PlanArtifact, error) {
	all, err := r.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.PlanArtifact, 0, len(all))
	for _, p := range all {
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if len(a.Versions) != len(b.Versions) {
			return len(a.Versions) > len(b.Versions)
		}
		if ac, bc := firstCreated(a), firstCreated(b); ac != bc {
			return ac < bc
		}
		return a.ID < b.ID
	})
	return out, nil
}

func firstCreated(p entities.PlanArtifact) string {
	if len(p.Versions) == 0 {
		return ""
	}
	return p.Versions[0].CreatedAt
}

// loadAll reads the whole map. Unparseable state reads as empty, like a fresh device.
func (r *planRepo) loadAll(ctx context.Context) (map[string]entities.PlanArtifact, error) {
	raw, ok, err := r.store.Get(ctx, StorageKey)
	if err != nil {
		return nil, fmt.Errorf("load plans: %w", err)
	}
	all := map[string]entities.PlanArtifact{}
	if !ok || len(raw) == 0 {
		return all, nil
	}
	if err := json.Unmarshal(raw, &all); err != nil {
		r.log.Warn().Err(err).Str("key", StorageKey).Msg("stored plans unreadable, starting empty")
		return map[string]entities.PlanArtifact{}, nil
	}
	return all, nil
}

func (r *planRepo) saveAll(ctx context.Context, all map[string]entities.PlanArtifact) error {
	b, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("encode plans: %w", err)
	}
	if err := r.store.Set(ctx, StorageKey, b); err != nil {
		return fmt.Errorf("save plans: %w", err)
	}
	return nil
}
