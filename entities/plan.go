package entities

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyTHB Currency = "THB"
	CurrencyEUR Currency = "EUR"
)

// MaxBudget is the largest accepted budget; every breakdown amount stays inside int.
const MaxBudget = 1e15

type PlanInput struct {
	Weeks    int      `json:"weeks" validate:"required,min=1,max=4"`
	Location string   `json:"location" validate:"required,notblank"`
	Budget   float64  `json:"budget" validate:"required,gt=0,lte=1e15"`
	Currency Currency `json:"currency" validate:"required,oneof=USD THB EUR"`
}

type Source string

const (
	SourceGoogle  Source = "google"
	SourceBooking Source = "booking"
	SourceReddit  Source = "reddit"
	SourceManual  Source = "manual"
)

type Place struct {
	Name   string   `json:"name"`
	URL    string   `json:"url,omitempty"`
	Rating float64  `json:"rating"`
	Notes  string   `json:"notes,omitempty"`
	Source Source   `json:"source"`
	Tags   []string `json:"tags"`
}

type Assumptions struct {
	FoodPerDay      int `json:"foodPerDay"`
	TransportPerDay int `json:"transportPerDay"`
	CoworkPerDay    int `json:"coworkPerDay"`
	GymPerWeek      int `json:"gymPerWeek"`
	BufferPct       int `json:"bufferPct"`
}

type BudgetBreakdown struct {
	Currency    Currency    `json:"currency"`
	Weeks       int         `json:"weeks"`
	Lodging     int         `json:"lodging"`
	Food        int         `json:"food"`
	Transport   int         `json:"transport"`
	Cowork      int         `json:"cowork"`
	Gym         int         `json:"gym"`
	Buffer      int         `json:"buffer"`
	Total       int         `json:"total"`
	Assumptions Assumptions `json:"assumptions"`
	Warnings    []string    `json:"warnings"`
}

// Subtotal is the sum of the five cost categories, buffer excluded.
func (b BudgetBreakdown) Subtotal() int {
	return b.Lodging + b.Food + b.Transport + b.Cowork + b.Gym
}

type Summary struct {
	HomeBaseArea string   `json:"homeBaseArea"`
	Why          []string `json:"why"`
}

type ScheduleBlock struct {
	Label string `json:"label"`
	Start string `json:"start"`
	End   string `json:"end"`
	Note  string `json:"note,omitempty"`
}

type ScheduleDay struct {
	Day    string          `json:"day"` // Mon..Sun
	Blocks []ScheduleBlock `json:"blocks"`
}

type Provenance struct {
	GeneratedAt string   `json:"generatedAt"`
	Seed        string   `json:"seed"`
	Notes       []string `json:"notes"`
}

type PlanOutput struct {
	Summary    Summary         `json:"summary"`
	Stays      []Place         `json:"stays"`
	Gyms       []Place         `json:"gyms"`
	Coworks    []Place         `json:"coworks"`
	Social     []Place         `json:"social"`
	Schedule   []ScheduleDay   `json:"schedule"`
	Budget     BudgetBreakdown `json:"budget"`
	Provenance Provenance      `json:"provenance"`
}

// CreatedAt and Provenance.GeneratedAt are ISO-8601 UTC strings, see clock.Format.
type PlanVersion struct {
	Version   int        `json:"version"`
	CreatedAt string     `json:"createdAt"`
	Output    PlanOutput `json:"output"`
}

// PlanArtifact is a stored plan and its append-only version history.
type PlanArtifact struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Input    PlanInput     `json:"input"`
	Versions []PlanVersion `json:"versions"`
}

// Latest returns the newest version, or nil for an empty history.
func (p *PlanArtifact) Latest() *PlanVersion {
	if len(p.Versions) == 0 {
		return nil
	}
	return &p.Versions[len(p.Versions)-1]
}

// LastVersion is the number of the newest version, 0 when there is none.
func (p *PlanArtifact) LastVersion() int {
	if v := p.Latest(); v != nil {
		return v.Version
	}
	return 0
}
