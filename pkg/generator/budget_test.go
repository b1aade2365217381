package generator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"lifeplan/entities"
)

func TestComputeBudget_BangkokUSD(t *testing.T) {
	b := ComputeBudget(entities.PlanInput{Weeks: 1, Location: "Bangkok", Budget: 1200, Currency: entities.CurrencyUSD})

	assert.Equal(t, 540, b.Lodging)
	assert.Equal(t, 175, b.Food)
	assert.Equal(t, 42, b.Transport)
	assert.Equal(t, 50, b.Cowork)
	assert.Equal(t, 12, b.Gym)
	assert.Equal(t, 819, b.Subtotal())
	assert.Equal(t, 82, b.Buffer)
	assert.Equal(t, 901, b.Total)
	assert.Empty(t, b.Warnings)
	assert.NotNil(t, b.Warnings)
	assert.Equal(t, entities.CurrencyUSD, b.Currency)
	assert.Equal(t, 1, b.Weeks)
	assert.Equal(t, entities.Assumptions{FoodPerDay: 25, TransportPerDay: 6, CoworkPerDay: 10, GymPerWeek: 12, BufferPct: 10}, b.Assumptions)
}

func TestComputeBudget_OverBudgetWarning(t *testing.T) {
	b := ComputeBudget(entities.PlanInput{Weeks: 4, Location: "Lisbon", Budget: 500, Currency: entities.CurrencyEUR})
	assert.Greater(t, float64(b.Total), 500.0)
	assert.Equal(t, []string{OverBudgetWarning}, b.Warnings)
}

func TestComputeBudget_THBConstants(t *testing.T) {
	b := ComputeBudget(entities.PlanInput{Weeks: 2, Location: "Chiang Mai", Budget: 60000, Currency: entities.CurrencyTHB})
	assert.Equal(t, 27000, b.Lodging)
	assert.Equal(t, 700*14, b.Food)
	assert.Equal(t, 200*14, b.Transport)
	// flat days-2, not 5 per week
	assert.Equal(t, 350*12, b.Cowork)
	assert.Equal(t, 1400, b.Gym)
}

func TestComputeBudget_EURSharesUSDConstants(t *testing.T) {
	assert.Equal(t, AssumptionsFor(entities.CurrencyUSD), AssumptionsFor(entities.CurrencyEUR))
}

func TestComputeBudget_TotalsAddUp(t *testing.T) {
	for _, cur := range []entities.Currency{entities.CurrencyUSD, entities.CurrencyTHB, entities.CurrencyEUR} {
		for weeks := 1; weeks <= 4; weeks++ {
			for _, budget := range []float64{1, 99.5, 1200, 4321.7, 250000} {
				b := ComputeBudget(entities.PlanInput{Weeks: weeks, Location: "X", Budget: budget, Currency: cur})
				sub := b.Lodging + b.Food + b.Transport + b.Cowork + b.Gym
				assert.Equal(t, sub+b.Buffer, b.Total)
				assert.Equal(t, int(math.Round(float64(sub)*0.1)), b.Buffer)
				if float64(b.Total) > budget {
					assert.Len(t, b.Warnings, 1)
				} else {
					assert.Empty(t, b.Warnings)
				}
			}
		}
	}
}

func TestComputeBudget_LargestBudget(t *testing.T) {
	b := ComputeBudget(entities.PlanInput{Weeks: 4, Location: "X", Budget: entities.MaxBudget, Currency: entities.CurrencyTHB})
	assert.Equal(t, 450_000_000_000_000, b.Lodging)
	assert.Equal(t, b.Subtotal()+b.Buffer, b.Total)
	assert.Greater(t, b.Total, b.Lodging)
	assert.Empty(t, b.Warnings)
}
