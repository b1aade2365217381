package generator

import (
	"math"

	"lifeplan/entities"
)

// OverBudgetWarning is appended when the computed total exceeds the stated budget.
const OverBudgetWarning = "Your plan exceeds the stated budget under default assumptions."

const (
	lodgingShare = 0.45
	bufferPct    = 10
	// Work days are modeled as days-2 regardless of the number of weeks.
	nonWorkDays = 2
)

// AssumptionsFor returns the per-diem constants for a currency. EUR shares the USD
// nominal values; there is no EUR-specific table.
func AssumptionsFor(c entities.Currency) entities.Assumptions {
	if c == entities.CurrencyTHB {
		return entities.Assumptions{FoodPerDay: 700, TransportPerDay: 200, CoworkPerDay: 350, GymPerWeek: 700, BufferPct: bufferPct}
	}
	return entities.Assumptions{FoodPerDay: 25, TransportPerDay: 6, CoworkPerDay: 10, GymPerWeek: 12, BufferPct: bufferPct}
}

// ComputeBudget derives the cost breakdown for in. It is pure.
func ComputeBudget(in entities.PlanInput) entities.BudgetBreakdown {
	a := AssumptionsFor(in.Currency)
	weeks := in.Weeks
	days := weeks * 7

	b := entities.BudgetBreakdown{
		Currency:    in.Currency,
		Weeks:       weeks,
		Lodging:     round(in.Budget * lodgingShare),
		Food:        a.FoodPerDay * days,
		Transport:   a.TransportPerDay * days,
		Cowork:      a.CoworkPerDay * (days - nonWorkDays),
		Gym:         a.GymPerWeek * weeks,
		Assumptions: a,
		Warnings:    []string{},
	}
	subtotal := b.Subtotal()
	b.Buffer = round(float64(subtotal) * (float64(a.BufferPct) / 100))
	b.Total = subtotal + b.Buffer

	if float64(b.Total) > in.Budget {
		b.Warnings = append(b.Warnings, OverBudgetWarning)
	}
	return b
}

func round(v float64) int { return int(math.Round(v)) }
