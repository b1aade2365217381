// Package export renders the latest version of a plan as an xlsx workbook.
package export

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"lifeplan/entities"
)

const (
	SheetBudget   = "Budget"
	SheetPlaces   = "Places"
	SheetSchedule = "Schedule"
)

// WritePlanWorkbook writes Budget, Places and Schedule sheets for p's latest version.
func WritePlanWorkbook(w io.Writer, p *entities.PlanArtifact) error {
	if p == nil || p.Latest() == nil {
		return errors.New("export: plan has no versions")
	}
	v := p.Latest()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetBudget); err != nil {
		return err
	}
	for _, name := range []string{SheetPlaces, SheetSchedule} {
		if _, err := f.NewSheet(name); err != nil {
			return err
		}
	}

	if err := writeRows(f, SheetBudget, budgetRows(p, v)); err != nil {
		return err
	}
	if err := writeRows(f, SheetPlaces, placeRows(v.Output)); err != nil {
		return err
	}
	if err := writeRows(f, SheetSchedule, scheduleRows(v.Output.Schedule)); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		r := row
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return fmt.Errorf("export %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func budgetRows(p *entities.PlanArtifact, v *entities.PlanVersion) [][]any {
	b := v.Output.Budget
	a := b.Assumptions
	rows := [][]any{
		{"Plan", p.Title},
		{"Version", v.Version},
		{"Currency", string(b.Currency)},
		{"Weeks", b.Weeks},
		{},
		{"Category", "Amount"},
		{"Lodging", b.Lodging},
		{"Food", b.Food},
		{"Transport", b.Transport},
		{"Cowork", b.Cowork},
		{"Gym", b.Gym},
		{"Buffer", b.Buffer},
		{"Total", b.Total},
		{},
		{"Assumption", "Value"},
		{"Food per day", a.FoodPerDay},
		{"Transport per day", a.TransportPerDay},
		{"Cowork per day", a.CoworkPerDay},
		{"Gym per week", a.GymPerWeek},
		{"Buffer %", a.BufferPct},
	}
	for _, w := range b.Warnings {
		rows = append(rows, []any{"Warning", w})
	}
	return rows
}

func placeRows(out entities.PlanOutput) [][]any {
	rows := [][]any{{"Category", "Name", "Source", "Rating"}}
	add := func(cat string, ps []entities.Place) {
		for _, pl := range ps {
			rows = append(rows, []any{cat, pl.Name, string(pl.Source), pl.Rating})
		}
	}
	add("stay", out.Stays)
	add("gym", out.Gyms)
	add("cowork", out.Coworks)
	add("social", out.Social)
	return rows
}

func scheduleRows(days []entities.ScheduleDay) [][]any {
	rows := [][]any{{"Day", "Label", "Start", "End"}}
	for _, d := range days {
		for _, b := range d.Blocks {
			rows = append(rows, []any{d.Day, b.Label, b.Start, b.End})
		}
	}
	return rows
}
