package controllerImp

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"lifeplan/entities"
)

//go:embed templates/*.html
var templateFS embed.FS

var printer = message.NewPrinter(language.English)

var views = template.Must(template.New("views").Funcs(template.FuncMap{
	"grouped": func(n int) string { return printer.Sprintf("%d", n) },
}).ParseFS(templateFS, "templates/*.html"))

type sharedList struct {
	Key     string
	Heading string
	Items   []string
}

type sharedView struct {
	Title    string
	HomeBase string
	Currency entities.Currency
	Total    int
	Lists    []sharedList
}

func newSharedView(p *entities.PlanArtifact) sharedView {
	out := p.Latest().Output
	names := func(ps []entities.Place) []string {
		s := make([]string, 0, len(ps))
		for _, pl := range ps {
			s = append(s, pl.Name)
		}
		return s
	}
	return sharedView{
		Title:    p.Title,
		HomeBase: out.Summary.HomeBaseArea,
		Currency: out.Budget.Currency,
		Total:    out.Budget.Total,
		Lists: []sharedList{
			{Key: "stays", Heading: fmt.Sprintf("Stay (%d)", len(out.Stays)), Items: names(out.Stays)},
			{Key: "gyms", Heading: fmt.Sprintf("Gym (%d)", len(out.Gyms)), Items: names(out.Gyms)},
			{Key: "coworks", Heading: fmt.Sprintf("Cowork (%d)", len(out.Coworks)), Items: names(out.Coworks)},
			{Key: "social", Heading: "Social", Items: names(out.Social)},
		},
	}
}

// render executes the whole page before anything is written.
func render(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := views.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
