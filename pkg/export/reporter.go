// Package export renders schedule reports for the terminal.
package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"
	"unicode/utf8"

	"github.com/inventario26/cronograma-go/pkg/cronograma/models"
)

// noDate is printed for days whose date label could not be parsed and for
// the target column of days already finished.
const noDate = "—"

// TableConfig holds the column widths of the per-day table.
type TableConfig struct {
	DateWidth    int
	WeekdayWidth int
	CountWidth   int
	PercentWidth int
	TargetWidth  int
}

// DefaultTableConfig returns widths that fit the Portuguese headers.
func DefaultTableConfig() TableConfig {
	return TableConfig{
		DateWidth:    10,
		WeekdayWidth: 5,
		CountWidth:   12,
		PercentWidth: 11,
		TargetWidth:  10,
	}
}

// Reporter writes the summary block and the per-day table of a report.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

// NewReporter returns a Reporter writing to w, or to stdout when w is nil.
func NewReporter(w io.Writer) *Reporter {
	if w == nil {
		w = os.Stdout
	}
	return &Reporter{
		writer: w,
		config: DefaultTableConfig(),
	}
}

type dayRow struct {
	Date       string
	Weekday    string
	Total      string
	Done       string
	InProgress string
	Problem    string
	Pending    string
	Percent    string
	Target     string
}

type reportView struct {
	SheetName string
	Summary   models.Summary
	AllDone   bool
	Rows      []dayRow
}

const reportTemplate = `
Painel de Micro Inventário: {{.SheetName}}

Resumo Geral
  Total de Posições:      {{.Summary.TotalPositions}}
  Inventariadas:          {{.Summary.TotalDone}} ({{printf "%.1f" .Summary.PercentDone}}%)
  Pendentes:              {{.Summary.TotalPending}}
  Em Andamento:           {{.Summary.TotalInProgress}}
  Com Problema:           {{.Summary.TotalProblem}}

Planejamento de Uniformidade
  Posições a inventariar: {{.Summary.Remaining}}
  Dias úteis em aberto:   {{.Summary.OpenDays}}
{{- if .AllDone}}
  Todos os dias já foram concluídos!
{{- else}}
  Meta ideal por dia:     {{.Summary.IdealPerDay}} pos/dia
{{- end}}

{{separator}}
{{formatRow "Data" "Dia" "Total" "Inventariado" "Em Andamento" "Problema" "Pendente" "% Concluído" "Meta Ideal"}}
{{separator}}
{{range .Rows}}{{formatRow .Date .Weekday .Total .Done .InProgress .Problem .Pending .Percent .Target}}
{{end}}{{separator}}
`

// Handle renders the report and its summary. Dates print as dd/mm/yyyy,
// a dash stands in for unparsed dates, and the per-day target is shown
// only while the day is still open.
func (r *Reporter) Handle(report *models.Report, summary models.Summary) error {
	view := reportView{
		SheetName: report.SheetName,
		Summary:   summary,
		AllDone:   summary.OpenDays == 0,
	}
	for _, d := range report.Days {
		row := dayRow{
			Date:       noDate,
			Weekday:    d.Weekday,
			Total:      fmt.Sprintf("%d", d.Total),
			Done:       fmt.Sprintf("%d", d.Done),
			InProgress: fmt.Sprintf("%d", d.InProgress),
			Problem:    fmt.Sprintf("%d", d.Problem),
			Pending:    fmt.Sprintf("%d", d.Pending),
			Percent:    fmt.Sprintf("%.1f%%", d.PercentDone()),
			Target:     noDate,
		}
		if d.Date != nil {
			row.Date = d.Date.Format("02/01/2006")
		}
		if d.Open() {
			row.Target = fmt.Sprintf("%d", summary.IdealPerDay)
		}
		view.Rows = append(view.Rows, row)
	}

	widths := []int{
		r.config.DateWidth,
		r.config.WeekdayWidth,
		r.config.CountWidth,
		r.config.CountWidth,
		r.config.CountWidth,
		r.config.CountWidth,
		r.config.CountWidth,
		r.config.PercentWidth,
		r.config.TargetWidth,
	}

	funcMap := template.FuncMap{
		"formatRow": func(cells ...string) string {
			parts := make([]string, len(cells))
			for i, cell := range cells {
				width := widths[len(widths)-1]
				if i < len(widths) {
					width = widths[i]
				}
				parts[i] = pad(cell, width)
			}
			return "| " + strings.Join(parts, " | ") + " |"
		},
		"separator": func() string {
			parts := make([]string, len(widths))
			for i, width := range widths {
				parts[i] = strings.Repeat("-", width+2)
			}
			return "+" + strings.Join(parts, "+") + "+"
		},
	}

	tmpl, err := template.New("report").Funcs(funcMap).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}
	if err := tmpl.Execute(r.writer, view); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

// pad right-pads counting runes, not bytes. The headers carry accented
// characters that would misalign byte-width padding.
func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
