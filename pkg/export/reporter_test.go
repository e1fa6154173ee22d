package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/inventario26/cronograma-go/pkg/cronograma/models"
)

func dateRef(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestReporterHandle(t *testing.T) {
	report := &models.Report{
		SheetName: "CRONOGRAMA",
		Days: []models.DayRecord{
			{Date: dateRef(2025, time.March, 4), Weekday: "TER", Total: 10, Done: 6, Problem: 2, Pending: 2},
			{Date: nil, Weekday: "QUI", Total: 4, Done: 4},
		},
	}
	summary := models.Summary{
		TotalPositions: 14,
		TotalDone:      10,
		TotalProblem:   2,
		TotalPending:   2,
		Remaining:      4,
		PercentDone:    71.4,
		OpenDays:       1,
		IdealPerDay:    4,
	}

	var buf bytes.Buffer
	if err := NewReporter(&buf).Handle(report, summary); err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Painel de Micro Inventário: CRONOGRAMA",
		"Resumo Geral",
		"Total de Posições:      14",
		"Inventariadas:          10 (71.4%)",
		"Planejamento de Uniformidade",
		"Posições a inventariar: 4",
		"Dias úteis em aberto:   1",
		"Meta ideal por dia:     4 pos/dia",
		"04/03/2025",
		"TER",
		"60.0%",
		"100.0%",
		"% Concluído",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}

	// The day without a parsed date prints a dash instead.
	if !strings.Contains(out, "—") {
		t.Errorf("output missing the date placeholder\n%s", out)
	}
}

func TestReporterHandleAllDone(t *testing.T) {
	report := &models.Report{
		SheetName: "CRONOGRAMA",
		Days: []models.DayRecord{
			{Date: dateRef(2025, time.March, 4), Weekday: "TER", Total: 5, Done: 5},
		},
	}
	summary := models.Summary{
		TotalPositions: 5,
		TotalDone:      5,
		PercentDone:    100.0,
	}

	var buf bytes.Buffer
	if err := NewReporter(&buf).Handle(report, summary); err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "Todos os dias já foram concluídos!") {
		t.Errorf("output missing the all-done message\n%s", out)
	}
	if strings.Contains(out, "Meta ideal por dia") {
		t.Errorf("all-done output should not print a daily target\n%s", out)
	}
}

func TestReporterTableAlignment(t *testing.T) {
	report := &models.Report{
		SheetName: "CRONOGRAMA",
		Days: []models.DayRecord{
			{Date: dateRef(2025, time.March, 4), Weekday: "TER", Total: 10, Done: 6, Pending: 4},
		},
	}

	var buf bytes.Buffer
	if err := NewReporter(&buf).Handle(report, models.Summary{OpenDays: 1, IdealPerDay: 4}); err != nil {
		t.Fatalf("Handle failed: %v", err)
	}

	// Every table line must have the same printed width even though the
	// header carries multibyte characters.
	var width int
	for _, line := range strings.Split(buf.String(), "\n") {
		if !strings.HasPrefix(line, "|") && !strings.HasPrefix(line, "+") {
			continue
		}
		n := len([]rune(line))
		if width == 0 {
			width = n
			continue
		}
		if n != width {
			t.Errorf("line width %d != %d: %q", n, width, line)
		}
	}
	if width == 0 {
		t.Fatal("no table lines found in the output")
	}
}
