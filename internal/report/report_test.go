package report

import (
	"strings"
	"testing"
	"time"

	"github.com/themobileprof/medicare-be/internal/db"
	"github.com/themobileprof/medicare-be/internal/symptoms"
)

var generatedAt = time.Date(2024, 3, 5, 14, 7, 0, 0, time.UTC)

func TestBuildWithConsultations(t *testing.T) {
	long := strings.Repeat("x", 60)
	in := Input{
		PeriodDays:  30,
		GeneratedAt: generatedAt,
		PatientName: "Ana López",
		Consultations: []db.Consultation{
			{SymptomText: "dolor de pecho", Urgency: symptoms.UrgencyHigh},
			{SymptomText: long, Urgency: symptoms.UrgencyLow},
			{SymptomText: "tengo fiebre", Urgency: symptoms.UrgencyMedium},
			{SymptomText: "cuarta consulta", Urgency: symptoms.UrgencyHigh},
		},
	}

	got := Build(in)

	wantLines := []string{
		"Período: Últimos 30 días",
		"Fecha: 05/03/2024 14:07",
		"Paciente: Ana López",
		"• Total de consultas realizadas: 4",
		"• Consultas de urgencia alta: 2",
		"• Consultas de seguimiento regular: 2",
		"• dolor de pecho",
		"• " + strings.Repeat("x", 50) + "...",
		"• tengo fiebre",
	}
	for _, line := range wantLines {
		if !strings.Contains(got, line+"\n") {
			t.Errorf("report missing line %q\n%s", line, got)
		}
	}

	if strings.Contains(got, "cuarta consulta") {
		t.Error("report should list only the first three symptoms")
	}
	if !strings.HasSuffix(got, "Generado por MediCare v1.0\n") {
		t.Errorf("report should end with the sign-off line\n%s", got)
	}
	if strings.Contains(got, "SIN ACTIVIDAD") {
		t.Error("non-empty report rendered as empty")
	}
}

func TestBuildEmpty(t *testing.T) {
	got := Build(Input{PeriodDays: 7, GeneratedAt: generatedAt, PatientName: "Ana"})

	for _, want := range []string{"PERÍODO SIN ACTIVIDAD", "Últimos 7 días", "05/03/2024 14:07", "No se registraron consultas"} {
		if !strings.Contains(got, want) {
			t.Errorf("empty report missing %q\n%s", want, got)
		}
	}
	if !strings.HasSuffix(got, "¡Su bienestar es nuestra prioridad!\n") {
		t.Errorf("empty report should end with the closing line\n%s", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input string
		n     int
		want  string
	}{
		{"corto", 50, "corto"},
		{strings.Repeat("a", 50), 50, strings.Repeat("a", 50)},
		{"náuseas y vómito", 7, "náuseas..."},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := truncate(tt.input, tt.n); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
			}
		})
	}
}
