package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/themobileprof/medicare-be/internal/db"
	"github.com/themobileprof/medicare-be/internal/symptoms"
)

const (
	// listedSymptoms is how many symptom texts the report quotes
	listedSymptoms = 3
	// maxSymptomRunes is where quoted symptom texts are cut
	maxSymptomRunes = 50

	dateLayout = "02/01/2006 15:04"
)

// Input holds everything a report is built from
type Input struct {
	PeriodDays    int
	GeneratedAt   time.Time
	PatientName   string
	Consultations []db.Consultation // oldest first
}

// Build renders the plain-text consultation report for a period
func Build(in Input) string {
	if len(in.Consultations) == 0 {
		return buildEmpty(in)
	}

	urgent := 0
	for _, c := range in.Consultations {
		if c.Urgency == symptoms.UrgencyHigh {
			urgent++
		}
	}

	var b strings.Builder

	b.WriteString("REPORTE MÉDICO\n")
	b.WriteString("==============\n")
	fmt.Fprintf(&b, "Período: Últimos %d días\n", in.PeriodDays)
	fmt.Fprintf(&b, "Fecha: %s\n", in.GeneratedAt.Format(dateLayout))
	fmt.Fprintf(&b, "Paciente: %s\n", in.PatientName)
	b.WriteString("\n")

	b.WriteString("RESUMEN DE ACTIVIDAD:\n")
	fmt.Fprintf(&b, "• Total de consultas realizadas: %d\n", len(in.Consultations))
	fmt.Fprintf(&b, "• Consultas de urgencia alta: %d\n", urgent)
	fmt.Fprintf(&b, "• Consultas de seguimiento regular: %d\n", len(in.Consultations)-urgent)
	b.WriteString("\n")

	b.WriteString("SÍNTOMAS MÁS CONSULTADOS:\n")
	for i, c := range in.Consultations {
		if i == listedSymptoms {
			break
		}
		fmt.Fprintf(&b, "• %s\n", truncate(c.SymptomText, maxSymptomRunes))
	}
	b.WriteString("\n")

	b.WriteString(`RECOMENDACIONES GENERALES:
1. Mantener seguimiento médico regular con su doctor de cabecera
2. Continuar con los medicamentos prescritos según indicaciones
3. Monitorear los síntomas recurrentes y reportar cambios
4. Mantener hábitos saludables de alimentación y ejercicio

PRÓXIMOS PASOS SUGERIDOS:
• Agendar cita de control con médico primario
• Revisar medicamentos actuales con farmacéutico
• Considerar evaluación especializada si síntomas persisten

NOTA IMPORTANTE: Este reporte es generado automáticamente y debe ser
complementado con evaluación médica profesional. No reemplaza el criterio
clínico de un profesional de la salud.

Generado por MediCare v1.0
`)

	return b.String()
}

func buildEmpty(in Input) string {
	var b strings.Builder

	b.WriteString("REPORTE MÉDICO - PERÍODO SIN ACTIVIDAD\n")
	b.WriteString("======================================\n")
	fmt.Fprintf(&b, "Período: Últimos %d días\n", in.PeriodDays)
	fmt.Fprintf(&b, "Fecha: %s\n", in.GeneratedAt.Format(dateLayout))
	b.WriteString("\n")
	b.WriteString(`No se registraron consultas médicas en el período seleccionado.

RECOMENDACIONES:
• Recuerde que puede consultar sus síntomas cuando tenga dudas sobre su salud
• Mantenga sus controles médicos regulares
• Registre sus medicamentos para mejores recordatorios

¡Su bienestar es nuestra prioridad!
`)

	return b.String()
}

// truncate cuts s to n runes, marking the cut with "..."
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
