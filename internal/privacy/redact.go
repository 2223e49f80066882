package privacy

import (
	"regexp"
	"unicode/utf8"
)

// maxLoggedRunes bounds how much free text reaches the logs
const maxLoggedRunes = 200

var (
	emailRegex = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// Matches: +34 612 345 678, (55) 1234-5678, 555-123-4567, 612345678, 555-1234
	phoneRegex = regexp.MustCompile(`(\+\d{1,3}[-.\s]?)?\(?\d{2,3}\)?[-.\s]?\d{3,4}[-.\s]?\d{3,4}\b|\b\d{3}[-.\s]\d{4}\b`)

	// National identity numbers: DNI/NIE style (12345678Z, X1234567L)
	nationalIDRegex = regexp.MustCompile(`\b[XYZxyz]?\d{7,8}[A-Za-z]\b`)

	creditCardRegex = regexp.MustCompile(`\b\d{4}[-\s]?\d{4}[-\s]?\d{4}[-\s]?\d{4}\b`)

	medicalIDRegex = regexp.MustCompile(`(?i)\b(MRN|historia cl[ií]nica|expediente|n[uú]mero de paciente)[-:#\s]*[A-Z0-9]{5,}\b`)
)

// RedactSensitiveData replaces personal identifiers in text with placeholders
func RedactSensitiveData(text string) string {
	// Cards first, the phone pattern would otherwise eat their digit groups.
	text = creditCardRegex.ReplaceAllString(text, "[CARD]")
	text = emailRegex.ReplaceAllString(text, "[EMAIL]")
	text = medicalIDRegex.ReplaceAllString(text, "[MEDICAL_ID]")
	text = nationalIDRegex.ReplaceAllString(text, "[ID]")
	text = phoneRegex.ReplaceAllString(text, "[PHONE]")
	return text
}

// SanitizeForLogging redacts and truncates symptom text before it is logged
func SanitizeForLogging(text string) string {
	redacted := RedactSensitiveData(text)

	if utf8.RuneCountInString(redacted) <= maxLoggedRunes {
		return redacted
	}

	runes := []rune(redacted)
	return string(runes[:maxLoggedRunes-3]) + "..."
}

// ContainsPII checks if text contains potential PII
func ContainsPII(text string) bool {
	return emailRegex.MatchString(text) ||
		phoneRegex.MatchString(text) ||
		nationalIDRegex.MatchString(text) ||
		creditCardRegex.MatchString(text) ||
		medicalIDRegex.MatchString(text)
}
