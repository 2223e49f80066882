package symptoms

import (
	"fmt"
	"strings"
)

// Urgency is a coarse triage label attached to advice
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// Valid reports whether u is one of the known urgency labels
func (u Urgency) Valid() bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh:
		return true
	}
	return false
}

// ParseUrgency converts a stored label back into an Urgency
func ParseUrgency(s string) (Urgency, error) {
	u := Urgency(strings.ToLower(strings.TrimSpace(s)))
	if !u.Valid() {
		return "", fmt.Errorf("unknown urgency %q", s)
	}
	return u, nil
}

// KeywordEntry pairs a lower-case keyword with its canned advice
type KeywordEntry struct {
	Keyword string
	Advice  string
	Urgency Urgency
}

// Advice is the result of resolving a symptom description
type Advice struct {
	Text    string  `json:"advice"`
	Urgency Urgency `json:"urgency"`
}

// defaultAdviceFormat is used when no keyword matches. %s receives the
// original input.
const defaultAdviceFormat = "Gracias por consultarme sobre: '%s'. Basándome en lo que describes, te recomiendo: 1) Monitorear cuidadosamente tu estado, 2) Descansar adecuadamente, 3) Mantener una buena hidratación, 4) Anotar cualquier cambio en los síntomas. Si los síntomas empeoran, persisten por más de 24 horas, o te causan preocupación, no dudes en consultar con un profesional médico. Recuerda que esta es una orientación general y no reemplaza el diagnóstico médico profesional."

// Resolver maps free text to advice using an ordered keyword table.
// It holds no mutable state and is safe for concurrent use.
type Resolver struct {
	entries []KeywordEntry
}

// NewResolver creates a resolver over a copy of entries.
// Keywords are lower-cased so they can match the normalized input.
func NewResolver(entries []KeywordEntry) *Resolver {
	table := make([]KeywordEntry, len(entries))
	for i, e := range entries {
		e.Keyword = strings.ToLower(e.Keyword)
		table[i] = e
	}
	return &Resolver{entries: table}
}

// NewDefaultResolver creates a resolver over the built-in table
func NewDefaultResolver() *Resolver {
	return NewResolver(defaultTable)
}

// Resolve returns the advice of the first entry whose keyword occurs in the
// lower-cased input. Earlier entries win regardless of where their keyword
// appears in the text. Input matching nothing gets the default low-urgency
// advice quoting the input verbatim.
func (r *Resolver) Resolve(input string) Advice {
	lower := strings.ToLower(input)

	for _, e := range r.entries {
		if e.Keyword != "" && strings.Contains(lower, e.Keyword) {
			return Advice{Text: e.Advice, Urgency: e.Urgency}
		}
	}

	return DefaultAdvice(input)
}

// Entries returns a copy of the resolver's table in match order
func (r *Resolver) Entries() []KeywordEntry {
	out := make([]KeywordEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// DefaultAdvice is the fallback for input that matches no keyword
func DefaultAdvice(input string) Advice {
	return Advice{
		Text:    fmt.Sprintf(defaultAdviceFormat, input),
		Urgency: UrgencyLow,
	}
}
