package langdetect

import (
	"fmt"
	"strings"
	"unicode"

	lingua "github.com/pemistahl/lingua-go"

	"horse.fit/langid/internal/language"
)

// MaxMinimumRelativeDistance is the upper bound lingua accepts for the
// minimum relative distance option.
const MaxMinimumRelativeDistance = 0.99

type Options struct {
	MinimumRelativeDistance float64
	MinLetters              int
	PreloadModels           bool
	LowAccuracy             bool
}

// Confidence is one candidate language with its lingua confidence value.
type Confidence struct {
	Language string  `json:"language"`
	Value    float64 `json:"value"`
}

// Lingua identifies the language of a text among a fixed candidate set.
// It holds no mutable state after New returns and is safe for concurrent use.
type Lingua struct {
	detector   lingua.LanguageDetector
	set        language.Set
	minLetters int
}

func New(set language.Set, opts Options) (*Lingua, error) {
	if set.Len() < language.MinSetSize {
		return nil, fmt.Errorf("detector needs at least %d candidate languages, got %d", language.MinSetSize, set.Len())
	}
	if opts.MinimumRelativeDistance < 0 || opts.MinimumRelativeDistance >= MaxMinimumRelativeDistance {
		return nil, fmt.Errorf("minimum relative distance must be in [0, %.2f), got %v", MaxMinimumRelativeDistance, opts.MinimumRelativeDistance)
	}
	if opts.MinLetters < 0 {
		return nil, fmt.Errorf("minimum letter count must be >= 0, got %d", opts.MinLetters)
	}

	builder := lingua.NewLanguageDetectorBuilder().
		FromLanguages(set.Languages()...).
		WithMinimumRelativeDistance(opts.MinimumRelativeDistance)
	if opts.PreloadModels {
		builder = builder.WithPreloadedLanguageModels()
	}
	if opts.LowAccuracy {
		builder = builder.WithLowAccuracyMode()
	}

	return &Lingua{
		detector:   builder.Build(),
		set:        set,
		minLetters: opts.MinLetters,
	}, nil
}

// Detect returns the canonical name of the most probable candidate language,
// or false when no candidate is confident enough.
func (l *Lingua) Detect(text string) (string, bool) {
	sample, ok := l.sample(text)
	if !ok {
		return "", false
	}

	lang, exists := l.detector.DetectLanguageOf(sample)
	if !exists || lang == lingua.Unknown {
		return "", false
	}
	return lang.String(), true
}

// Confidences returns every candidate with its confidence, highest first.
func (l *Lingua) Confidences(text string) []Confidence {
	sample, ok := l.sample(text)
	if !ok {
		return []Confidence{}
	}

	values := l.detector.ComputeLanguageConfidenceValues(sample)
	out := make([]Confidence, 0, len(values))
	for _, value := range values {
		out = append(out, Confidence{
			Language: value.Language().String(),
			Value:    value.Value(),
		})
	}
	return out
}

// Languages returns the candidate set the detector was built against.
func (l *Lingua) Languages() language.Set {
	return l.set
}

func (l *Lingua) sample(text string) (string, bool) {
	sample := strings.TrimSpace(text)
	if sample == "" {
		return "", false
	}

	letterCount := 0
	for _, r := range sample {
		if unicode.IsLetter(r) {
			letterCount++
			if letterCount >= l.minLetters {
				break
			}
		}
	}
	if letterCount < l.minLetters {
		return "", false
	}
	return sample, true
}
