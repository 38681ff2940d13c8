package language

import (
	"errors"
	"fmt"
	"strings"

	lingua "github.com/pemistahl/lingua-go"
)

// DefaultSet is the candidate list used when SUPPORTED_LANGUAGES is unset.
const DefaultSet = "English,French,German,Spanish,Turkish"

// MinSetSize is the smallest candidate set lingua can build a detector for.
const MinSetSize = 2

var ErrEmptySet = errors.New("supported language set is empty")

// Set is the ordered, immutable list of candidate languages a detector is
// built against. The zero value is an empty set.
type Set struct {
	languages []lingua.Language
}

// NewSet builds a set from lingua languages, dropping duplicates and keeping
// first-seen order.
func NewSet(languages ...lingua.Language) (Set, error) {
	ordered := make([]lingua.Language, 0, len(languages))
	seen := make(map[lingua.Language]struct{}, len(languages))
	for _, lang := range languages {
		if lang == lingua.Unknown {
			return Set{}, fmt.Errorf("language %q is not a candidate language", lang.String())
		}
		if _, exists := seen[lang]; exists {
			continue
		}
		seen[lang] = struct{}{}
		ordered = append(ordered, lang)
	}

	if len(ordered) == 0 {
		return Set{}, ErrEmptySet
	}
	if len(ordered) < MinSetSize {
		return Set{}, fmt.Errorf("supported language set needs at least %d languages, got %d", MinSetSize, len(ordered))
	}
	return Set{languages: ordered}, nil
}

// ParseSet parses a comma-separated list of language names ("German") or
// tags ("de", "de-AT", "deu").
func ParseSet(raw string) (Set, error) {
	parts := strings.Split(raw, ",")
	languages := make([]lingua.Language, 0, len(parts))
	for _, part := range parts {
		entry := strings.TrimSpace(part)
		if entry == "" {
			continue
		}
		lang, err := Lookup(entry)
		if err != nil {
			return Set{}, err
		}
		languages = append(languages, lang)
	}
	return NewSet(languages...)
}

// Lookup resolves one language name or tag to a lingua language.
func Lookup(entry string) (lingua.Language, error) {
	trimmed := strings.TrimSpace(entry)
	if trimmed == "" {
		return lingua.Unknown, fmt.Errorf("language entry is blank")
	}

	for _, lang := range lingua.AllLanguages() {
		if strings.EqualFold(lang.String(), trimmed) {
			return lang, nil
		}
	}

	code := NormalizeCode(trimmed)
	if code != "" {
		for _, lang := range lingua.AllLanguages() {
			if strings.EqualFold(lang.IsoCode639_1().String(), code) {
				return lang, nil
			}
		}
	}

	return lingua.Unknown, fmt.Errorf("unsupported language %q", trimmed)
}

// Languages returns a copy of the candidate languages in configured order.
func (s Set) Languages() []lingua.Language {
	out := make([]lingua.Language, len(s.languages))
	copy(out, s.languages)
	return out
}

// Names returns the canonical display names in configured order.
func (s Set) Names() []string {
	names := make([]string, 0, len(s.languages))
	for _, lang := range s.languages {
		names = append(names, lang.String())
	}
	return names
}

// Codes returns lowercase ISO 639-1 codes in configured order.
func (s Set) Codes() []string {
	codes := make([]string, 0, len(s.languages))
	for _, lang := range s.languages {
		codes = append(codes, strings.ToLower(lang.IsoCode639_1().String()))
	}
	return codes
}

func (s Set) Len() int {
	return len(s.languages)
}

// Contains reports whether name is the canonical name of a candidate language.
func (s Set) Contains(name string) bool {
	for _, lang := range s.languages {
		if lang.String() == name {
			return true
		}
	}
	return false
}

func (s Set) String() string {
	return strings.Join(s.Names(), ",")
}
