package langdetect

import (
	"sync"
	"testing"

	lingua "github.com/pemistahl/lingua-go"

	"horse.fit/langid/internal/language"
)

var (
	sharedOnce     sync.Once
	sharedDetector *Lingua
	sharedErr      error
)

func defaultDetector(t *testing.T) *Lingua {
	t.Helper()

	sharedOnce.Do(func() {
		set, err := language.ParseSet(language.DefaultSet)
		if err != nil {
			sharedErr = err
			return
		}
		sharedDetector, sharedErr = New(set, Options{MinLetters: 1})
	})
	if sharedErr != nil {
		t.Fatalf("build detector: %v", sharedErr)
	}
	return sharedDetector
}

func TestDetectKnownLanguages(t *testing.T) {
	t.Parallel()

	detector := defaultDetector(t)
	cases := map[string]string{
		"Hello, how are you?":                             "English",
		"Bonjour, comment allez-vous aujourd'hui ?":       "French",
		"Guten Morgen, wie geht es Ihnen heute?":          "German",
		"Buenos días, ¿cómo estás? Me alegro de verte.":   "Spanish",
		"Merhaba, bugün nasılsın? Seni görmek çok güzel.": "Turkish",
	}

	for text, want := range cases {
		got, ok := detector.Detect(text)
		if !ok {
			t.Fatalf("expected a match for %q", text)
		}
		if got != want {
			t.Fatalf("unexpected language for %q: got %q want %q", text, got, want)
		}
	}
}

func TestDetectNoLinguisticContent(t *testing.T) {
	t.Parallel()

	detector := defaultDetector(t)
	for _, text := range []string{"", "   ", "12345 !!! 678.90", "#$%^&*()"} {
		if got, ok := detector.Detect(text); ok {
			t.Fatalf("expected no match for %q, got %q", text, got)
		}
	}
}

func TestDetectNeverReturnsLanguageOutsideSet(t *testing.T) {
	t.Parallel()

	detector := defaultDetector(t)
	set := detector.Languages()
	for _, text := range []string{"Dit is een Nederlandse zin.", "Questa è una frase italiana.", "Hello world"} {
		got, ok := detector.Detect(text)
		if ok && !set.Contains(got) {
			t.Fatalf("detected %q outside of candidate set %v", got, set.Names())
		}
	}
}

func TestDetectIsDeterministic(t *testing.T) {
	t.Parallel()

	detector := defaultDetector(t)
	first, firstOK := detector.Detect("Das ist ein schöner Tag.")
	second, secondOK := detector.Detect("Das ist ein schöner Tag.")
	if first != second || firstOK != secondOK {
		t.Fatalf("detection is not deterministic: %q/%v vs %q/%v", first, firstOK, second, secondOK)
	}
}

func TestConfidencesRanked(t *testing.T) {
	t.Parallel()

	detector := defaultDetector(t)
	values := detector.Confidences("Hello, how are you?")
	if len(values) == 0 || len(values) > 5 {
		t.Fatalf("expected at most one confidence per candidate, got %d", len(values))
	}
	if values[0].Language != "English" {
		t.Fatalf("expected English to rank first, got %q", values[0].Language)
	}
	for i := 1; i < len(values); i++ {
		if values[i].Value > values[i-1].Value {
			t.Fatalf("confidences are not sorted: %+v", values)
		}
	}

	if got := detector.Confidences("123"); len(got) != 0 {
		t.Fatalf("expected no confidences for digits, got %+v", got)
	}
}

func TestNewRejectsInvalidOptions(t *testing.T) {
	t.Parallel()

	set, err := language.NewSet(lingua.English, lingua.French)
	if err != nil {
		t.Fatalf("new set: %v", err)
	}

	if _, err := New(language.Set{}, Options{}); err == nil {
		t.Fatalf("expected error for empty set")
	}
	if _, err := New(set, Options{MinimumRelativeDistance: 0.99}); err == nil {
		t.Fatalf("expected error for out-of-range relative distance")
	}
	if _, err := New(set, Options{MinLetters: -1}); err == nil {
		t.Fatalf("expected error for negative letter count")
	}
}
