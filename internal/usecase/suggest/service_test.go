package suggest

import (
	"reflect"
	"testing"
)

func testCatalog() []string {
	return []string{
		"What is blockchain technology?",
		"How does artificial intelligence work?",
		"What is machine learning?",
		"How does cloud computing work?",
		"What is cybersecurity?",
		"How does the internet of things work?",
		"What is data science?",
		"How does quantum computing work?",
		"What is supervised learning?",
	}
}

func TestSuggest_TooShortReturnsEmpty(t *testing.T) {
	svc := New(testCatalog())

	for _, q := range []string{"", "a", "?"} {
		got := svc.Suggest(q)
		if len(got) != 0 {
			t.Errorf("Suggest(%q): expected no suggestions, got %v", q, got)
		}
	}
}

func TestSuggest_CatalogOrderPreserved(t *testing.T) {
	svc := New(testCatalog())

	got := svc.Suggest("what is")
	want := []string{
		"What is blockchain technology?",
		"What is machine learning?",
		"What is cybersecurity?",
		"What is data science?",
		"What is supervised learning?",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Suggest(\"what is\") = %v, want %v", got, want)
	}
}

func TestSuggest_CaseInsensitive(t *testing.T) {
	svc := New(testCatalog())

	lower := svc.Suggest("machine")
	upper := svc.Suggest("MACHINE")
	if !reflect.DeepEqual(lower, upper) {
		t.Errorf("case sensitivity leaked: %v vs %v", lower, upper)
	}
	if len(lower) != 1 || lower[0] != "What is machine learning?" {
		t.Errorf("unexpected matches: %v", lower)
	}
}

func TestSuggest_CappedAtSix(t *testing.T) {
	svc := New(testCatalog())

	// "in" appears in seven catalog entries; only the first six survive.
	got := svc.Suggest("in")
	want := []string{
		"What is blockchain technology?",
		"How does artificial intelligence work?",
		"What is machine learning?",
		"How does cloud computing work?",
		"How does the internet of things work?",
		"How does quantum computing work?",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Suggest(\"in\") = %v, want %v", got, want)
	}
}

func TestSuggest_FallbackTemplates(t *testing.T) {
	svc := New(testCatalog())

	got := svc.Suggest("Xenotransplantation")
	want := []string{
		"What is Xenotransplantation?",
		"How does Xenotransplantation work?",
		"Explain Xenotransplantation",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("fallback = %v, want %v", got, want)
	}
}

func TestSuggest_FallbackKeepsOriginalCasing(t *testing.T) {
	svc := New(nil)

	got := svc.Suggest("GoLang")
	if len(got) != 3 {
		t.Fatalf("expected 3 fallback suggestions, got %d", len(got))
	}
	if got[0] != "What is GoLang?" {
		t.Errorf("expected literal input in template, got %q", got[0])
	}
}

func TestSuggest_EmptyCatalog(t *testing.T) {
	svc := New(nil)

	if got := svc.Suggest("a"); len(got) != 0 {
		t.Errorf("short partial with empty catalog: expected nothing, got %v", got)
	}
	if got := svc.Suggest("ai"); len(got) != 3 {
		t.Errorf("expected templated fallback, got %v", got)
	}
}

func TestSuggest_Deterministic(t *testing.T) {
	svc := New(testCatalog())

	for _, q := range []string{"what", "ai", "zzz", "學習"} {
		first := svc.Suggest(q)
		second := svc.Suggest(q)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Suggest(%q): repeated calls diverged", q)
		}
	}
}
