package search

import (
	"reflect"
	"strings"
	"testing"

	"github.com/safequery/safequery/internal/domain"
)

func testCorpus() []domain.Document {
	return []domain.Document{
		{
			Title:   "Blockchain Technology",
			Content: "A blockchain is a decentralized, distributed ledger secured using cryptography.",
			URL:     "https://example.com/blockchain",
		},
		{
			Title:   "Artificial Intelligence",
			Content: "Artificial intelligence simulates human thought processes in computer systems.",
			URL:     "https://example.com/ai",
		},
		{
			Title:   "Machine Learning",
			Content: "Machine learning is a subset of artificial intelligence built on training data.",
			URL:     "https://example.com/ml",
		},
		{
			Title:   "Cloud Computing",
			Content: "Cloud computing is the on-demand availability of computing resources.",
			URL:     "https://example.com/cloud",
		},
		{
			Title:   "Cybersecurity",
			Content: "Cybersecurity protects systems and networks from digital attacks.",
			URL:     "https://example.com/security",
		},
		{
			Title:   "Data Science",
			Content: "Data science extracts knowledge and insights from structured data.",
			URL:     "https://example.com/data",
		},
	}
}

func TestRank_BlockchainIsTopHit(t *testing.T) {
	svc := New(testCorpus())

	res := svc.Rank("blockchain")
	if len(res.Documents) == 0 {
		t.Fatal("expected at least one result")
	}
	if got := res.Documents[0].Title; got != "Blockchain Technology" {
		t.Errorf("expected Blockchain Technology first, got %q", got)
	}
	// 10 (title phrase) + 5 (content phrase) + 3 (title word) + 1 (content word)
	if got := res.Documents[0].SearchScore; got != 19 {
		t.Errorf("expected score 19, got %d", got)
	}
	if !strings.HasPrefix(res.Answer, "Based on the available information: ") {
		t.Errorf("unexpected answer prefix: %q", res.Answer)
	}
	if !strings.HasSuffix(res.Answer, "...") {
		t.Errorf("expected trailing ellipsis, got %q", res.Answer)
	}
}

func TestRank_EmptyQueryRanksWholeCorpusInOrder(t *testing.T) {
	corpus := testCorpus()
	svc := New(corpus)

	res := svc.Rank("")
	if len(res.Documents) != 5 {
		t.Fatalf("expected 5 results (corpus capped), got %d", len(res.Documents))
	}
	for i, d := range res.Documents {
		// Empty query is a substring of every title and content.
		if d.SearchScore < 15 {
			t.Errorf("result %d: expected score >= 15, got %d", i, d.SearchScore)
		}
		if d.Title != corpus[i].Title {
			t.Errorf("result %d: expected corpus order (%q), got %q", i, corpus[i].Title, d.Title)
		}
	}
}

func TestRank_ResultsSortedNonIncreasing(t *testing.T) {
	svc := New(testCorpus())

	for _, q := range []string{"", "artificial intelligence", "data", "computing systems"} {
		res := svc.Rank(q)
		if len(res.Documents) > 5 {
			t.Errorf("query %q: expected at most 5 results, got %d", q, len(res.Documents))
		}
		for i := 1; i < len(res.Documents); i++ {
			if res.Documents[i].SearchScore > res.Documents[i-1].SearchScore {
				t.Errorf("query %q: results not sorted at index %d", q, i)
			}
		}
		for i, d := range res.Documents {
			if d.SearchScore <= 0 {
				t.Errorf("query %q: result %d has non-positive score %d", q, i, d.SearchScore)
			}
		}
	}
}

func TestRank_NoMatch(t *testing.T) {
	svc := New(testCorpus())

	res := svc.Rank("zzzznonsense")
	if len(res.Documents) != 0 {
		t.Fatalf("expected no results, got %d", len(res.Documents))
	}
	if res.Answer != "No relevant information found for your query." {
		t.Errorf("unexpected answer: %q", res.Answer)
	}
}

func TestRank_WordBonusesAccumulate(t *testing.T) {
	svc := New(testCorpus())

	res := svc.Rank("machine learning")
	if len(res.Documents) == 0 {
		t.Fatal("expected results")
	}
	if got := res.Documents[0].Title; got != "Machine Learning" {
		t.Errorf("expected Machine Learning first, got %q", got)
	}
	// 10 + 5 phrase bonuses, plus 3+1 for "machine" and 3+1 for "learning".
	if got := res.Documents[0].SearchScore; got != 23 {
		t.Errorf("expected score 23, got %d", got)
	}
}

func TestRank_ShortTokensIgnored(t *testing.T) {
	svc := New(testCorpus())

	// Every token is <= 2 runes, so only the whole-phrase checks apply,
	// and the phrase matches nothing.
	res := svc.Rank("ai is of")
	if len(res.Documents) != 0 {
		t.Fatalf("expected no results, got %d", len(res.Documents))
	}
}

func TestRank_TiesKeepCorpusOrder(t *testing.T) {
	corpus := []domain.Document{
		{Title: "Alpha One", Content: "alpha in every sense"},
		{Title: "Alpha Two", Content: "alpha again here"},
		{Title: "Alpha Three", Content: "alpha once more"},
	}
	svc := New(corpus)

	res := svc.Rank("alpha")
	if len(res.Documents) != 3 {
		t.Fatalf("expected 3 results, got %d", len(res.Documents))
	}
	for i, d := range res.Documents {
		if d.Title != corpus[i].Title {
			t.Errorf("result %d: expected %q, got %q", i, corpus[i].Title, d.Title)
		}
		if d.SearchScore != res.Documents[0].SearchScore {
			t.Errorf("result %d: expected a tie, got %d vs %d", i, d.SearchScore, res.Documents[0].SearchScore)
		}
	}
}

func TestRank_AnswerSnippetTruncatedAt200(t *testing.T) {
	long := strings.Repeat("x", 300)
	svc := New([]domain.Document{{Title: "Long Document", Content: long}})

	res := svc.Rank("long")
	want := "Based on the available information: " + strings.Repeat("x", 200) + "..."
	if res.Answer != want {
		t.Errorf("unexpected answer: got %d chars, want %d", len(res.Answer), len(want))
	}
}

func TestRank_EmptyCorpus(t *testing.T) {
	svc := New(nil)

	res := svc.Rank("anything")
	if len(res.Documents) != 0 {
		t.Fatalf("expected no results, got %d", len(res.Documents))
	}
	if res.Answer != "No relevant information found for your query." {
		t.Errorf("unexpected answer: %q", res.Answer)
	}
}

func TestRank_Deterministic(t *testing.T) {
	svc := New(testCorpus())

	for _, q := range []string{"", "blockchain", "machine learning", "zzzz", "🤖 !!!"} {
		first := svc.Rank(q)
		second := svc.Rank(q)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("query %q: repeated calls diverged", q)
		}
	}
}

func TestRank_PathologicalInputDoesNotPanic(t *testing.T) {
	svc := New(testCorpus())

	inputs := []string{
		strings.Repeat("blockchain ", 10000),
		"!!!???...///",
		"日本語のクエリ",
		"\x00\x01\x02",
	}
	for _, q := range inputs {
		_ = svc.Rank(q)
	}
}
