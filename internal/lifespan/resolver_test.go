package lifespan

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/partwatch/partwatch/internal/llm"
	"github.com/partwatch/partwatch/internal/websearch"
)

// stubStage is a scriptable cascade stage.
type stubStage struct {
	source Source
	months int
	err    error
	calls  int
}

func (s *stubStage) Source() Source { return s.source }

func (s *stubStage) Estimate(ctx context.Context, req Request) (int, error) {
	s.calls++
	return s.months, s.err
}

func TestResolveFirstSuccessWins(t *testing.T) {
	first := &stubStage{source: SourceAI, months: 24}
	second := &stubStage{source: SourceOnlineSearch, months: 12}

	r := NewResolver(testClassifier(), time.Second, first, second)
	est := r.Resolve(context.Background(), Request{PartName: "Oil filter"})

	if est.Months != 24 || est.Source != SourceAI {
		t.Errorf("Resolve = %+v, want 24 months from ai", est)
	}
	if second.calls != 0 {
		t.Errorf("second stage called %d times, want 0", second.calls)
	}
}

func TestResolveFallsThroughOnError(t *testing.T) {
	first := &stubStage{source: SourceAI, err: errors.New("timeout")}
	second := &stubStage{source: SourceOnlineSearch, months: 12}

	r := NewResolver(testClassifier(), time.Second, first, second)
	est := r.Resolve(context.Background(), Request{PartName: "Oil filter"})

	if est.Months != 12 || est.Source != SourceOnlineSearch {
		t.Errorf("Resolve = %+v, want 12 months from online_search", est)
	}
}

func TestResolveFallsThroughOnNonPositive(t *testing.T) {
	first := &stubStage{source: SourceAI, months: 0}

	r := NewResolver(testClassifier(), time.Second, first)
	est := r.Resolve(context.Background(), Request{PartName: "Fuel filter"})

	if est.Source != SourceCategoryDefault {
		t.Errorf("source = %s, want category_default", est.Source)
	}
	if est.Months != 6 {
		t.Errorf("months = %d, want 6 for a filter", est.Months)
	}
}

// The cascade is a total function: with no network stages configured at all
// it still produces a value from the category table.
func TestResolveTotalWithoutNetworkStages(t *testing.T) {
	r := NewResolver(testClassifier(), 0)

	for _, name := range []string{"Fuel filter", "Wheel bearing", "Mystery widget", ""} {
		est := r.Resolve(context.Background(), Request{PartName: name})
		if est.Months < 1 {
			t.Errorf("Resolve(%q).Months = %d, want >= 1", name, est.Months)
		}
		if est.Source != SourceCategoryDefault {
			t.Errorf("Resolve(%q).Source = %s, want category_default", name, est.Source)
		}
	}
}

func TestAIStageParsesLooseResponses(t *testing.T) {
	mock := &llm.MockClient{Response: &llm.Response{Content: "about 24 months", Provider: "mock"}}
	stage := &AIStage{Client: mock, Classifier: testClassifier()}

	months, err := stage.Estimate(context.Background(), Request{
		PartName:    "Wheel Bearing Kit - SKF VKBA 3539",
		MachineName: "Caterpillar C9.3 Engine",
	})
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	if months != 24 {
		t.Errorf("months = %d, want 24", months)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 LLM call, got %d", len(mock.Calls))
	}
	prompt := mock.Calls[0]
	for _, want := range []string{"Wheel Bearing Kit", "Caterpillar C9.3 Engine", "Part Category: bearing", "Ball bearings"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestAIStageFailsOnGarbage(t *testing.T) {
	mock := &llm.MockClient{Response: &llm.Response{Content: "I cannot say.", Provider: "mock"}}
	stage := &AIStage{Client: mock, Classifier: testClassifier()}

	if _, err := stage.Estimate(context.Background(), Request{PartName: "Oil filter"}); err == nil {
		t.Error("expected error for non-numeric response")
	}
}

func TestOnlineStageAssemblesQueryAndEvidence(t *testing.T) {
	search := &websearch.MockClient{Results: []websearch.Result{
		{Title: "Mahle OC 195 service interval", Snippet: "Replace every 12 months", Link: "https://example.com/oc195"},
	}}
	mock := &llm.MockClient{Response: &llm.Response{Content: "12", Provider: "mock"}}
	stage := &OnlineStage{Search: search, LLM: mock}

	months, err := stage.Estimate(context.Background(), Request{
		PartName:     "Oil Filter - Mahle OC 195",
		MachineName:  "Grundfos CR Pump Unit",
		Manufacturer: "Mahle",
	})
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	if months != 12 {
		t.Errorf("months = %d, want 12", months)
	}

	if len(search.Queries) != 1 {
		t.Fatalf("expected 1 search, got %d", len(search.Queries))
	}
	query := search.Queries[0]
	for _, want := range []string{"Oil Filter - Mahle OC 195", "lifespan maintenance replacement schedule", "Mahle", "Grundfos CR Pump Unit"} {
		if !strings.Contains(query, want) {
			t.Errorf("query %q missing %q", query, want)
		}
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 LLM call, got %d", len(mock.Calls))
	}
	if !strings.Contains(mock.Calls[0], "Replace every 12 months") {
		t.Error("analysis prompt missing search snippet evidence")
	}
}

func TestOnlineStageUnknownIsFailure(t *testing.T) {
	search := &websearch.MockClient{Results: []websearch.Result{{Title: "forum thread"}}}
	mock := &llm.MockClient{Response: &llm.Response{Content: "UNKNOWN", Provider: "mock"}}

	r := NewResolver(testClassifier(), time.Second, &OnlineStage{Search: search, LLM: mock})
	est := r.Resolve(context.Background(), Request{PartName: "Fuel filter"})

	if est.Source != SourceCategoryDefault || est.Months != 6 {
		t.Errorf("Resolve = %+v, want category fallback 6 months", est)
	}
}

func TestOnlineStageNoResultsIsFailure(t *testing.T) {
	search := &websearch.MockClient{}
	mock := &llm.MockClient{Response: &llm.Response{Content: "12", Provider: "mock"}}
	stage := &OnlineStage{Search: search, LLM: mock}

	if _, err := stage.Estimate(context.Background(), Request{PartName: "Oil filter"}); err == nil {
		t.Error("expected error for empty search results")
	}
	if len(mock.Calls) != 0 {
		t.Errorf("LLM called %d times with no evidence, want 0", len(mock.Calls))
	}
}
