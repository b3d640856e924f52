package lifespan

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/partwatch/partwatch/internal/llm"
	"github.com/partwatch/partwatch/internal/websearch"
)

// OnlineStage searches the web for maintenance guidance and hands the result
// titles and snippets to the model as evidence. The model may answer UNKNOWN
// here, which fails the stage.
type OnlineStage struct {
	Search websearch.Client
	LLM    llm.Client
}

// Source implements Stage.
func (s *OnlineStage) Source() Source { return SourceOnlineSearch }

// Estimate implements Stage.
func (s *OnlineStage) Estimate(ctx context.Context, req Request) (int, error) {
	query := buildQuery(req)

	results, err := s.Search.Search(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("web search: %w", err)
	}
	if len(results) == 0 {
		return 0, fmt.Errorf("no search results for %q", query)
	}

	evidence, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("marshal results: %w", err)
	}

	prompt := llm.SearchAnalysisPrompt(req.PartName, req.MachineName, req.Manufacturer, string(evidence))
	resp, err := s.LLM.Complete(ctx, llm.SearchAnalysisSystemPrompt, prompt)
	if err != nil {
		return 0, fmt.Errorf("analyze search results: %w", err)
	}
	return ParseMonths(resp.Content)
}

func buildQuery(req Request) string {
	terms := []string{req.PartName, "lifespan maintenance replacement schedule"}
	if req.Manufacturer != "" {
		terms = append(terms, req.Manufacturer)
	}
	if req.MachineName != "" {
		terms = append(terms, req.MachineName)
	}
	return strings.Join(terms, " ")
}
