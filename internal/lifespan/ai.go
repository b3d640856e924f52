package lifespan

import (
	"context"
	"fmt"

	"github.com/partwatch/partwatch/internal/llm"
)

// AIStage asks a language model for the maintenance interval directly. The
// prompt is anchored on the part's classified category and that category's
// published interval ranges; the system instruction constrains the model to
// a bare integer.
type AIStage struct {
	Client     llm.Client
	Classifier *Classifier
}

// Source implements Stage.
func (s *AIStage) Source() Source { return SourceAI }

// Estimate implements Stage.
func (s *AIStage) Estimate(ctx context.Context, req Request) (int, error) {
	rule := s.Classifier.Classify(req.PartName)
	prompt := llm.LifespanPrompt(req.PartName, req.MachineName, req.Manufacturer,
		req.PartNumber, rule.Tag, Examples(rule.Tag))

	resp, err := s.Client.Complete(ctx, llm.LifespanSystemPrompt, prompt)
	if err != nil {
		return 0, fmt.Errorf("ai estimate: %w", err)
	}
	return ParseMonths(resp.Content)
}
