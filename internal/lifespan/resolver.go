// Package lifespan resolves a maintenance interval in months for a part
// through an ordered cascade of estimators: AI reasoning, web-search-grounded
// reasoning, then a static category table. The cascade is total: it always
// produces a value.
package lifespan

import (
	"context"
	"log"
	"time"
)

// Source identifies which cascade stage produced an estimate.
type Source string

const (
	SourceAI              Source = "ai"
	SourceOnlineSearch    Source = "online_search"
	SourceCategoryDefault Source = "category_default"
)

// Request carries the part metadata fed to the estimators.
type Request struct {
	PartName     string
	MachineName  string
	Manufacturer string
	PartNumber   string
}

// Estimate is a resolved lifespan figure.
type Estimate struct {
	Months int    `json:"months"`
	Source Source `json:"source"`
}

// Stage is one estimator in the cascade. A non-nil error or a months value
// below 1 means the stage failed and the resolver moves on; errors never
// propagate to the resolver's caller.
type Stage interface {
	Source() Source
	Estimate(ctx context.Context, req Request) (int, error)
}

// Resolver runs the cascade. The stage list and classifier are fixed at
// construction and read-only thereafter, so a Resolver is safe for
// concurrent use.
type Resolver struct {
	stages       []Stage
	classifier   *Classifier
	stageTimeout time.Duration
}

// NewResolver builds a resolver from the optional network stages plus the
// guaranteed category stage, which is always appended last. stageTimeout
// bounds each individual stage attempt; zero means no bound beyond the
// underlying client's.
func NewResolver(classifier *Classifier, stageTimeout time.Duration, stages ...Stage) *Resolver {
	all := make([]Stage, 0, len(stages)+1)
	all = append(all, stages...)
	all = append(all, &CategoryStage{Classifier: classifier})
	return &Resolver{
		stages:       all,
		classifier:   classifier,
		stageTimeout: stageTimeout,
	}
}

// Resolve walks the cascade and returns the first successful estimate. The
// trust ordering is: live expert-style reasoning, then evidence-grounded
// reasoning, then static domain knowledge.
func (r *Resolver) Resolve(ctx context.Context, req Request) Estimate {
	for _, stage := range r.stages {
		months, err := r.attempt(ctx, stage, req)
		if err != nil {
			log.Printf("lifespan: %s stage failed for %q: %v", stage.Source(), req.PartName, err)
			continue
		}
		if months < 1 {
			log.Printf("lifespan: %s stage returned %d for %q, falling through", stage.Source(), months, req.PartName)
			continue
		}
		return Estimate{Months: months, Source: stage.Source()}
	}

	// Unreachable: the category stage is total. Kept so the function still
	// honors its contract if the stage list is ever misassembled.
	return Estimate{Months: r.classifier.DefaultMonths(), Source: SourceCategoryDefault}
}

func (r *Resolver) attempt(ctx context.Context, stage Stage, req Request) (int, error) {
	if r.stageTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.stageTimeout)
		defer cancel()
	}
	return stage.Estimate(ctx, req)
}
