package lifespan

import (
	"context"
	"strings"
)

// CategoryRule maps a part-name keyword set to a month figure. Rules are
// evaluated in order and the first match wins, so narrower families must be
// listed before broader ones ("oil filter" must hit filter, not general).
type CategoryRule struct {
	Tag      string
	Months   int
	Keywords []string
}

// DefaultRules returns the built-in category table, calibrated from published
// maintenance-interval ranges for industrial equivalents. Keyword lists carry
// both English and Italian terms because the source maintenance records are
// bilingual.
func DefaultRules() []CategoryRule {
	return []CategoryRule{
		{Tag: "filter", Months: 6, Keywords: []string{
			"filter", "filtro", "air filter", "oil filter", "fuel filter",
			"hydraulic filter", "cabin filter", "element",
		}},
		{Tag: "bearing", Months: 36, Keywords: []string{
			"bearing", "cuscinetto", "ball bearing", "roller bearing",
			"thrust bearing", "pillow block",
		}},
		{Tag: "belt", Months: 18, Keywords: []string{
			"belt", "cintura", "v-belt", "serpentine", "timing belt",
			"drive belt", "fan belt",
		}},
		{Tag: "sensor", Months: 30, Keywords: []string{
			"sensor", "sensore", "temperature sensor", "pressure sensor",
			"proximity sensor", "level sensor", "flow sensor",
		}},
		{Tag: "motor", Months: 60, Keywords: []string{
			"motor", "motore", "pump", "pompa", "electric motor",
			"hydraulic pump", "gear pump",
		}},
		{Tag: "seal", Months: 24, Keywords: []string{
			"seal", "gasket", "guarnizione", "o-ring", "oil seal",
			"hydraulic seal", "shaft seal",
		}},
		{Tag: "electrical", Months: 36, Keywords: []string{
			"switch", "relay", "contactor", "fuse", "circuit breaker",
			"transformer", "capacitor",
		}},
		{Tag: "hydraulic", Months: 30, Keywords: []string{
			"hydraulic", "cylinder", "valve", "hose", "fitting",
			"accumulator",
		}},
	}
}

// Classifier matches part names against an ordered rule table. The table is
// fixed at construction and read-only thereafter.
type Classifier struct {
	rules         []CategoryRule
	defaultMonths int
}

// NewClassifier builds a classifier over the given rules. Parts matching no
// rule classify as "general" with defaultMonths.
func NewClassifier(rules []CategoryRule, defaultMonths int) *Classifier {
	if defaultMonths < 1 {
		defaultMonths = 18
	}
	return &Classifier{rules: rules, defaultMonths: defaultMonths}
}

// Classify returns the first rule whose keyword set matches the part name.
func (c *Classifier) Classify(partName string) CategoryRule {
	name := strings.ToLower(partName)
	for _, rule := range c.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(name, kw) {
				return rule
			}
		}
	}
	return CategoryRule{Tag: "general", Months: c.defaultMonths}
}

// DefaultMonths returns the general-bucket month figure.
func (c *Classifier) DefaultMonths() int {
	return c.defaultMonths
}

// CategoryStage is the cascade's terminal stage: a static classification that
// always yields a value. It keeps the cascade a total function even with no
// AI or search credentials configured.
type CategoryStage struct {
	Classifier *Classifier
}

// Source implements Stage.
func (s *CategoryStage) Source() Source { return SourceCategoryDefault }

// Estimate implements Stage. It never fails.
func (s *CategoryStage) Estimate(ctx context.Context, req Request) (int, error) {
	return s.Classifier.Classify(req.PartName).Months, nil
}

// categoryExamples holds industry-standard interval ranges quoted in the AI
// stage's prompt, keyed by category tag.
var categoryExamples = map[string]string{
	"filter": `- Air filters: 3-12 months (depending on environment)
- Oil filters: 3-6 months or per oil change
- Fuel filters: 6-12 months
- Hydraulic filters: 6-18 months
- Cabin filters: 6-12 months`,
	"bearing": `- Ball bearings: 24-60 months (industrial use)
- Roller bearings: 36-72 months
- Thrust bearings: 24-48 months
- Sealed bearings: 36-60 months
- High-speed bearings: 12-24 months`,
	"belt": `- V-belts: 12-24 months
- Serpentine belts: 18-36 months
- Timing belts: 24-48 months
- Drive belts: 12-24 months
- Heavy-duty belts: 18-30 months`,
	"sensor": `- Temperature sensors: 24-48 months
- Pressure sensors: 24-36 months
- Proximity sensors: 36-60 months
- Level sensors: 18-36 months
- Flow sensors: 24-48 months`,
	"motor": `- Electric motors: 60-120 months
- Hydraulic pumps: 36-72 months
- Gear pumps: 24-48 months
- Servo motors: 48-84 months
- Stepper motors: 36-60 months`,
	"seal": `- O-rings: 12-24 months
- Oil seals: 18-36 months
- Hydraulic seals: 12-24 months
- Gaskets: 12-36 months
- Shaft seals: 18-30 months`,
	"electrical": `- Switches: 24-48 months
- Relays: 24-60 months
- Contactors: 36-72 months
- Fuses: Check annually, replace as needed
- Circuit breakers: 60-120 months`,
	"hydraulic": `- Hydraulic cylinders: 36-72 months
- Hydraulic valves: 24-48 months
- Hydraulic hoses: 12-24 months
- Hydraulic fittings: 24-60 months
- Accumulators: 36-72 months`,
	"general": `- Mechanical components: 12-36 months
- Wear parts: 6-18 months
- Structural components: 36-120 months
- Consumables: 3-12 months
- Safety components: 12-24 months`,
}

// Examples returns the industry-standard interval ranges for a category tag.
func Examples(tag string) string {
	if ex, ok := categoryExamples[tag]; ok {
		return ex
	}
	return categoryExamples["general"]
}
