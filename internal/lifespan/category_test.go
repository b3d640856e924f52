package lifespan

import (
	"context"
	"testing"
)

func testClassifier() *Classifier {
	return NewClassifier(DefaultRules(), 18)
}

func TestClassifyPriorityOrder(t *testing.T) {
	c := testClassifier()

	tests := []struct {
		partName   string
		wantTag    string
		wantMonths int
	}{
		{"Fuel filter", "filter", 6},
		{"Engine Air Filter - Mann C30195", "filter", 6},
		// Matches both filter and hydraulic keywords; filter is checked first.
		{"Hydraulic filter element", "filter", 6},
		{"Wheel Bearing Kit - SKF VKBA 3539", "bearing", 36},
		{"Serpentine Belt - Gates K060975", "belt", 18},
		{"Coolant Temperature Sensor - Bosch 0280130093", "sensor", 30},
		{"Hydraulic Pump Motor", "motor", 60},
		{"Shaft seal", "seal", 24},
		{"Main contactor", "electrical", 36},
		{"Hydraulic hose assembly", "hydraulic", 30},
		{"Mystery widget", "general", 18},
	}

	for _, tt := range tests {
		rule := c.Classify(tt.partName)
		if rule.Tag != tt.wantTag {
			t.Errorf("Classify(%q).Tag = %q, want %q", tt.partName, rule.Tag, tt.wantTag)
		}
		if rule.Months != tt.wantMonths {
			t.Errorf("Classify(%q).Months = %d, want %d", tt.partName, rule.Months, tt.wantMonths)
		}
	}
}

func TestClassifyItalianKeywords(t *testing.T) {
	c := testClassifier()

	tests := map[string]string{
		"Filtro olio":        "filter",
		"Cuscinetto a sfere": "bearing",
		"Sensore pressione":  "sensor",
		"Pompa idraulica":    "motor",
		"Guarnizione albero": "seal",
	}
	for name, wantTag := range tests {
		if got := c.Classify(name).Tag; got != wantTag {
			t.Errorf("Classify(%q).Tag = %q, want %q", name, got, wantTag)
		}
	}
}

func TestClassifierDefaultMonthsFloor(t *testing.T) {
	c := NewClassifier(nil, 0)
	if c.DefaultMonths() != 18 {
		t.Errorf("DefaultMonths() = %d, want 18", c.DefaultMonths())
	}
}

func TestCategoryStageIsTotal(t *testing.T) {
	stage := &CategoryStage{Classifier: testClassifier()}

	for _, name := range []string{"Oil filter", "something unrecognizable", ""} {
		months, err := stage.Estimate(context.Background(), Request{PartName: name})
		if err != nil {
			t.Fatalf("Estimate(%q): %v", name, err)
		}
		if months < 1 {
			t.Errorf("Estimate(%q) = %d, want >= 1", name, months)
		}
	}
}

func TestExamplesFallsBackToGeneral(t *testing.T) {
	if Examples("filter") == Examples("no-such-tag") {
		t.Error("filter examples should differ from the general fallback")
	}
	if Examples("no-such-tag") != Examples("general") {
		t.Error("unrecognized tag should return the general examples")
	}
}
