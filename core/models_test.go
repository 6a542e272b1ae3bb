package core

import (
	"strings"
	"testing"
)

func TestRenderDocument(t *testing.T) {
	p := &Profile{
		Id:          "a1b2c3",
		FounderName: "Dana Osei",
		Role:        RoleFounder,
		Company:     "Osei Labs",
		Location:    "Berlin, Germany",
		Idea:        "An e-commerce analytics platform.",
		About:       "Two-time founder.",
		Keywords:    "e-commerce, AI",
		Stage:       StageSeed,
	}

	doc := RenderDocument(p)

	if doc.Id != p.Id {
		t.Errorf("RenderDocument() id = %q, want %q", doc.Id, p.Id)
	}
	if doc.Location != p.Location {
		t.Errorf("RenderDocument() location = %q, want %q", doc.Location, p.Location)
	}
	if doc.Stage != p.Stage {
		t.Errorf("RenderDocument() stage = %q, want %q", doc.Stage, p.Stage)
	}

	for _, want := range []string{
		"Founder: Dana Osei.",
		"Role: Founder.",
		"Company: Osei Labs.",
		"Location: Berlin, Germany.",
		"Keywords: e-commerce, AI.",
		"Stage: seed.",
	} {
		if !strings.Contains(doc.Text, want) {
			t.Errorf("RenderDocument() text missing %q:\n%s", want, doc.Text)
		}
	}

	if len(doc.Vector) != 0 {
		t.Errorf("RenderDocument() should not populate the vector")
	}
}

func TestFilter_Matches(t *testing.T) {
	tests := []struct {
		name     string
		filter   Filter
		location string
		stage    Stage
		want     bool
	}{
		{
			name:     "empty filter matches everything",
			filter:   Filter{},
			location: "Paris, France",
			stage:    StageGrowth,
			want:     true,
		},
		{
			name:     "location match",
			filter:   Filter{Location: "Paris, France"},
			location: "Paris, France",
			stage:    StageNone,
			want:     true,
		},
		{
			name:     "location mismatch",
			filter:   Filter{Location: "Paris, France"},
			location: "London, UK",
			stage:    StageNone,
			want:     false,
		},
		{
			name:     "stage match",
			filter:   Filter{Stage: StageSeed},
			location: "London, UK",
			stage:    StageSeed,
			want:     true,
		},
		{
			name:     "stage mismatch",
			filter:   Filter{Stage: StageSeed},
			location: "London, UK",
			stage:    StageSeriesA,
			want:     false,
		},
		{
			name:     "both set, one violated",
			filter:   Filter{Location: "London, UK", Stage: StageSeed},
			location: "London, UK",
			stage:    StageGrowth,
			want:     false,
		},
		{
			name:     "both set, both satisfied",
			filter:   Filter{Location: "London, UK", Stage: StageSeed},
			location: "London, UK",
			stage:    StageSeed,
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Matches(tt.location, tt.stage); got != tt.want {
				t.Errorf("Matches(%q, %q) = %v, want %v", tt.location, tt.stage, got, tt.want)
			}
		})
	}
}

func TestFilter_Empty(t *testing.T) {
	if !(Filter{}).Empty() {
		t.Error("zero Filter should be empty")
	}
	if (Filter{Stage: StageSeed}).Empty() {
		t.Error("Filter with a stage should not be empty")
	}
	if (Filter{Location: "London, UK"}).Empty() {
		t.Error("Filter with a location should not be empty")
	}
}

func TestFingerprintProfiles(t *testing.T) {
	a := &Profile{Id: "a", FounderName: "A", Company: "Acme", Location: "London, UK", Stage: StageSeed}
	b := &Profile{Id: "b", FounderName: "B", Company: "Bolt", Location: "Paris, France", Stage: StageNone}

	fp1 := FingerprintProfiles([]*Profile{a, b})
	fp2 := FingerprintProfiles([]*Profile{b, a})

	if fp1 != fp2 {
		t.Errorf("fingerprint should be order-independent: %s vs %s", fp1, fp2)
	}

	changed := *b
	changed.Stage = StageGrowth
	fp3 := FingerprintProfiles([]*Profile{a, &changed})
	if fp3 == fp1 {
		t.Error("fingerprint should change when a profile changes")
	}
}
