package classifier

import (
	"errors"
	"math"
	"testing"
)

func TestParseScoring(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Scoring
		wantErr bool
	}{
		{name: "shel", input: "shel", want: ScoringSHEL},
		{name: "kraken", input: "kraken", want: ScoringKraken},
		{name: "length", input: "length", want: ScoringLength},
		{name: "loglength", input: "loglength", want: ScoringLogLength},
		{name: "norma", input: "norma", want: ScoringNorma},
		{name: "generic", input: "generic", want: ScoringGeneric},
		{name: "uppercase", input: "SHEL", want: ScoringSHEL},
		{name: "padded", input: " kraken ", want: ScoringKraken},
		{name: "unknown", input: "bayesian", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseScoring(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseScoring(%q) succeeded, want error", tt.input)
				}
				if !errors.Is(err, ErrUnknownScoring) {
					t.Errorf("error = %v, want ErrUnknownScoring", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseScoring(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseScoring(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestScoring_FilterValue(t *testing.T) {
	// Only the kraken policy filters on the relative percentage; every
	// other policy filters on shel.
	if got := ScoringKraken.FilterValue(80, 55); got != 55 {
		t.Errorf("kraken FilterValue = %v, want 55", got)
	}
	for _, s := range []Scoring{ScoringSHEL, ScoringLength, ScoringLogLength, ScoringNorma} {
		if got := s.FilterValue(80, 55); got != 80 {
			t.Errorf("%v FilterValue = %v, want 80", s, got)
		}
	}
}

func TestScoring_Select(t *testing.T) {
	acc := NewAccumulator()
	acc.Add("9606", 80, 40, 100)
	acc.Add("9606", 120, 60, 300)
	acc.Add("562", 55, 100, 50)

	tests := []struct {
		name    string
		scoring Scoring
		want    map[TaxID]float64
	}{
		{
			name:    "shel means",
			scoring: ScoringSHEL,
			want:    map[TaxID]float64{"9606": 100, "562": 55},
		},
		{
			name:    "kraken means",
			scoring: ScoringKraken,
			want:    map[TaxID]float64{"9606": 50, "562": 100},
		},
		{
			name:    "length means",
			scoring: ScoringLength,
			want:    map[TaxID]float64{"9606": 200, "562": 50},
		},
		{
			name:    "log length",
			scoring: ScoringLogLength,
			want:    map[TaxID]float64{"9606": math.Log10(200), "562": math.Log10(50)},
		},
		{
			name:    "normalized",
			scoring: ScoringNorma,
			want:    map[TaxID]float64{"9606": 100.0 / 200.0 * 100, "562": 55.0 / 50.0 * 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.scoring.Select(acc)
			if err != nil {
				t.Fatalf("Select() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Select() returned %d taxa, want %d", len(got), len(tt.want))
			}
			for tid, want := range tt.want {
				if math.Abs(got[tid]-want) > 1e-9 {
					t.Errorf("score[%s] = %v, want %v", tid, got[tid], want)
				}
			}
		})
	}
}
