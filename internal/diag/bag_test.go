package diag

import "testing"

func TestBag_Cap(t *testing.T) {
	bag := NewBag(2)
	for i := 1; i <= 5; i++ {
		bag.Add(Diagnostic{Severity: SevWarning, Code: ScanBadFieldCount, Line: i})
	}
	if got := bag.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
	if got := bag.Dropped(); got != 3 {
		t.Errorf("Dropped() = %d, want 3", got)
	}
	if got := bag.Total(); got != 5 {
		t.Errorf("Total() = %d, want 5", got)
	}
}

func TestBag_Severities(t *testing.T) {
	tests := []struct {
		name         string
		severities   []Severity
		wantErrors   bool
		wantWarnings bool
	}{
		{
			name:       "empty bag",
			severities: nil,
		},
		{
			name:         "only warnings",
			severities:   []Severity{SevWarning, SevWarning},
			wantWarnings: true,
		},
		{
			name:       "only info",
			severities: []Severity{SevInfo},
		},
		{
			name:         "error among warnings",
			severities:   []Severity{SevWarning, SevError},
			wantErrors:   true,
			wantWarnings: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bag := NewBag(10)
			for _, sev := range tt.severities {
				bag.Add(Diagnostic{Severity: sev})
			}
			if got := bag.HasErrors(); got != tt.wantErrors {
				t.Errorf("HasErrors() = %v, want %v", got, tt.wantErrors)
			}
			if got := bag.HasWarnings(); got != tt.wantWarnings {
				t.Errorf("HasWarnings() = %v, want %v", got, tt.wantWarnings)
			}
		})
	}
}

func TestBag_Sort(t *testing.T) {
	bag := NewBag(10)
	bag.Add(Diagnostic{Severity: SevWarning, Code: ScanBadMapping, Line: 7})
	bag.Add(Diagnostic{Severity: SevWarning, Code: ScanBadFieldCount, Line: 2})
	bag.Add(Diagnostic{Severity: SevError, Code: ScanBadLength, Line: 7})
	bag.Sort()

	items := bag.Items()
	if items[0].Line != 2 {
		t.Errorf("first diagnostic on line %d, want 2", items[0].Line)
	}
	// Same line: higher severity first.
	if items[1].Severity != SevError {
		t.Errorf("second diagnostic severity = %v, want %v", items[1].Severity, SevError)
	}
}

func TestBag_Merge(t *testing.T) {
	a := NewBag(1)
	a.Add(Diagnostic{Line: 1})
	b := NewBag(2)
	b.Add(Diagnostic{Line: 2})
	b.Add(Diagnostic{Line: 3})

	a.Merge(b)
	if got := a.Len(); got != 3 {
		t.Errorf("Len() after merge = %d, want 3", got)
	}
}
