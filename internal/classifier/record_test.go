package classifier

import "testing"

func TestParseLength(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		want    int
		wantErr bool
	}{
		{name: "single segment", field: "100", want: 100},
		{name: "paired segments", field: "50|50", want: 100},
		{name: "uneven pair", field: "151|149", want: 300},
		{name: "zero", field: "0", want: 0},
		{name: "non-numeric", field: "abc", wantErr: true},
		{name: "bad segment", field: "50|x", wantErr: true},
		{name: "negative segment", field: "-5", wantErr: true},
		{name: "empty", field: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseLength(tt.field)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseLength(%q) error = %v, wantErr %v", tt.field, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseLength(%q) = %d, want %d", tt.field, got, tt.want)
			}
		})
	}
}

func TestParseMappings(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		want    []Mapping
		wantErr bool
	}{
		{
			name:  "single mapping",
			field: "9606:45",
			want:  []Mapping{{Taxon: "9606", Kmers: 45}},
		},
		{
			name:  "multiple with separator token",
			field: "9606:30 |:| 0:12 9606:8",
			want: []Mapping{
				{Taxon: "9606", Kmers: 30},
				{Taxon: "0", Kmers: 12},
				{Taxon: "9606", Kmers: 8},
			},
		},
		{
			name:  "empty list",
			field: "",
			want:  []Mapping{},
		},
		{name: "missing count", field: "9606", wantErr: true},
		{name: "non-numeric count", field: "9606:x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseMappings(tt.field)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseMappings(%q) error = %v, wantErr %v", tt.field, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("parseMappings(%q) returned %d mappings, want %d", tt.field, len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("mapping %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRecord_Metrics(t *testing.T) {
	tests := []struct {
		name     string
		record   Record
		wantShel float64
		wantRel  float64
		wantErr  bool
	}{
		{
			name: "all hits on own taxon",
			record: Record{
				Taxon:    "9606",
				Mappings: []Mapping{{Taxon: "9606", Kmers: 45}},
			},
			wantShel: 45 + KmerSize,
			wantRel:  100,
		},
		{
			name: "half the hits on own taxon",
			record: Record{
				Taxon: "9606",
				Mappings: []Mapping{
					{Taxon: "9606", Kmers: 25},
					{Taxon: "0", Kmers: 25},
				},
			},
			wantShel: 25 + KmerSize,
			wantRel:  50,
		},
		{
			name: "repeated own taxon summed",
			record: Record{
				Taxon: "9606",
				Mappings: []Mapping{
					{Taxon: "9606", Kmers: 10},
					{Taxon: "562", Kmers: 20},
					{Taxon: "9606", Kmers: 10},
				},
			},
			wantShel: 20 + KmerSize,
			wantRel:  50,
		},
		{
			name: "no hits on own taxon",
			record: Record{
				Taxon:    "9606",
				Mappings: []Mapping{{Taxon: "562", Kmers: 40}},
			},
			wantShel: KmerSize,
			wantRel:  0,
		},
		{
			name: "zero total k-mers",
			record: Record{
				Taxon:    "9606",
				Mappings: []Mapping{{Taxon: "9606", Kmers: 0}},
			},
			wantErr: true,
		},
		{
			name:    "no mappings at all",
			record:  Record{Taxon: "9606"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shel, rel, err := tt.record.Metrics()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Metrics() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if shel != tt.wantShel {
				t.Errorf("shel = %v, want %v", shel, tt.wantShel)
			}
			if rel != tt.wantRel {
				t.Errorf("relative = %v, want %v", rel, tt.wantRel)
			}
			if rel < 0 || rel > 100 {
				t.Errorf("relative = %v outside [0,100]", rel)
			}
		})
	}
}
