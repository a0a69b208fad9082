package signal

import (
	"testing"
)

func TestFloat(t *testing.T) {
	sig := Signal{
		"risk":       0.4,
		"count":      3,
		"wide":       int64(7),
		"narrow":     float32(0.25),
		"not_number": "high",
		"empty":      nil,
	}

	tests := []struct {
		name string
		key  string
		def  float64
		want float64
	}{
		{"float64", "risk", 0, 0.4},
		{"int", "count", 0, 3},
		{"int64", "wide", 0, 7},
		{"float32", "narrow", 0, 0.25},
		{"absent-uses-default", "missing", 0.9, 0.9},
		{"non-numeric-uses-default", "not_number", 0.2, 0.2},
		{"nil-uses-default", "empty", 0.1, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sig.Float(tt.key, tt.def); got != tt.want {
				t.Errorf("Float(%q): got %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	sig := Signal{"decision": "NO", "risk": 0.5}

	if v, ok := sig.String("decision"); !ok || v != "NO" {
		t.Errorf("String(decision): got %q ok=%v", v, ok)
	}
	if _, ok := sig.String("risk"); ok {
		t.Error("String(risk): expected ok=false for non-string field")
	}
	if _, ok := sig.String("missing"); ok {
		t.Error("String(missing): expected ok=false for absent field")
	}
}

func TestClone(t *testing.T) {
	sig := Signal{"risk": 0.2}
	dup := sig.Clone()
	dup["risk"] = 0.9
	dup["added"] = true

	if sig.Float("risk", 0) != 0.2 {
		t.Error("mutating clone changed the original")
	}
	if _, ok := sig["added"]; ok {
		t.Error("adding to clone changed the original")
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.6, 0.6},
		{1, 1},
		{1.7, 1},
	}
	for _, tt := range tests {
		if got := Clamp01(tt.in); got != tt.want {
			t.Errorf("Clamp01(%v): got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHasTag(t *testing.T) {
	r := Result{Tags: []string{"STABLE", "NORMAL"}}
	if !r.HasTag("STABLE") {
		t.Error("expected STABLE tag present")
	}
	if r.HasTag("ALT") {
		t.Error("did not expect ALT tag")
	}
}
