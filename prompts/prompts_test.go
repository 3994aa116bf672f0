package prompts

import (
	"strings"
	"testing"
)

func TestEnhanceFAQ(t *testing.T) {
	got := EnhanceFAQ("Apa itu zakat?", "Zakat ialah harta wajib dikeluarkan.")

	if !strings.HasPrefix(got, "Anda adalah ZAKIA") {
		t.Errorf("EnhanceFAQ() missing persona prefix, got %q", got[:40])
	}
	for _, want := range []string{
		"Soalan pengguna:\nApa itu zakat?",
		"Jawapan FAQ rasmi:\nZakat ialah harta wajib dikeluarkan.",
		"MESTI kekalkan semua fakta dari FAQ 100%",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("EnhanceFAQ() missing %q", want)
		}
	}
	if !strings.HasSuffix(got, "Jawapan:") {
		t.Errorf("EnhanceFAQ() should end with answer cue, got %q", got[len(got)-20:])
	}
}

func TestAnswerKnowledge(t *testing.T) {
	tests := []struct {
		name     string
		related  []string
		contains []string
		excludes []string
	}{
		{
			name:     "no_suggestions",
			related:  nil,
			contains: []string{"JANGAN reka-reka", "04-733 6633"},
			excludes: []string{"Soalan yang mungkin berkaitan"},
		},
		{
			name:     "lists_suggestions",
			related:  []string{"Apa itu zakat?", "Berapakah nisab?"},
			contains: []string{"Soalan yang mungkin berkaitan", "1. Apa itu zakat?", "2. Berapakah nisab?"},
		},
		{
			name:     "caps_at_three",
			related:  []string{"a", "b", "c", "d"},
			contains: []string{"3. c"},
			excludes: []string{"4. d"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnswerKnowledge("Soalan pelik", tt.related)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("AnswerKnowledge() missing %q", want)
				}
			}
			for _, not := range tt.excludes {
				if strings.Contains(got, not) {
					t.Errorf("AnswerKnowledge() should not contain %q", not)
				}
			}
		})
	}
}
