package curriculum

import (
	"strings"
	"testing"
)

func floatPtr(f float64) *float64 { return &f }

func TestCheckDay(t *testing.T) {
	tests := []struct {
		name    string
		df      dayFile
		wantMsg string // substring of one expected problem; empty means clean
	}{
		{
			name: "clean mcq",
			df: dayFile{Title: "T", Questions: []questionFile{
				{Type: "mcq", Question: "q", Options: []string{"a", "b"}, Answer: float64(1)},
			}},
		},
		{
			name: "clean numeric",
			df: dayFile{Title: "T", Questions: []questionFile{
				{Type: "numeric", Question: "q", Answer: float64(3.5), Tolerance: floatPtr(0.1)},
			}},
		},
		{
			name: "clean repeat",
			df: dayFile{Title: "T", Questions: []questionFile{
				{Type: "repeat", Question: "q", AnswerText: "the answer"},
			}},
		},
		{
			name: "duplicate prompt",
			df: dayFile{Title: "T", Questions: []questionFile{
				{Type: "repeat", Question: "same", AnswerText: "a"},
				{Type: "repeat", Question: "same", AnswerText: "b"},
			}},
			wantMsg: "duplicate",
		},
		{
			name: "mcq single option",
			df: dayFile{Title: "T", Questions: []questionFile{
				{Type: "mcq", Question: "q", Options: []string{"only"}, Answer: float64(0)},
			}},
			wantMsg: "options",
		},
		{
			name: "mcq answer out of range",
			df: dayFile{Title: "T", Questions: []questionFile{
				{Type: "mcq", Question: "q", Options: []string{"a", "b"}, Answer: float64(5)},
			}},
			wantMsg: "answer",
		},
		{
			name: "mcq fractional answer",
			df: dayFile{Title: "T", Questions: []questionFile{
				{Type: "mcq", Question: "q", Options: []string{"a", "b"}, Answer: float64(0.5)},
			}},
			wantMsg: "answer",
		},
		{
			name: "numeric answer not a number",
			df: dayFile{Title: "T", Questions: []questionFile{
				{Type: "numeric", Question: "q", Answer: "four"},
			}},
			wantMsg: "number",
		},
		{
			name: "numeric negative tolerance",
			df: dayFile{Title: "T", Questions: []questionFile{
				{Type: "numeric", Question: "q", Answer: float64(4), Tolerance: floatPtr(-0.1)},
			}},
			wantMsg: "tolerance",
		},
		{
			name: "repeat missing answer text",
			df: dayFile{Title: "T", Questions: []questionFile{
				{Type: "repeat", Question: "q"},
			}},
			wantMsg: "answer_text",
		},
		{
			name: "unknown type",
			df: dayFile{Title: "T", Questions: []questionFile{
				{Type: "essay", Question: "q"},
			}},
			wantMsg: "type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msgs := checkDay(tt.df)
			if tt.wantMsg == "" {
				if len(msgs) != 0 {
					t.Fatalf("unexpected problems: %v", msgs)
				}
				return
			}
			for _, m := range msgs {
				if strings.Contains(m, tt.wantMsg) {
					return
				}
			}
			t.Fatalf("no problem mentioning %q in %v", tt.wantMsg, msgs)
		})
	}
}

func TestCheckAll_ShippedDataClean(t *testing.T) {
	if problems := CheckAll(); len(problems) != 0 {
		for _, p := range problems {
			t.Errorf("%s", p)
		}
	}
}
