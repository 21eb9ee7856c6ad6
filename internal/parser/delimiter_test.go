package parser

import (
	"testing"
)

// ----------------------------------------------------------------------------
// DetectDelimiter Tests
// ----------------------------------------------------------------------------

func TestDetectDelimiter(t *testing.T) {
	tests := []struct {
		name string
		text string
		want rune
	}{
		{
			name: "comma separated",
			text: "a,b,c\nd,e,f\ng,h,i\n",
			want: ',',
		},
		{
			name: "semicolon separated",
			text: "a;b;c\nd;e;f\ng;h;i\n",
			want: ';',
		},
		{
			name: "tab separated",
			text: "a\tb\tc\nd\te\tf\n",
			want: '\t',
		},
		{
			name: "pipe separated",
			text: "a|b|c\nd|e|f\n",
			want: '|',
		},
		{
			name: "empty sample defaults to comma",
			text: "",
			want: ',',
		},
		{
			name: "blank lines only default to comma",
			text: "\n\n   \n",
			want: ',',
		},
		{
			name: "no delimiter at all defaults to comma",
			text: "single\nword\nlines\n",
			want: ',',
		},
		{
			name: "semicolon beats stray commas",
			text: "name;desc;price\nAmmonite;small, ribbed;10\nTrilobite;flat, wide;20\n",
			want: ';',
		},
		{
			name: "uneven column counts penalize the noisy candidate",
			text: "a,b\nc,d,e,f\ng\nh;i\nj;k\nl;m\n",
			want: ';',
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectDelimiter(sampleLines(tt.text))
			if got != tt.want {
				t.Errorf("DetectDelimiter() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectDelimiterDeterministic(t *testing.T) {
	// Same sample must always produce the same answer.
	sample := []string{"a;b;c", "d;e;f", "g;h;i"}
	first := DetectDelimiter(sample)
	for i := 0; i < 50; i++ {
		if got := DetectDelimiter(sample); got != first {
			t.Fatalf("run %d: DetectDelimiter() = %q, want %q", i, got, first)
		}
	}
}

func TestDetectDelimiterFirstCandidateWinsTies(t *testing.T) {
	// One occurrence of each candidate per line scores identically, so the
	// earliest candidate in the trial order must win.
	sample := []string{"a,b;c\td|e", "f,g;h\ti|j"}
	if got := DetectDelimiter(sample); got != ',' {
		t.Errorf("DetectDelimiter() = %q, want ','", got)
	}
}

func TestDelimiterLabel(t *testing.T) {
	tests := []struct {
		delim rune
		want  string
	}{
		{',', "Comma (,)"},
		{';', "Semicolon (;)"},
		{'\t', "Tab"},
		{'|', "Pipe (|)"},
	}

	for _, tt := range tests {
		if got := DelimiterLabel(tt.delim); got != tt.want {
			t.Errorf("DelimiterLabel(%q) = %q, want %q", tt.delim, got, tt.want)
		}
	}
}

// ----------------------------------------------------------------------------
// LooksLikeCSV Tests
// ----------------------------------------------------------------------------

func TestLooksLikeCSV(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{
			name: "comma header line",
			line: "a,b,c",
			want: true,
		},
		{
			name: "tab header line",
			line: "a\tb\tc",
			want: true,
		},
		{
			name: "prose without delimiters",
			line: "once upon a time",
			want: false,
		},
		{
			name: "empty line",
			line: "",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LooksLikeCSV(tt.line); got != tt.want {
				t.Errorf("LooksLikeCSV() = %v, want %v", got, tt.want)
			}
		})
	}
}
