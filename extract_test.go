package tex2png

import (
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestExtract - Span extraction
// ---------------------------------------------------------------------------

func TestExtract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []EquationSpan
	}{
		{
			name: "empty input yields empty result",
			text: "",
			want: nil,
		},
		{
			name: "no math yields empty result",
			text: "plain text without any math",
			want: nil,
		},
		{
			name: "single inline span",
			text: `before $x+y=z$ after`,
			want: []EquationSpan{
				{Start: 7, End: 14, Body: "x+y=z"},
			},
		},
		{
			name: "single display span",
			text: `before $$E=mc^2$$ after`,
			want: []EquationSpan{
				{Start: 7, End: 17, Body: "E=mc^2", Display: true},
			},
		},
		{
			name: "inline then display in document order",
			text: `The value $\alpha$ satisfies $$\alpha^2=1$$ always.`,
			want: []EquationSpan{
				{Start: 10, End: 18, Body: `\alpha`},
				{Start: 29, End: 43, Body: `\alpha^2=1`, Display: true},
			},
		},
		{
			name: "adjacent inline spans",
			text: `$a$$b$`,
			want: []EquationSpan{
				{Start: 0, End: 3, Body: "a"},
				{Start: 3, End: 6, Body: "b"},
			},
		},
		{
			name: "adjacent display spans",
			text: `$$x$$$$y$$`,
			want: []EquationSpan{
				{Start: 0, End: 5, Body: "x", Display: true},
				{Start: 5, End: 10, Body: "y", Display: true},
			},
		},
		{
			name: "escaped dollar is not a delimiter",
			text: `price \$5 and $x$`,
			want: []EquationSpan{
				{Start: 14, End: 17, Body: "x"},
			},
		},
		{
			name: "escaped dollar inside inline body",
			text: `$a\$b$`,
			want: []EquationSpan{
				{Start: 0, End: 6, Body: `a\$b`},
			},
		},
		{
			name: "double backslash before dollar is a real delimiter",
			text: `\\$x$`,
			want: []EquationSpan{
				{Start: 2, End: 5, Body: "x"},
			},
		},
		{
			name: "lone dollar inside display is content",
			text: `$$a $ b$$`,
			want: []EquationSpan{
				{Start: 0, End: 9, Body: "a $ b", Display: true},
			},
		},
		{
			name: "display span over multiple lines",
			text: "$$\n\\int_0^1 x\\,dx\n$$",
			want: []EquationSpan{
				{Start: 0, End: 20, Body: "\n\\int_0^1 x\\,dx\n", Display: true},
			},
		},
		{
			name: "empty display span is skipped",
			text: `$$$$ and $x$`,
			want: []EquationSpan{
				{Start: 9, End: 12, Body: "x"},
			},
		},
		{
			name: "whitespace-only inline span is skipped",
			text: `$ $ then $y$`,
			want: []EquationSpan{
				{Start: 9, End: 12, Body: "y"},
			},
		},
		{
			name: "dangling inline delimiter is skipped by default",
			text: `$a$ and a lone $ at the end`,
			want: []EquationSpan{
				{Start: 0, End: 3, Body: "a"},
			},
		},
		{
			name: "dangling display delimiter is skipped by default",
			text: `$$unfinished`,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Extract(tt.text)
			if err != nil {
				t.Fatalf("Extract(%q) returned error: %v", tt.text, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Extract(%q) = %d spans, want %d: %+v", tt.text, len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("span %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestExtract_OffsetsMatchSource(t *testing.T) {
	t.Parallel()

	text := `intro $a+b$ middle $$c=d$$ outro $e$`
	spans, err := Extract(text)
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if len(spans) != 3 {
		t.Fatalf("got %d spans, want 3", len(spans))
	}
	for i, s := range spans {
		if raw := text[s.Start:s.End]; raw != s.Raw() {
			t.Errorf("span %d: source slice %q != Raw() %q", i, raw, s.Raw())
		}
	}
}

func TestExtract_BalancedPairCount(t *testing.T) {
	t.Parallel()

	// Count of balanced non-empty pairs equals the span count, in order.
	var sb strings.Builder
	const n = 10
	for i := 0; i < n; i++ {
		sb.WriteString("text $x$ ")
	}
	spans, err := Extract(sb.String())
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if len(spans) != n {
		t.Fatalf("got %d spans, want %d", len(spans), n)
	}
	for i := 1; i < len(spans); i++ {
		if spans[i].Start <= spans[i-1].Start {
			t.Errorf("spans out of order at %d: %d <= %d", i, spans[i].Start, spans[i-1].Start)
		}
	}
}

// ---------------------------------------------------------------------------
// TestExtract_Strict - Dangling delimiter policy
// ---------------------------------------------------------------------------

func TestExtract_Strict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		text       string
		wantErr    bool
		wantOffset string // offset mentioned in the error message
	}{
		{
			name: "balanced input passes",
			text: `$a$ and $$b$$`,
		},
		{
			name:       "dangling inline fails",
			text:       `fine $a$ then $broken`,
			wantErr:    true,
			wantOffset: "offset 14",
		},
		{
			name:       "dangling display fails",
			text:       `$$broken`,
			wantErr:    true,
			wantOffset: "offset 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Extract(tt.text, WithStrictDelimiters())
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Extract(%q) returned error: %v", tt.text, err)
				}
				return
			}
			if !errors.Is(err, ErrUnterminatedMath) {
				t.Fatalf("Extract(%q) = %v, want ErrUnterminatedMath", tt.text, err)
			}
			if !strings.Contains(err.Error(), tt.wantOffset) {
				t.Errorf("error %q does not mention %q", err, tt.wantOffset)
			}
		})
	}
}
