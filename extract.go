package tex2png

import (
	"fmt"
	"strings"
)

// ExtractOption customizes extraction behavior.
type ExtractOption func(*extractConfig)

type extractConfig struct {
	strict bool
}

// WithStrictDelimiters makes Extract fail with ErrUnterminatedMath when the
// input ends inside an open math span. The default is to drop the dangling
// span.
func WithStrictDelimiters() ExtractOption {
	return func(cfg *extractConfig) {
		cfg.strict = true
	}
}

// Scanner states.
const (
	scanOutside = iota
	scanInline
	scanDisplay
)

// Extract scans text for inline ($...$) and display ($$...$$) math spans
// and returns them in document order.
//
// A backslash escapes the character that follows it, so \$ never opens or
// closes a span. `$$` always opens display math; inside display math a lone
// $ is content and only `$$` closes the span. Spans with empty or
// whitespace-only bodies are dropped. Empty input yields an empty, non-nil
// error-free result.
func Extract(text string, opts ...ExtractOption) ([]EquationSpan, error) {
	var cfg extractConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var spans []EquationSpan
	state := scanOutside
	start := 0     // offset of the opening delimiter of the current span
	bodyStart := 0 // offset of the first body byte

	for i := 0; i < len(text); {
		switch c := text[i]; {
		case c == '\\':
			// Escape: the next byte is literal, wherever it appears.
			i += 2
		case c != '$':
			i++
		case state == scanOutside:
			if i+1 < len(text) && text[i+1] == '$' {
				state = scanDisplay
				start = i
				bodyStart = i + 2
				i += 2
			} else {
				state = scanInline
				start = i
				bodyStart = i + 1
				i++
			}
		case state == scanInline:
			spans = appendSpan(spans, EquationSpan{
				Start: start,
				End:   i + 1,
				Body:  text[bodyStart:i],
			})
			state = scanOutside
			i++
		default: // scanDisplay
			if i+1 < len(text) && text[i+1] == '$' {
				spans = appendSpan(spans, EquationSpan{
					Start:   start,
					End:     i + 2,
					Body:    text[bodyStart:i],
					Display: true,
				})
				state = scanOutside
				i += 2
			} else {
				// Lone $ inside display math is content.
				i++
			}
		}
	}

	if state != scanOutside && cfg.strict {
		return nil, fmt.Errorf("%w at offset %d", ErrUnterminatedMath, start)
	}
	return spans, nil
}

// appendSpan drops spans whose body is empty or whitespace-only.
func appendSpan(spans []EquationSpan, s EquationSpan) []EquationSpan {
	if strings.TrimSpace(s.Body) == "" {
		return spans
	}
	return append(spans, s)
}
