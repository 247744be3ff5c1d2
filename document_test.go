package tex2png

import (
	"strings"
	"testing"
)

func TestTexDocument(t *testing.T) {
	t.Parallel()

	doc := texDocument(`$\alpha+\beta$`)

	for _, want := range []string{
		`\documentclass[preview,border=2pt]{standalone}`,
		`\usepackage{amsmath}`,
		`\usepackage{amssymb}`,
		`\begin{document}`,
		`$\alpha+\beta$`,
		`\end{document}`,
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q:\n%s", want, doc)
		}
	}

	// The equation must sit inside the document body.
	body := doc[strings.Index(doc, `\begin{document}`):]
	if !strings.Contains(body, `$\alpha+\beta$`) {
		t.Errorf("equation not inside document body:\n%s", doc)
	}
}

func TestTexDocument_DisplayMath(t *testing.T) {
	t.Parallel()

	doc := texDocument(`$$\int_0^1 x\,dx$$`)
	if !strings.Contains(doc, `$$\int_0^1 x\,dx$$`) {
		t.Errorf("display equation not embedded verbatim:\n%s", doc)
	}
}
