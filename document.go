package tex2png

import "strings"

// Preamble of the generated document. The preview option of the standalone
// class makes the page hug the equation, so the rasterized image is already
// tightly cropped; border adds a small margin around the glyphs.
const documentPreamble = `\documentclass[preview,border=2pt]{standalone}
\usepackage{amsmath}
\usepackage{amssymb}
\pagestyle{empty}
`

// texDocument embeds a delimiter-wrapped equation in a minimal standalone
// LaTeX document suitable for one-shot compilation.
func texDocument(equation string) string {
	var b strings.Builder
	b.WriteString(documentPreamble)
	b.WriteString("\\begin{document}\n")
	b.WriteString(equation)
	b.WriteString("\n\\end{document}\n")
	return b.String()
}
