package tex2png

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"tex2png/internal/fileutil"
)

const graphicxPackage = `\usepackage{graphicx}`

// Matches the preamble up to \begin{document} so graphicx can be injected
// right before the body starts.
var documentBodyRE = regexp.MustCompile(`(?s)\\documentclass\{.*?\}.*?(\\begin\{document\})`)

// writeReplacedDocument writes a copy of content into outDir, named
// <base>_with_images.tex, with every successfully rendered span replaced by
// an \includegraphics command referencing the generated image. Failed spans
// are left untouched. Returns the path of the generated file.
func writeReplacedDocument(content, sourcePath, outDir string, results []EquationResult) (string, error) {
	// Substitute back to front so earlier byte offsets stay valid.
	buf := []byte(content)
	for i := len(results) - 1; i >= 0; i-- {
		res := results[i]
		if res.Err != nil {
			continue
		}
		repl := includeGraphics(filepath.Base(res.Path), res.Span.Display)
		buf = append(buf[:res.Span.Start], append([]byte(repl), buf[res.Span.End:]...)...)
	}

	out := ensureGraphicx(string(buf))
	texPath := filepath.Join(outDir, fileutil.BaseName(sourcePath)+"_with_images.tex")

	if err := os.MkdirAll(outDir, dirPermissions); err != nil {
		return "", fmt.Errorf("creating output directory %s: %w", outDir, err)
	}
	if err := os.WriteFile(texPath, []byte(out), filePermissions); err != nil {
		return "", fmt.Errorf("writing replaced document: %w", err)
	}
	return texPath, nil
}

// includeGraphics builds the replacement snippet for one rendered span.
// Display spans become a centered block. Inline spans are scaled down and
// lowered slightly so they sit on the surrounding text baseline.
func includeGraphics(imageName string, display bool) string {
	if display {
		return "\n\\begin{center}\n\\includegraphics{" + imageName + "}\n\\end{center}\n"
	}
	return `\raisebox{-0.2\height}{\includegraphics[width=0.15\linewidth]{` + imageName + `}}`
}

// ensureGraphicx injects \usepackage{graphicx} into the preamble when the
// document does not already load it. Snippets without a recognizable
// preamble get the package prepended.
func ensureGraphicx(content string) string {
	if strings.Contains(content, graphicxPackage) {
		return content
	}
	if m := documentBodyRE.FindStringSubmatchIndex(content); m != nil {
		bodyStart := m[2] // start of \begin{document}
		return content[:bodyStart] + graphicxPackage + "\n" + content[bodyStart:]
	}
	return graphicxPackage + "\n" + content
}
