// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import "strings"

// pdfReplacements maps characters the single-byte output encoding lacks, or
// renders badly, to safe substitutes.
var pdfReplacements = map[rune]string{
	'–': "-",    // en dash
	'—': "-",    // em dash
	'„': `"`,    // German low double quote
	'“': `"`,    // left double quote
	'”': `"`,    // right double quote
	'‚': "'",    // low single quote
	'‘': "'",    // left single quote
	'’': "'",    // right single quote
	'✓': "[OK]", // check mark
	'✔': "[OK]", // heavy check mark
	'✗': "[X]",  // ballot x
	'❌': "[X]",  // cross mark
	'•': "-",    // bullet
}

// placeholder stands in for any rune the target encoding cannot represent.
const placeholder = '?'

// SanitizeLine prepares one line of text for the Latin-1 constrained PDF
// renderer. Known problem characters are substituted from the table first;
// any remaining rune outside the single-byte range degrades to the
// placeholder. The function is total: it never fails, whatever the input.
func SanitizeLine(line string) string {
	var b strings.Builder
	b.Grow(len(line))
	for _, r := range line {
		if repl, ok := pdfReplacements[r]; ok {
			b.WriteString(repl)
			continue
		}
		if r > 0xFF {
			b.WriteRune(placeholder)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
