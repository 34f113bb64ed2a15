// Package rendering fills text templates with a serialized résumé.
package rendering

import (
	"fmt"
	"strings"
)

var latexReplacer = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
	`$`, `\$`,
	`&`, `\&`,
	`%`, `\%`,
	`#`, `\#`,
	`^`, `\textasciicircum{}`,
	`_`, `\_`,
	`~`, `\textasciitilde{}`,
)

// EscapeLaTeX escapes the LaTeX special characters \ { } $ & % # ^ _ ~ in the
// text form of value. A nil value renders as the empty string.
func EscapeLaTeX(value any) string {
	if value == nil {
		return ""
	}
	return latexReplacer.Replace(fmt.Sprint(value))
}
