package latex

import "strings"

// A Replacer scans its input once and never rescans replacement text, so
// the backslash introduced by one escape is not escaped again.
var escaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
)

var unescaper = strings.NewReplacer(
	`\textbackslash{}`, `\`,
	`\textasciitilde{}`, `~`,
	`\textasciicircum{}`, `^`,
	`\&`, `&`,
	`\%`, `%`,
	`\$`, `$`,
	`\#`, `#`,
	`\_`, `_`,
	`\{`, `{`,
	`\}`, `}`,
)

// Escape makes s safe to place in LaTeX body text.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Unescape reverses Escape.
func Unescape(s string) string {
	return unescaper.Replace(s)
}

var urlEscaper = strings.NewReplacer(`%`, `\%`, `#`, `\#`, `\`, ``, `{`, `\%7B`, `}`, `\%7D`)

// escapeURL prepares a URL for the first argument of \href.
func escapeURL(s string) string {
	return urlEscaper.Replace(s)
}
