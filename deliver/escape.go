package deliver

import "strings"

// escapeScript escapes characters meaningful to the AppleScript string
// literal the text is embedded into. Single pass, so backslashes are not
// double-escaped.
var scriptEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"$", `\$`,
)

func escapeScript(s string) string {
	return scriptEscaper.Replace(s)
}
