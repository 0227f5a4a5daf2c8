// internal/catalog/displayname.go
package catalog

import "strings"

// displayRewrites are applied in order, each to its first occurrence only.
var displayRewrites = []struct {
	old string
	new string
}{
	{old: ":free", new: ""},
	{old: "-exp", new: ""},
	{old: "-latest", new: ""},
	{old: "-thinking", new: "(thinking)"},
}

// displayOverrides pins names that must survive the rewrites untouched.
// Every entry currently maps to itself.
var displayOverrides = map[string]string{
	"gemini-2.5-pro-03-25":       "gemini-2.5-pro-03-25",
	"gemini-2.0-flash(thinking)": "gemini-2.0-flash(thinking)",
	"gemini-2.0-pro-02-05":       "gemini-2.0-pro-02-05",
	"chatgpt-4o":                 "chatgpt-4o",
}

// DisplayName turns a raw model identifier into the label shown to users,
// e.g. "gemini-2.0-flash-thinking-exp:free" becomes "gemini-2.0-flash(thinking)".
func DisplayName(model string) string {
	name := model
	for _, rw := range displayRewrites {
		name = strings.Replace(name, rw.old, rw.new, 1)
	}
	if override, ok := displayOverrides[name]; ok {
		return override
	}
	return name
}
