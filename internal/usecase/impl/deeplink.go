package impl

import (
	"net/url"
	"strings"
)

// QueryEscape output differs from encodeURIComponent in the space and in
// !'()*, which encodeURIComponent leaves as is.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// buildDeepLink returns base?phone=<phone>&text=<text> with both values
// encoded like encodeURIComponent.
func buildDeepLink(base, phone, text string) string {
	return base + "?phone=" + encodeComponent(phone) + "&text=" + encodeComponent(text)
}

func encodeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}
