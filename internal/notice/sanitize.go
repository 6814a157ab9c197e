package notice

import "github.com/microcosm-cc/bluemonday"

// richText sanitizes admin-authored HTML before it is stored or echoed back.
// The UGC policy plus inline styling covers what the rich-text editor emits.
var richText = func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("style").Globally()
	p.AllowAttrs("class").Globally()
	return p
}()

func sanitizeHTML(s string) string {
	if s == "" {
		return ""
	}
	return richText.Sanitize(s)
}
