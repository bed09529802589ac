package notification

import (
	"html"
	"html/template"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

// fragmentPolicy allows the light formatting admins use in email copy.
func fragmentPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		p := bluemonday.UGCPolicy()
		p.AllowAttrs("style").OnElements("p", "span", "div", "strong", "em")
		p.RequireNoFollowOnLinks(false)
		p.AddTargetBlankToFullyQualifiedLinks(true)
		policy = p
	})
	return policy
}

// Fragment sanitises admin-authored copy so it can be inserted unescaped.
func Fragment(s string) template.HTML {
	return template.HTML(fragmentPolicy().Sanitize(s))
}

// Fragments sanitises each element of a list.
func Fragments(items []string) []template.HTML {
	out := make([]template.HTML, 0, len(items))
	for _, s := range items {
		out = append(out, Fragment(s))
	}
	return out
}

// PlainText strips all markup from a fragment for the text part.
func PlainText(s string) string {
	return strings.TrimSpace(html.UnescapeString(bluemonday.StrictPolicy().Sanitize(s)))
}

// headerSafe collapses whitespace so values cannot break a mail header.
func headerSafe(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
