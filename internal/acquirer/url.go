package acquirer

import "regexp"

// Strict absolute-URL grammar: http(s) scheme, a registered host name, an
// IPv4 literal or localhost, an optional port, and an optional path/query.
// Anything that fails this is treated as literal job-description text.
var urlRe = regexp.MustCompile(`^https?://` +
	`(?:` +
	`(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}` + // domain
	`|localhost` +
	`|\d{1,3}(?:\.\d{1,3}){3}` + // IPv4 literal
	`)` +
	`(?::\d+)?` +
	`(?:[/?#]\S*)?$`)

// IsURL classifies an input as a fetchable URL or literal text
func IsURL(input string) bool {
	return urlRe.MatchString(input)
}
