package enrich

import (
	"strings"
)

// botPatterns are matched case-insensitively as substrings of the user agent
var botPatterns = []string{
	"bot",
	"crawler",
	"spider",
	"scraper",
	"slurp",
	"facebookexternalhit",
	"facebookcatalog",
	"embedly",
	"whatsapp",
	"pinterest",
	"vkshare",
	"skypeuripreview",
	"headlesschrome",
	"phantomjs",
	"lighthouse",
	"curl/",
	"wget/",
	"python-requests",
	"go-http-client",
}

// IsBot classifies a user agent as automated traffic.
// An empty user agent counts as a bot.
func IsBot(userAgent string) bool {
	ua := strings.ToLower(strings.TrimSpace(userAgent))
	if ua == "" {
		return true
	}
	for _, p := range botPatterns {
		if strings.Contains(ua, p) {
			return true
		}
	}
	return false
}
