package enrich

import (
	"net/url"

	"linkpulse/internal/model"
)

// ExtractUTM reads the utm_* query parameters of the original request URL.
// It returns nil when none are present or the URL cannot be parsed.
func ExtractUTM(requestURL string) *model.UTMParams {
	if requestURL == "" {
		return nil
	}

	u, err := url.Parse(requestURL)
	if err != nil {
		return nil
	}

	q := u.Query()
	utm := &model.UTMParams{
		Source:   q.Get("utm_source"),
		Medium:   q.Get("utm_medium"),
		Campaign: q.Get("utm_campaign"),
		Term:     q.Get("utm_term"),
		Content:  q.Get("utm_content"),
	}

	if *utm == (model.UTMParams{}) {
		return nil
	}
	return utm
}
