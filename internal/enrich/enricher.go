package enrich

import (
	"time"

	"linkpulse/internal/model"
	"linkpulse/pkg/util"
)

// Enricher turns raw click events into click records
type Enricher struct {
	geo  GeoLocator
	salt string
	now  func() time.Time
}

// NewEnricher creates a new Enricher. salt is mixed into IP hashes.
func NewEnricher(geo GeoLocator, salt string) *Enricher {
	if geo == nil {
		geo = &MaxMindLocator{}
	}
	return &Enricher{
		geo:  geo,
		salt: salt,
		now:  time.Now,
	}
}

// Enrich builds the click record for event against link. The clear source
// IP is replaced by its truncated hash.
func (e *Enricher) Enrich(event *model.ClickEvent, link *model.Link) *model.Click {
	ts := event.EnqueuedAt
	if ts.IsZero() {
		ts = e.now()
	}

	return &model.Click{
		EventID:   event.EventID,
		LinkID:    link.ID,
		ShortCode: link.ShortCode,
		Timestamp: ts.UTC(),
		HashedIP:  util.HashIP(event.SourceIP, e.salt),
		Geo:       e.geo.Lookup(event.SourceIP),
		Device:    ParseDevice(event.UserAgent),
		Referrer:  truncate(event.Referrer, 512),
		UTM:       ExtractUTM(event.RequestURL),
		IsBot:     IsBot(event.UserAgent),
	}
}
