package enrich

import (
	"fmt"
	"net"

	"github.com/oschwald/geoip2-golang"
	"github.com/rs/zerolog/log"

	"linkpulse/internal/model"
)

// UnknownCountry is recorded when an address cannot be resolved
const UnknownCountry = "Unknown"

// GeoLocator resolves a source IP to a location
type GeoLocator interface {
	Lookup(ip string) model.GeoInfo
}

// cityReader is the subset of *geoip2.Reader used by MaxMindLocator
type cityReader interface {
	City(ip net.IP) (*geoip2.City, error)
	Close() error
}

// MaxMindLocator looks addresses up in a local MaxMind City database.
// A nil reader resolves everything to Unknown.
type MaxMindLocator struct {
	reader cityReader
}

// NewMaxMindLocator opens the database at path. An empty path yields a
// locator that always answers Unknown.
func NewMaxMindLocator(path string) (*MaxMindLocator, error) {
	if path == "" {
		return &MaxMindLocator{}, nil
	}
	r, err := geoip2.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open GeoIP database: %w", err)
	}
	log.Info().Str("path", path).Msg("GeoIP database loaded")
	return &MaxMindLocator{reader: r}, nil
}

// Lookup resolves ip. Any failure degrades to {country: Unknown}.
func (l *MaxMindLocator) Lookup(ip string) model.GeoInfo {
	unknown := model.GeoInfo{Country: UnknownCountry}
	if l == nil || l.reader == nil {
		return unknown
	}

	parsed := net.ParseIP(ip)
	if parsed == nil || parsed.IsPrivate() || parsed.IsLoopback() {
		return unknown
	}

	record, err := l.reader.City(parsed)
	if err != nil {
		log.Debug().Err(err).Msg("GeoIP lookup failed")
		return unknown
	}
	if record.Country.IsoCode == "" {
		return unknown
	}

	geo := model.GeoInfo{
		Country: record.Country.IsoCode,
		City:    record.City.Names["en"],
	}
	if len(record.Subdivisions) > 0 {
		geo.Region = record.Subdivisions[0].Names["en"]
	}
	if record.Location.Latitude != 0 || record.Location.Longitude != 0 {
		lat, lon := record.Location.Latitude, record.Location.Longitude
		geo.Lat = &lat
		geo.Lon = &lon
	}
	return geo
}

// Close releases the database
func (l *MaxMindLocator) Close() error {
	if l == nil || l.reader == nil {
		return nil
	}
	return l.reader.Close()
}
