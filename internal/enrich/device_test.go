package enrich

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestParseDevice(t *testing.T) {
	t.Run("desktop chrome on windows", func(t *testing.T) {
		d := ParseDevice("Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
		assert.Equal(t, DeviceDesktop, d.Type)
		assert.Equal(t, "Windows", d.OS)
		assert.Equal(t, "Chrome", d.Browser)
	})

	t.Run("iphone safari", func(t *testing.T) {
		d := ParseDevice("Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1")
		assert.Equal(t, DeviceMobile, d.Type)
		assert.Equal(t, "Safari", d.Browser)
	})

	t.Run("ipad", func(t *testing.T) {
		d := ParseDevice("Mozilla/5.0 (iPad; CPU OS 16_6 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.6 Mobile/15E148 Safari/604.1")
		assert.Equal(t, DeviceTablet, d.Type)
	})

	t.Run("googlebot", func(t *testing.T) {
		d := ParseDevice("Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)")
		assert.Equal(t, DeviceBot, d.Type)
	})

	t.Run("empty user agent", func(t *testing.T) {
		d := ParseDevice("")
		assert.Equal(t, DeviceUnknown, d.Type)
		assert.Equal(t, "Unknown", d.OS)
		assert.Equal(t, "Other", d.Browser)
		assert.Empty(t, d.RawUserAgent)
	})

	t.Run("raw user agent is truncated", func(t *testing.T) {
		d := ParseDevice("Mozilla/5.0 " + strings.Repeat("x", 1000))
		assert.Len(t, d.RawUserAgent, 512)
	})
}

func TestNormalizeOS(t *testing.T) {
	tests := map[string]string{
		"":             "",
		"Windows":      "Windows",
		"Mac OS X":     "macOS",
		"iPhone OS":    "iOS",
		"Android":      "Android",
		"Linux":        "Linux",
		"Linux x86_64": "Linux",
		"Ubuntu":       "Ubuntu",
	}
	for in, want := range tests {
		assert.Equal(t, want, normalizeOS(in), in)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"short string is kept", "abc", 5, "abc"},
		{"ascii is cut at n", "abcdef", 4, "abcd"},
		{"two byte rune is not split", "abcé", 4, "abc"},
		{"three byte rune is not split", "ab€", 4, "ab"},
		{"cut on a rune boundary keeps the rune", "ab€d", 5, "ab€"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.n)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestParseDevice_MultiByteUserAgentStaysValid(t *testing.T) {
	d := ParseDevice(strings.Repeat("a", 511) + strings.Repeat("é", 10))

	assert.True(t, utf8.ValidString(d.RawUserAgent))
	assert.Len(t, d.RawUserAgent, 511)
}
