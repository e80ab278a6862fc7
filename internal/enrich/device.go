package enrich

import (
	"strings"
	"unicode/utf8"

	"github.com/mssola/useragent"

	"linkpulse/internal/model"
)

// Device types
const (
	DeviceMobile  = "Mobile"
	DeviceTablet  = "Tablet"
	DeviceDesktop = "Desktop"
	DeviceBot     = "Bot"
	DeviceUnknown = "Unknown"
)

const (
	unknownOS      = "Unknown"
	unknownBrowser = "Other"
	maxRawUALength = 512
)

// ParseDevice decomposes a user agent into device type, OS and browser.
// The result is best effort; unknown parts fall back to Unknown/Other.
func ParseDevice(userAgent string) model.DeviceInfo {
	info := model.DeviceInfo{
		Type:         DeviceUnknown,
		OS:           unknownOS,
		Browser:      unknownBrowser,
		RawUserAgent: truncate(userAgent, maxRawUALength),
	}
	if strings.TrimSpace(userAgent) == "" {
		return info
	}

	ua := useragent.New(userAgent)
	lower := strings.ToLower(userAgent)

	switch {
	case ua.Bot():
		info.Type = DeviceBot
	case strings.Contains(lower, "ipad") || strings.Contains(lower, "tablet") ||
		(strings.Contains(lower, "android") && !strings.Contains(lower, "mobile")):
		info.Type = DeviceTablet
	case ua.Mobile():
		info.Type = DeviceMobile
	case strings.HasPrefix(lower, "mozilla/"):
		info.Type = DeviceDesktop
	}

	if os := normalizeOS(ua.OSInfo().Name); os != "" {
		info.OS = os
	}
	if name, _ := ua.Browser(); name != "" {
		info.Browser = name
	}

	return info
}

func normalizeOS(name string) string {
	switch {
	case name == "":
		return ""
	case strings.HasPrefix(name, "Windows"):
		return "Windows"
	case name == "Mac OS X" || strings.HasPrefix(name, "macOS"):
		return "macOS"
	case name == "iPhone OS" || name == "CPU OS" || strings.HasPrefix(name, "iOS"):
		return "iOS"
	case strings.HasPrefix(name, "Android"):
		return "Android"
	case strings.Contains(name, "Linux"):
		return "Linux"
	case strings.HasPrefix(name, "Chrome OS") || strings.HasPrefix(name, "CrOS"):
		return "ChromeOS"
	default:
		return name
	}
}

// truncate cuts s to at most n bytes without splitting a rune
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
