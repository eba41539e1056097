// Package classifier derives the click context of a redirect request:
// device class, browser family, country and visitor fingerprint.
package classifier

import (
	"net/http"
	"strings"
	"time"

	"clickgate/internal/config"
	"clickgate/internal/model"
	"clickgate/pkg/util"

	"github.com/mssola/useragent"
)

// DefaultCountryHeader is the geo header set by Cloudflare
const DefaultCountryHeader = "CF-IPCountry"

// Classifier turns request headers into a ClickContext
type Classifier struct {
	salt          string
	countryHeader string
	now           func() time.Time
}

// New creates a Classifier from the analytics config
func New(cfg *config.AnalyticsConfig) *Classifier {
	header := cfg.CountryHeader
	if header == "" {
		header = DefaultCountryHeader
	}
	return &Classifier{
		salt:          cfg.FingerprintSalt,
		countryHeader: header,
		now:           time.Now,
	}
}

// FromRequest classifies r. clientIP is the address resolved by the router.
func (c *Classifier) FromRequest(r *http.Request, clientIP string) model.ClickContext {
	ua := r.UserAgent()
	return model.ClickContext{
		Fingerprint: util.FingerprintIP(clientIP, c.salt),
		DeviceType:  DeviceType(ua),
		BrowserName: BrowserName(ua),
		Country:     CountryName(r.Header.Get(c.countryHeader)),
		ClickedAt:   c.now().UTC(),
	}
}

// DeviceType maps a User-Agent to desktop, mobile, tablet or others.
// The parser has no tablet class, so tablets are matched on platform tokens
// before its mobile flag is consulted.
func DeviceType(ua string) string {
	if strings.TrimSpace(ua) == "" {
		return model.DeviceOthers
	}
	if isTablet(ua) {
		return model.DeviceTablet
	}

	parsed := useragent.New(ua)
	switch {
	case parsed.Bot():
		return model.DeviceOthers
	case parsed.Mobile():
		return model.DeviceMobile
	case parsed.OS() == "":
		return model.DeviceOthers
	default:
		return model.DeviceDesktop
	}
}

// BrowserName maps a User-Agent to a browser family
func BrowserName(ua string) string {
	if strings.TrimSpace(ua) == "" {
		return model.BrowserOthers
	}

	parsed := useragent.New(ua)
	if parsed.Bot() {
		return model.BrowserOthers
	}
	name, _ := parsed.Browser()
	switch name {
	case "Edge":
		return model.BrowserEdge
	case "Opera", "Opera Mini", "Opera Touch":
		return model.BrowserOpera
	case "Firefox":
		return model.BrowserFirefox
	case "Chrome", "Chromium", "HeadlessChrome":
		return model.BrowserChrome
	case "Safari":
		return model.BrowserSafari
	default:
		return model.BrowserOthers
	}
}

// CountryName resolves an ISO 3166-1 alpha-2 code to a country name. Unknown
// codes are returned as sent and unresolvable ones as "".
func CountryName(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	switch code {
	case "", "XX", "T1":
		return ""
	}
	if name, ok := countryNames[code]; ok {
		return name
	}
	return code
}

func isTablet(ua string) bool {
	ua = strings.ToLower(ua)
	return containsAny(ua, "ipad", "tablet", "kindle", "silk/", "playbook") ||
		(strings.Contains(ua, "android") && !strings.Contains(ua, "mobile"))
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
