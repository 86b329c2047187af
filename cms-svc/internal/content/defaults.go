// Package content holds the built-in CMS documents served until an editor
// stores a replacement.
package content

import (
	"embed"
	"encoding/json"
	"regexp"
	"strings"
)

//go:embed defaults/*.json
var defaultsFS embed.FS

const (
	KeyHomepage       = "homepage"
	KeyLocations      = "locations"
	KeyStandorte      = "standorte-enhanced"
	KeyAbout          = "ueber-uns-enhanced"
	KeyKontakt        = "kontakt-page"
	KeyEUCompliance   = "eu-compliance"
	KeyCookieSettings = "cookie-settings"
	KeyDelivery       = "delivery-info"

	websiteTextsPrefix = "website-texts/"
)

var pageKeys = []string{
	KeyHomepage, KeyLocations, KeyStandorte, KeyAbout,
	KeyKontakt, KeyEUCompliance, KeyCookieSettings, KeyDelivery,
}

var sectionPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,63}$`)

// PageKeys lists the fixed CMS pages, excluding website-text sections.
func PageKeys() []string {
	return append([]string(nil), pageKeys...)
}

func IsPageKey(key string) bool {
	for _, k := range pageKeys {
		if k == key {
			return true
		}
	}
	return false
}

func ValidSection(section string) bool {
	return sectionPattern.MatchString(section)
}

func WebsiteTextsKey(section string) string {
	return websiteTextsPrefix + section
}

// Default returns the built-in document for key, if there is one.
func Default(key string) (json.RawMessage, bool) {
	name := strings.ReplaceAll(key, "/", "-")
	raw, err := defaultsFS.ReadFile("defaults/" + name + ".json")
	if err != nil {
		return nil, false
	}
	return json.RawMessage(raw), true
}
