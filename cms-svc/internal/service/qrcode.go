package service

import (
	"net/url"

	"github.com/skip2/go-qrcode"
)

// DefaultQRGenerator encodes a link to the public review page, optionally
// tagged with the location the code is printed for.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Link(location string) string {
	link := g.BaseURL + "/bewertungen"
	if location != "" {
		link += "?location=" + url.QueryEscape(location)
	}
	return link
}

func (g DefaultQRGenerator) Generate(location string) ([]byte, error) {
	return qrcode.Encode(g.Link(location), qrcode.Medium, 256)
}
