package nft

import (
	"fmt"
	"net/url"
	"strings"
)

// Links are the public metadata endpoints for an asset. They are derived
// from the configured public base URL, not stored.
type Links struct {
	Web   string
	Email string
	SVG   string
}

func NewLinks(publicBaseURL string, assetID AssetID) (Links, error) {
	base, err := url.Parse(strings.TrimRight(publicBaseURL, "/"))
	if err != nil || base.Host == "" {
		return Links{}, fmt.Errorf("invalid public base url %q", publicBaseURL)
	}

	id := assetID.String()
	return Links{
		Web:   fmt.Sprintf("%s/nft/%s", base.String(), id),
		Email: fmt.Sprintf("nft-%s@%s", id, base.Hostname()),
		SVG:   fmt.Sprintf("%s/nft/%s.svg", base.String(), id),
	}, nil
}
