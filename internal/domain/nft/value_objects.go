package nft

import (
	"errors"
	"strings"
)

const MaxAssetIDLength = 128

var ErrInvalidAssetID = errors.New("invalid asset id")

// AssetID identifies one digital asset. It is caller-supplied, so it is kept
// opaque apart from basic shape checks; it also ends up in public URLs.
type AssetID struct {
	value string
}

func NewAssetID(s string) (AssetID, error) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > MaxAssetIDLength {
		return AssetID{}, ErrInvalidAssetID
	}
	if strings.ContainsAny(s, " /?#") {
		return AssetID{}, ErrInvalidAssetID
	}
	return AssetID{value: s}, nil
}

func (a AssetID) String() string {
	return a.value
}
