package upload

import (
	"context"
	"fmt"
	"mime"
	"strings"

	"market-board/core/utils"
)

const (
	// Uploads are accepted for worlds strictly between these IDs. Other worlds
	// cannot be scraped.
	minWorldIDExclusive = 16
	maxWorldIDExclusive = 100
)

// Blacklist reports banned uploaders by hashed uploader ID.
type Blacklist interface {
	IsBlacklisted(ctx context.Context, uploaderIDHash string) (bool, error)
}

// ValidatePreCast runs the checks possible before the body is parsed: an API
// key must be present and the body must be declared as JSON.
func ValidatePreCast(apiKey, contentType string) error {
	if apiKey == "" {
		return ErrUnauthorized
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || (mediaType != "application/json" && !strings.HasSuffix(mediaType, "+json")) {
		return ErrUnsupportedPayload
	}
	return nil
}

// Validate checks a parsed payload and converts it into an Upload. The checks
// run in order and stop at the first failure:
//
//  1. itemID and worldID present (415)
//  2. worldID inside the uploadable range (415)
//  3. uploader not blacklisted (401)
//  4. listings or entries present (418)
//
// When both listings and entries are present the listings win and the
// entries are ignored.
func Validate(ctx context.Context, p Payload, blacklist Blacklist) (Upload, error) {
	hdr, err := parseHeader(p)
	if err != nil {
		return nil, err
	}

	if hdr.WorldID <= minWorldIDExclusive || hdr.WorldID >= maxWorldIDExclusive {
		return nil, fmt.Errorf("%w: worldID %d cannot be uploaded", ErrUnsupportedPayload, hdr.WorldID)
	}

	if hash := hdr.UploaderIDHash(); hash != "" {
		banned, err := blacklist.IsBlacklisted(ctx, hash)
		if err != nil {
			return nil, err
		}
		if banned {
			return nil, ErrUnauthorized
		}
	}

	switch {
	case p.Has("listings"):
		objs, err := p.objects("listings")
		if err != nil {
			return nil, err
		}
		listings, retainers, err := toListings(objs)
		if err != nil {
			return nil, err
		}
		return ListingsUpload{Header: hdr, Listings: listings, Retainers: retainers}, nil
	case p.Has("entries"):
		objs, err := p.objects("entries")
		if err != nil {
			return nil, err
		}
		entries, err := toEntries(objs)
		if err != nil {
			return nil, err
		}
		return EntriesUpload{Header: hdr, Entries: entries}, nil
	default:
		return nil, ErrNoUploadData
	}
}

func parseHeader(p Payload) (Header, error) {
	item, world := p["itemID"], p["worldID"]
	if !utils.IsInteger(item) || !utils.IsInteger(world) {
		return Header{}, fmt.Errorf("%w: itemID and worldID are required", ErrUnsupportedPayload)
	}
	hdr := Header{
		ItemID:        utils.ToInt(item),
		WorldID:       utils.ToInt(world),
		UploaderID:    utils.ParseUnusualID(p["uploaderID"]),
		ContentID:     utils.ParseUnusualID(p["contentID"]),
		CharacterName: utils.SanitizeName(utils.ToString(p["characterName"])),
	}
	if hdr.ItemID <= 0 || hdr.WorldID == 0 {
		return Header{}, fmt.Errorf("%w: itemID and worldID are required", ErrUnsupportedPayload)
	}
	return hdr, nil
}
