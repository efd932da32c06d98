package upload

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"

	"market-board/core/identity"
	"market-board/core/utils"
	"market-board/feature/market/models"
)

// Payload is the loosely typed upload body. Numbers are kept as json.Number.
type Payload map[string]any

// ParsePayload decodes a JSON object body.
func ParsePayload(body []byte) (Payload, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var p Payload
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedPayload, err)
	}
	if p == nil {
		return nil, fmt.Errorf("%w: body is not an object", ErrUnsupportedPayload)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after object", ErrUnsupportedPayload)
	}
	return p, nil
}

// Has reports whether key is present with a non-null value.
func (p Payload) Has(key string) bool {
	v, ok := p[key]
	return ok && v != nil
}

// Header carries the fields shared by both upload kinds.
type Header struct {
	ItemID     int
	WorldID    int
	UploaderID *string
	// ContentID and CharacterName identify the uploading character.
	ContentID     *string
	CharacterName string
}

// UploaderIDHash returns the hashed uploader ID, empty when absent.
func (h Header) UploaderIDHash() string {
	return identity.HashOptional(h.UploaderID)
}

// Upload is either a ListingsUpload or an EntriesUpload.
type Upload interface {
	header() Header
}

// Retainer is a retainer identity seen in a listing upload.
type Retainer struct {
	RawID string
	Name  string
}

// ListingsUpload is a snapshot of one world's current listings.
type ListingsUpload struct {
	Header
	Listings  []models.Listing
	Retainers []Retainer
}

// EntriesUpload is a batch of one world's completed sales.
type EntriesUpload struct {
	Header
	Entries []models.HistoryEntry
}

func (u ListingsUpload) header() Header { return u.Header }
func (u EntriesUpload) header() Header  { return u.Header }

// HeaderOf returns the shared fields of an upload.
func HeaderOf(u Upload) Header {
	return u.header()
}

// objects returns the array under key as a list of objects.
func (p Payload) objects(key string) ([]map[string]any, error) {
	raw, ok := p[key].([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be an array", ErrUnsupportedPayload, key)
	}
	out := make([]map[string]any, len(raw))
	for i, item := range raw {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s[%d] must be an object", ErrUnsupportedPayload, key, i)
		}
		out[i] = obj
	}
	return out, nil
}

// amount reads a non-negative integer field. Absent fields are zero.
func amount(obj map[string]any, key string) (int64, error) {
	v, ok := obj[key]
	if !ok || v == nil {
		return 0, nil
	}
	if !utils.IsInteger(v) {
		return 0, fmt.Errorf("%w: %s must be an integer", ErrUnsupportedPayload, key)
	}
	n := utils.ToInt64(v)
	if n < 0 {
		return 0, fmt.Errorf("%w: %s must not be negative", ErrUnsupportedPayload, key)
	}
	return n, nil
}

// priceAndQuantity reads a row's unit price and quantity, rejecting rows
// whose total would not fit in an int64.
func priceAndQuantity(obj map[string]any) (price, qty int64, err error) {
	if price, err = amount(obj, "pricePerUnit"); err != nil {
		return 0, 0, err
	}
	if qty, err = amount(obj, "quantity"); err != nil {
		return 0, 0, err
	}
	if qty != 0 && price > math.MaxInt64/qty {
		return 0, 0, fmt.Errorf("%w: pricePerUnit times quantity overflows", ErrUnsupportedPayload)
	}
	return price, qty, nil
}

func hashID(obj map[string]any, key string) string {
	return identity.HashOptional(utils.ParseUnusualID(obj[key]))
}

func toListings(objs []map[string]any) ([]models.Listing, []Retainer, error) {
	listings := make([]models.Listing, 0, len(objs))
	var retainers []Retainer
	seen := make(map[string]struct{})

	for _, o := range objs {
		price, qty, err := priceAndQuantity(o)
		if err != nil {
			return nil, nil, err
		}

		retainerName := utils.SanitizeName(utils.ToString(o["retainerName"]))
		l := models.Listing{
			ListingIDHash:  hashID(o, "listingID"),
			CreatorIDHash:  hashID(o, "creatorID"),
			CreatorName:    utils.SanitizeName(utils.ToString(o["creatorName"])),
			HQ:             utils.ParseUnusualBool(o["hq"]),
			Materia:        toMateria(o["materia"]),
			OnMannequin:    utils.ParseUnusualBool(o["onMannequin"]),
			PricePerUnit:   price,
			Quantity:       qty,
			RetainerCityID: utils.ToInt(o["retainerCity"]),
			RetainerIDHash: hashID(o, "retainerID"),
			RetainerName:   retainerName,
			SellerIDHash:   hashID(o, "sellerID"),
			StainID:        utils.ToInt(o["stainID"]),
			LastReviewTime: utils.ToInt64(o["lastReviewTime"]),
		}
		listings = append(listings, l)

		if raw := utils.ParseUnusualID(o["retainerID"]); raw != nil && retainerName != "" {
			if _, dup := seen[*raw]; !dup {
				seen[*raw] = struct{}{}
				retainers = append(retainers, Retainer{RawID: *raw, Name: retainerName})
			}
		}
	}
	return listings, retainers, nil
}

func toMateria(v any) []models.Materia {
	raw, ok := v.([]any)
	if !ok {
		return []models.Materia{}
	}
	out := make([]models.Materia, 0, len(raw))
	for _, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, models.Materia{
			SlotID:    utils.ToInt(m["slotID"]),
			MateriaID: utils.ToInt(m["materiaID"]),
		})
	}
	return out
}

func toEntries(objs []map[string]any) ([]models.HistoryEntry, error) {
	entries := make([]models.HistoryEntry, 0, len(objs))
	for _, o := range objs {
		price, qty, err := priceAndQuantity(o)
		if err != nil {
			return nil, err
		}
		ts, err := amount(o, "timestamp")
		if err != nil {
			return nil, err
		}
		entries = append(entries, models.HistoryEntry{
			BuyerName:    utils.SanitizeName(utils.ToString(o["buyerName"])),
			HQ:           utils.ParseUnusualBool(o["hq"]),
			OnMannequin:  utils.ParseUnusualBool(o["onMannequin"]),
			PricePerUnit: price,
			Quantity:     qty,
			SellerIDHash: hashID(o, "sellerID"),
			Timestamp:    ts,
		})
	}
	return entries, nil
}
