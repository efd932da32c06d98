package market

import (
	"market-board/core/identity"
	"market-board/core/worlds"
	"market-board/feature/market/models"
)

// ListingView is a listing as served to consumers. Uploader and source
// attribution never leave the service.
type ListingView struct {
	ListingIDHash  string           `json:"listingIdHash,omitempty"`
	IsCrafted      bool             `json:"isCrafted"`
	CreatorIDHash  string           `json:"creatorIdHash,omitempty"`
	CreatorName    string           `json:"creatorName,omitempty"`
	HQ             bool             `json:"hq"`
	Materia        []models.Materia `json:"materia"`
	OnMannequin    bool             `json:"onMannequin"`
	PricePerUnit   int64            `json:"pricePerUnit"`
	Quantity       int64            `json:"quantity"`
	Total          int64            `json:"total"`
	RetainerCityID int              `json:"retainerCity"`
	RetainerIDHash string           `json:"retainerIdHash,omitempty"`
	RetainerName   string           `json:"retainerName,omitempty"`
	SellerIDHash   string           `json:"sellerIdHash,omitempty"`
	StainID        int              `json:"stainID"`
	LastReviewTime int64            `json:"lastReviewTime"`
	WorldID        int              `json:"worldID,omitempty"`
	WorldName      string           `json:"worldName,omitempty"`
}

// HistoryView is a sale as served to consumers.
type HistoryView struct {
	BuyerName    string `json:"buyerName,omitempty"`
	HQ           bool   `json:"hq"`
	OnMannequin  bool   `json:"onMannequin"`
	PricePerUnit int64  `json:"pricePerUnit"`
	Quantity     int64  `json:"quantity"`
	Total        int64  `json:"total"`
	SellerIDHash string `json:"sellerIdHash,omitempty"`
	Timestamp    int64  `json:"timestamp"`
	WorldID      int    `json:"worldID,omitempty"`
	WorldName    string `json:"worldName,omitempty"`
}

// CurrentDocument is the current market state of one item under a selector.
type CurrentDocument struct {
	ItemID         int           `json:"itemID"`
	WorldID        int           `json:"worldID,omitempty"`
	DCName         string        `json:"dcName,omitempty"`
	LastUploadTime int64         `json:"lastUploadTime"`
	Listings       []ListingView `json:"listings"`
	RecentHistory  []HistoryView `json:"recentHistory"`
	PriceStats
	SaleStats
}

// HistoryDocument is the sale history of one item under a selector.
type HistoryDocument struct {
	ItemID         int           `json:"itemID"`
	WorldID        int           `json:"worldID,omitempty"`
	DCName         string        `json:"dcName,omitempty"`
	LastUploadTime int64         `json:"lastUploadTime"`
	Entries        []HistoryView `json:"entries"`
	SaleStats
}

// Response wraps the documents of a multi-item query.
type Response[T any] struct {
	ItemIDs         []int  `json:"itemIDs"`
	Items           []T    `json:"items"`
	UnresolvedItems []int  `json:"unresolvedItems"`
	WorldID         int    `json:"worldID,omitempty"`
	DCName          string `json:"dcName,omitempty"`
}

// Body returns what is sent to the client: the bare document when exactly one
// item was requested, the wrapper otherwise.
func (r Response[T]) Body() any {
	if len(r.ItemIDs) == 1 && len(r.Items) == 1 {
		return r.Items[0]
	}
	return r
}

// tag copies the selector onto a document's worldID/dcName fields.
func tag(sel worlds.Selector) (worldID int, dcName string) {
	if id, ok := sel.WorldID(); ok {
		return id, ""
	}
	dc, _ := sel.DataCenter()
	return 0, dc
}

// viewListing redacts a stored listing. A creator hash equal to a known
// "no creator" sentinel is dropped and the listing is not crafted. World
// attribution is only kept for datacenter-wide views.
func viewListing(l models.Listing, perWorld bool) ListingView {
	v := ListingView{
		ListingIDHash:  l.ListingIDHash,
		CreatorName:    l.CreatorName,
		HQ:             l.HQ,
		Materia:        l.Materia,
		OnMannequin:    l.OnMannequin,
		PricePerUnit:   l.PricePerUnit,
		Quantity:       l.Quantity,
		Total:          l.PricePerUnit * l.Quantity,
		RetainerCityID: l.RetainerCityID,
		RetainerIDHash: l.RetainerIDHash,
		RetainerName:   l.RetainerName,
		SellerIDHash:   l.SellerIDHash,
		StainID:        l.StainID,
		LastReviewTime: l.LastReviewTime,
	}
	if !identity.IsSentinel(l.CreatorIDHash) {
		v.IsCrafted = true
		v.CreatorIDHash = l.CreatorIDHash
	}
	if v.Materia == nil {
		v.Materia = []models.Materia{}
	}
	if !perWorld {
		v.WorldID = l.WorldID
		v.WorldName = l.WorldName
	}
	return v
}

func viewEntry(e models.HistoryEntry, perWorld bool) HistoryView {
	v := HistoryView{
		BuyerName:    e.BuyerName,
		HQ:           e.HQ,
		OnMannequin:  e.OnMannequin,
		PricePerUnit: e.PricePerUnit,
		Quantity:     e.Quantity,
		Total:        e.PricePerUnit * e.Quantity,
		SellerIDHash: e.SellerIDHash,
		Timestamp:    e.Timestamp,
	}
	if !perWorld {
		v.WorldID = e.WorldID
		v.WorldName = e.WorldName
	}
	return v
}
