package market

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"market-board/core/worlds"
	"market-board/feature/market/models"
)

// CurrentOptions tune a current-state query.
type CurrentOptions struct {
	// Listings caps the listings per document, 0 returns all.
	Listings int
	// Entries is the recentHistory size, negative uses the configured default.
	Entries int
	// HQ keeps only HQ (true) or NQ (false) listings and sales when set.
	HQ *bool
}

// ParseItemIDs splits a comma separated list of item IDs. Duplicates are
// dropped, order is kept.
func ParseItemIDs(raw string, limit int) ([]int, error) {
	parts := strings.Split(raw, ",")
	if raw == "" || len(parts) > limit {
		return nil, ErrBadItemList
	}
	ids := make([]int, 0, len(parts))
	seen := make(map[int]struct{}, len(parts))
	for _, p := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || id < 0 {
			return nil, ErrBadItemList
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}

// MaxItemsPerQuery returns the configured item list limit.
func (s *Service) MaxItemsPerQuery() int {
	return s.cfg.MaxItemsPerQuery
}

// scope maps a selector onto the record key holding its data. For worlds in a
// datacenter the datacenter record is read and filtered to the world.
type scope struct {
	key      Key
	perWorld bool
	worldID  int
}

func (s *Service) scopeOf(sel worlds.Selector) (scope, error) {
	if id, ok := sel.WorldID(); ok && id != 0 {
		loc := s.resolver.Locate(id)
		return scope{key: KeyFor(0, loc), perWorld: true, worldID: id}, nil
	}
	if dc, ok := sel.DataCenter(); ok {
		return scope{key: Key{DCName: dc}}, nil
	}
	return scope{}, ErrNoScope
}

// uploadTime is when the scope last received data for a record: the world's
// own upload for world scopes, the record's latest otherwise. 0 means the
// scope never uploaded into the record.
func (sc scope) uploadTime(uploads []models.WorldUpload, recordTime int64) int64 {
	if !sc.perWorld {
		return recordTime
	}
	return models.UploadTimeOf(uploads, sc.worldID)
}

func (sc scope) keepListing(l models.Listing, hq *bool) bool {
	if sc.perWorld && l.WorldID != sc.worldID {
		return false
	}
	return hq == nil || l.HQ == *hq
}

func (sc scope) keepEntry(e models.HistoryEntry, hq *bool) bool {
	if sc.perWorld && e.WorldID != sc.worldID {
		return false
	}
	return hq == nil || e.HQ == *hq
}

// CurrentState returns the current listings, recent sales and price figures
// of each requested item. Items without data get an empty placeholder and are
// reported in UnresolvedItems.
func (s *Service) CurrentState(ctx context.Context, sel worlds.Selector, itemIDs []int, opts CurrentOptions) (Response[CurrentDocument], error) {
	sc, err := s.scopeOf(sel)
	if err != nil {
		return Response[CurrentDocument]{}, err
	}
	if opts.Entries < 0 {
		opts.Entries = s.cfg.RecentHistoryEntries
	}

	markets, err := s.findMarket(ctx, sc.key, itemIDs)
	if err != nil {
		return Response[CurrentDocument]{}, err
	}
	histories, err := s.findHistory(ctx, sc.key, itemIDs)
	if err != nil {
		return Response[CurrentDocument]{}, err
	}

	marketByItem := make(map[int]*models.MarketRecord, len(markets))
	for i := range markets {
		marketByItem[markets[i].ItemID] = &markets[i]
	}
	historyByItem := make(map[int]*models.HistoryRecord, len(histories))
	for i := range histories {
		historyByItem[histories[i].ItemID] = &histories[i]
	}

	worldID, dcName := tag(sel)
	resp := Response[CurrentDocument]{
		ItemIDs:         itemIDs,
		Items:           make([]CurrentDocument, 0, len(itemIDs)),
		UnresolvedItems: []int{},
		WorldID:         worldID,
		DCName:          dcName,
	}
	now := s.now()

	for _, id := range itemIDs {
		doc := CurrentDocument{
			ItemID:        id,
			WorldID:       worldID,
			DCName:        dcName,
			Listings:      []ListingView{},
			RecentHistory: []HistoryView{},
		}

		m, h := marketByItem[id], historyByItem[id]
		var marketTime, historyTime int64
		if m != nil {
			if marketTime = sc.uploadTime(m.WorldUploads, m.LastUploadTime); marketTime == 0 {
				m = nil
			}
		}
		if h != nil {
			if historyTime = sc.uploadTime(h.WorldUploads, h.LastUploadTime); historyTime == 0 {
				h = nil
			}
		}
		if m == nil && h == nil {
			doc.SaleStats.setHistograms(nil, nil, nil)
			resp.Items = append(resp.Items, doc)
			resp.UnresolvedItems = append(resp.UnresolvedItems, id)
			continue
		}

		var listings []models.Listing
		if m != nil {
			doc.LastUploadTime = marketTime
			for _, l := range m.Listings {
				if sc.keepListing(l, opts.HQ) {
					listings = append(listings, l)
				}
			}
		}
		var sales []models.HistoryEntry
		if h != nil {
			doc.LastUploadTime = max(doc.LastUploadTime, historyTime)
			sales = s.window(h.Entries, sc, opts.HQ, s.cfg.HistoryMaxEntries)
		}

		doc.PriceStats = priceStats(listings, sales)
		doc.SaleStats = saleStats(sales, now)
		doc.SaleStats.setHistograms(listingQuantities(listings))

		shown := listings
		if opts.Listings > 0 && len(shown) > opts.Listings {
			shown = shown[:opts.Listings]
		}
		for _, l := range shown {
			doc.Listings = append(doc.Listings, viewListing(l, sc.perWorld))
		}
		for _, e := range sales[:min(len(sales), opts.Entries)] {
			doc.RecentHistory = append(doc.RecentHistory, viewEntry(e, sc.perWorld))
		}

		resp.Items = append(resp.Items, doc)
	}

	return resp, nil
}

// History returns up to maxEntries of the newest sales of each requested
// item, never more than the configured read cap. maxEntries <= 0 uses the cap.
func (s *Service) History(ctx context.Context, sel worlds.Selector, itemIDs []int, maxEntries int) (Response[HistoryDocument], error) {
	sc, err := s.scopeOf(sel)
	if err != nil {
		return Response[HistoryDocument]{}, err
	}
	if maxEntries <= 0 || maxEntries > s.cfg.HistoryMaxEntries {
		maxEntries = s.cfg.HistoryMaxEntries
	}

	histories, err := s.findHistory(ctx, sc.key, itemIDs)
	if err != nil {
		return Response[HistoryDocument]{}, err
	}
	byItem := make(map[int]*models.HistoryRecord, len(histories))
	for i := range histories {
		byItem[histories[i].ItemID] = &histories[i]
	}

	worldID, dcName := tag(sel)
	resp := Response[HistoryDocument]{
		ItemIDs:         itemIDs,
		Items:           make([]HistoryDocument, 0, len(itemIDs)),
		UnresolvedItems: []int{},
		WorldID:         worldID,
		DCName:          dcName,
	}
	now := s.now()

	for _, id := range itemIDs {
		doc := HistoryDocument{
			ItemID:  id,
			WorldID: worldID,
			DCName:  dcName,
			Entries: []HistoryView{},
		}

		h := byItem[id]
		var uploaded int64
		if h != nil {
			uploaded = sc.uploadTime(h.WorldUploads, h.LastUploadTime)
		}
		if uploaded == 0 {
			doc.SaleStats.setHistograms(nil, nil, nil)
			resp.Items = append(resp.Items, doc)
			resp.UnresolvedItems = append(resp.UnresolvedItems, id)
			continue
		}

		sales := s.window(h.Entries, sc, nil, maxEntries)
		doc.LastUploadTime = uploaded
		doc.SaleStats = saleStats(sales, now)
		doc.SaleStats.setHistograms(saleQuantities(sales))
		for _, e := range sales {
			doc.Entries = append(doc.Entries, viewEntry(e, sc.perWorld))
		}

		resp.Items = append(resp.Items, doc)
	}

	return resp, nil
}

// window filters stored sales to the scope, orders them newest first and
// truncates to limit.
func (s *Service) window(entries []models.HistoryEntry, sc scope, hq *bool, limit int) []models.HistoryEntry {
	out := make([]models.HistoryEntry, 0, len(entries))
	for _, e := range entries {
		if sc.keepEntry(e, hq) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp > out[j].Timestamp })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
