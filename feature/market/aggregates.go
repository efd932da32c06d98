package market

import (
	"math"
	"strconv"
	"time"

	"market-board/feature/market/models"
)

const week = 7 * 24 * time.Hour

// PriceStats are the derived price figures attached to query documents.
type PriceStats struct {
	CurrentAveragePrice   float64 `json:"currentAveragePrice"`
	CurrentAveragePriceNQ float64 `json:"currentAveragePriceNQ"`
	CurrentAveragePriceHQ float64 `json:"currentAveragePriceHQ"`
	AveragePrice          float64 `json:"averagePrice"`
	AveragePriceNQ        float64 `json:"averagePriceNQ"`
	AveragePriceHQ        float64 `json:"averagePriceHQ"`
	MinPrice              int64   `json:"minPrice"`
	MinPriceNQ            int64   `json:"minPriceNQ"`
	MinPriceHQ            int64   `json:"minPriceHQ"`
	MaxPrice              int64   `json:"maxPrice"`
	MaxPriceNQ            int64   `json:"maxPriceNQ"`
	MaxPriceHQ            int64   `json:"maxPriceHQ"`
}

// SaleStats describe sale velocity and lot sizes.
type SaleStats struct {
	RegularSaleVelocity  float64        `json:"regularSaleVelocity"`
	NQSaleVelocity       float64        `json:"nqSaleVelocity"`
	HQSaleVelocity       float64        `json:"hqSaleVelocity"`
	StackSizeHistogram   map[string]int `json:"stackSizeHistogram"`
	StackSizeHistogramNQ map[string]int `json:"stackSizeHistogramNQ"`
	StackSizeHistogramHQ map[string]int `json:"stackSizeHistogramHQ"`
}

// split partitions values by the hq flag.
func split[T any](items []T, hq func(T) bool, value func(T) int64) (all, nq, hqs []int64) {
	all = make([]int64, 0, len(items))
	for _, it := range items {
		v := value(it)
		all = append(all, v)
		if hq(it) {
			hqs = append(hqs, v)
		} else {
			nq = append(nq, v)
		}
	}
	return all, nq, hqs
}

func listingPrices(ls []models.Listing) (all, nq, hq []int64) {
	return split(ls,
		func(l models.Listing) bool { return l.HQ },
		func(l models.Listing) int64 { return l.PricePerUnit })
}

func listingQuantities(ls []models.Listing) (all, nq, hq []int64) {
	return split(ls,
		func(l models.Listing) bool { return l.HQ },
		func(l models.Listing) int64 { return l.Quantity })
}

func salePrices(es []models.HistoryEntry) (all, nq, hq []int64) {
	return split(es,
		func(e models.HistoryEntry) bool { return e.HQ },
		func(e models.HistoryEntry) int64 { return e.PricePerUnit })
}

func saleTimestamps(es []models.HistoryEntry) (all, nq, hq []int64) {
	return split(es,
		func(e models.HistoryEntry) bool { return e.HQ },
		func(e models.HistoryEntry) int64 { return e.Timestamp })
}

func saleQuantities(es []models.HistoryEntry) (all, nq, hq []int64) {
	return split(es,
		func(e models.HistoryEntry) bool { return e.HQ },
		func(e models.HistoryEntry) int64 { return e.Quantity })
}

// priceStats computes current figures from listings and averages from sales.
func priceStats(listings []models.Listing, sales []models.HistoryEntry) PriceStats {
	cur, curNQ, curHQ := listingPrices(listings)
	sold, soldNQ, soldHQ := salePrices(sales)
	return PriceStats{
		CurrentAveragePrice:   trimmedAverage(cur),
		CurrentAveragePriceNQ: trimmedAverage(curNQ),
		CurrentAveragePriceHQ: trimmedAverage(curHQ),
		AveragePrice:          trimmedAverage(sold),
		AveragePriceNQ:        trimmedAverage(soldNQ),
		AveragePriceHQ:        trimmedAverage(soldHQ),
		MinPrice:              minOf(cur),
		MinPriceNQ:            minOf(curNQ),
		MinPriceHQ:            minOf(curHQ),
		MaxPrice:              maxOf(cur),
		MaxPriceNQ:            maxOf(curNQ),
		MaxPriceHQ:            maxOf(curHQ),
	}
}

// saleStats computes sale velocities over the week before now.
func saleStats(sales []models.HistoryEntry, now time.Time) SaleStats {
	ts, tsNQ, tsHQ := saleTimestamps(sales)
	return SaleStats{
		RegularSaleVelocity: saleVelocity(ts, now),
		NQSaleVelocity:      saleVelocity(tsNQ, now),
		HQSaleVelocity:      saleVelocity(tsHQ, now),
	}
}

// setHistograms fills the stack size histograms from lot sizes.
func (st *SaleStats) setHistograms(all, nq, hq []int64) {
	st.StackSizeHistogram = histogram(all)
	st.StackSizeHistogramNQ = histogram(nq)
	st.StackSizeHistogramHQ = histogram(hq)
}

func average(values []int64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += float64(v)
	}
	return sum / float64(len(values))
}

// standardDeviation is the sample standard deviation, 0 below two values.
func standardDeviation(values []int64) float64 {
	if len(values) < 2 {
		return 0
	}
	mean := average(values)
	var sumSq float64
	for _, v := range values {
		d := float64(v) - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(values)-1))
}

// trimmedAverage averages the values lying strictly within three standard
// deviations of the mean. With fewer than two values it is the plain mean.
//
// The kept values are divided by how many were kept. Dividing their sum by
// len(values) instead, as older market boards did, biases the average low by
// the fraction of outliers dropped.
func trimmedAverage(values []int64) float64 {
	sd := standardDeviation(values)
	if sd == 0 {
		return average(values)
	}
	mean := average(values)
	var sum float64
	var n int
	for _, v := range values {
		f := float64(v)
		if f < mean+3*sd && f > mean-3*sd {
			sum += f
			n++
		}
	}
	if n == 0 {
		return mean
	}
	return sum / float64(n)
}

// saleVelocity is the number of sales per day over the week before now.
// Timestamps are epoch seconds.
func saleVelocity(timestamps []int64, now time.Time) float64 {
	cutoff := now.Add(-week).Unix()
	var n int
	for _, ts := range timestamps {
		if ts >= cutoff {
			n++
		}
	}
	return float64(n) / 7
}

// histogram counts occurrences of each value.
func histogram(values []int64) map[string]int {
	out := make(map[string]int, len(values))
	for _, v := range values {
		out[strconv.FormatInt(v, 10)]++
	}
	return out
}

func minOf(values []int64) int64 {
	if len(values) == 0 {
		return 0
	}
	m := values[0]
	for _, v := range values[1:] {
		m = min(m, v)
	}
	return m
}

func maxOf(values []int64) int64 {
	if len(values) == 0 {
		return 0
	}
	m := values[0]
	for _, v := range values[1:] {
		m = max(m, v)
	}
	return m
}
