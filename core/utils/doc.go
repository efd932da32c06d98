// Package utils provides common utility functions for the market-board application.
// It includes the tolerant conversions used to normalize client uploads, where the
// same field may arrive as a native JSON value, a number or a string depending on
// which scraping client produced it.
package utils
