// Package upload accepts market data from trusted scraping clients.
//
// # Pipeline
//
// A request passes ValidatePreCast (API key present, JSON content type), is
// authenticated against the trusted sources, parsed into a Payload and
// converted by Validate into a ListingsUpload or an EntriesUpload. Identity
// fields are hashed during conversion, so raw IDs never reach the aggregator.
//
// # Rejections
//
//   - 401 ErrUnauthorized: missing, unknown or blacklisted credential
//   - 415 ErrUnsupportedPayload: not JSON, malformed body, missing IDs, world out of range
//   - 418 ErrNoUploadData: neither listings nor entries
//
// # Side effects
//
// After the market write the recency index, the daily counter, the source
// counter and the content identities are updated one by one. A failing side
// effect is logged and the upload still succeeds.
package upload
