// Package sources holds the upload credentials of trusted scraping clients and
// the uploader blacklist.
//
// API keys are stored as sha512 hashes and uploader IDs as sha256 hashes, so
// neither table contains a usable secret. Keys are provisioned from the CLI
// (see cmd/source.go) and checked by the upload feature on every request.
package sources
