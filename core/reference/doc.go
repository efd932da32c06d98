// Package reference fetches the static reference files the service needs at
// startup: the world table (World.csv) and the datacenter membership table
// (dc.json).
//
// # Sources
//
//   - http: files served under a base URL, fetched with resty.
//   - s3:   objects in the configured storage bucket (core/storage).
//   - file: a local directory, for development and air-gapped deployments.
//
// All sources implement Fetcher so the loader in core/worlds does not care
// where the bytes come from.
package reference
