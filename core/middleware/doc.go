// Package middleware groups the HTTP middleware of the Fiber application.
//
// # Components
//
//   - rayid: assigns a Request ID (RayID) to every request, stores it in
//     c.Locals("ray_id") and echoes it in the X-Ray-ID response header.
//   - requestlog: logs method, path and client IP through zap, tagged with
//     the RayID, and logs handler errors.
//
// Both are registered globally in the start command, rayid first.
package middleware
