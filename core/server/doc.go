// Package server holds the HTTP server configuration.
//
// Config carries the listen port, body limit, I/O timeouts and the docs toggle,
// and FiberConfig turns it into the fiber.Config used by the start command.
// ErrorHandler is the application-wide error renderer: rejections raised as
// *fiber.Error keep their status, everything else is reported as a 500, and
// both produce a {"error": "..."} body.
package server
