package upload

import "github.com/gofiber/fiber/v2"

var (
	// ErrUnauthorized covers missing, unknown and blacklisted credentials alike.
	ErrUnauthorized = fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	// ErrUnsupportedPayload rejects wrong content types and malformed bodies.
	ErrUnsupportedPayload = fiber.NewError(fiber.StatusUnsupportedMediaType, "unsupported payload")
	// ErrNoUploadData rejects bodies carrying neither listings nor entries.
	ErrNoUploadData = fiber.NewError(fiber.StatusTeapot, "upload contains neither listings nor entries")
)
