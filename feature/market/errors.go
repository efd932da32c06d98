package market

import "github.com/gofiber/fiber/v2"

var (
	// ErrBadItemList rejects item lists that are empty, too long or not integers.
	ErrBadItemList = fiber.NewError(fiber.StatusBadRequest, "item IDs must be a comma separated list of integers")
	// ErrNoScope rejects queries without a world or datacenter.
	ErrNoScope = fiber.NewError(fiber.StatusBadRequest, "a world or datacenter is required")
)
