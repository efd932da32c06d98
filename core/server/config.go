package server

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// BodyLimit is the largest accepted request body in bytes.
	BodyLimit int `mapstructure:"body_limit" default:"1048576"`
	// ReadTimeoutSeconds bounds reading a request, zero disables it.
	ReadTimeoutSeconds int `mapstructure:"read_timeout_seconds" default:"30"`
	// WriteTimeoutSeconds bounds writing a response, zero disables it.
	WriteTimeoutSeconds int `mapstructure:"write_timeout_seconds" default:"30"`
	// Docs toggles the /swagger routes.
	Docs bool `mapstructure:"docs" default:"true"`
}

// FiberConfig translates the server settings into a fiber.Config.
func (c Config) FiberConfig() fiber.Config {
	return fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             c.BodyLimit,
		ReadTimeout:           time.Duration(c.ReadTimeoutSeconds) * time.Second,
		WriteTimeout:          time.Duration(c.WriteTimeoutSeconds) * time.Second,
		ErrorHandler:          ErrorHandler,
	}
}

// ErrorHandler renders every error as {"error": message}. *fiber.Error keeps
// its status code, anything else becomes a 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
