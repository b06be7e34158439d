// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mia-platform/diaglog/internal/diag"
)

const (
	TextPath    = "/lines/text"
	IntegerPath = "/lines/integer"
	PointerPath = "/lines/pointer"
	ErrorPath   = "/lines/error"

	HealthzPath = statusPrefix + "healthz"
	ReadyPath   = statusPrefix + "ready"
)

type statusResponse struct {
	Status  string `json:"status"`
	Name    string `json:"name"`
	Version string `json:"version"`
}

func statusRoutes(app *fiber.App, name, version string) {
	handler := func(c *fiber.Ctx) error {
		return c.Status(http.StatusOK).JSON(statusResponse{
			Status:  "OK",
			Name:    name,
			Version: version,
		})
	}

	app.Get(HealthzPath, handler)
	app.Get(ReadyPath, handler)
}

func lineRoutes(app *fiber.App, diagLogger diag.Logger) {
	app.Post(TextPath, func(c *fiber.Ctx) error {
		diagLogger.Text(string(c.Body()))
		return c.SendStatus(http.StatusNoContent)
	})

	app.Post(IntegerPath, func(c *fiber.Ctx) error {
		value, err := strconv.Atoi(strings.TrimSpace(string(c.Body())))
		if err != nil {
			return badRequest(c, "body is not a valid integer")
		}

		diagLogger.Integer(value)
		return c.SendStatus(http.StatusNoContent)
	})

	app.Post(PointerPath, func(c *fiber.Ctx) error {
		address, err := diag.ParseAddress(string(c.Body()))
		if err != nil {
			return badRequest(c, err.Error())
		}

		diagLogger.Pointer(address)
		return c.SendStatus(http.StatusNoContent)
	})

	app.Post(ErrorPath, func(c *fiber.Ctx) error {
		diagLogger.Error(string(c.Body()))
		return c.SendStatus(http.StatusNoContent)
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusBadRequest).JSON(fiber.Map{
		"statusCode": http.StatusBadRequest,
		"error":      http.StatusText(http.StatusBadRequest),
		"message":    message,
	})
}
