package handlers

import (
	"errors"

	"memory-match-system/services"

	"github.com/gofiber/fiber/v2"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Msg     string      `json:"msg,omitempty"`
}

func ok(c *fiber.Ctx, data interface{}) error {
	return c.JSON(Response{Success: true, Data: data})
}

func okMsg(c *fiber.Ctx, data interface{}, msg string) error {
	return c.JSON(Response{Success: true, Data: data, Msg: msg})
}

func fail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(Response{Success: false, Msg: msg})
}

// failErr maps service errors onto the status taxonomy: 404 unknown records,
// 409 duplicates, 401 bad credentials, 500 everything else (raw detail in
// msg — this is an internal tool, not a hardened public surface).
func failErr(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return fail(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrConflict):
		return fail(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		return fail(c, fiber.StatusUnauthorized, err.Error())
	default:
		return fail(c, fiber.StatusInternalServerError, "Internal Server Error: "+err.Error())
	}
}

func currentUserID(c *fiber.Ctx) uint {
	id, _ := c.Locals("user_id").(uint)
	return id
}
