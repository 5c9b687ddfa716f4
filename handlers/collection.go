// handlers/collection.go
package handlers

import (
	"memory-match-system/middleware"
	"memory-match-system/services"

	"github.com/gofiber/fiber/v2"
)

type collectionRequest struct {
	Card1ID    uint `json:"card1Id"`
	Card2ID    uint `json:"card2Id"`
	GameModeID uint `json:"gameModeId"`
}

func SetupCollectionRoutes(app *fiber.App, collectionService *services.CollectionService) {
	coll := app.Group("/collection", middleware.UserContextMiddleware())

	coll.Get("/", func(c *fiber.Ctx) error {
		entries, err := collectionService.List(currentUserID(c))
		if err != nil {
			return failErr(c, err)
		}
		return ok(c, entries)
	})

	coll.Post("/", func(c *fiber.Ctx) error {
		req, errMsg := parseCollectionBody(c)
		if errMsg != "" {
			return fail(c, fiber.StatusBadRequest, errMsg)
		}
		entry, err := collectionService.Add(currentUserID(c), req.Card1ID, req.Card2ID, req.GameModeID)
		if err != nil {
			return failErr(c, err)
		}
		return ok(c, entry)
	})

	coll.Delete("/", func(c *fiber.Ctx) error {
		req, errMsg := parseCollectionBody(c)
		if errMsg != "" {
			return fail(c, fiber.StatusBadRequest, errMsg)
		}
		if err := collectionService.Remove(currentUserID(c), req.Card1ID, req.Card2ID, req.GameModeID); err != nil {
			return failErr(c, err)
		}
		return okMsg(c, nil, "Removed successfully")
	})

	coll.Delete("/clear", func(c *fiber.Ctx) error {
		if err := collectionService.Clear(currentUserID(c)); err != nil {
			return failErr(c, err)
		}
		return okMsg(c, nil, "All items cleared from collection")
	})
}

func parseCollectionBody(c *fiber.Ctx) (collectionRequest, string) {
	var req collectionRequest
	if err := c.BodyParser(&req); err != nil {
		return req, "Invalid input format"
	}
	if req.Card1ID == 0 || req.Card2ID == 0 || req.GameModeID == 0 {
		return req, "Missing card IDs or gameModeId"
	}
	return req, ""
}
