// handlers/game.go
package handlers

import (
	"strconv"

	"memory-match-system/middleware"
	"memory-match-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupGameRoutes(app *fiber.App, gameService *services.GameService) {
	game := app.Group("/game", middleware.UserContextMiddleware())

	game.Post("/start", func(c *fiber.Ctx) error {
		round, err := gameService.StartRound(currentUserID(c))
		if err != nil {
			return failErr(c, err)
		}
		return okMsg(c, fiber.Map{
			"roundId": round.ID,
			"score":   round.Score,
		}, "Game started")
	})

	game.Patch("/update", func(c *fiber.Ctx) error {
		var req struct {
			Card1ID uint `json:"card1Id"`
			Card2ID uint `json:"card2Id"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fail(c, fiber.StatusBadRequest, "Invalid input format")
		}
		if req.Card1ID == 0 || req.Card2ID == 0 {
			return fail(c, fiber.StatusBadRequest, "Invalid input format")
		}

		round, isMatch, err := gameService.ApplyResult(currentUserID(c), req.Card1ID, req.Card2ID)
		if err != nil {
			return failErr(c, err)
		}
		return ok(c, fiber.Map{
			"roundId": round.ID,
			"score":   round.Score,
			"isMatch": isMatch,
		})
	})

	game.Post("/finish", func(c *fiber.Ctx) error {
		summary, err := gameService.FinishRound(currentUserID(c))
		if err != nil {
			return failErr(c, err)
		}
		return okMsg(c, summary, "Game finished and score reset")
	})

	game.Get("/modes", func(c *fiber.Ctx) error {
		modes, err := gameService.GameModes()
		if err != nil {
			return failErr(c, err)
		}
		return ok(c, modes)
	})

	game.Get("/cards", func(c *fiber.Ctx) error {
		// A mode slug works too: /game/cards?gameMode=java
		if modeSlug := c.Query("gameMode"); modeSlug != "" {
			cards, err := gameService.CardsByModeSlug(modeSlug)
			if err != nil {
				return failErr(c, err)
			}
			return ok(c, cards)
		}

		gameModeID, err := strconv.Atoi(c.Query("gameModeId"))
		if err != nil || gameModeID < 1 {
			return fail(c, fiber.StatusBadRequest, "Invalid or missing gameModeId")
		}
		cards, err := gameService.CardsByGameMode(uint(gameModeID))
		if err != nil {
			return failErr(c, err)
		}
		return ok(c, cards)
	})

	game.Get("/card/:cardId", func(c *fiber.Ctx) error {
		cardID, err := c.ParamsInt("cardId")
		if err != nil || cardID < 1 {
			return fail(c, fiber.StatusBadRequest, "Invalid cardId")
		}
		card, err := gameService.CardDetail(uint(cardID))
		if err != nil {
			return failErr(c, err)
		}
		return ok(c, card)
	})
}
