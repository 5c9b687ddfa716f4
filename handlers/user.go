// handlers/user.go
package handlers

import (
	"errors"
	"os"
	"time"

	"memory-match-system/middleware"
	"memory-match-system/models"
	"memory-match-system/services"
	"memory-match-system/utils"

	"github.com/gofiber/fiber/v2"
)

const (
	sessionTTL  = time.Hour
	rememberTTL = 7 * 24 * time.Hour
)

type userDTO struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

func publicUser(u *models.User) userDTO {
	return userDTO{ID: u.ID, Username: u.Username}
}

func SetupUserRoutes(app *fiber.App, userService *services.UserService) {
	user := app.Group("/user")

	user.Post("/signup", func(c *fiber.Ctx) error {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fail(c, fiber.StatusBadRequest, "Invalid input format")
		}
		if req.Username == "" || req.Password == "" {
			return fail(c, fiber.StatusBadRequest, "Missing username or password")
		}

		u, err := userService.Signup(req.Username, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrConflict) {
				return fail(c, fiber.StatusConflict, "Username already registered")
			}
			return failErr(c, err)
		}

		token, err := utils.GenerateToken(u.ID, sessionTTL)
		if err != nil {
			return failErr(c, err)
		}
		setSessionCookie(c, token, sessionTTL)

		return c.Status(fiber.StatusCreated).JSON(Response{
			Success: true,
			Data:    publicUser(u),
			Msg:     "User created successfully",
		})
	})

	user.Post("/login", func(c *fiber.Ctx) error {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
			Remember bool   `json:"remember"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fail(c, fiber.StatusBadRequest, "Invalid input format")
		}
		if req.Username == "" || req.Password == "" {
			return fail(c, fiber.StatusBadRequest, "Missing username or password")
		}

		u, err := userService.Authenticate(req.Username, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				return fail(c, fiber.StatusNotFound, "User not found")
			}
			if errors.Is(err, services.ErrInvalidCredentials) {
				return fail(c, fiber.StatusUnauthorized, "Invalid password")
			}
			return failErr(c, err)
		}

		ttl := sessionTTL
		if req.Remember {
			ttl = rememberTTL
		}
		token, err := utils.GenerateToken(u.ID, ttl)
		if err != nil {
			return failErr(c, err)
		}
		setSessionCookie(c, token, ttl)

		return okMsg(c, publicUser(u), "Login successful")
	})

	user.Post("/logout", middleware.UserContextMiddleware(), func(c *fiber.Ctx) error {
		clearSessionCookie(c)
		return okMsg(c, nil, "Logged out successfully")
	})

	user.Get("/me", middleware.UserContextMiddleware(), func(c *fiber.Ctx) error {
		u, err := userService.GetByID(currentUserID(c))
		if err != nil {
			return failErr(c, err)
		}
		return ok(c, publicUser(u))
	})
}

func setSessionCookie(c *fiber.Ctx, token string, ttl time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		Expires:  time.Now().Add(ttl),
		HTTPOnly: true,
		Secure:   os.Getenv("APP_ENV") == "production",
		SameSite: "Strict",
	})
}

func clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   os.Getenv("APP_ENV") == "production",
		SameSite: "Strict",
	})
}
