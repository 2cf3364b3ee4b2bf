package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Recovery - восстановление после паники; стек печатается только в development
func Recovery(env string) fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: env == "development",
	})
}
