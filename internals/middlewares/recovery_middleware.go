package middlewares

import (
	"log"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// RecoveryMiddleware mengubah panic di handler menjadi response 500 supaya
// proses tidak ikut mati. Stack trace dicetak ke log server, bukan ke client.
func RecoveryMiddleware() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			log.Printf("[ERROR] Panic di %s %s: %v\n%s", c.Method(), c.Path(), e, debug.Stack())
		},
	})
}
