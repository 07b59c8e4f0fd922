package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"representantes/internal/config"
)

// Response returns the handlers that shape every response, outermost first:
// CORS, compression, ETag and Cache-Control.
func Response(cfg config.HTTPConfig) []fiber.Handler {
	hs := []fiber.Handler{
		cors.New(cors.Config{
			AllowOrigins:  cfg.CORSAllowOrigins,
			AllowHeaders:  cfg.CORSAllowHeaders,
			ExposeHeaders: RequestIDHeader,
		}),
	}
	if level := compress.Level(cfg.CompressLevel); level != compress.LevelDisabled {
		hs = append(hs, compress.New(compress.Config{Level: level}))
	}
	if cfg.ETag {
		hs = append(hs, etag.New())
	}
	return append(hs, CacheControl(time.Duration(cfg.CacheMaxAgeSec)*time.Second))
}

// CacheControl sets Cache-Control on successful GET and HEAD responses that
// did not set one. A zero maxAge asks clients to revalidate every time.
func CacheControl(maxAge time.Duration) fiber.Handler {
	value := "no-cache"
	if secs := int(maxAge / time.Second); secs > 0 {
		value = "public, max-age=" + strconv.Itoa(secs)
	}

	return func(c *fiber.Ctx) error {
		if err := c.Next(); err != nil {
			return err
		}
		if c.Method() != fiber.MethodGet && c.Method() != fiber.MethodHead {
			return nil
		}
		status := c.Response().StatusCode()
		if (status < 200 || status > 299) && status != fiber.StatusNotModified {
			return nil
		}
		if len(c.Response().Header.Peek(fiber.HeaderCacheControl)) == 0 {
			c.Set(fiber.HeaderCacheControl, value)
		}
		return nil
	}
}
