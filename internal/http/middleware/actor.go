package middleware

import "github.com/gofiber/fiber/v2"

const (
	// ActorIDHeader identifies the acting user. Authentication happens
	// upstream; this service trusts the header.
	ActorIDHeader = "X-User-ID"
	// ActorIDLocalKey is the key used to store the actor ID in Fiber's context locals.
	ActorIDLocalKey = "actor_id"
)

// Actor copies the X-User-ID header into context locals so handlers can
// read the acting user without touching the request again.
func Actor() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if id := c.Get(ActorIDHeader); id != "" {
			c.Locals(ActorIDLocalKey, id)
		}
		return c.Next()
	}
}

// ActorID returns the acting user ID stored by Actor, or "".
func ActorID(c *fiber.Ctx) string {
	if v := c.Locals(ActorIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
