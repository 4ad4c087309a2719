package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"shelterapi/internal/http/middleware"
	"shelterapi/internal/service"
)

// AddFavorite marks an animal as a favorite of the acting user.
// Adding an existing favorite is a no-op.
func AddFavorite(svc service.FavoriteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		animalID := c.Params("id")
		if _, err := uuid.Parse(animalID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Add(c.UserContext(), middleware.ActorID(c), animalID); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// RemoveFavorite unmarks a favorite. Removing a non-favorite is a no-op.
func RemoveFavorite(svc service.FavoriteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		animalID := c.Params("id")
		if _, err := uuid.Parse(animalID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Remove(c.UserContext(), middleware.ActorID(c), animalID); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ListFavorites returns the animals a user has favorited.
func ListFavorites(svc service.FavoriteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Params("id")
		if _, err := uuid.Parse(userID); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}
		res, err := svc.ListByUser(c.UserContext(), userID, limit, offset)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}
