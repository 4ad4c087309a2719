package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"shelterapi/internal/http/middleware"
	"shelterapi/internal/repository"
	"shelterapi/internal/service"
)

// CreateFostering starts foster care of an animal by the acting user.
func CreateFostering(svc service.FosteringService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in struct {
			AnimalID string `json:"animal_id"`
		}
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "cannot parse request body")
		}
		f, err := svc.Create(c.UserContext(), middleware.ActorID(c), in.AnimalID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(f)
	}
}

// EndFostering closes an active fostering and returns the animal to
// the adoptable pool.
func EndFostering(svc service.FosteringService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		f, err := svc.End(c.UserContext(), middleware.ActorID(c), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(f)
	}
}

func ListFosterings(svc service.FosteringService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}
		f := repository.FosteringFilter{
			AnimalID: c.Query("animal_id"),
			UserID:   c.Query("user_id"),
			Status:   c.Query("status"),
		}
		res, err := svc.List(c.UserContext(), f, limit, offset)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}
