package handler

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"shelterapi/internal/http/middleware"
	"shelterapi/internal/model"
	"shelterapi/internal/repository"
	"shelterapi/internal/service"
)

type activityInput struct {
	AnimalID string `json:"animal_id"`
	SlotID   string `json:"slot_id"`
}

// createActivity is the shared handler behind the three booking
// endpoints; book is the kind-specific service call.
func createActivity(book func(ctx context.Context, actorID, animalID, slotID string) (*model.Activity, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in activityInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "cannot parse request body")
		}
		act, err := book(c.UserContext(), middleware.ActorID(c), in.AnimalID, in.SlotID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(act)
	}
}

// CreateOwnershipActivity books a post-adoption visit for the owner.
func CreateOwnershipActivity(svc service.ActivityService) fiber.Handler {
	return createActivity(svc.CreateOwnership)
}

// CreateFosteringActivity books a visit under an active fostering.
func CreateFosteringActivity(svc service.ActivityService) fiber.Handler {
	return createActivity(svc.CreateFostering)
}

// CreateVisitActivity books a get-to-know visit.
func CreateVisitActivity(svc service.ActivityService) fiber.Handler {
	return createActivity(svc.CreateVisit)
}

// CancelActivity cancels the actor's own booking and frees the slot.
func CancelActivity(svc service.ActivityService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		act, err := svc.Cancel(c.UserContext(), middleware.ActorID(c), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(act)
	}
}

// CompleteActivity marks a started activity done (shelter admin only).
func CompleteActivity(svc service.ActivityService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		act, err := svc.Complete(c.UserContext(), middleware.ActorID(c), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(act)
	}
}

func ListActivities(svc service.ActivityService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}
		f := repository.ActivityFilter{
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
