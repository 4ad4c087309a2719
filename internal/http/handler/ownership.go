package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"shelterapi/internal/http/middleware"
	"shelterapi/internal/model"
	"shelterapi/internal/repository"
	"shelterapi/internal/service"
)

// CreateOwnershipRequest files an adoption request by the acting user.
func CreateOwnershipRequest(svc service.OwnershipService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.OwnershipRequestInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "cannot parse request body")
		}
		req, err := svc.Create(c.UserContext(), middleware.ActorID(c), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(req)
	}
}

func GetOwnershipRequest(svc service.OwnershipService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		req, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(req)
	}
}

func ListOwnershipRequests(svc service.OwnershipService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}
		f := repository.OwnershipRequestFilter{
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

// UpdateOwnershipRequestStatus applies a guarded status transition.
func UpdateOwnershipRequestStatus(svc service.OwnershipService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var body struct {
			Status model.OwnershipStatus `json:"status"`
		}
		if err := c.BodyParser(&body); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "cannot parse request body")
		}
		req, err := svc.UpdateStatus(c.UserContext(), middleware.ActorID(c), id, body.Status)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(req)
	}
}

// transitionOwnershipRequest is the shared handler behind the approve
// and reject shortcuts.
func transitionOwnershipRequest(svc service.OwnershipService, next model.OwnershipStatus) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		req, err := svc.UpdateStatus(c.UserContext(), middleware.ActorID(c), id, next)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(req)
	}
}

// ApproveOwnershipRequest is sugar for the approved transition.
func ApproveOwnershipRequest(svc service.OwnershipService) fiber.Handler {
	return transitionOwnershipRequest(svc, model.OwnershipApproved)
}

// RejectOwnershipRequest is sugar for the rejected transition.
func RejectOwnershipRequest(svc service.OwnershipService) fiber.Handler {
	return transitionOwnershipRequest(svc, model.OwnershipRejected)
}
