package handler

import (
	"github.com/gofiber/fiber/v2"

	"portfolioapi/internal/service"
)

// ListHistory returns the public timeline: every history record except the
// section record, newest first.
func ListHistory(svc service.HistoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(items)
	}
}

// GetHistorySection returns the timeline's section description, or an empty
// string when none has been set.
func GetHistorySection(svc service.HistoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		desc, err := svc.SectionDescription(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"description": desc})
	}
}

// CreateHistory stores a new timeline record.
func CreateHistory(svc service.HistoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rec, err := svc.Create(c.UserContext(), c.Body())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(rec)
	}
}

// UpdateHistory merges the supplied keys into an existing timeline record.
func UpdateHistory(svc service.HistoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rec, err := svc.Update(c.UserContext(), c.Params("id"), c.Body())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(rec)
	}
}

// DeleteHistory removes a timeline record; absent ids still report success.
func DeleteHistory(svc service.HistoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"message": "History deleted"})
	}
}

type sectionRequest struct {
	Description string `json:"description"`
}

// UpsertHistorySection creates or updates the singleton section record.
func UpsertHistorySection(svc service.HistoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req sectionRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_PAYLOAD", "malformed section payload")
		}

		rec, err := svc.UpsertSection(c.UserContext(), req.Description)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(rec)
	}
}
