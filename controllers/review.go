package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/salonhub/salon-booking-api/dto"
	"github.com/salonhub/salon-booking-api/store"
	"github.com/salonhub/salon-booking-api/utils"
)

// GetReviews lists reviews, optionally filtered by moderation status.
func GetReviews(s *store.ReviewStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status := c.Query("status")
		if status == "" {
			return c.JSON(s.All())
		}
		if !store.IsValidReviewStatus(store.ReviewStatus(status)) {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Unknown review status: " + status,
			})
		}
		return c.JSON(s.ByStatus(store.ReviewStatus(status)))
	}
}

// CreateReview submits customer feedback; it enters moderation as pending.
func CreateReview(s *store.ReviewStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(dto.CreateReviewRequest)
		if err := c.BodyParser(req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Cannot parse JSON",
				Error:   err.Error(),
			})
		}
		if errs := dto.Validate(req); errs != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"errors":  errs,
			})
		}

		created, err := s.Add(c.Context(), store.Review{
			AppointmentID: req.AppointmentID,
			CustomerName:  req.CustomerName,
			Rating:        req.Rating,
			Comment:       req.Comment,
		})
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to save review",
				Error:   err.Error(),
			})
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	}
}

// ModerateReview sets a review's moderation status.
func ModerateReview(s *store.ReviewStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(dto.ModerateReviewRequest)
		if err := c.BodyParser(req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Cannot parse JSON",
				Error:   err.Error(),
			})
		}
		if errs := dto.Validate(req); errs != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"errors":  errs,
			})
		}

		err := s.SetStatus(c.Context(), c.Params("id"), store.ReviewStatus(req.Status))
		if err != nil {
			if errors.Is(err, store.ErrRecordNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
					Message: "Review not found",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to moderate review",
				Error:   err.Error(),
			})
		}
		return c.JSON(fiber.Map{
			"id":     c.Params("id"),
			"status": req.Status,
		})
	}
}

// DeleteReview removes a review by id.
func DeleteReview(s *store.ReviewStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := s.Delete(c.Context(), c.Params("id")); err != nil {
			if errors.Is(err, store.ErrRecordNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
					Message: "Review not found",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to delete review",
				Error:   err.Error(),
			})
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
