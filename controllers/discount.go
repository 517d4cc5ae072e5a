package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/salonhub/salon-booking-api/dto"
	"github.com/salonhub/salon-booking-api/store"
	"github.com/salonhub/salon-booking-api/utils"
)

// GetDiscounts lists every promotional discount.
func GetDiscounts(s *store.DiscountStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(s.All())
	}
}

// CreateDiscount adds a discount record.
func CreateDiscount(s *store.DiscountStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(dto.DiscountRequest)
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

		created, err := s.Add(c.Context(), store.Discount{
			Name:       req.Name,
			Type:       store.DiscountType(req.Type),
			Value:      req.Value,
			Services:   req.Services,
			Categories: req.Categories,
			Tiers:      req.Tiers,
			ValidFrom:  req.ValidFrom,
			ValidUntil: req.ValidUntil,
		})
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to save discount",
				Error:   err.Error(),
			})
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	}
}

// UpdateDiscount replaces a discount record by id.
func UpdateDiscount(s *store.DiscountStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(dto.DiscountRequest)
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

		d := store.Discount{
			ID:         c.Params("id"),
			Name:       req.Name,
			Type:       store.DiscountType(req.Type),
			Value:      req.Value,
			Services:   req.Services,
			Categories: req.Categories,
			Tiers:      req.Tiers,
			ValidFrom:  req.ValidFrom,
			ValidUntil: req.ValidUntil,
		}
		if err := s.Update(c.Context(), d); err != nil {
			if errors.Is(err, store.ErrRecordNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
					Message: "Discount not found",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to update discount",
				Error:   err.Error(),
			})
		}
		return c.JSON(d)
	}
}

// DeleteDiscount removes a discount record by id.
func DeleteDiscount(s *store.DiscountStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := s.Delete(c.Context(), c.Params("id")); err != nil {
			if errors.Is(err, store.ErrRecordNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
					Message: "Discount not found",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to delete discount",
				Error:   err.Error(),
			})
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// QuoteDiscount resolves the best applicable discount for a price.
func QuoteDiscount(s *store.DiscountStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		price, err := strconv.ParseFloat(c.Query("price"), 64)
		if err != nil || price < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid or missing price query parameter",
			})
		}

		quote := s.CalculateDiscountedPrice(
			price,
			c.Query("service"),
			c.Query("category"),
			c.Query("tier"),
		)
		return c.JSON(quote)
	}
}
