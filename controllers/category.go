package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/salonhub/salon-booking-api/db"
	"github.com/salonhub/salon-booking-api/dto"
	"github.com/salonhub/salon-booking-api/models"
	"github.com/salonhub/salon-booking-api/utils"
)

// GetCategories returns all categories with their services for the storefront.
func GetCategories(c *fiber.Ctx) error {
	var categories []models.Category
	if err := db.DB.Preload("Services").Find(&categories).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch categories",
			Error:   err.Error(),
		})
	}
	return c.JSON(categories)
}

// GetAllCategories returns the bare category rows (admin dropdowns).
func GetAllCategories(c *fiber.Ctx) error {
	var categories []models.Category
	if err := db.DB.Find(&categories).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch categories",
			Error:   err.Error(),
		})
	}
	return c.JSON(categories)
}

// GetCategory returns one category by id with its services.
func GetCategory(c *fiber.Ctx) error {
	id := c.Params("id")
	var category models.Category
	if err := db.DB.Preload("Services").First(&category, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Category not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(category)
}

// CreateCategory creates a category, deriving the slug when absent.
func CreateCategory(c *fiber.Ctx) error {
	req := new(dto.CreateCategoryRequest)
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

	category := models.Category{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
	}
	if err := db.DB.Create(&category).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create category",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// UpdateCategory patches a category. A renamed category with no explicit
// slug gets a freshly derived one.
func UpdateCategory(c *fiber.Ctx) error {
	id := c.Params("id")
	req := new(dto.UpdateCategoryRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Cannot parse JSON",
			Error:   err.Error(),
		})
	}

	var category models.Category
	if err := db.DB.First(&category, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Category not found",
			Error:   err.Error(),
		})
	}

	if req.Name != "" {
		category.Name = req.Name
		if req.Slug == "" {
			category.Slug = utils.Slugify(req.Name)
		}
	}
	if req.Slug != "" {
		category.Slug = req.Slug
	}
	if req.Description != "" {
		category.Description = req.Description
	}

	if err := db.DB.Save(&category).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update category",
			Error:   err.Error(),
		})
	}
	return c.JSON(category)
}

// DeleteCategory removes a category by id.
func DeleteCategory(c *fiber.Ctx) error {
	id := c.Params("id")
	var category models.Category
	if err := db.DB.First(&category, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Category not found",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Delete(&category).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete category",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
