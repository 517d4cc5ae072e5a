package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/salonhub/salon-booking-api/db"
	"github.com/salonhub/salon-booking-api/dto"
	"github.com/salonhub/salon-booking-api/models"
	"github.com/salonhub/salon-booking-api/utils"
)

// GetAllServices returns every service with its category.
func GetAllServices(c *fiber.Ctx) error {
	var services []models.Service
	if err := db.DB.Preload("Category").Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch services",
			Error:   err.Error(),
		})
	}
	return c.JSON(services)
}

// GetServicesByCategory returns the services under one category.
func GetServicesByCategory(c *fiber.Ctx) error {
	categoryID := c.Params("categoryId")

	var category models.Category
	if err := db.DB.First(&category, categoryID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Category not found",
			Error:   err.Error(),
		})
	}

	var services []models.Service
	if err := db.DB.Where("category_id = ?", category.ID).Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch services",
			Error:   err.Error(),
		})
	}
	return c.JSON(services)
}

// GetService returns one service by id.
func GetService(c *fiber.Ctx) error {
	id := c.Params("id")
	var service models.Service
	if err := db.DB.Preload("Category").First(&service, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(service)
}

// CreateService creates a service attached to its parent category.
func CreateService(c *fiber.Ctx) error {
	req := new(dto.CreateServiceRequest)
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

	var category models.Category
	if err := db.DB.First(&category, req.CategoryID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Category not found",
			Error:   err.Error(),
		})
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	service := models.Service{
		Name:              req.Name,
		Description:       req.Description,
		Features:          models.StringList(req.Features),
		Price:             req.Price,
		DiscountedPrice:   req.DiscountedPrice,
		DurationInMinutes: req.DurationInMinutes,
		Image:             req.Image,
		IsAvailable:       isAvailable,
		CategoryID:        category.ID,
		Category:          category,
	}

	if err := db.DB.Create(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create service",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(service)
}

// UpdateService patches a service, re-resolving the category when moved.
func UpdateService(c *fiber.Ctx) error {
	id := c.Params("id")
	req := new(dto.UpdateServiceRequest)
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

	var service models.Service
	if err := db.DB.First(&service, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
			Error:   err.Error(),
		})
	}

	if req.CategoryID != 0 && req.CategoryID != service.CategoryID {
		var category models.Category
		if err := db.DB.First(&category, req.CategoryID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Category not found",
				Error:   err.Error(),
			})
		}
		service.CategoryID = category.ID
	}

	if req.Name != "" {
		service.Name = req.Name
	}
	if req.Description != "" {
		service.Description = req.Description
	}
	if req.Features != nil {
		service.Features = models.StringList(req.Features)
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.DiscountedPrice != nil {
		service.DiscountedPrice = *req.DiscountedPrice
	}
	if req.DurationInMinutes != nil {
		service.DurationInMinutes = *req.DurationInMinutes
	}
	if req.Image != "" {
		service.Image = req.Image
	}
	if req.IsAvailable != nil {
		service.IsAvailable = *req.IsAvailable
	}

	if err := db.DB.Save(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update service",
			Error:   err.Error(),
		})
	}
	return c.JSON(service)
}

// DeleteService removes a service by id.
func DeleteService(c *fiber.Ctx) error {
	id := c.Params("id")
	var service models.Service
	if err := db.DB.First(&service, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Delete(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete service",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UploadServiceImage uploads the multipart "image" file to Cloudinary and
// stores the returned URL on the service.
func UploadServiceImage(c *fiber.Ctx) error {
	id := c.Params("id")
	var service models.Service
	if err := db.DB.First(&service, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
			Error:   err.Error(),
		})
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Missing image file",
			Error:   err.Error(),
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to read image file",
			Error:   err.Error(),
		})
	}
	defer file.Close()

	url, err := utils.UploadServiceImage(file, fmt.Sprintf("service-%d", service.ID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to upload image",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Model(&service).Update("image", url).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save image URL",
			Error:   err.Error(),
		})
	}

	service.Image = url
	return c.JSON(service)
}
