package controllers

import (
	"context"
	"fmt"
	"strings"

	"Backend-EaseForm/src/models"
	"Backend-EaseForm/src/qrcode"
	"Backend-EaseForm/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FormService is the part of the forms service the controller needs.
type FormService interface {
	Create(ctx context.Context, hostID primitive.ObjectID, email string, req *models.FormCreate) (*models.Form, error)
	List(ctx context.Context, hostID primitive.ObjectID) ([]models.FormListItem, error)
	Get(ctx context.Context, hostID, id primitive.ObjectID) (*models.Form, error)
	Update(ctx context.Context, hostID, id primitive.ObjectID, req *models.FormUpdate) (*models.Form, error)
	Stop(ctx context.Context, hostID, id primitive.ObjectID) (*models.Form, error)
	Delete(ctx context.Context, hostID, id primitive.ObjectID) error
}

type FormController struct {
	svc         FormService
	frontendURL string
	production  bool
}

func NewFormController(svc FormService, frontendURL string, production bool) *FormController {
	return &FormController{svc: svc, frontendURL: frontendURL, production: production}
}

// CreateForm godoc
// @Summary      Create a new form
// @Description  Create a new form owned by the authenticated host. Privacy flags are forced on.
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        body body models.FormCreate true "Form"
// @Success      201  {object}  models.Form
// @Failure      400  {object}  models.ErrorResponse
// @Failure      401  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /forms [post]
func (ctrl *FormController) CreateForm(c *fiber.Ctx) error {
	hostID, err := principalID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid principal")
	}

	var req models.FormCreate
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	form, err := ctrl.svc.Create(c.Context(), hostID, principalEmail(c), &req)
	if err != nil {
		return utils.AppError(c, err, ctrl.production)
	}

	return c.Status(fiber.StatusCreated).JSON(form)
}

// ListForms godoc
// @Summary      List the host's forms
// @Tags         forms
// @Produce      json
// @Success      200  {array}   models.FormListItem
// @Failure      401  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /forms [get]
func (ctrl *FormController) ListForms(c *fiber.Ctx) error {
	hostID, err := principalID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid principal")
	}

	items, err := ctrl.svc.List(c.Context(), hostID)
	if err != nil {
		return utils.AppError(c, err, ctrl.production)
	}
	return c.JSON(items)
}

// GetForm godoc
// @Summary      Get one owned form
// @Tags         forms
// @Produce      json
// @Param        id path string true "Form ID"
// @Success      200  {object}  models.Form
// @Failure      404  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /forms/{id} [get]
func (ctrl *FormController) GetForm(c *fiber.Ctx) error {
	hostID, err := principalID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid principal")
	}
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	form, err := ctrl.svc.Get(c.Context(), hostID, id)
	if err != nil {
		return utils.AppError(c, err, ctrl.production)
	}
	return c.JSON(form)
}

// UpdateForm godoc
// @Summary      Update an owned form
// @Description  Updates title, description, questions, isActive. Never alters the closed flag.
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        id path string true "Form ID"
// @Param        body body models.FormUpdate true "Changes"
// @Success      200  {object}  models.Form
// @Failure      404  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /forms/{id} [put]
func (ctrl *FormController) UpdateForm(c *fiber.Ctx) error {
	hostID, err := principalID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid principal")
	}
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	var req models.FormUpdate
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	form, err := ctrl.svc.Update(c.Context(), hostID, id, &req)
	if err != nil {
		return utils.AppError(c, err, ctrl.production)
	}
	return c.JSON(form)
}

// StopForm godoc
// @Summary      Stop receiving responses
// @Description  Sets closed=true and isActive=false. One-way and idempotent.
// @Tags         forms
// @Produce      json
// @Param        id path string true "Form ID"
// @Success      200  {object}  models.Form
// @Failure      404  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /forms/{id}/stop [patch]
func (ctrl *FormController) StopForm(c *fiber.Ctx) error {
	hostID, err := principalID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid principal")
	}
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	form, err := ctrl.svc.Stop(c.Context(), hostID, id)
	if err != nil {
		return utils.AppError(c, err, ctrl.production)
	}
	return c.JSON(form)
}

// GetFormQR godoc
// @Summary      QR code for the public form link
// @Description  Returns a PNG QR code that opens the form's public page.
// @Tags         forms
// @Produce      png
// @Param        id path string true "Form ID"
// @Success      200  {file}    png
// @Failure      404  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /forms/{id}/qr [get]
func (ctrl *FormController) GetFormQR(c *fiber.Ctx) error {
	hostID, err := principalID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid principal")
	}
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	// Ownership is checked the same way as a plain read.
	if _, err := ctrl.svc.Get(c.Context(), hostID, id); err != nil {
		return utils.AppError(c, err, ctrl.production)
	}

	shareURL := fmt.Sprintf("%s/forms/%s", strings.TrimRight(ctrl.frontendURL, "/"), id.Hex())
	png, err := qrcode.GeneratePNG(shareURL)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to generate QR code")
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

// DeleteForm godoc
// @Summary      Delete an owned form and its responses
// @Tags         forms
// @Produce      json
// @Param        id path string true "Form ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /forms/{id} [delete]
func (ctrl *FormController) DeleteForm(c *fiber.Ctx) error {
	hostID, err := principalID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid principal")
	}
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	if err := ctrl.svc.Delete(c.Context(), hostID, id); err != nil {
		return utils.AppError(c, err, ctrl.production)
	}
	return c.JSON(fiber.Map{
		"message": "Form deleted successfully",
		"id":      id.Hex(),
	})
}
