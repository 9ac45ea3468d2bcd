package controllers

import (
	"context"

	"Backend-EaseForm/src/models"
	"Backend-EaseForm/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ResponseService is the owner-side part of the responses service.
type ResponseService interface {
	ListForForm(ctx context.Context, hostID, formID primitive.ObjectID) ([]models.ResponseView, error)
	Delete(ctx context.Context, hostID, responseID primitive.ObjectID) error
}

type ResponseController struct {
	svc        ResponseService
	production bool
}

func NewResponseController(svc ResponseService, production bool) *ResponseController {
	return &ResponseController{svc: svc, production: production}
}

// ListFormResponses godoc
// @Summary      List responses for an owned form
// @Tags         responses
// @Produce      json
// @Param        id path string true "Form ID"
// @Success      200  {array}   models.ResponseView
// @Failure      404  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /forms/{id}/responses [get]
func (ctrl *ResponseController) ListFormResponses(c *fiber.Ctx) error {
	hostID, err := principalID(c)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid principal")
	}
	formID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	views, err := ctrl.svc.ListForForm(c.Context(), hostID, formID)
	if err != nil {
		return utils.AppError(c, err, ctrl.production)
	}
	return c.JSON(views)
}

// DeleteResponse godoc
// @Summary      Delete one response
// @Tags         responses
// @Param        id path string true "Response ID"
// @Success      204  "No Content"
// @Failure      404  {object}  models.ErrorResponse
// @Security     BearerAuth
// @Router       /responses/{id} [delete]
func (ctrl *ResponseController) DeleteResponse(c *fiber.Ctx) error {
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
	return c.SendStatus(fiber.StatusNoContent)
}
