package controllers

import (
	"context"

	"Backend-EaseForm/src/models"
	"Backend-EaseForm/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PublicFormService is the anonymous read path of the forms service.
type PublicFormService interface {
	GetPublic(ctx context.Context, id primitive.ObjectID) (*models.Form, error)
}

// SubmissionService is the anonymous submission path of the responses
// service.
type SubmissionService interface {
	Submit(ctx context.Context, formID primitive.ObjectID, userAgent, clientIP string, answers map[string]interface{}) (*models.Response, error)
}

type PublicFormController struct {
	forms      PublicFormService
	responses  SubmissionService
	production bool
}

func NewPublicFormController(forms PublicFormService, responses SubmissionService, production bool) *PublicFormController {
	return &PublicFormController{forms: forms, responses: responses, production: production}
}

// GetPublicForm godoc
// @Summary      Get a public form
// @Description  No authentication. Closed forms are returned so the client can render a closed message; drafts are reported as not found.
// @Tags         public
// @Produce      json
// @Param        id path string true "Form ID"
// @Success      200  {object}  models.Form
// @Failure      404  {object}  models.ErrorResponse
// @Router       /public/forms/{id} [get]
func (ctrl *PublicFormController) GetPublicForm(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	form, err := ctrl.forms.GetPublic(c.Context(), id)
	if err != nil {
		return utils.AppError(c, err, ctrl.production)
	}
	return c.JSON(form)
}

// SubmitResponse godoc
// @Summary      Submit a response
// @Description  Anonymous submission. One response per device per form, enforced by fingerprint.
// @Tags         public
// @Accept       json
// @Produce      json
// @Param        id path string true "Form ID"
// @Param        body body models.ResponseSubmit true "Answers"
// @Success      201  {object}  map[string]string
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /public/forms/{id}/responses [post]
func (ctrl *PublicFormController) SubmitResponse(c *fiber.Ctx) error {
	formID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	var req models.ResponseSubmit
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}

	response, err := ctrl.responses.Submit(c.Context(), formID, c.Get("User-Agent"), c.IP(), req.Answers)
	if err != nil {
		return utils.AppError(c, err, ctrl.production)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":     "Response submitted successfully",
		"response_id": response.ID.Hex(),
	})
}
