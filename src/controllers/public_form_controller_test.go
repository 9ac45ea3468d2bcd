package controllers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"Backend-EaseForm/src/apperrors"
	"Backend-EaseForm/src/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockPublicFormService struct {
	mock.Mock
}

func (m *MockPublicFormService) GetPublic(ctx context.Context, id primitive.ObjectID) (*models.Form, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Form), args.Error(1)
}

type MockSubmissionService struct {
	mock.Mock
}

func (m *MockSubmissionService) Submit(ctx context.Context, formID primitive.ObjectID, userAgent, clientIP string, answers map[string]interface{}) (*models.Response, error) {
	args := m.Called(ctx, formID, userAgent, clientIP, answers)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Response), args.Error(1)
}

func newPublicApp(forms PublicFormService, responses SubmissionService) *fiber.App {
	app := fiber.New()
	ctrl := NewPublicFormController(forms, responses, false)
	app.Get("/api/public/forms/:id", ctrl.GetPublicForm)
	app.Post("/api/public/forms/:id/responses", ctrl.SubmitResponse)
	return app
}

func TestPublicFormEndpoints(t *testing.T) {
	formID := primitive.NewObjectID()

	t.Run("TestOpenFormReturned", func(t *testing.T) {
		formsSvc := new(MockPublicFormService)
		formsSvc.On("GetPublic", mock.Anything, formID).
			Return(&models.Form{ID: formID, Title: "Event Feedback", IsActive: true}, nil)
		app := newPublicApp(formsSvc, new(MockSubmissionService))

		resp, err := app.Test(httptest.NewRequest("GET", "/api/public/forms/"+formID.Hex(), nil))
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("TestDraftHiddenFromPublic", func(t *testing.T) {
		formsSvc := new(MockPublicFormService)
		formsSvc.On("GetPublic", mock.Anything, formID).Return(nil, apperrors.ErrNotFound)
		app := newPublicApp(formsSvc, new(MockSubmissionService))

		resp, err := app.Test(httptest.NewRequest("GET", "/api/public/forms/"+formID.Hex(), nil))
		assert.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})
}

func TestSubmitResponseEndpoint(t *testing.T) {
	formID := primitive.NewObjectID()
	responseID := primitive.NewObjectID()

	t.Run("TestSubmissionReturns201", func(t *testing.T) {
		subs := new(MockSubmissionService)
		subs.On("Submit", mock.Anything, formID, "TestAgent/1.0", mock.Anything, map[string]interface{}{"q1": "yes"}).
			Return(&models.Response{ID: responseID, FormID: formID}, nil)
		app := newPublicApp(new(MockPublicFormService), subs)

		req := httptest.NewRequest("POST", "/api/public/forms/"+formID.Hex()+"/responses",
			strings.NewReader(`{"answers":{"q1":"yes"}}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("User-Agent", "TestAgent/1.0")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)

		var body map[string]string
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, responseID.Hex(), body["response_id"])
	})

	t.Run("TestDuplicateDeviceReturns409", func(t *testing.T) {
		subs := new(MockSubmissionService)
		subs.On("Submit", mock.Anything, formID, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, apperrors.ErrDuplicateConflict)
		app := newPublicApp(new(MockPublicFormService), subs)

		req := httptest.NewRequest("POST", "/api/public/forms/"+formID.Hex()+"/responses",
			strings.NewReader(`{"answers":{"q1":"again"}}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, 409, resp.StatusCode)
		assert.Equal(t, apperrors.ErrDuplicateConflict.Error(), decodeError(t, resp.Body).Message)
	})

	t.Run("TestClosedFormReturns400", func(t *testing.T) {
		subs := new(MockSubmissionService)
		subs.On("Submit", mock.Anything, formID, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, apperrors.ErrAcceptanceClosed)
		app := newPublicApp(new(MockPublicFormService), subs)

		req := httptest.NewRequest("POST", "/api/public/forms/"+formID.Hex()+"/responses",
			strings.NewReader(`{"answers":{"q1":"late"}}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
	})

	t.Run("TestMissingAnswersReturns400", func(t *testing.T) {
		subs := new(MockSubmissionService)
		app := newPublicApp(new(MockPublicFormService), subs)

		req := httptest.NewRequest("POST", "/api/public/forms/"+formID.Hex()+"/responses",
			strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
		subs.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
