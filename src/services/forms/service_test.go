package forms

import (
	"context"
	"errors"
	"testing"

	"Backend-EaseForm/src/apperrors"
	"Backend-EaseForm/src/models"
	"Backend-EaseForm/src/services/authz"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockFormStore struct {
	mock.Mock
}

func (m *MockFormStore) FindOwnedForm(ctx context.Context, hostID, id primitive.ObjectID) (*models.Form, error) {
	args := m.Called(ctx, hostID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Form), args.Error(1)
}

func (m *MockFormStore) ListOwnedForms(ctx context.Context, hostID primitive.ObjectID) ([]models.FormListItem, error) {
	args := m.Called(ctx, hostID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FormListItem), args.Error(1)
}

func (m *MockFormStore) InsertForm(ctx context.Context, form *models.Form) error {
	args := m.Called(ctx, form)
	return args.Error(0)
}

func (m *MockFormStore) UpdateOwnedForm(ctx context.Context, hostID, id primitive.ObjectID, set bson.M) (*models.Form, error) {
	args := m.Called(ctx, hostID, id, set)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Form), args.Error(1)
}

func (m *MockFormStore) DeleteOwnedForm(ctx context.Context, hostID, id primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, hostID, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockFormStore) FindForm(ctx context.Context, id primitive.ObjectID) (*models.Form, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Form), args.Error(1)
}

func (m *MockFormStore) FindFormPrivileged(ctx context.Context, id primitive.ObjectID) (*models.Form, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Form), args.Error(1)
}

func (m *MockFormStore) UpdateFormPrivileged(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Form, error) {
	args := m.Called(ctx, id, set)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Form), args.Error(1)
}

func (m *MockFormStore) DeleteFormPrivileged(ctx context.Context, id primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockFormStore) FormOwner(ctx context.Context, id primitive.ObjectID) (primitive.ObjectID, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(primitive.ObjectID), args.Bool(1), args.Error(2)
}

type MockBootstrapper struct {
	mock.Mock
}

func (m *MockBootstrapper) Ensure(ctx context.Context, hostID primitive.ObjectID, email string) error {
	args := m.Called(ctx, hostID, email)
	return args.Error(0)
}

type MockPurger struct {
	mock.Mock
}

func (m *MockPurger) DeleteByForm(ctx context.Context, formID primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, formID)
	return args.Get(0).(int64), args.Error(1)
}

type MockTaskQueue struct {
	mock.Mock
}

func (m *MockTaskQueue) EnqueueResponsePurge(formID primitive.ObjectID) error {
	args := m.Called(formID)
	return args.Error(0)
}

func (m *MockTaskQueue) EnqueueFormStoppedEmail(formID primitive.ObjectID) error {
	args := m.Called(formID)
	return args.Error(0)
}

func newTestService(store *MockFormStore, bootstrap *MockBootstrapper, purger *MockPurger, queue TaskQueue) *Service {
	return NewService(store, authz.NewResolver(store), bootstrap, purger, queue)
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	hostID := primitive.NewObjectID()

	t.Run("TestPrivacyFlagsForcedOn", func(t *testing.T) {
		store := new(MockFormStore)
		bootstrap := new(MockBootstrapper)
		bootstrap.On("Ensure", ctx, hostID, "host@example.com").Return(nil)
		store.On("InsertForm", ctx, mock.Anything).Return(nil)

		svc := newTestService(store, bootstrap, new(MockPurger), nil)
		form, err := svc.Create(ctx, hostID, "host@example.com", &models.FormCreate{
			Title: "Party RSVP",
		})

		assert.NoError(t, err)
		assert.True(t, form.Anonymous)
		assert.True(t, form.OneResponsePerDevice)
		assert.False(t, form.Closed)
		assert.True(t, form.IsActive)
		assert.NotNil(t, form.Questions)
		assert.Empty(t, form.Questions)
	})

	t.Run("TestExplicitDraft", func(t *testing.T) {
		store := new(MockFormStore)
		bootstrap := new(MockBootstrapper)
		bootstrap.On("Ensure", ctx, hostID, "host@example.com").Return(nil)
		store.On("InsertForm", ctx, mock.Anything).Return(nil)

		inactive := false
		svc := newTestService(store, bootstrap, new(MockPurger), nil)
		form, err := svc.Create(ctx, hostID, "host@example.com", &models.FormCreate{
			Title:    "Draft form",
			IsActive: &inactive,
		})

		assert.NoError(t, err)
		assert.Equal(t, models.StateDraft, form.AcceptanceState())
	})

	t.Run("TestBootstrapRunsBeforeInsert", func(t *testing.T) {
		store := new(MockFormStore)
		bootstrap := new(MockBootstrapper)
		bootstrap.On("Ensure", ctx, hostID, "host@example.com").Return(errors.New("insert hosts failed"))

		svc := newTestService(store, bootstrap, new(MockPurger), nil)
		_, err := svc.Create(ctx, hostID, "host@example.com", &models.FormCreate{Title: "x"})

		assert.Error(t, err)
		store.AssertNotCalled(t, "InsertForm", mock.Anything, mock.Anything)
	})
}

func TestGet(t *testing.T) {
	ctx := context.Background()
	hostID := primitive.NewObjectID()
	formID := primitive.NewObjectID()

	t.Run("TestScopedHit", func(t *testing.T) {
		store := new(MockFormStore)
		store.On("FindOwnedForm", ctx, hostID, formID).Return(&models.Form{ID: formID, HostID: hostID}, nil)

		form, err := newTestService(store, new(MockBootstrapper), new(MockPurger), nil).Get(ctx, hostID, formID)
		assert.NoError(t, err)
		assert.Equal(t, formID, form.ID)
	})

	t.Run("TestMissingForm", func(t *testing.T) {
		store := new(MockFormStore)
		store.On("FindOwnedForm", ctx, hostID, formID).Return(nil, nil)
		store.On("FormOwner", ctx, formID).Return(primitive.NilObjectID, false, nil)

		_, err := newTestService(store, new(MockBootstrapper), new(MockPurger), nil).Get(ctx, hostID, formID)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("TestForeignForm", func(t *testing.T) {
		store := new(MockFormStore)
		store.On("FindOwnedForm", ctx, hostID, formID).Return(nil, nil)
		store.On("FormOwner", ctx, formID).Return(primitive.NewObjectID(), true, nil)

		_, err := newTestService(store, new(MockBootstrapper), new(MockPurger), nil).Get(ctx, hostID, formID)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		store.AssertNotCalled(t, "FindFormPrivileged", mock.Anything, mock.Anything)
	})

	t.Run("TestSpuriousScopedMissRetriesPrivileged", func(t *testing.T) {
		store := new(MockFormStore)
		store.On("FindOwnedForm", ctx, hostID, formID).Return(nil, nil)
		store.On("FormOwner", ctx, formID).Return(hostID, true, nil)
		store.On("FindFormPrivileged", ctx, formID).Return(&models.Form{ID: formID, HostID: hostID}, nil)

		form, err := newTestService(store, new(MockBootstrapper), new(MockPurger), nil).Get(ctx, hostID, formID)
		assert.NoError(t, err)
		assert.Equal(t, formID, form.ID)
		store.AssertExpectations(t)
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	hostID := primitive.NewObjectID()
	formID := primitive.NewObjectID()

	t.Run("TestNeverTouchesClosedFlag", func(t *testing.T) {
		store := new(MockFormStore)
		store.On("UpdateOwnedForm", ctx, hostID, formID, mock.MatchedBy(func(set bson.M) bool {
			_, hasClosed := set["closed"]
			return !hasClosed && set["anonymous"] == true && set["oneResponsePerDevice"] == true
		})).Return(&models.Form{ID: formID, HostID: hostID}, nil)

		title := "Renamed"
		_, err := newTestService(store, new(MockBootstrapper), new(MockPurger), nil).
			Update(ctx, hostID, formID, &models.FormUpdate{Title: &title})
		assert.NoError(t, err)
		store.AssertExpectations(t)
	})

	t.Run("TestOnlyProvidedFieldsInSet", func(t *testing.T) {
		store := new(MockFormStore)
		store.On("UpdateOwnedForm", ctx, hostID, formID, mock.MatchedBy(func(set bson.M) bool {
			_, hasTitle := set["title"]
			_, hasDesc := set["description"]
			return !hasTitle && !hasDesc && set["isActive"] == false
		})).Return(&models.Form{ID: formID, HostID: hostID}, nil)

		inactive := false
		_, err := newTestService(store, new(MockBootstrapper), new(MockPurger), nil).
			Update(ctx, hostID, formID, &models.FormUpdate{IsActive: &inactive})
		assert.NoError(t, err)
		store.AssertExpectations(t)
	})

	t.Run("TestForeignUpdateRejected", func(t *testing.T) {
		store := new(MockFormStore)
		store.On("UpdateOwnedForm", ctx, hostID, formID, mock.Anything).Return(nil, nil)
		store.On("FormOwner", ctx, formID).Return(primitive.NewObjectID(), true, nil)

		title := "Hijack"
		_, err := newTestService(store, new(MockBootstrapper), new(MockPurger), nil).
			Update(ctx, hostID, formID, &models.FormUpdate{Title: &title})
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		store.AssertNotCalled(t, "UpdateFormPrivileged", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestStop(t *testing.T) {
	ctx := context.Background()
	hostID := primitive.NewObjectID()
	formID := primitive.NewObjectID()

	stoppedForm := func() *models.Form {
		return &models.Form{ID: formID, HostID: hostID, Closed: true, IsActive: false}
	}

	t.Run("TestStopClosesForm", func(t *testing.T) {
		store := new(MockFormStore)
		store.On("UpdateOwnedForm", ctx, hostID, formID, mock.MatchedBy(func(set bson.M) bool {
			return set["closed"] == true && set["isActive"] == false
		})).Return(stoppedForm(), nil)

		form, err := newTestService(store, new(MockBootstrapper), new(MockPurger), nil).Stop(ctx, hostID, formID)
		assert.NoError(t, err)
		assert.Equal(t, models.StateClosed, form.AcceptanceState())
	})

	t.Run("TestStopIsIdempotent", func(t *testing.T) {
		store := new(MockFormStore)
		store.On("UpdateOwnedForm", ctx, hostID, formID, mock.Anything).Return(stoppedForm(), nil)

		svc := newTestService(store, new(MockBootstrapper), new(MockPurger), nil)
		first, err := svc.Stop(ctx, hostID, formID)
		assert.NoError(t, err)
		second, err := svc.Stop(ctx, hostID, formID)
		assert.NoError(t, err)
		assert.Equal(t, first.Closed, second.Closed)
		assert.Equal(t, first.IsActive, second.IsActive)
	})

	t.Run("TestStopNotifiesHost", func(t *testing.T) {
		store := new(MockFormStore)
		store.On("UpdateOwnedForm", ctx, hostID, formID, mock.Anything).Return(stoppedForm(), nil)
		queue := new(MockTaskQueue)
		queue.On("EnqueueFormStoppedEmail", formID).Return(nil)

		_, err := newTestService(store, new(MockBootstrapper), new(MockPurger), queue).Stop(ctx, hostID, formID)
		assert.NoError(t, err)
		queue.AssertExpectations(t)
	})

	t.Run("TestStopSucceedsWhenEnqueueFails", func(t *testing.T) {
		store := new(MockFormStore)
		store.On("UpdateOwnedForm", ctx, hostID, formID, mock.Anything).Return(stoppedForm(), nil)
		queue := new(MockTaskQueue)
		queue.On("EnqueueFormStoppedEmail", formID).Return(errors.New("redis down"))

		form, err := newTestService(store, new(MockBootstrapper), new(MockPurger), queue).Stop(ctx, hostID, formID)
		assert.NoError(t, err)
		assert.True(t, form.Closed)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	hostID := primitive.NewObjectID()
	formID := primitive.NewObjectID()

	t.Run("TestDeleteEnqueuesPurge", func(t *testing.T) {
		store := new(MockFormStore)
		store.On("DeleteOwnedForm", ctx, hostID, formID).Return(true, nil)
		queue := new(MockTaskQueue)
		queue.On("EnqueueResponsePurge", formID).Return(nil)
		purger := new(MockPurger)

		err := newTestService(store, new(MockBootstrapper), purger, queue).Delete(ctx, hostID, formID)
		assert.NoError(t, err)
		queue.AssertExpectations(t)
		purger.AssertNotCalled(t, "DeleteByForm", mock.Anything, mock.Anything)
	})

	t.Run("TestDeletePurgesInlineWithoutQueue", func(t *testing.T) {
		store := new(MockFormStore)
		store.On("DeleteOwnedForm", ctx, hostID, formID).Return(true, nil)
		purger := new(MockPurger)
		purger.On("DeleteByForm", ctx, formID).Return(int64(3), nil)

		err := newTestService(store, new(MockBootstrapper), purger, nil).Delete(ctx, hostID, formID)
		assert.NoError(t, err)
		purger.AssertExpectations(t)
	})

	t.Run("TestDeleteMissingForm", func(t *testing.T) {
		store := new(MockFormStore)
		store.On("DeleteOwnedForm", ctx, hostID, formID).Return(false, nil)
		store.On("FormOwner", ctx, formID).Return(primitive.NilObjectID, false, nil)

		err := newTestService(store, new(MockBootstrapper), new(MockPurger), nil).Delete(ctx, hostID, formID)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("TestDeleteForeignForm", func(t *testing.T) {
		store := new(MockFormStore)
		store.On("DeleteOwnedForm", ctx, hostID, formID).Return(false, nil)
		store.On("FormOwner", ctx, formID).Return(primitive.NewObjectID(), true, nil)

		err := newTestService(store, new(MockBootstrapper), new(MockPurger), nil).Delete(ctx, hostID, formID)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		store.AssertNotCalled(t, "DeleteFormPrivileged", mock.Anything, mock.Anything)
	})
}

func TestGetPublic(t *testing.T) {
	ctx := context.Background()
	formID := primitive.NewObjectID()

	t.Run("TestOpenFormVisible", func(t *testing.T) {
		store := new(MockFormStore)
		store.On("FindForm", ctx, formID).Return(&models.Form{ID: formID, IsActive: true}, nil)

		form, err := newTestService(store, new(MockBootstrapper), new(MockPurger), nil).GetPublic(ctx, formID)
		assert.NoError(t, err)
		assert.Equal(t, models.StateOpen, form.AcceptanceState())
	})

	t.Run("TestClosedFormStillVisible", func(t *testing.T) {
		store := new(MockFormStore)
		store.On("FindForm", ctx, formID).Return(&models.Form{ID: formID, Closed: true}, nil)

		form, err := newTestService(store, new(MockBootstrapper), new(MockPurger), nil).GetPublic(ctx, formID)
		assert.NoError(t, err)
		assert.Equal(t, models.StateClosed, form.AcceptanceState())
	})

	t.Run("TestDraftHidden", func(t *testing.T) {
		store := new(MockFormStore)
		store.On("FindForm", ctx, formID).Return(&models.Form{ID: formID}, nil)

		_, err := newTestService(store, new(MockBootstrapper), new(MockPurger), nil).GetPublic(ctx, formID)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("TestMissingFormHidden", func(t *testing.T) {
		store := new(MockFormStore)
		store.On("FindForm", ctx, formID).Return(nil, nil)

		_, err := newTestService(store, new(MockBootstrapper), new(MockPurger), nil).GetPublic(ctx, formID)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}
