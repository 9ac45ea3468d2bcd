package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAcceptanceState(t *testing.T) {
	t.Run("TestOpenForm", func(t *testing.T) {
		form := Form{IsActive: true, Closed: false}
		assert.Equal(t, StateOpen, form.AcceptanceState())
	})

	t.Run("TestDraftForm", func(t *testing.T) {
		form := Form{IsActive: false, Closed: false}
		assert.Equal(t, StateDraft, form.AcceptanceState())
	})

	t.Run("TestClosedForm", func(t *testing.T) {
		form := Form{IsActive: false, Closed: true}
		assert.Equal(t, StateClosed, form.AcceptanceState())
	})

	// closed wins even when isActive was left true
	t.Run("TestClosedOverridesActive", func(t *testing.T) {
		form := Form{IsActive: true, Closed: true}
		assert.Equal(t, StateClosed, form.AcceptanceState())
	})
}
