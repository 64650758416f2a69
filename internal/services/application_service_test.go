package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/applytrack/applytrack/internal/dtos"
	"github.com/applytrack/applytrack/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestService backs the store with an in-memory SQLite database so the
// full gorm path (hooks, defaults, ordering) is exercised.
func newTestService(t *testing.T) *ApplicationService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Application{}))
	return NewApplicationService(db)
}

func ptr[T any](v T) *T { return &v }

func TestCreate_AppliesDefaults(t *testing.T) {
	s := newTestService(t)
	before := time.Now()

	app, err := s.Create(context.Background(), &dtos.ApplicationCreateRequest{
		Company:  "Stripe",
		Position: "Backend Engineer",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, app.ID)
	assert.Equal(t, models.StatusApplied, app.Status)
	assert.WithinDuration(t, before, app.DateApplied, 2*time.Second)
}

func TestCreate_KeepsSuppliedValues(t *testing.T) {
	s := newTestService(t)
	when := time.Date(2024, time.February, 1, 9, 30, 0, 0, time.UTC)

	app, err := s.Create(context.Background(), &dtos.ApplicationCreateRequest{
		Company:     "Stripe",
		Position:    "Backend Engineer",
		Status:      models.StatusInterview,
		DateApplied: &when,
		JobURL:      "https://stripe.com/jobs/1",
		Salary:      "$150k - $180k",
		Location:    "NYC",
		Notes:       "referred by a friend",
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusInterview, app.Status)
	assert.True(t, app.DateApplied.Equal(when))
	assert.Equal(t, "https://stripe.com/jobs/1", app.JobURL)
	assert.Equal(t, "$150k - $180k", app.Salary)
	assert.Equal(t, "NYC", app.Location)
	assert.Equal(t, "referred by a friend", app.Notes)
}

func TestCreate_RequiredFields(t *testing.T) {
	s := newTestService(t)

	tests := []struct {
		name  string
		req   dtos.ApplicationCreateRequest
		field string
	}{
		{"missing company", dtos.ApplicationCreateRequest{Position: "Engineer"}, "company"},
		{"blank company", dtos.ApplicationCreateRequest{Company: "   ", Position: "Engineer"}, "company"},
		{"missing position", dtos.ApplicationCreateRequest{Company: "Stripe"}, "position"},
		{"blank position", dtos.ApplicationCreateRequest{Company: "Stripe", Position: ""}, "position"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Create(context.Background(), &tt.req)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestCreate_RejectsUnknownStatus(t *testing.T) {
	s := newTestService(t)

	_, err := s.Create(context.Background(), &dtos.ApplicationCreateRequest{
		Company:  "Stripe",
		Position: "Engineer",
		Status:   "Ghosted",
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "status", verr.Field)
}

func TestCreate_IDsAreUnique(t *testing.T) {
	s := newTestService(t)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		app, err := s.Create(context.Background(), &dtos.ApplicationCreateRequest{
			Company:  "Stripe",
			Position: "Engineer",
		})
		require.NoError(t, err)
		assert.False(t, seen[app.ID], "duplicate id %s", app.ID)
		seen[app.ID] = true
	}
}

func TestUpdate_MergesOnlySuppliedFields(t *testing.T) {
	s := newTestService(t)
	app, err := s.Create(context.Background(), &dtos.ApplicationCreateRequest{
		Company:  "Stripe",
		Position: "Engineer",
		Location: "NYC",
	})
	require.NoError(t, err)
	created := app.DateApplied

	updated, err := s.Update(context.Background(), app.ID, &dtos.ApplicationUpdateRequest{
		Status: ptr(models.StatusInterview),
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusInterview, updated.Status)
	assert.Equal(t, "NYC", updated.Location)
	assert.Equal(t, "Stripe", updated.Company)
	assert.True(t, updated.DateApplied.Equal(created), "status update must not touch date applied")
}

func TestUpdate_CanClearOptionalField(t *testing.T) {
	s := newTestService(t)
	app, err := s.Create(context.Background(), &dtos.ApplicationCreateRequest{
		Company:  "Stripe",
		Position: "Engineer",
		Notes:    "old notes",
	})
	require.NoError(t, err)

	updated, err := s.Update(context.Background(), app.ID, &dtos.ApplicationUpdateRequest{
		Notes: ptr(""),
	})
	require.NoError(t, err)
	assert.Equal(t, "", updated.Notes)
}

func TestUpdate_RejectsUnknownStatus(t *testing.T) {
	s := newTestService(t)
	app, err := s.Create(context.Background(), &dtos.ApplicationCreateRequest{
		Company:  "Stripe",
		Position: "Engineer",
	})
	require.NoError(t, err)

	_, err = s.Update(context.Background(), app.ID, &dtos.ApplicationUpdateRequest{
		Status: ptr("Pending"),
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "status", verr.Field)
}

func TestUpdate_NotFound(t *testing.T) {
	s := newTestService(t)

	_, err := s.Update(context.Background(), "no-such-id", &dtos.ApplicationUpdateRequest{
		Status: ptr(models.StatusRejected),
	})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestDelete_RemovesRecord(t *testing.T) {
	s := newTestService(t)
	app, err := s.Create(context.Background(), &dtos.ApplicationCreateRequest{
		Company:  "Stripe",
		Position: "Engineer",
	})
	require.NoError(t, err)

	require.NoError(t, s.Delete(context.Background(), app.ID))

	apps, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, apps)

	// Delete is terminal: repeating it reports not found, never success.
	assert.True(t, errors.Is(s.Delete(context.Background(), app.ID), ErrNotFound))
}

func TestDelete_NotFound(t *testing.T) {
	s := newTestService(t)
	assert.True(t, errors.Is(s.Delete(context.Background(), "no-such-id"), ErrNotFound))
}

func TestList_OrdersByDateAppliedDescending(t *testing.T) {
	s := newTestService(t)
	for _, d := range []time.Time{
		time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC),
	} {
		when := d
		_, err := s.Create(context.Background(), &dtos.ApplicationCreateRequest{
			Company:     "Stripe",
			Position:    "Engineer",
			DateApplied: &when,
		})
		require.NoError(t, err)
	}

	apps, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, apps, 3)
	assert.Equal(t, time.March, apps[0].DateApplied.Month())
	assert.Equal(t, time.February, apps[1].DateApplied.Month())
	assert.Equal(t, time.January, apps[2].DateApplied.Month())
}

func TestList_EmptyStoreIsEmptySliceNotError(t *testing.T) {
	s := newTestService(t)

	apps, err := s.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, apps)
	assert.Empty(t, apps)
}
