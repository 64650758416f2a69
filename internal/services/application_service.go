package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/applytrack/applytrack/internal/dtos"
	"github.com/applytrack/applytrack/internal/models"
	"gorm.io/gorm"
)

// ApplicationService owns the canonical application collection: durable
// CRUD against the backing store, field validation and defaults at creation.
type ApplicationService struct {
	DB *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{
		DB: db,
	}
}

// List returns every application ordered by date applied, most recent first.
// An empty collection is an empty slice, never an error.
func (s *ApplicationService) List(ctx context.Context) ([]models.Application, error) {
	apps := []models.Application{}
	err := s.DB.WithContext(ctx).
		Order("date_applied DESC").
		Find(&apps).Error
	if err != nil {
		return nil, &StorageError{Op: "list applications", Err: err}
	}
	return apps, nil
}

// Create validates required fields, applies defaults (status "Applied",
// date applied now) and persists a new application with a fresh id.
func (s *ApplicationService) Create(ctx context.Context, req *dtos.ApplicationCreateRequest) (*models.Application, error) {
	if strings.TrimSpace(req.Company) == "" {
		return nil, requiredField("company")
	}
	if strings.TrimSpace(req.Position) == "" {
		return nil, requiredField("position")
	}

	status := req.Status
	if status == "" {
		status = models.StatusApplied
	}
	if !models.ValidStatus(status) {
		return nil, &ValidationError{Field: "status", Reason: "unknown status " + status}
	}

	dateApplied := time.Now()
	if req.DateApplied != nil {
		dateApplied = *req.DateApplied
	}

	app := &models.Application{
		Company:     req.Company,
		Position:    req.Position,
		Status:      status,
		DateApplied: dateApplied,
		JobURL:      req.JobURL,
		Salary:      req.Salary,
		Location:    req.Location,
		Notes:       req.Notes,
	}
	if err := s.DB.WithContext(ctx).Create(app).Error; err != nil {
		return nil, &StorageError{Op: "create application", Err: err}
	}
	return app, nil
}

// Update merges only the supplied fields into the existing record.
// Fields absent from the request keep their prior values, so status can
// change without touching anything else.
func (s *ApplicationService) Update(ctx context.Context, id string, req *dtos.ApplicationUpdateRequest) (*models.Application, error) {
	var app models.Application
	err := s.DB.WithContext(ctx).First(&app, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &StorageError{Op: "fetch application", Err: err}
	}

	if req.Status != nil {
		if !models.ValidStatus(*req.Status) {
			return nil, &ValidationError{Field: "status", Reason: "unknown status " + *req.Status}
		}
		app.Status = *req.Status
	}
	if req.Company != nil {
		app.Company = *req.Company
	}
	if req.Position != nil {
		app.Position = *req.Position
	}
	if req.DateApplied != nil {
		app.DateApplied = *req.DateApplied
	}
	if req.JobURL != nil {
		app.JobURL = *req.JobURL
	}
	if req.Salary != nil {
		app.Salary = *req.Salary
	}
	if req.Location != nil {
		app.Location = *req.Location
	}
	if req.Notes != nil {
		app.Notes = *req.Notes
	}

	if err := s.DB.WithContext(ctx).Save(&app).Error; err != nil {
		return nil, &StorageError{Op: "update application", Err: err}
	}
	return &app, nil
}

// Delete removes the record permanently. No soft delete, no tombstone.
func (s *ApplicationService) Delete(ctx context.Context, id string) error {
	res := s.DB.WithContext(ctx).Delete(&models.Application{}, "id = ?", id)
	if res.Error != nil {
		return &StorageError{Op: "delete application", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
