package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/hellorory/careers-api/internal/intake"
	"github.com/hellorory/careers-api/internal/models"
	"gorm.io/gorm"
)

// JobService is the gorm-backed intake.JobRepository.
type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{DB: db}
}

func (s *JobService) CreatePosting(ctx context.Context, p *models.JobPosting) error {
	if err := s.DB.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("create posting: %w", err)
	}
	return nil
}

func (s *JobService) GetPosting(ctx context.Context, id string) (*models.JobPosting, error) {
	var posting models.JobPosting
	err := s.DB.WithContext(ctx).First(&posting, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, intake.ErrPostingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get posting %s: %w", id, err)
	}
	return &posting, nil
}

func (s *JobService) CreateApplication(ctx context.Context, a *models.Application) error {
	if err := s.DB.WithContext(ctx).Create(a).Error; err != nil {
		return fmt.Errorf("create application: %w", err)
	}
	return nil
}

func (s *JobService) ListPostings(ctx context.Context) ([]models.JobPosting, error) {
	postings := make([]models.JobPosting, 0)
	err := s.DB.WithContext(ctx).Order("created_at DESC").Find(&postings).Error
	if err != nil {
		return nil, fmt.Errorf("list postings: %w", err)
	}
	return postings, nil
}

// DeletePosting hard-deletes a posting. Deleting an id that is already
// gone succeeds; callers cannot tell the two apart. Applications
// referencing the posting are left untouched.
func (s *JobService) DeletePosting(ctx context.Context, id string) error {
	err := s.DB.WithContext(ctx).Delete(&models.JobPosting{}, "id = ?", id).Error
	if err != nil {
		return fmt.Errorf("delete posting %s: %w", id, err)
	}
	return nil
}
