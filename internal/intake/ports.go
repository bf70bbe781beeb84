package intake

import (
	"context"

	"github.com/hellorory/careers-api/internal/models"
)

// JobRepository persists postings and applications.
type JobRepository interface {
	CreatePosting(ctx context.Context, p *models.JobPosting) error

	// GetPosting returns ErrPostingNotFound (possibly wrapped) when no
	// posting has the given id.
	GetPosting(ctx context.Context, id string) (*models.JobPosting, error)

	CreateApplication(ctx context.Context, a *models.Application) error

	// ListPostings returns all postings, newest first.
	ListPostings(ctx context.Context) ([]models.JobPosting, error)

	// DeletePosting removes a posting. Deleting an id that does not
	// exist is not an error.
	DeletePosting(ctx context.Context, id string) error
}

// AttachmentStore uploads a decoded attachment and returns its public URL.
type AttachmentStore interface {
	Store(ctx context.Context, kind *Kind, att *Attachment) (string, error)
}

// Notifier delivers the new-application message to the operations
// mailbox. cv carries the original decoded bytes, not a re-fetch from
// the store; nil when the candidate attached nothing.
type Notifier interface {
	NotifyApplication(ctx context.Context, job *models.JobPosting, app *models.Application, cv *Attachment) error
}
