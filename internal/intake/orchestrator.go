package intake

import (
	"context"
	"errors"
	"log"

	"github.com/hellorory/careers-api/internal/models"
)

// Intake runs one submission through the pipeline:
// decode -> validate -> (applications: resolve parent) -> upload ->
// persist -> (applications: notify). Stages run strictly in order, the
// first failure wins, and nothing is retried or rolled back: a stored
// attachment survives a failed persist, and a persisted application
// survives a failed notification.
type Intake struct {
	repo     JobRepository
	store    AttachmentStore
	notifier Notifier
	logger   *log.Logger
}

func New(repo JobRepository, store AttachmentStore, notifier Notifier, logger *log.Logger) *Intake {
	if logger == nil {
		logger = log.Default()
	}
	return &Intake{
		repo:     repo,
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
}

// SubmitPosting validates and persists a decoded posting form. An image
// upload failure is swallowed and the posting is created without an
// image URL.
func (in *Intake) SubmitPosting(ctx context.Context, form *Form) (*models.JobPosting, error) {
	if err := Validate(form, Posting); err != nil {
		return nil, err
	}

	imageURL, err := in.upload(ctx, Posting, form.Attachment)
	if err != nil {
		return nil, err
	}

	posting := &models.JobPosting{
		Title:       form.Fields["title"],
		Description: form.Fields["description"],
		Location:    form.Fields["location"],
		ImageURL:    imageURL,
	}
	if err := in.repo.CreatePosting(ctx, posting); err != nil {
		return nil, fail(PersistenceFailed, err)
	}
	return posting, nil
}

// SubmitApplication validates a decoded application form, resolves the
// parent posting, uploads the CV, persists the application, and sends
// the notification. The parent is resolved before any upload so a bad
// jobId costs nothing.
func (in *Intake) SubmitApplication(ctx context.Context, form *Form) (*models.Application, error) {
	if err := Validate(form, Application); err != nil {
		return nil, err
	}

	job, err := in.repo.GetPosting(ctx, form.Fields["jobId"])
	if err != nil {
		return nil, fail(NotFound, err)
	}

	cvURL, err := in.upload(ctx, Application, form.Attachment)
	if err != nil {
		return nil, err
	}

	app := &models.Application{
		JobID:       job.ID,
		FullName:    form.Fields["fullName"],
		Email:       form.Fields["email"],
		Phone:       form.Fields["phone"],
		CoverLetter: form.Fields["coverLetter"],
		CVUrl:       cvURL,
	}
	if err := in.repo.CreateApplication(ctx, app); err != nil {
		return nil, fail(PersistenceFailed, err)
	}

	if err := in.notifier.NotifyApplication(ctx, job, app, form.Attachment); err != nil {
		// The application row is already durable at this point.
		return nil, fail(NotificationFailed, err)
	}
	return app, nil
}

func (in *Intake) upload(ctx context.Context, kind *Kind, att *Attachment) (*string, error) {
	if att == nil {
		return nil, nil
	}
	url, err := in.store.Store(ctx, kind, att)
	if err != nil {
		if kind.AttachmentRequiredOnFailure {
			return nil, fail(UploadFailed, err)
		}
		in.logger.Printf("[intake/%s] attachment upload failed, continuing without it: %v", kind.Name, err)
		return nil, nil
	}
	return &url, nil
}

// IsNotFound reports whether err is the missing-posting case rather than
// a repository fault. The application endpoint leaks the distinction in
// its 404 message.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPostingNotFound)
}
