package application

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"aidbridge-backend/internal/domain/actor"
	domain "aidbridge-backend/internal/domain/application"
	"aidbridge-backend/internal/domain/audit"
	"aidbridge-backend/pkg/id"
)

// Usecase is the thin CRUD layer around the workflow engine. It never writes
// the status column; that is the executor's job alone.
type Usecase struct {
	repo      domain.Repository
	auditRepo audit.Repository
	log       zerolog.Logger
}

func NewUsecase(r domain.Repository, a audit.Repository, log zerolog.Logger) *Usecase {
	return &Usecase{repo: r, auditRepo: a, log: log}
}

type CreateInput struct {
	Type            domain.Type
	Title           string
	Description     string
	AmountRequested float64
}

func (u *Usecase) Create(ctx context.Context, act actor.Actor, in CreateInput) (*ApplicationDTO, error) {
	if act.Role != actor.RoleApplicant && act.Role != actor.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if !in.Type.Valid() || in.AmountRequested <= 0 {
		return nil, errors.New("invalid input")
	}

	a := &domain.Application{
		ApplicationID:   id.NewID32(),
		ApplicantID:     act.ID,
		Type:            in.Type,
		Title:           in.Title,
		Description:     in.Description,
		AmountRequested: in.AmountRequested,
		Status:          domain.StatusNewSubmission,
		Version:         1,
	}
	if err := u.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	u.log.Info().
		Str("application_id", a.ApplicationID).
		Str("applicant_id", act.ID).
		Str("type", string(a.Type)).
		Msg("application created")
	return toDTO(a), nil
}

func (u *Usecase) Get(ctx context.Context, applicationID string) (*ApplicationDTO, error) {
	a, err := u.repo.GetByApplicationID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toDTO(a), nil
}

func (u *Usecase) List(ctx context.Context, f domain.ListFilter) ([]ApplicationDTO, error) {
	apps, err := u.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]ApplicationDTO, 0, len(apps))
	for i := range apps {
		out = append(out, *toDTO(&apps[i]))
	}
	return out, nil
}

// Delete removes an application that has not yet entered the approval chain.
// Once it leaves new_submission the record is permanent.
func (u *Usecase) Delete(ctx context.Context, act actor.Actor, applicationID string) error {
	a, err := u.repo.GetByApplicationID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	if a.Status != domain.StatusNewSubmission {
		return domain.ErrNotDeletable
	}
	if act.Role != actor.RoleAdmin && a.ApplicantID != act.ID {
		return domain.ErrForbidden
	}
	return u.repo.SoftDelete(ctx, a, act.ID)
}

// AuditTrail returns the recorded transitions for one application,
// oldest-first.
func (u *Usecase) AuditTrail(ctx context.Context, applicationID string) ([]audit.Entry, error) {
	if _, err := u.repo.GetByApplicationID(ctx, applicationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return u.auditRepo.ListByApplicationID(ctx, applicationID)
}

func toDTO(a *domain.Application) *ApplicationDTO {
	dto := &ApplicationDTO{
		ApplicationID:   a.ApplicationID,
		ApplicantID:     a.ApplicantID,
		Type:            string(a.Type),
		Title:           a.Title,
		Description:     a.Description,
		AmountRequested: a.AmountRequested,
		AmountApproved:  a.AmountApproved,
		Status:          string(a.Status),
		AssignedTo:      a.AssignedReviewerID,
		CompletedAt:     a.CompletedAt,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
	dto.Stages = stageViews(a)
	return dto
}

func stageViews(a *domain.Application) []StageView {
	stages := []domain.Stage{
		domain.StageOfficer, domain.StageManager, domain.StageFinance,
		domain.StageHospital, domain.StageExecutive, domain.StageCEO, domain.StageFounder,
	}
	out := make([]StageView, 0, len(stages))
	for _, s := range stages {
		c := a.StageComment(s)
		ts := a.ReviewedAt(s)
		if c == nil && ts == nil {
			continue
		}
		out = append(out, StageView{Stage: string(s), Comments: c, ReviewedAt: ts})
	}
	return out
}
