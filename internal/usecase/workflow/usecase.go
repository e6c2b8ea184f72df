package workflow

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"aidbridge-backend/internal/domain/actor"
	"aidbridge-backend/internal/domain/application"
	"aidbridge-backend/internal/domain/audit"
	"aidbridge-backend/internal/domain/uow"
	wf "aidbridge-backend/internal/workflow"
)

// Usecase is the status transition executor: it re-runs the authorization
// guard, applies the transition table, writes the stage-owned fields and
// side effects, and appends the audit entry inside one unit of work so the
// update and its audit row commit or fail together.
type Usecase struct {
	uow     uow.UnitOfWork
	metrics *metricsRecorder
	log     zerolog.Logger
}

// metricsRecorder keeps the prometheus dependency optional for tests.
type metricsRecorder struct {
	transition func(action, outcome string)
	denial     func(role, status string)
}

type Metrics interface {
	Transition(action, outcome string)
	Denial(role, status string)
}

func NewUsecase(tx uow.UnitOfWork, m Metrics, log zerolog.Logger) *Usecase {
	rec := &metricsRecorder{
		transition: func(string, string) {},
		denial:     func(string, string) {},
	}
	if m != nil {
		rec.transition = m.Transition
		rec.denial = m.Denial
	}
	return &Usecase{uow: tx, metrics: rec, log: log}
}

// Execute runs one workflow action against one application. The application
// row is locked for the duration of the transaction; a writer that lost the
// version race gets application.ErrConflict and must re-fetch and retry.
func (u *Usecase) Execute(ctx context.Context, act actor.Actor, in ExecuteInput) (*TransitionDTO, error) {
	if u.uow == nil {
		return nil, application.ErrInvalidTransition
	}

	var dto *TransitionDTO

	err := u.uow.WithinApplicationTx(ctx, in.ApplicationID, func(r uow.Repos, a *application.Application) error {
		// Never trust a pre-check made in an earlier request.
		if err := wf.Authorize(act, a, in.Action); err != nil {
			u.metrics.denial(string(act.Role), string(a.Status))
			u.log.Warn().
				Str("application_id", a.ApplicationID).
				Str("actor_id", act.ID).
				Str("role", string(act.Role)).
				Str("status", string(a.Status)).
				Str("action", string(in.Action)).
				Err(err).
				Msg("workflow action denied")
			return err
		}

		oldStatus := a.Status
		newStatus, ok := wf.NextStatus(oldStatus, in.Action)
		if !ok {
			return application.ErrInvalidTransition
		}

		now := time.Now().UTC()

		if in.Action == application.ActionAssign {
			if in.AssignedTo == nil || *in.AssignedTo == "" {
				return application.ErrMissingAssignee
			}
			assignee := *in.AssignedTo
			a.AssignedReviewerID = &assignee
		}

		// Comment and timestamp land in the fields owned by the CURRENT
		// status's stage, even when the resulting status is rejected.
		stage, _ := application.OwningStage(oldStatus)
		if in.Comments != nil && *in.Comments != "" {
			a.SetStageComment(stage, *in.Comments)
		}
		if application.ReviewStage(oldStatus) {
			a.StampReview(stage, now)
		}

		a.Status = newStatus

		if newStatus == application.StatusApproved ||
			newStatus == application.StatusRejected ||
			newStatus == application.StatusCompleted {
			a.CompletedAt = &now
		}
		if newStatus == application.StatusApproved && a.AmountApproved == nil {
			approved := a.AmountRequested
			a.AmountApproved = &approved
		}

		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}

		entry := &audit.Entry{
			EntryID:       uuid.NewString(),
			ApplicationID: a.ApplicationID,
			ActorID:       act.ID,
			ActorRole:     string(act.Role),
			Action:        string(in.Action),
			OldStatus:     string(oldStatus),
			NewStatus:     string(newStatus),
			Comments:      in.Comments,
		}
		if in.ActorIP != "" {
			ip := in.ActorIP
			entry.ActorIP = &ip
		}
		if in.ActorUserAgent != "" {
			ua := in.ActorUserAgent
			entry.ActorUserAgent = &ua
		}
		if err := r.Audit.Append(ctx, entry); err != nil {
			return err
		}

		dto = &TransitionDTO{
			ApplicationID: a.ApplicationID,
			OldStatus:     string(oldStatus),
			NewStatus:     string(newStatus),
		}
		return nil
	})

	if err != nil {
		u.metrics.transition(string(in.Action), "error")
		return nil, err
	}

	u.metrics.transition(string(in.Action), "ok")
	u.log.Info().
		Str("application_id", dto.ApplicationID).
		Str("actor_id", act.ID).
		Str("action", string(in.Action)).
		Str("old_status", dto.OldStatus).
		Str("new_status", dto.NewStatus).
		Msg("workflow transition applied")
	return dto, nil
}
