package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/yigit/mentorly/internal/app/models"
	"github.com/yigit/mentorly/internal/db"
	"github.com/yigit/mentorly/internal/pkg/apperrors"
	"github.com/yigit/mentorly/internal/pkg/dberrors"
	"github.com/yigit/mentorly/internal/pkg/logger"
)

var applicationColumns = []string{"id", "user_id", "status", "motivation", "created_at"}

// ApplicationRepository handles mentor application database operations
type ApplicationRepository struct {
	db db.Querier
	sb squirrel.StatementBuilderType
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(q db.Querier) *ApplicationRepository {
	return &ApplicationRepository{
		db: q,
		sb: statementBuilder(),
	}
}

// FindOutstanding returns the newest pending or approved application of userID
func (r *ApplicationRepository) FindOutstanding(ctx context.Context, userID string) (*models.MentorApplication, error) {
	sql, args, err := r.sb.Select(applicationColumns...).
		From("mentor_applications").
		Where(squirrel.Eq{
			"user_id": userID,
			"status":  []string{string(models.ApplicationPending), string(models.ApplicationApproved)},
		}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building find application SQL")
		return nil, fmt.Errorf("failed to build find application query: %w", err)
	}

	var application models.MentorApplication
	if err := pgxscan.Get(ctx, r.db, &application, sql, args...); err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrApplicationNotFound
		}
		logger.Error().Err(err).Str("userID", userID).Msg("Error scanning application row")
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}

	return &application, nil
}

// Create inserts a new application
func (r *ApplicationRepository) Create(ctx context.Context, application *models.MentorApplication) error {
	sql, args, err := r.sb.Insert("mentor_applications").
		Columns(applicationColumns...).
		Values(application.ID, application.UserID, string(application.Status), application.Motivation, application.CreatedAt).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create application SQL")
		return fmt.Errorf("failed to build create application query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "mentor_applications_one_outstanding") {
			logger.Warn().Str("userID", application.UserID).Msg("Attempted to create duplicate mentor application")
			return apperrors.ErrApplicationExists
		}
		logger.Error().Err(err).Str("userID", application.UserID).Msg("Error executing create application query")
		return fmt.Errorf("error creating application: %w", err)
	}

	logger.Info().Str("userID", application.UserID).Str("applicationID", application.ID).Msg("Mentor application created")
	return nil
}
