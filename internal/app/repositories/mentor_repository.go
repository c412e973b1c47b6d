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

var mentorColumns = []string{
	"id", "current_title", "current_company", "years_experience", "linkedin_url",
	"focus_areas", "price_cents", "alumni_school", "is_active", "status",
	"created_at", "updated_at",
}

// MentorRepository handles mentor database operations
type MentorRepository struct {
	db db.Querier
	sb squirrel.StatementBuilderType
}

// NewMentorRepository creates a new MentorRepository
func NewMentorRepository(q db.Querier) *MentorRepository {
	return &MentorRepository{
		db: q,
		sb: statementBuilder(),
	}
}

// GetByID retrieves the mentor row of an identity
func (r *MentorRepository) GetByID(ctx context.Context, id string) (*models.Mentor, error) {
	sql, args, err := r.sb.Select(mentorColumns...).
		From("mentors").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get mentor SQL")
		return nil, fmt.Errorf("failed to build get mentor query: %w", err)
	}

	var mentor models.Mentor
	if err := pgxscan.Get(ctx, r.db, &mentor, sql, args...); err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrMentorNotFound
		}
		logger.Error().Err(err).Str("mentorID", id).Msg("Error scanning mentor row")
		return nil, fmt.Errorf("error retrieving mentor: %w", err)
	}

	return &mentor, nil
}

// Upsert inserts the mentor row or overwrites its professional fields
func (r *MentorRepository) Upsert(ctx context.Context, mentor *models.Mentor) error {
	sql, args, err := r.sb.Insert("mentors").
		Columns(
			"id", "current_title", "current_company", "years_experience", "linkedin_url",
			"focus_areas", "price_cents", "alumni_school", "is_active", "status",
			"created_at", "updated_at",
		).
		Values(
			mentor.ID, mentor.CurrentTitle, mentor.CurrentCompany, mentor.YearsExperience, mentor.LinkedinURL,
			mentor.FocusAreas, mentor.PriceCents, mentor.AlumniSchool, mentor.IsActive, mentor.Status,
			mentor.CreatedAt, mentor.UpdatedAt,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			current_title = EXCLUDED.current_title,
			current_company = EXCLUDED.current_company,
			years_experience = EXCLUDED.years_experience,
			linkedin_url = EXCLUDED.linkedin_url,
			focus_areas = EXCLUDED.focus_areas,
			price_cents = EXCLUDED.price_cents,
			alumni_school = EXCLUDED.alumni_school,
			is_active = EXCLUDED.is_active,
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building upsert mentor SQL")
		return fmt.Errorf("failed to build upsert mentor query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("mentorID", mentor.ID).Msg("Error executing upsert mentor query")
		return fmt.Errorf("error saving mentor: %w", err)
	}

	logger.Info().Str("mentorID", mentor.ID).Msg("Mentor profile saved")
	return nil
}

// ListActiveWithProfiles returns publicly listed mentors with display fields
func (r *MentorRepository) ListActiveWithProfiles(ctx context.Context) ([]models.MentorWithProfile, error) {
	columns := make([]string, 0, len(mentorColumns)+2)
	for _, column := range mentorColumns {
		columns = append(columns, "m."+column)
	}
	columns = append(columns, "p.full_name", "p.avatar_url")

	sql, args, err := r.sb.Select(columns...).
		From("mentors m").
		LeftJoin("profiles p ON p.id = m.id").
		Where(squirrel.Eq{"m.is_active": true, "m.status": models.MentorStatusActive}).
		OrderBy("m.created_at DESC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list mentors SQL")
		return nil, fmt.Errorf("failed to build list mentors query: %w", err)
	}

	mentors := []models.MentorWithProfile{}
	if err := pgxscan.Select(ctx, r.db, &mentors, sql, args...); err != nil {
		logger.Error().Err(err).Msg("Error executing list mentors query")
		return nil, fmt.Errorf("error listing mentors: %w", err)
	}

	return mentors, nil
}
