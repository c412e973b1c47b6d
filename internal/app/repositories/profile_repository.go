package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/yigit/mentorly/internal/app/models"
	"github.com/yigit/mentorly/internal/db"
	"github.com/yigit/mentorly/internal/pkg/apperrors"
	"github.com/yigit/mentorly/internal/pkg/dberrors"
	"github.com/yigit/mentorly/internal/pkg/logger"
)

var profileColumns = []string{
	"id", "role", "roles", "onboarding_complete", "full_name",
	"avatar_url", "desired_role", "created_at", "updated_at",
}

// ProfileRepository handles profile database operations
type ProfileRepository struct {
	db db.Querier
	sb squirrel.StatementBuilderType
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(q db.Querier) *ProfileRepository {
	return &ProfileRepository{
		db: q,
		sb: statementBuilder(),
	}
}

// GetByID retrieves a profile by ID
func (r *ProfileRepository) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	sql, args, err := r.sb.Select(profileColumns...).
		From("profiles").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get profile SQL")
		return nil, fmt.Errorf("failed to build get profile query: %w", err)
	}

	var profile models.Profile
	if err := pgxscan.Get(ctx, r.db, &profile, sql, args...); err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrProfileNotFound
		}
		logger.Error().Err(err).Str("profileID", id).Msg("Error scanning profile row")
		return nil, fmt.Errorf("error retrieving profile: %w", err)
	}

	return &profile, nil
}

// CreateIfAbsent inserts the profile unless a row with the same ID exists.
// It reports whether a row was inserted.
func (r *ProfileRepository) CreateIfAbsent(ctx context.Context, profile *models.Profile) (bool, error) {
	sql, args, err := r.sb.Insert("profiles").
		Columns("id", "full_name", "desired_role", "role", "onboarding_complete", "created_at", "updated_at").
		Values(profile.ID, profile.FullName, profile.DesiredRole, profile.Role, profile.OnboardingComplete, profile.CreatedAt, profile.UpdatedAt).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create profile SQL")
		return false, fmt.Errorf("failed to build create profile query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("profileID", profile.ID).Msg("Error executing create profile query")
		return false, fmt.Errorf("error creating profile: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}

// Update sets the supplied display fields and returns the updated row
func (r *ProfileRepository) Update(ctx context.Context, id string, fullName, avatarURL *string, now time.Time) (*models.Profile, error) {
	query := r.sb.Update("profiles")
	if fullName != nil {
		query = query.Set("full_name", *fullName)
	}
	if avatarURL != nil {
		query = query.Set("avatar_url", *avatarURL)
	}

	sql, args, err := query.
		Set("updated_at", now).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(profileColumns, ", ")).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update profile SQL")
		return nil, fmt.Errorf("failed to build update profile query: %w", err)
	}

	var profile models.Profile
	if err := pgxscan.Get(ctx, r.db, &profile, sql, args...); err != nil {
		if dberrors.IsNoRows(err) {
			logger.Warn().Str("profileID", id).Msg("Profile not found for update")
			return nil, apperrors.ErrProfileNotFound
		}
		logger.Error().Err(err).Str("profileID", id).Msg("Error executing update profile query")
		return nil, fmt.Errorf("error updating profile: %w", err)
	}

	return &profile, nil
}

// UpdateDesiredRole changes only desired_role and updated_at
func (r *ProfileRepository) UpdateDesiredRole(ctx context.Context, id string, role models.Role, now time.Time) error {
	sql, args, err := r.sb.Update("profiles").
		Set("desired_role", string(role)).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update desired role SQL")
		return fmt.Errorf("failed to build update desired role query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("profileID", id).Msg("Error executing update desired role query")
		return fmt.Errorf("error updating desired role: %w", err)
	}

	return nil
}

// PromoteToMentor marks the profile as an onboarded mentor. A non-null roles
// list gains "mentor" once; a null list is left for the legacy column to carry.
func (r *ProfileRepository) PromoteToMentor(ctx context.Context, id string, avatarURL *string, now time.Time) error {
	mentor := string(models.RoleMentor)
	query := r.sb.Update("profiles").
		Set("role", mentor).
		Set("roles", squirrel.Expr("CASE WHEN roles IS NULL OR ? = ANY(roles) THEN roles ELSE array_append(roles, ?) END", mentor, mentor)).
		Set("onboarding_complete", true)
	if avatarURL != nil {
		query = query.Set("avatar_url", *avatarURL)
	}

	sql, args, err := query.
		Set("updated_at", now).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building promote to mentor SQL")
		return fmt.Errorf("failed to build promote to mentor query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("profileID", id).Msg("Error executing promote to mentor query")
		return fmt.Errorf("error promoting profile to mentor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrProfileNotFound
	}

	return nil
}

// CompleteOnboarding sets onboarding_complete on an existing profile
func (r *ProfileRepository) CompleteOnboarding(ctx context.Context, id string, now time.Time) error {
	sql, args, err := r.sb.Update("profiles").
		Set("onboarding_complete", true).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building complete onboarding SQL")
		return fmt.Errorf("failed to build complete onboarding query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("profileID", id).Msg("Error executing complete onboarding query")
		return fmt.Errorf("error completing onboarding: %w", err)
	}
	if tag.RowsAffected() == 0 {
		logger.Warn().Str("profileID", id).Msg("Profile not found for onboarding completion")
		return apperrors.ErrProfileNotFound
	}

	return nil
}
