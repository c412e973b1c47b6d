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

// StudentRepository handles student database operations
type StudentRepository struct {
	db db.Querier
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(q db.Querier) *StudentRepository {
	return &StudentRepository{
		db: q,
		sb: statementBuilder(),
	}
}

// GetByID retrieves the student row of an identity
func (r *StudentRepository) GetByID(ctx context.Context, id string) (*models.Student, error) {
	sql, args, err := r.sb.Select("id", "created_at").
		From("students").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get student SQL")
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	var student models.Student
	if err := pgxscan.Get(ctx, r.db, &student, sql, args...); err != nil {
		if dberrors.IsNoRows(err) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Str("studentID", id).Msg("Error scanning student row")
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}
