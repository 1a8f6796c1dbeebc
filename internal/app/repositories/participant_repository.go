package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/mergington/activities/internal/db"
	"github.com/mergington/activities/internal/pkg/apperrors"
	"github.com/mergington/activities/internal/pkg/dberrors"
	"github.com/mergington/activities/internal/pkg/logger"
)

// UniqueParticipantConstraint is the unique constraint backing the
// one-signup-per-student-per-activity rule.
const UniqueParticipantConstraint = "participants_activity_name_email_key"

// ParticipantRepository handles database operations for activity participants
type ParticipantRepository struct {
	db db.Querier
	sb squirrel.StatementBuilderType
}

// NewParticipantRepository creates a new ParticipantRepository on a pool or
// an open transaction
func NewParticipantRepository(db db.Querier) *ParticipantRepository {
	return &ParticipantRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetEmailsByActivityName retrieves the participant emails for one activity
func (r *ParticipantRepository) GetEmailsByActivityName(ctx context.Context, activityName string) ([]string, error) {
	sql, args, err := r.sb.Select("email").
		From("participants").
		Where(squirrel.Eq{"activity_name": activityName}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get emails by activity SQL")
		return nil, fmt.Errorf("failed to build get participants query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get participants query")
		return nil, fmt.Errorf("error querying participants: %w", err)
	}
	defer rows.Close()

	emails := []string{}
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("error scanning participant row: %w", err)
		}
		emails = append(emails, email)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating participant rows: %w", err)
	}

	return emails, nil
}

// GetEmailsByActivityNames retrieves participant emails for multiple
// activities in one query, grouped by activity name. Activities with no
// participants are absent from the result map.
func (r *ParticipantRepository) GetEmailsByActivityNames(ctx context.Context, activityNames []string) (map[string][]string, error) {
	if len(activityNames) == 0 {
		return make(map[string][]string), nil
	}

	sql, args, err := r.sb.Select("activity_name", "email").
		From("participants").
		Where(squirrel.Eq{"activity_name": activityNames}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building batch participants SQL")
		return nil, fmt.Errorf("failed to build batch participants query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing batch participants query")
		return nil, fmt.Errorf("error querying participants: %w", err)
	}
	defer rows.Close()

	emails := make(map[string][]string)
	for rows.Next() {
		var activityName, email string
		if err := rows.Scan(&activityName, &email); err != nil {
			return nil, fmt.Errorf("error scanning participant row: %w", err)
		}
		emails[activityName] = append(emails[activityName], email)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating participant rows: %w", err)
	}

	return emails, nil
}

// IsRegistered checks whether a student is signed up for a specific activity
func (r *ParticipantRepository) IsRegistered(ctx context.Context, activityName, email string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("participants").
		Where(squirrel.Eq{"activity_name": activityName, "email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build registration check query: %w", err)
	}

	var exists int
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		logger.Error().Err(err).Msg("Error executing registration check query")
		return false, fmt.Errorf("error checking registration: %w", err)
	}

	return true, nil
}

// AddParticipant signs a student up for an activity and returns the new row
// id. A unique-constraint violation means a concurrent request won the race;
// it is reported the same way as the pre-check.
func (r *ParticipantRepository) AddParticipant(ctx context.Context, activityName, email string) (int64, error) {
	sql, args, err := r.sb.Insert("participants").
		Columns("activity_name", "email").
		Values(activityName, email).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building add participant SQL")
		return 0, fmt.Errorf("failed to build add participant query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, UniqueParticipantConstraint) {
			return 0, apperrors.ErrAlreadyRegistered
		}
		logger.Error().Err(err).Str("activityName", activityName).Msg("Error executing add participant query")
		return 0, fmt.Errorf("error adding participant: %w", err)
	}

	return id, nil
}

// RemoveParticipant unregisters a student from an activity
func (r *ParticipantRepository) RemoveParticipant(ctx context.Context, activityName, email string) error {
	sql, args, err := r.sb.Delete("participants").
		Where(squirrel.Eq{"activity_name": activityName, "email": email}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building remove participant SQL")
		return fmt.Errorf("failed to build remove participant query: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("activityName", activityName).Msg("Error executing remove participant query")
		return fmt.Errorf("error removing participant: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrNotRegistered
	}

	return nil
}
