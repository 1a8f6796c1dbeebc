package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/mergington/activities/internal/app/models"
	"github.com/mergington/activities/internal/db"
	"github.com/mergington/activities/internal/pkg/apperrors"
	"github.com/mergington/activities/internal/pkg/logger"
)

// ActivityRepository handles activity database operations
type ActivityRepository struct {
	db db.Querier
	// Use squirrel instance with placeholder format
	sb squirrel.StatementBuilderType
}

// NewActivityRepository creates a new ActivityRepository on a pool or an
// open transaction
func NewActivityRepository(db db.Querier) *ActivityRepository {
	return &ActivityRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetActivityByName retrieves an activity by its name (the primary key)
func (r *ActivityRepository) GetActivityByName(ctx context.Context, name string) (*models.Activity, error) {
	sql, args, err := r.sb.Select("name", "description", "schedule", "max_participants").
		From("activities").
		Where(squirrel.Eq{"name": name}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get activity by name SQL")
		return nil, fmt.Errorf("failed to build get activity query: %w", err)
	}

	activity := &models.Activity{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&activity.Name,
		&activity.Description,
		&activity.Schedule,
		&activity.MaxParticipants,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrActivityNotFound
		}
		logger.Error().Err(err).Str("activityName", name).Msg("Error scanning activity row")
		return nil, fmt.Errorf("error getting activity by name: %w", err)
	}

	return activity, nil
}

// GetAllActivities retrieves all activities
func (r *ActivityRepository) GetAllActivities(ctx context.Context) ([]*models.Activity, error) {
	sql, args, err := r.sb.Select("name", "description", "schedule", "max_participants").
		From("activities").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all activities SQL")
		return nil, fmt.Errorf("failed to build get all activities query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all activities query")
		return nil, fmt.Errorf("error querying activities: %w", err)
	}
	defer rows.Close()

	activities := []*models.Activity{}
	for rows.Next() {
		activity := &models.Activity{}
		err := rows.Scan(
			&activity.Name,
			&activity.Description,
			&activity.Schedule,
			&activity.MaxParticipants,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning activity row: %w", err)
		}
		activities = append(activities, activity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity rows: %w", err)
	}

	return activities, nil
}

// CountActivities returns the number of activity rows. The seeder uses this
// to decide whether the catalog has already been populated.
func (r *ActivityRepository) CountActivities(ctx context.Context) (int, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("activities").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count activities query: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting activities: %w", err)
	}

	return count, nil
}
