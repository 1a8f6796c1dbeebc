package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mergington/activities/internal/app/models"
	"github.com/mergington/activities/internal/app/models/dto"
	"github.com/mergington/activities/internal/pkg/apperrors"
)

// ActivityStore is the slice of the activity repository the service consumes.
type ActivityStore interface {
	GetActivityByName(ctx context.Context, name string) (*models.Activity, error)
	GetAllActivities(ctx context.Context) ([]*models.Activity, error)
}

// ParticipantStore is the slice of the participant repository the service consumes.
type ParticipantStore interface {
	GetEmailsByActivityName(ctx context.Context, activityName string) ([]string, error)
	GetEmailsByActivityNames(ctx context.Context, activityNames []string) (map[string][]string, error)
	IsRegistered(ctx context.Context, activityName, email string) (bool, error)
	AddParticipant(ctx context.Context, activityName, email string) (int64, error)
	RemoveParticipant(ctx context.Context, activityName, email string) error
}

// Stores hands out transaction-scoped repositories. Every service operation
// performs all of its reads and writes inside one InTransaction callback, so
// each request gets a single session that is committed or rolled back before
// the operation returns.
type Stores interface {
	InTransaction(ctx context.Context, fn func(ctx context.Context, activities ActivityStore, participants ParticipantStore) error) error
}

// ActivityService defines the interface for activity-related operations
type ActivityService interface {
	GetAllActivities(ctx context.Context) (dto.ActivityMap, error)
	GetActivityByName(ctx context.Context, name string) (*dto.ActivityDetail, error)
	SignUp(ctx context.Context, activityName, email string) error
	Unregister(ctx context.Context, activityName, email string) error
}

// activityServiceImpl implements the ActivityService interface
type activityServiceImpl struct {
	stores Stores
}

// NewActivityService creates a new activity service instance
func NewActivityService(stores Stores) ActivityService {
	return &activityServiceImpl{stores: stores}
}

// validateSignupArgs validates the path and query arguments shared by the
// signup and unregister operations.
func validateSignupArgs(activityName, email string) error {
	if strings.TrimSpace(activityName) == "" {
		return fmt.Errorf("%w: activity name cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email cannot be empty", apperrors.ErrValidationFailed)
	}
	return nil
}

// GetAllActivities returns every activity keyed by name, each with its
// current participant emails. Both queries share one transaction, so the
// roster snapshot is consistent; nothing is cached.
func (s *activityServiceImpl) GetAllActivities(ctx context.Context) (dto.ActivityMap, error) {
	var result dto.ActivityMap

	err := s.stores.InTransaction(ctx, func(ctx context.Context, activityRepo ActivityStore, participantRepo ParticipantStore) error {
		activities, err := activityRepo.GetAllActivities(ctx)
		if err != nil {
			return fmt.Errorf("error retrieving activities: %w", err)
		}

		names := make([]string, 0, len(activities))
		for _, activity := range activities {
			names = append(names, activity.Name)
		}

		emailsByActivity, err := participantRepo.GetEmailsByActivityNames(ctx, names)
		if err != nil {
			return fmt.Errorf("error retrieving participants: %w", err)
		}

		result = make(dto.ActivityMap, len(activities))
		for _, activity := range activities {
			emails := emailsByActivity[activity.Name]
			if emails == nil {
				emails = []string{}
			}
			result[activity.Name] = &dto.ActivityDetail{
				Description:     activity.Description,
				Schedule:        activity.Schedule,
				MaxParticipants: activity.MaxParticipants,
				Participants:    emails,
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// GetActivityByName returns a single activity with its participant emails
func (s *activityServiceImpl) GetActivityByName(ctx context.Context, name string) (*dto.ActivityDetail, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: activity name cannot be empty", apperrors.ErrValidationFailed)
	}

	var detail *dto.ActivityDetail

	err := s.stores.InTransaction(ctx, func(ctx context.Context, activityRepo ActivityStore, participantRepo ParticipantStore) error {
		activity, err := activityRepo.GetActivityByName(ctx, name)
		if err != nil {
			if errors.Is(err, apperrors.ErrActivityNotFound) {
				return apperrors.ErrActivityNotFound
			}
			return fmt.Errorf("error retrieving activity: %w", err)
		}

		emails, err := participantRepo.GetEmailsByActivityName(ctx, activity.Name)
		if err != nil {
			return fmt.Errorf("error retrieving participants: %w", err)
		}

		detail = &dto.ActivityDetail{
			Description:     activity.Description,
			Schedule:        activity.Schedule,
			MaxParticipants: activity.MaxParticipants,
			Participants:    emails,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return detail, nil
}

// SignUp registers a student for an activity. The precondition checks and the
// insert run inside one transaction, in order: the activity must exist, and
// the student must not already be signed up. Capacity (max_participants) is
// intentionally not checked.
func (s *activityServiceImpl) SignUp(ctx context.Context, activityName, email string) error {
	if err := validateSignupArgs(activityName, email); err != nil {
		return err
	}

	return s.stores.InTransaction(ctx, func(ctx context.Context, activityRepo ActivityStore, participantRepo ParticipantStore) error {
		if _, err := activityRepo.GetActivityByName(ctx, activityName); err != nil {
			if errors.Is(err, apperrors.ErrActivityNotFound) {
				return apperrors.ErrActivityNotFound
			}
			return fmt.Errorf("error retrieving activity: %w", err)
		}

		registered, err := participantRepo.IsRegistered(ctx, activityName, email)
		if err != nil {
			return fmt.Errorf("error checking registration: %w", err)
		}
		if registered {
			return apperrors.ErrAlreadyRegistered
		}

		if _, err := participantRepo.AddParticipant(ctx, activityName, email); err != nil {
			// The unique constraint catches signups that race past the check above.
			if errors.Is(err, apperrors.ErrAlreadyRegistered) {
				return apperrors.ErrAlreadyRegistered
			}
			return fmt.Errorf("error signing up participant: %w", err)
		}

		return nil
	})
}

// Unregister removes a student from an activity. The precondition checks and
// the delete run inside one transaction, in order: the activity must exist,
// and the student must be signed up.
func (s *activityServiceImpl) Unregister(ctx context.Context, activityName, email string) error {
	if err := validateSignupArgs(activityName, email); err != nil {
		return err
	}

	return s.stores.InTransaction(ctx, func(ctx context.Context, activityRepo ActivityStore, participantRepo ParticipantStore) error {
		if _, err := activityRepo.GetActivityByName(ctx, activityName); err != nil {
			if errors.Is(err, apperrors.ErrActivityNotFound) {
				return apperrors.ErrActivityNotFound
			}
			return fmt.Errorf("error retrieving activity: %w", err)
		}

		registered, err := participantRepo.IsRegistered(ctx, activityName, email)
		if err != nil {
			return fmt.Errorf("error checking registration: %w", err)
		}
		if !registered {
			return apperrors.ErrNotRegistered
		}

		if err := participantRepo.RemoveParticipant(ctx, activityName, email); err != nil {
			if errors.Is(err, apperrors.ErrNotRegistered) {
				return apperrors.ErrNotRegistered
			}
			return fmt.Errorf("error removing participant: %w", err)
		}

		return nil
	})
}
