package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"featurevote-be/internal/dto"
	"featurevote-be/internal/entity"
	"featurevote-be/internal/pkg/logger"
	"featurevote-be/internal/pkg/serverutils"
	"featurevote-be/internal/repository/specification"
	"featurevote-be/internal/repository/unitofwork"
	"featurevote-be/pkg/events"
	pktNats "featurevote-be/pkg/nats"

	"github.com/google/uuid"
)

type IFeatureService interface {
	Create(ctx context.Context, principal *serverutils.Principal, req *dto.CreateFeatureRequest) (*dto.FeatureResponse, error)
	GetAll(ctx context.Context) ([]*dto.FeatureWithVotesResponse, error)
	GetAllAdmin(ctx context.Context) ([]*dto.FeatureWithVotesResponse, error)
	Delete(ctx context.Context, principal *serverutils.Principal, featureId uuid.UUID) error
	ToggleVote(ctx context.Context, principal *serverutils.Principal, featureId uuid.UUID) (*dto.ToggleVoteResponse, error)
	UpdateStatus(ctx context.Context, featureId uuid.UUID, req *dto.UpdateStatusRequest) (*dto.FeatureResponse, error)
}

type featureService struct {
	uowFactory       unitofwork.RepositoryFactory
	eventPublisher   *pktNats.Publisher
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewFeatureService(
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher *pktNats.Publisher,
	publisherService IPublisherService,
	log logger.ILogger,
) IFeatureService {
	return &featureService{
		uowFactory:       uowFactory,
		eventPublisher:   eventPublisher,
		publisherService: publisherService,
		logger:           log,
	}
}

// Create stores the feature together with its synthetic PENDING->PENDING
// audit row in one transaction, so the audit trail is complete from birth.
func (s *featureService) Create(ctx context.Context, principal *serverutils.Principal, req *dto.CreateFeatureRequest) (*dto.FeatureResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	now := time.Now()
	feature := &entity.Feature{
		Id:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Status:      entity.StatusPending,
		CreatorId:   principal.UserId,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uow.FeatureRepository().Create(ctx, feature); err != nil {
		return nil, err
	}

	change := &entity.StatusChange{
		Id:        uuid.New(),
		FeatureId: feature.Id,
		OldStatus: entity.StatusPending,
		NewStatus: entity.StatusPending,
		CreatedAt: now,
	}
	if err := uow.StatusChangeRepository().Create(ctx, change); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.New(events.TypeFeatureCreated, map[string]interface{}{
		"feature_id": feature.Id.String(),
		"creator_id": principal.UserId.String(),
	}))

	return toFeatureResponse(feature), nil
}

// GetAll lists non-deleted features ranked by vote count for the public board.
func (s *featureService) GetAll(ctx context.Context) ([]*dto.FeatureWithVotesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	features, err := uow.FeatureRepository().FindAllWithVotes(ctx, true)
	if err != nil {
		return nil, err
	}
	return toFeatureWithVotesResponses(features), nil
}

// GetAllAdmin lists non-deleted features newest first for the admin table.
func (s *featureService) GetAllAdmin(ctx context.Context) ([]*dto.FeatureWithVotesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	features, err := uow.FeatureRepository().FindAllWithVotes(ctx, false)
	if err != nil {
		return nil, err
	}
	return toFeatureWithVotesResponses(features), nil
}

// Delete marks the feature deleted. Votes and status changes stay: the audit
// history still has to reconstruct past intervals for deleted features.
func (s *featureService) Delete(ctx context.Context, principal *serverutils.Principal, featureId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	feature, err := uow.FeatureRepository().FindOne(ctx, specification.ByID{ID: featureId}, specification.NotDeleted{})
	if err != nil {
		return err
	}
	if feature == nil {
		return fmt.Errorf("%w: feature not found", ErrNotFound)
	}

	if !feature.CanDelete(principal.UserId, principal.Role) {
		return fmt.Errorf("%w: only the creator or an admin may delete a feature", ErrForbidden)
	}

	now := time.Now()
	feature.IsDeleted = true
	feature.DeletedAt = &now
	feature.UpdatedAt = now
	if err := uow.FeatureRepository().Update(ctx, feature); err != nil {
		return err
	}

	s.publishEvent(ctx, events.New(events.TypeFeatureDeleted, map[string]interface{}{
		"feature_id": feature.Id.String(),
		"deleted_by": principal.UserId.String(),
	}))

	return nil
}

// ToggleVote adds the caller's vote if absent, removes it if present. The
// unique (user_id, feature_id) index is the only concurrency guard; a race
// between two toggles collapses to one insert winning.
func (s *featureService) ToggleVote(ctx context.Context, principal *serverutils.Principal, featureId uuid.UUID) (*dto.ToggleVoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	feature, err := uow.FeatureRepository().FindOne(ctx, specification.ByID{ID: featureId}, specification.NotDeleted{})
	if err != nil {
		return nil, err
	}
	if feature == nil {
		return nil, fmt.Errorf("%w: feature not found", ErrNotFound)
	}

	existing, err := uow.VoteRepository().FindOne(ctx, specification.ByUserAndFeature{
		UserID:    principal.UserId,
		FeatureID: featureId,
	})
	if err != nil {
		return nil, err
	}

	var voted bool
	if existing != nil {
		if err := uow.VoteRepository().Delete(ctx, existing.Id); err != nil {
			return nil, err
		}
		voted = false
	} else {
		vote := &entity.Vote{
			Id:        uuid.New(),
			UserId:    principal.UserId,
			FeatureId: featureId,
			CreatedAt: time.Now(),
		}
		if err := uow.VoteRepository().Create(ctx, vote); err != nil {
			return nil, err
		}
		voted = true
	}

	voteCount, err := uow.VoteRepository().Count(ctx, specification.ByFeatureID{FeatureID: featureId})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.New(events.TypeVoteToggled, map[string]interface{}{
		"feature_id": featureId.String(),
		"user_id":    principal.UserId.String(),
		"voted":      voted,
	}))

	return &dto.ToggleVoteResponse{
		FeatureId: featureId,
		Voted:     voted,
		VoteCount: voteCount,
	}, nil
}

// UpdateStatus transitions the feature and appends the audit row in one
// transaction. Transitioning to the current status is a no-op that writes
// nothing.
func (s *featureService) UpdateStatus(ctx context.Context, featureId uuid.UUID, req *dto.UpdateStatusRequest) (*dto.FeatureResponse, error) {
	newStatus, ok := entity.ParseFeatureStatus(req.Status)
	if !ok {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, req.Status)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	feature, err := uow.FeatureRepository().FindOne(ctx, specification.ByID{ID: featureId}, specification.NotDeleted{})
	if err != nil {
		return nil, err
	}
	if feature == nil {
		return nil, fmt.Errorf("%w: feature not found", ErrNotFound)
	}

	if feature.Status == newStatus {
		return toFeatureResponse(feature), nil
	}

	oldStatus := feature.Status
	now := time.Now()

	change := &entity.StatusChange{
		Id:        uuid.New(),
		FeatureId: feature.Id,
		OldStatus: oldStatus,
		NewStatus: newStatus,
		CreatedAt: now,
	}
	if err := uow.StatusChangeRepository().Create(ctx, change); err != nil {
		return nil, err
	}

	feature.Status = newStatus
	feature.UpdatedAt = now
	if err := uow.FeatureRepository().Update(ctx, feature); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.New(events.TypeFeatureStatusChanged, map[string]interface{}{
		"feature_id": feature.Id.String(),
		"old_status": string(oldStatus),
		"new_status": string(newStatus),
	}))

	if s.publisherService != nil {
		msgPayload := dto.StatusChangedMessage{
			FeatureId:    feature.Id,
			FeatureTitle: feature.Title,
			CreatorId:    feature.CreatorId,
			OldStatus:    string(oldStatus),
			NewStatus:    string(newStatus),
		}
		msgJson, err := json.Marshal(msgPayload)
		if err == nil {
			err = s.publisherService.Publish(ctx, msgJson)
		}
		if err != nil {
			s.logger.Warn("feature", "Failed to publish status-changed message", map[string]interface{}{
				"feature_id": feature.Id.String(),
				"error":      err.Error(),
			})
		}
	}

	return toFeatureResponse(feature), nil
}

func (s *featureService) publishEvent(ctx context.Context, event events.Event) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		s.logger.Warn("feature", "Failed to publish event", map[string]interface{}{
			"event": event.EventType(),
			"error": err.Error(),
		})
	}
}

func toFeatureResponse(feature *entity.Feature) *dto.FeatureResponse {
	return &dto.FeatureResponse{
		Id:          feature.Id,
		Title:       feature.Title,
		Description: feature.Description,
		Status:      string(feature.Status),
		CreatorId:   feature.CreatorId,
		CreatedAt:   feature.CreatedAt,
	}
}

func toFeatureWithVotesResponses(features []*entity.FeatureWithVotes) []*dto.FeatureWithVotesResponse {
	responses := make([]*dto.FeatureWithVotesResponse, 0, len(features))
	for _, f := range features {
		votes := make([]dto.VoteResponse, 0, len(f.Votes))
		for _, v := range f.Votes {
			votes = append(votes, dto.VoteResponse{
				Id:        v.Id,
				UserId:    v.UserId,
				CreatedAt: v.CreatedAt,
			})
		}
		responses = append(responses, &dto.FeatureWithVotesResponse{
			FeatureResponse: *toFeatureResponse(&f.Feature),
			Votes:           votes,
			VoteCount:       len(votes),
			Creator: dto.CreatorResponse{
				Id:   f.Creator.Id,
				Name: f.Creator.Name,
			},
		})
	}
	return responses
}
