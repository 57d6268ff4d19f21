package service

import (
	"context"
	"fmt"
	"time"

	"featurevote-be/internal/dto"
	"featurevote-be/internal/entity"
	"featurevote-be/internal/pkg/logger"
	"featurevote-be/internal/pkg/mailer"
	"featurevote-be/internal/repository/specification"
	"featurevote-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// NotificationDelivery defines how to push real-time updates.
// Typically implemented by the WebSocket Hub.
type NotificationDelivery interface {
	Send(userId uuid.UUID, notification *dto.NotificationResponse)
}

type INotificationService interface {
	GetForUser(ctx context.Context, userId uuid.UUID) ([]*dto.NotificationResponse, error)
	MarkRead(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	HandleStatusChanged(ctx context.Context, msg *dto.StatusChangedMessage) error
}

type notificationService struct {
	uowFactory   unitofwork.RepositoryFactory
	delivery     NotificationDelivery
	emailService mailer.IEmailService
	logger       logger.ILogger
}

func NewNotificationService(
	uowFactory unitofwork.RepositoryFactory,
	delivery NotificationDelivery,
	emailService mailer.IEmailService,
	log logger.ILogger,
) INotificationService {
	return &notificationService{
		uowFactory:   uowFactory,
		delivery:     delivery,
		emailService: emailService,
		logger:       log,
	}
}

func (s *notificationService) GetForUser(ctx context.Context, userId uuid.UUID) ([]*dto.NotificationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notifications, err := uow.NotificationRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		responses = append(responses, toNotificationResponse(n))
	}
	return responses, nil
}

func (s *notificationService) MarkRead(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.NotificationRepository().MarkRead(ctx, id, userId)
}

// HandleStatusChanged stores an in-app notification for the feature's creator,
// pushes it over the live channel, and sends a best-effort email.
func (s *notificationService) HandleStatusChanged(ctx context.Context, msg *dto.StatusChangedMessage) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	notification := &entity.Notification{
		Id:       uuid.New(),
		UserId:   msg.CreatorId,
		TypeCode: entity.NotificationTypeStatusChanged,
		Title:    "Feature status updated",
		Message:  fmt.Sprintf("%q moved from %s to %s", msg.FeatureTitle, msg.OldStatus, msg.NewStatus),
		Metadata: map[string]interface{}{
			"feature_id": msg.FeatureId.String(),
			"old_status": msg.OldStatus,
			"new_status": msg.NewStatus,
		},
		CreatedAt: time.Now(),
	}

	if err := uow.NotificationRepository().Create(ctx, notification); err != nil {
		return err
	}

	if s.delivery != nil {
		s.delivery.Send(msg.CreatorId, toNotificationResponse(notification))
	}

	if s.emailService == nil {
		return nil
	}

	creator, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: msg.CreatorId})
	if err != nil || creator == nil {
		if err != nil {
			s.logger.Warn("notification", "Failed to look up creator for status email", map[string]interface{}{
				"user_id": msg.CreatorId.String(),
				"error":   err.Error(),
			})
		}
		return nil
	}

	go func() {
		if err := s.emailService.SendStatusUpdate(creator.Email, msg.FeatureTitle, msg.NewStatus); err != nil {
			s.logger.Warn("notification", "Failed to send status email", map[string]interface{}{
				"user_id": creator.Id.String(),
				"error":   err.Error(),
			})
		}
	}()

	return nil
}

func toNotificationResponse(n *entity.Notification) *dto.NotificationResponse {
	return &dto.NotificationResponse{
		Id:        n.Id,
		TypeCode:  n.TypeCode,
		Title:     n.Title,
		Message:   n.Message,
		Metadata:  n.Metadata,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}
