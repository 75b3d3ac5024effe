package package_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"packshare/internal/entities"
	rewardservice "packshare/internal/service/reward"
	"packshare/pkg/logger"
)

type Handler struct {
	rewardService            Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, rewardService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		rewardService:            rewardService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("package.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("package.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event statusChangedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("package.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("package", event.PackageID),
		logger.NewField("from", event.From),
		logger.NewField("to", event.To),
		logger.NewField("offset", message.Offset),
	)

	if event.To != entities.PackageDelivered.String() {
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("package.status.changed processing")

	transition := entities.PackageTransition{
		PackageID:           event.PackageID,
		From:                entities.PackageStatusType(event.From),
		To:                  entities.PackageStatusType(event.To),
		SenderID:            event.SenderID,
		AssignedVolunteerID: event.AssignedVolunteerID,
		OccurredAt:          event.OccurredAt,
	}

	err = h.rewardService.Grant(ctx, transition)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("package.status.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, rewardservice.ErrMissingVolunteer):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("package.status.changed handler event has no volunteer, skipping")

		case errors.Is(err, rewardservice.ErrProfileNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("package.status.changed handler volunteer profile missing, skipping")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("package.status.changed handler failed to grant reward")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("package.status.changed: processed")

	sess.MarkMessage(message, "")
	return false
}
