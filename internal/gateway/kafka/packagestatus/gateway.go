// Package packagestatus шлюз публикации событий смены статуса пакета в Kafka.
// Ключ сообщения — id пакета, переходы одного пакета попадают в одну партицию
// и читаются по порядку.
package packagestatus

import (
	"context"
	"encoding/json"
	"fmt"

	"packshare/internal/entities"
)

type Gateway struct {
	producer Producer
	topic    string
}

func New(producer Producer, topic string) *Gateway {
	return &Gateway{
		producer: producer,
		topic:    topic,
	}
}

func (g *Gateway) PublishStatusChanged(_ context.Context, transition entities.PackageTransition) (err error) {
	defer func() {
		status := statusOK
		if err != nil {
			status = statusError
		}
		PublishedEventsTotal.WithLabelValues(status).Inc()
	}()

	event := statusChangedEvent{
		PackageID:           transition.PackageID,
		From:                transition.From.String(),
		To:                  transition.To.String(),
		SenderID:            transition.SenderID,
		AssignedVolunteerID: transition.AssignedVolunteerID,
		OccurredAt:          transition.OccurredAt,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal status changed event: %w", err)
	}

	if err := g.producer.Publish(g.topic, transition.PackageID, payload); err != nil {
		return fmt.Errorf("publish status changed event: %w", err)
	}
	return nil
}
