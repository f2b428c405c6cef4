package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ticketops/internal/shared/config"
	"ticketops/internal/tickets"
	"ticketops/pkg/logger"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
)

// Consumer drains the lifecycle topic and persists a notification row
// per event. Offsets commit only after the row is written, so a crash
// re-delivers rather than drops.
type Consumer struct {
	consumerGroup sarama.ConsumerGroup
	topics        []string
	repo          Repository
	log           *logger.Logger
	cancel        context.CancelFunc
}

func NewConsumer(cfg config.KafkaConfig, repo Repository, log *logger.Logger) (*Consumer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Consumer.Group.Session.Timeout = 30 * time.Second
	saramaConfig.Consumer.Group.Heartbeat.Interval = 3 * time.Second
	saramaConfig.Consumer.Return.Errors = true
	saramaConfig.Consumer.Offsets.Initial = sarama.OffsetNewest
	saramaConfig.Consumer.Offsets.AutoCommit.Enable = true
	saramaConfig.Consumer.Offsets.AutoCommit.Interval = time.Second

	consumerGroup, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.ConsumerGroup, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	return &Consumer{
		consumerGroup: consumerGroup,
		topics:        []string{cfg.TicketTopic},
		repo:          repo,
		log:           log,
	}, nil
}

// Start runs the consume loop until the context is cancelled or Stop is
// called.
func (c *Consumer) Start(ctx context.Context) {
	ctx, c.cancel = context.WithCancel(ctx)

	go func() {
		for err := range c.consumerGroup.Errors() {
			c.log.WithError(err).Error("lifecycle consumer group error")
		}
	}()

	go func() {
		handler := &lifecycleHandler{repo: c.repo, log: c.log}
		for {
			if ctx.Err() != nil {
				return
			}
			if err := c.consumerGroup.Consume(ctx, c.topics, handler); err != nil {
				c.log.WithError(err).Error("lifecycle consume failed, retrying")
				time.Sleep(time.Second)
			}
		}
	}()
}

func (c *Consumer) Stop() error {
	if c.cancel != nil {
		c.cancel()
	}
	if err := c.consumerGroup.Close(); err != nil {
		return fmt.Errorf("failed to close consumer group: %w", err)
	}
	return nil
}

type lifecycleHandler struct {
	repo Repository
	log  *logger.Logger
}

func (h *lifecycleHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *lifecycleHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *lifecycleHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message := <-claim.Messages():
			if message == nil {
				return nil
			}
			if err := h.handle(session.Context(), message); err != nil {
				h.log.WithError(err).Error("failed to handle lifecycle event",
					"topic", message.Topic, "offset", message.Offset)
				continue
			}
			session.MarkMessage(message, "")

		case <-session.Context().Done():
			return nil
		}
	}
}

func (h *lifecycleHandler) handle(ctx context.Context, message *sarama.ConsumerMessage) error {
	var event tickets.LifecycleEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		return fmt.Errorf("failed to unmarshal lifecycle event: %w", err)
	}

	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return fmt.Errorf("invalid user ID in lifecycle event: %w", err)
	}
	ticketID, err := uuid.Parse(event.TicketID)
	if err != nil {
		return fmt.Errorf("invalid ticket ID in lifecycle event: %w", err)
	}
	eventID, err := uuid.Parse(event.EventID)
	if err != nil {
		return fmt.Errorf("invalid event ID in lifecycle event: %w", err)
	}

	notification := &Notification{
		UserID:   userID,
		TicketID: ticketID,
		EventID:  eventID,
		Type:     event.Type,
		Message:  event.Message,
	}
	if err := h.repo.Create(ctx, notification); err != nil {
		return fmt.Errorf("failed to persist notification: %w", err)
	}
	return nil
}
