package rmqconsumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/LukeSky25/Material-Share-App/config"
)

// can scale depends on a parallel worker count
const preFetchCount = 1

// RoutingKeyInterest carries beneficiary interest messages:
// a beneficiary asking for an active donation.
const RoutingKeyInterest = "donation.interest"

// InterestHandler is invoked once per decoded interest delivery.
type InterestHandler func(ctx context.Context, donationID, beneficiaryID uuid.UUID) error

type interestMessage struct {
	DonationID    string `json:"donation_id"`
	BeneficiaryID string `json:"beneficiary_id"`
}

type Consumer struct {
	cfg        config.MQ
	log        *zap.Logger
	conn       *amqp091.Connection
	chConsume  *amqp091.Channel
	chDelivery <-chan amqp091.Delivery
	handle     InterestHandler
}

func New(cfg config.MQ, logger *zap.Logger, conn *amqp091.Connection, handle InterestHandler) *Consumer {
	return &Consumer{
		cfg:    cfg,
		log:    logger,
		conn:   conn,
		handle: handle,
	}
}

var err error

func (c *Consumer) Connect(dsn string) error {
	c.conn, err = amqp091.Dial(dsn)
	if err != nil {
		return fmt.Errorf("amqp dial: %w", err)
	}
	c.chConsume, err = c.conn.Channel()
	if err != nil {
		_ = c.conn.Close()
		return fmt.Errorf("amqp channel: %w", err)
	}

	c.log.Info("rabbitmq consumer connected successfully")

	return err
}

func (c *Consumer) Init() error {
	if err = c.chConsume.ExchangeDeclare(
		c.cfg.Exchange,
		c.cfg.ExchangeType,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("exchange declare: %w", err)
	}
	if _, err = c.chConsume.QueueDeclare(
		c.cfg.InterestQueue,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}
	if err = c.chConsume.QueueBind(
		c.cfg.InterestQueue,
		RoutingKeyInterest,
		c.cfg.Exchange,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("queue bind %s: %w", RoutingKeyInterest, err)
	}

	if err = c.chConsume.Qos(preFetchCount, 0, false); err != nil {
		return fmt.Errorf("qos: %w", err)
	}

	var cerr error
	c.chDelivery, cerr = c.chConsume.Consume(
		c.cfg.InterestQueue,
		"",
		true,
		false,
		false,
		false,
		nil,
	)
	if cerr != nil {
		return fmt.Errorf("consume: %w", cerr)
	}

	return nil
}

func (c *Consumer) DeliveryWorker(ctx context.Context) {
	c.log.Info("starting delivery worker")

	defer func() {
		c.log.Info("delivery worker gracefully stopped")
	}()

	for {
		select {
		case msg := <-c.chDelivery:
			// we can also use "fan-out" chan here with "worker-pool"
			// in case of heavy logic processing of messages
			if err = c.delivery(ctx, msg); err != nil {
				// alert
				c.log.Error("mq read message error", zap.Error(err))
			}
		case <-ctx.Done():
			c.chConsume.Close()
			return
		}
	}
}

func (c *Consumer) delivery(ctx context.Context, msg amqp091.Delivery) error {
	if msg.RoutingKey != RoutingKeyInterest {
		return fmt.Errorf("unexpected routing key %q", msg.RoutingKey)
	}

	var im interestMessage
	if err := json.Unmarshal(msg.Body, &im); err != nil {
		return fmt.Errorf("decode interest message: %w", err)
	}

	donationID, err := uuid.Parse(im.DonationID)
	if err != nil {
		return fmt.Errorf("parse donation_id: %w", err)
	}
	beneficiaryID, err := uuid.Parse(im.BeneficiaryID)
	if err != nil {
		return fmt.Errorf("parse beneficiary_id: %w", err)
	}

	return c.handle(ctx, donationID, beneficiaryID)
}
