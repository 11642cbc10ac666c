package rabbitmq

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"sync"

	"github.com/labstack/gommon/log"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/ziflex/lecho/v3"
)

// bufPool is a classic buffer pool pattern that allows more clever reuse
// of heap memory. Instead of allocating new memory every time we encode
// an event we reuse buffers from this pool.
var bufPool = sync.Pool{
	New: func() interface{} { return new(bytes.Buffer) },
}

const contentTypeJSON = "application/json"

// Client publishes vault lifecycle events to a topic exchange. Routing
// keys follow "vault.save.<status>" so consumers can bind selectively,
// e.g. an alerting worker on "vault.save.partial".
type Client interface {
	PublishVaultEvent(ctx context.Context, routingKey string, event interface{}) error
	Close() error
}

type DefaultClient struct {
	amqpClient AMQPClient

	logger *lecho.Logger

	vaultExchange string
}

type ClientOption = func(client *DefaultClient)

func WithVaultExchange(exchange string) ClientOption {
	return func(client *DefaultClient) {
		client.vaultExchange = exchange
	}
}

func WithLogger(logger *lecho.Logger) ClientOption {
	return func(client *DefaultClient) {
		client.logger = logger
	}
}

func NewClient(amqpClient AMQPClient, options ...ClientOption) (Client, error) {
	client := &DefaultClient{
		amqpClient: amqpClient,

		logger: lecho.New(
			os.Stdout,
			lecho.WithLevel(log.DEBUG),
			lecho.WithTimestamp(),
		),

		vaultExchange: "vaulthub_vault",
	}

	for _, opt := range options {
		opt(client)
	}

	err := client.amqpClient.ExchangeDeclare(
		client.vaultExchange,
		// topic exchanges route to queues based on the routing key
		"topic",
		// Durable and Non-Auto-Deleted exchanges survive server restarts
		// and remain declared when there are no remaining bindings.
		true,
		false,
		// Non-Internal exchanges accept direct publishing
		false,
		// Nowait: wait for a server response to confirm the declare
		false,
		nil,
	)
	if err != nil {
		return nil, err
	}

	return client, nil
}

func (client *DefaultClient) Close() error { return client.amqpClient.Close() }

func (client *DefaultClient) PublishVaultEvent(ctx context.Context, routingKey string, event interface{}) error {
	payload := bufPool.Get().(*bytes.Buffer)
	payload.Reset()
	defer bufPool.Put(payload)

	err := json.NewEncoder(payload).Encode(event)
	if err != nil {
		return err
	}

	client.logger.Debugf("Publishing to exchange %s with routing key %s", client.vaultExchange, routingKey)

	return client.amqpClient.PublishWithContext(ctx,
		client.vaultExchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType: contentTypeJSON,
			Body:        payload.Bytes(),
		},
	)
}
