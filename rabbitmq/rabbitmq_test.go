package rabbitmq_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"

	"github.com/vaultbanking/vaulthub.go/rabbitmq"
	"github.com/vaultbanking/vaulthub.go/rabbitmq/mock_rabbitmq"
)

//go:generate mockgen -destination=./mock_rabbitmq/amqp.go github.com/vaultbanking/vaulthub.go/rabbitmq AMQPClient

func TestNewClientDeclaresTopicExchange(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	amqpClient := mock_rabbitmq.NewMockAMQPClient(ctrl)
	amqpClient.EXPECT().
		ExchangeDeclare("vaulthub_vault", "topic", true, false, false, false, gomock.Nil()).
		Times(1).
		Return(nil)

	_, err := rabbitmq.NewClient(amqpClient)
	assert.NoError(t, err)
}

func TestNewClientWithCustomExchange(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	amqpClient := mock_rabbitmq.NewMockAMQPClient(ctrl)
	amqpClient.EXPECT().
		ExchangeDeclare("custom_exchange", "topic", true, false, false, false, gomock.Nil()).
		Times(1).
		Return(nil)

	_, err := rabbitmq.NewClient(amqpClient, rabbitmq.WithVaultExchange("custom_exchange"))
	assert.NoError(t, err)
}

func TestNewClientPropagatesDeclareError(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	amqpClient := mock_rabbitmq.NewMockAMQPClient(ctrl)
	amqpClient.EXPECT().
		ExchangeDeclare(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Times(1).
		Return(errors.New("channel closed"))

	_, err := rabbitmq.NewClient(amqpClient)
	assert.Error(t, err)
}

func TestPublishVaultEvent(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	amqpClient := mock_rabbitmq.NewMockAMQPClient(ctrl)
	amqpClient.EXPECT().
		ExchangeDeclare(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	client, err := rabbitmq.NewClient(amqpClient)
	assert.NoError(t, err)

	type saveEvent struct {
		VaultId string `json:"vault_id"`
		Status  string `json:"status"`
	}

	var published amqp.Publishing
	amqpClient.EXPECT().
		PublishWithContext(gomock.Any(), "vaulthub_vault", "vault.save.settled", false, false, gomock.Any()).
		Times(1).
		DoAndReturn(func(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
			published = msg
			return nil
		})

	err = client.PublishVaultEvent(context.Background(), "vault.save.settled", saveEvent{
		VaultId: "vault-1",
		Status:  "settled",
	})
	assert.NoError(t, err)
	assert.Equal(t, "application/json", published.ContentType)

	decoded := saveEvent{}
	err = json.Unmarshal(published.Body, &decoded)
	assert.NoError(t, err)
	assert.Equal(t, "vault-1", decoded.VaultId)
	assert.Equal(t, "settled", decoded.Status)
}
