package service

import (
	"github.com/uptrace/bun"
	"github.com/ziflex/lecho/v3"

	"github.com/vaultbanking/vaulthub.go/bank"
	"github.com/vaultbanking/vaulthub.go/projection"
	"github.com/vaultbanking/vaulthub.go/rabbitmq"
)

type VaulthubService struct {
	Config           *Config
	DB               *bun.DB
	BankClient       bank.Client
	ProjectionClient projection.Client
	Notifier         ProgressNotifier
	RabbitMQClient   rabbitmq.Client
	Logger           *lecho.Logger
}

type InfoResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

func (svc *VaulthubService) GetInfo() *InfoResponse {
	info := &InfoResponse{
		Name:    "vaulthub.go",
		Version: "1.2.0",
	}
	if svc.Config.CustomName != "" {
		info.Name = svc.Config.CustomName
	}
	return info
}
