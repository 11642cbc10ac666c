package bank

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	BankAPIAddress string `envconfig:"BANK_API_ADDRESS" required:"true"`
	BankAPITimeout int    `envconfig:"BANK_API_TIMEOUT" default:"30"` // in seconds
}

func LoadConfig() (c *Config, err error) {
	c = &Config{}
	err = envconfig.Process("", c)
	if err != nil {
		return nil, err
	}
	return c, nil
}
