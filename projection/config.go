package projection

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	ProjectionAPIAddress string `envconfig:"PROJECTION_API_ADDRESS"`
	ProjectionAPITimeout int    `envconfig:"PROJECTION_API_TIMEOUT" default:"15"` // in seconds
}

func LoadConfig() (c *Config, err error) {
	c = &Config{}
	err = envconfig.Process("", c)
	if err != nil {
		return nil, err
	}
	return c, nil
}
