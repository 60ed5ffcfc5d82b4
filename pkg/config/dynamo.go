package config

import (
	"fmt"
	"time"
)

// DynamoConfig holds the settings for the DynamoDB document store.
type DynamoConfig struct {
	Region string `koanf:"region"`
	Table  string `koanf:"table"`
	// Endpoint overrides the service endpoint, e.g. for dynamodb-local.
	Endpoint string        `koanf:"endpoint"`
	Timeout  time.Duration `koanf:"timeout"`
}

func (c *DynamoConfig) Validate() error {
	if c.Region == "" {
		return fmt.Errorf("dynamo region is not configured")
	}
	if c.Table == "" {
		return fmt.Errorf("dynamo table is not configured")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("invalid dynamo connect timeout: %v", c.Timeout)
	}
	return nil
}
