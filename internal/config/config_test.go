package config_test

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/courier-hub/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		env     map[string]string
		wantErr bool
	}{
		{
			name: "memory store skips postgres section",
			env: map[string]string{
				"STORE_DRIVER": "memory",
				"JWT_SECRET":   "0123456789abcdef",
			},
		},
		{
			name: "postgres store requires credentials",
			env: map[string]string{
				"STORE_DRIVER": "postgres",
				"JWT_SECRET":   "0123456789abcdef",
			},
			wantErr: true,
		},
		{
			name: "postgres store with credentials",
			env: map[string]string{
				"STORE_DRIVER":      "postgres",
				"POSTGRES_USER":     "courier",
				"POSTGRES_PASSWORD": "secret",
				"JWT_SECRET":        "0123456789abcdef",
			},
		},
		{
			name: "short jwt secret",
			env: map[string]string{
				"STORE_DRIVER": "memory",
				"JWT_SECRET":   "short",
			},
			wantErr: true,
		},
		{
			name: "unknown broker",
			env: map[string]string{
				"STORE_DRIVER":  "memory",
				"JWT_SECRET":    "0123456789abcdef",
				"FANOUT_BROKER": "redis",
			},
			wantErr: true,
		},
		{
			name: "kafka broker validates brokers",
			env: map[string]string{
				"STORE_DRIVER":  "memory",
				"JWT_SECRET":    "0123456789abcdef",
				"FANOUT_BROKER": "kafka",
				"KAFKA_BROKERS": "kafka:9092,kafka-2:9092",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			err := config.New().Validate()
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestConfig_Defaults(t *testing.T) {
	t.Setenv("DISPATCH_AUTO_CLAIM", "false")
	t.Setenv("CACHE_TTL", "broken")
	t.Setenv("DISPATCH_PER_KM_FEE", "12.5")

	conf := config.New()

	assert.False(t, conf.Dispatch.AutoClaim)
	assert.Equal(t, 5*time.Second, conf.Cache.TTL)
	assert.Equal(t, 12.5, conf.Dispatch.PerKmFee)
	assert.Equal(t, config.BrokerNone, conf.Fanout.Broker)
}
