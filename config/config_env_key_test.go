package config

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
			"kafka": map[string]any{
				"groupId": "",
			},
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "PUBSUB_KAFKA_GROUPID", want: "pubsub.kafka.groupId"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMarketplaceRules(t *testing.T) {
	cfg := &Config{}
	cfg.Marketplace = &MarketplaceConfig{
		PromoCodes: map[string]float64{"fresh10": 10},
	}

	applyDefaults(cfg)

	if cfg.Marketplace.OrderPrefix != "ORD" || cfg.Marketplace.ShipmentPrefix != "SHIP" {
		t.Fatalf("unexpected prefixes %q/%q", cfg.Marketplace.OrderPrefix, cfg.Marketplace.ShipmentPrefix)
	}
	if cfg.Marketplace.DefaultDeliveryDays != 3 {
		t.Fatalf("DefaultDeliveryDays = %d, want 3", cfg.Marketplace.DefaultDeliveryDays)
	}
	if cfg.Auth.CookieName != "harvest_session" {
		t.Fatalf("CookieName = %q", cfg.Auth.CookieName)
	}
	if cfg.HTTP.MaxRequestBodySize != "100KB" {
		t.Fatalf("MaxRequestBodySize = %q", cfg.HTTP.MaxRequestBodySize)
	}

	percent, ok := cfg.Marketplace.PromoDiscount(" Fresh10 ")
	if !ok || !percent.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("PromoDiscount = %s, %v", percent, ok)
	}
	if _, ok := cfg.Marketplace.PromoDiscount("NOPE"); ok {
		t.Fatal("unknown promo code must not resolve")
	}
}
