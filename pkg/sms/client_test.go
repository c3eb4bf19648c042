package sms

import (
	"context"
	"testing"

	"github.com/nobatclinic/nobat_backend/config"
)

func TestNewFromConfig_Disabled(t *testing.T) {
	cfg := config.SMSConfig{
		Enabled: false,
	}

	client, err := NewFromConfig(cfg)
	if err != nil {
		t.Fatalf("NewFromConfig failed: %v", err)
	}

	if client.IsEnabled() {
		t.Error("Expected client to be disabled")
	}
}

func TestNewFromConfig_EnabledWithoutAPIKey(t *testing.T) {
	cfg := config.SMSConfig{
		Enabled: true,
		SMSIR: config.SMSIRConfig{
			APIKey:            "",
			SecretKey:         "",
			ConfirmTemplateID: "test-template",
		},
	}

	_, err := NewFromConfig(cfg)
	if err == nil {
		t.Error("Expected error when API key is missing")
	}
}

func TestNewFromConfig_EnabledWithAPIKey(t *testing.T) {
	cfg := config.SMSConfig{
		Enabled: true,
		SMSIR: config.SMSIRConfig{
			APIKey:            "test-api-key",
			SecretKey:         "test-secret-key",
			ConfirmTemplateID: "test-template",
		},
	}

	client, err := NewFromConfig(cfg)
	if err != nil {
		t.Fatalf("NewFromConfig failed: %v", err)
	}

	if !client.IsEnabled() {
		t.Error("Expected client to be enabled")
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name        string
		phone       string
		region      string
		want        string
		expectError bool
	}{
		{
			name:   "local Iranian mobile",
			phone:  "09121234567",
			region: "IR",
			want:   "+989121234567",
		},
		{
			name:   "already E.164",
			phone:  "+989121234567",
			region: "IR",
			want:   "+989121234567",
		},
		{
			name:   "spaces and dashes",
			phone:  "0912 123-4567",
			region: "IR",
			want:   "+989121234567",
		},
		{
			name:        "garbage input",
			phone:       "not-a-number",
			region:      "IR",
			expectError: true,
		},
		{
			name:        "too short",
			phone:       "0912",
			region:      "IR",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhone(tt.phone, tt.region)
			if tt.expectError {
				if err == nil {
					t.Error("Expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizePhone failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSend_DisabledClient(t *testing.T) {
	client := &Client{enabled: false}

	err := client.SendAppointmentConfirmed(context.Background(), "+989121234567", "2025-03-10", "09:00")
	if err != nil {
		t.Errorf("Expected no error for disabled client, got: %v", err)
	}
}

func TestSend_Validation(t *testing.T) {
	client := &Client{enabled: true, region: "IR", confirmTemplate: "tmpl"}

	tests := []struct {
		name        string
		phone       string
		template    string
		expectError bool
	}{
		{
			name:        "empty phone number",
			phone:       "",
			template:    "tmpl",
			expectError: true,
		},
		{
			name:        "empty template ID",
			phone:       "+989121234567",
			template:    "",
			expectError: true,
		},
		{
			name:        "unparseable phone",
			phone:       "abc",
			template:    "tmpl",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := client.sendTemplate(context.Background(), tt.phone, tt.template, nil)
			if tt.expectError && err == nil {
				t.Error("Expected error but got nil")
			}
		})
	}
}

func TestIsEnabled(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
	}{
		{"enabled client", true},
		{"disabled client", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &Client{enabled: tt.enabled}
			if client.IsEnabled() != tt.enabled {
				t.Errorf("Expected IsEnabled() = %v, got %v", tt.enabled, client.IsEnabled())
			}
		})
	}
}
