package sms

import (
	"context"
	"fmt"

	"github.com/arsmn/go-smsir/smsir"
	"github.com/nyaruka/phonenumbers"

	"github.com/nobatclinic/nobat_backend/config"
)

// Client sends appointment SMS messages via sms.ir templates.
type Client struct {
	client  *smsir.Client
	enabled bool
	region  string

	confirmTemplate string
	cancelTemplate  string
	editTemplate    string
}

// NewFromConfig creates a new SMS client from the application configuration.
// If SMS is disabled, returns a client that no-ops on all operations.
func NewFromConfig(cfg config.SMSConfig) (*Client, error) {
	region := cfg.DefaultRegion
	if region == "" {
		region = "IR"
	}

	if !cfg.Enabled {
		return &Client{enabled: false, region: region}, nil
	}

	if cfg.SMSIR.APIKey == "" {
		return nil, fmt.Errorf("sms.ir API key required when SMS enabled")
	}

	client := smsir.NewClient().WithAuthentication(cfg.SMSIR.APIKey, cfg.SMSIR.SecretKey)

	return &Client{
		client:          client,
		enabled:         true,
		region:          region,
		confirmTemplate: cfg.SMSIR.ConfirmTemplateID,
		cancelTemplate:  cfg.SMSIR.CancelTemplateID,
		editTemplate:    cfg.SMSIR.EditTemplateID,
	}, nil
}

// NormalizePhone parses a stored phone number and returns it in E.164
// form. Numbers without an international prefix are interpreted in the
// given default region.
func NormalizePhone(phone, region string) (string, error) {
	num, err := phonenumbers.Parse(phone, region)
	if err != nil {
		return "", fmt.Errorf("parse phone %q: %w", phone, err)
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", fmt.Errorf("invalid phone number: %q", phone)
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}

// SendAppointmentConfirmed notifies the patient of a new booking.
func (c *Client) SendAppointmentConfirmed(ctx context.Context, phone, date, slot string) error {
	return c.sendTemplate(ctx, phone, c.confirmTemplate, []smsir.UltraFastParameter{
		{Key: "date", Value: date},
		{Key: "time", Value: slot},
	})
}

// SendAppointmentCancelled notifies the patient of a cancellation.
func (c *Client) SendAppointmentCancelled(ctx context.Context, phone, date, slot string) error {
	return c.sendTemplate(ctx, phone, c.cancelTemplate, []smsir.UltraFastParameter{
		{Key: "date", Value: date},
		{Key: "time", Value: slot},
	})
}

// SendEditDecision notifies the patient of an edit-request decision
// ("approved" or "rejected").
func (c *Client) SendEditDecision(ctx context.Context, phone, decision string) error {
	return c.sendTemplate(ctx, phone, c.editTemplate, []smsir.UltraFastParameter{
		{Key: "decision", Value: decision},
	})
}

func (c *Client) sendTemplate(ctx context.Context, phone, templateID string, params []smsir.UltraFastParameter) error {
	if !c.enabled {
		// No-op when disabled (useful for development)
		return nil
	}
	if phone == "" {
		return fmt.Errorf("phone number is required")
	}
	if templateID == "" {
		return fmt.Errorf("template ID is required")
	}

	normalized, err := NormalizePhone(phone, c.region)
	if err != nil {
		return err
	}

	req := &smsir.UltraFastSendRequest{
		Mobile:     normalized,
		TemplateID: templateID,
		Parameters: params,
	}

	if _, err := c.client.Verification.UltraFastSend(ctx, req); err != nil {
		return fmt.Errorf("sms.ir send failed: %w", err)
	}
	return nil
}

// IsEnabled returns whether SMS sending is enabled.
func (c *Client) IsEnabled() bool {
	return c.enabled
}
