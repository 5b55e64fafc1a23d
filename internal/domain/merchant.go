package domain

import "time"

// Merchant carries only what the gateway core needs: where to deliver
// webhooks and the secret to sign them with. Credential management and
// authentication live in a separate service.
type Merchant struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	WebhookURL    string    `json:"webhook_url,omitempty"`
	WebhookSecret string    `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
}

type MerchantRepository interface {
	CreateMerchant(merchant *Merchant) error
	GetMerchantByID(merchantID string) (*Merchant, error)
	UpdateWebhookConfig(merchantID, webhookURL, webhookSecret string) error
}
