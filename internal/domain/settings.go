package domain

import "time"

// Settings is a single flat document with named sections; a PATCH replaces
// whole sections, never dotted paths inside them.
type Settings struct {
	General       GeneralSettings      `bson:"general"       json:"general"`
	Donations     DonationSettings     `bson:"donations"     json:"donations"`
	Notifications NotificationSettings `bson:"notifications" json:"notifications"`
	UpdatedAt     time.Time            `bson:"updated_at"    json:"updatedAt"`
}

type GeneralSettings struct {
	PlatformName    string `bson:"platform_name"    json:"platformName"`
	SupportEmail    string `bson:"support_email"    json:"supportEmail"`
	MaintenanceMode bool   `bson:"maintenance_mode" json:"maintenanceMode"`
}

type DonationSettings struct {
	MinimumAmount  float64  `bson:"minimum_amount"  json:"minimumAmount"`
	PaymentMethods []string `bson:"payment_methods" json:"paymentMethods"`
}

type NotificationSettings struct {
	EmailAlerts bool `bson:"email_alerts" json:"emailAlerts"`
}

// DefaultSettings is what a fresh deployment reads before any admin edits.
func DefaultSettings() Settings {
	return Settings{
		General: GeneralSettings{
			PlatformName: "GiveHub",
			SupportEmail: "support@givehub.example",
		},
		Donations: DonationSettings{
			MinimumAmount:  MinAmount,
			PaymentMethods: PaymentMethods,
		},
		Notifications: NotificationSettings{EmailAlerts: true},
	}
}
