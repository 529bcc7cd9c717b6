package models

import "time"

const (
	IntentGeneral               = "general"
	IntentGreeting              = "greeting"
	IntentOrderTracking         = "order_tracking"
	IntentSizingHelp            = "sizing_help"
	IntentReturns               = "returns"
	IntentShipping              = "shipping"
	IntentCustomerSupport       = "customer_support"
	IntentProductRecommendation = "product_recommendation"
	IntentPricingPayment        = "pricing_payment"
	IntentGratitude             = "gratitude"
	IntentFarewell              = "farewell"
	IntentSystemError           = "system_error"
)

// ChatbotInteraction is an append-only record of one chatbot exchange.
type ChatbotInteraction struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    *string   `json:"userId,omitempty" gorm:"type:varchar(36);index"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	SessionID string    `json:"sessionId" gorm:"type:varchar(100);index"`
	Query     string    `json:"query" gorm:"type:text"`
	Response  string    `json:"response" gorm:"type:text"`
	Intent    string    `json:"intent" gorm:"type:varchar(50);index"`
	Timestamp time.Time `json:"timestamp" gorm:"index"`
}

// IntentCount is the number of interactions classified under one intent.
type IntentCount struct {
	Intent string `json:"_id"`
	Count  int64  `json:"count"`
}
