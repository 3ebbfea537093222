package dto

// EntitlementsResponse summarizes a user's access-granting facts.
type EntitlementsResponse struct {
	UserSID            string   `json:"user_sid"`
	SubscriptionActive bool     `json:"subscription_active"`
	PurchasedLessons   []string `json:"purchased_lessons"`
}
