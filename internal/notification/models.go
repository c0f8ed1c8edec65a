package notification

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Type tags the notification channel. The set is closed; the selector
// fails explicitly on anything else.
type Type string

const (
	TypeEmail Type = "email"
	TypeSMS   Type = "sms"
	TypePush  Type = "push"
)

type Status string

const (
	StatusSent    Status = "Sent"
	StatusFailed  Status = "Failed"
	StatusPending Status = "Pending"
)

// Recipient holds exactly the one field matching the notification type
// after normalization. Raw request recipients may carry any combination.
type Recipient struct {
	Email       string `bson:"email,omitempty" json:"email,omitempty"`
	PhoneNumber string `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	DeviceToken string `bson:"deviceToken,omitempty" json:"deviceToken,omitempty"`
}

// Notification is the persisted record of a dispatch. Subject is set only
// for email, Title only for push.
type Notification struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Type       Type               `bson:"type" json:"type"`
	Content    string             `bson:"content" json:"content"`
	Recipients []Recipient        `bson:"recipients" json:"recipients"`
	Subject    string             `bson:"subject,omitempty" json:"subject,omitempty"`
	Title      string             `bson:"title,omitempty" json:"title,omitempty"`
	Status     Status             `bson:"status" json:"status"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type SendRequest struct {
	Type       Type        `json:"type"`
	Content    string      `json:"content"`
	Recipients []Recipient `json:"recipients"`
	Subject    string      `json:"subject,omitempty"`
	Title      string      `json:"title,omitempty"`
}

// DispatchResult is the canned success object a channel strategy returns.
// There is no transport behind it, so Status is always Sent here.
type DispatchResult struct {
	Type       Type        `json:"type"`
	Sender     string      `json:"sender"`
	Recipients []Recipient `json:"recipients"`
	Content    string      `json:"content"`
	Subject    string      `json:"subject,omitempty"`
	Title      string      `json:"title,omitempty"`
	Status     Status      `json:"status"`
}

type DispatchResponse struct {
	Message string         `json:"message"`
	Result  DispatchResult `json:"result"`
}
