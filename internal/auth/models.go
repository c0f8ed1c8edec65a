package auth

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ValidRoles are the permission tags a user may hold. Each role grants
// dispatch of the matching notification channel.
var ValidRoles = []string{"email", "sms", "push"}

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	EmailAddress string             `bson:"emailaddress" json:"emailaddress"`
	Password     string             `bson:"password" json:"-"`
	PhoneNumber  string             `bson:"phoneNumber" json:"phoneNumber"`
	DeviceToken  string             `bson:"deviceToken" json:"deviceToken"`
	Roles        []string           `bson:"roles" json:"roles"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type RegisterRequest struct {
	Name         string   `json:"name"`
	EmailAddress string   `json:"emailaddress"`
	Password     string   `json:"password"`
	PhoneNumber  string   `json:"phoneNumber"`
	DeviceToken  string   `json:"deviceToken"`
	Roles        []string `json:"roles"`
}

type Credential struct {
	EmailAddress string `json:"emailaddress"`
	Password     string `json:"password"`
}

// UpdateRequest carries the optional fields of PUT /users/replace and
// PATCH /users/update. Empty fields are left untouched; the two endpoints
// differ only in how Roles is applied (overwrite vs. union).
type UpdateRequest struct {
	Name         string   `json:"name"`
	EmailAddress string   `json:"emailaddress"`
	Password     string   `json:"password"`
	PhoneNumber  string   `json:"phoneNumber"`
	DeviceToken  string   `json:"deviceToken"`
	Roles        []string `json:"roles"`
}
