package notification

import (
	"slices"

	"NotificationHub/internal/auth"
)

// requiredRole maps each notification type to the permission tag the caller
// must hold to dispatch it.
var requiredRole = map[Type]string{
	TypeEmail: "email",
	TypeSMS:   "sms",
	TypePush:  "push",
}

// Authorize checks the caller's role set against the requested type and
// derives the sender identity from the matching profile field. A missing
// role is Forbidden; a missing profile field is a data-integrity problem
// and reported as BadRequest.
func Authorize(typ Type, caller *auth.JWTClaims) (string, error) {
	role, ok := requiredRole[typ]
	if !ok {
		return "", badRequest(`"type" must be one of [email, sms, push]`)
	}
	if !slices.Contains(caller.Roles, role) {
		return "", forbidden("You do not have the required role to send %s notifications.", typ)
	}

	var sender string
	switch typ {
	case TypeEmail:
		sender = caller.EmailAddress
	case TypeSMS:
		sender = caller.PhoneNumber
	case TypePush:
		sender = caller.DeviceToken
	}
	if sender == "" {
		return "", badRequest("Sender info for %s is missing in user data.", typ)
	}
	return sender, nil
}
