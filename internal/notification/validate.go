package notification

// validType reports whether the tag belongs to the closed channel set.
func validType(typ Type) bool {
	switch typ {
	case TypeEmail, TypeSMS, TypePush:
		return true
	}
	return false
}

// validateSendRequest applies the per-variant required-field rules up
// front: subject only exists for email, title only for push. Runs before
// authorization so malformed requests never hit the gate.
func validateSendRequest(req *SendRequest) error {
	if len(req.Recipients) == 0 {
		return badRequest("Recipients must be an array.")
	}
	if !validType(req.Type) {
		return badRequest(`"type" must be one of [email, sms, push]`)
	}
	if req.Content == "" {
		return badRequest(`"content" is required`)
	}
	if req.Type == TypeEmail && req.Subject == "" {
		return badRequest(`"subject" is required`)
	}
	if req.Type == TypePush && req.Title == "" {
		return badRequest(`"title" is required`)
	}
	return nil
}

// validateRecord checks a full replacement document for the update path.
func validateRecord(n *Notification) error {
	if !validType(n.Type) {
		return badRequest(`"type" must be one of [email, sms, push]`)
	}
	if n.Content == "" {
		return badRequest(`"content" is required`)
	}
	if len(n.Recipients) == 0 {
		return badRequest("Recipients must be an array.")
	}
	switch n.Status {
	case StatusSent, StatusFailed, StatusPending:
	case "":
		n.Status = StatusSent
	default:
		return badRequest(`"status" must be one of [Sent, Failed, Pending]`)
	}
	if n.Type == TypeEmail && n.Subject == "" {
		return badRequest(`"subject" is required`)
	}
	if n.Type == TypePush && n.Title == "" {
		return badRequest(`"title" is required`)
	}
	return nil
}
