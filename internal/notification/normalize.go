package notification

// NormalizeRecipients reshapes each raw recipient to the single field
// relevant to the type. The projection is unconditional: a raw recipient
// missing the field yields an entry with the field empty rather than being
// dropped, so cardinality is preserved 1:1. An empty result is still
// rejected as a defensive double-check.
func NormalizeRecipients(typ Type, raw []Recipient) ([]Recipient, error) {
	if len(raw) == 0 {
		return nil, badRequest("Recipients must be an array.")
	}

	normalized := make([]Recipient, 0, len(raw))
	for _, r := range raw {
		switch typ {
		case TypeEmail:
			normalized = append(normalized, Recipient{Email: r.Email})
		case TypeSMS:
			normalized = append(normalized, Recipient{PhoneNumber: r.PhoneNumber})
		case TypePush:
			normalized = append(normalized, Recipient{DeviceToken: r.DeviceToken})
		}
	}

	if len(normalized) == 0 {
		return nil, badRequest("Recipients cannot be empty.")
	}
	return normalized, nil
}
