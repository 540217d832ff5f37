package apierr

import "strings"

// Curated user-facing sentences for known backend codes. Codes are matched
// by substring so minor backend variations still map.
var friendlyByCode = []struct {
	substr  string
	message string
}{
	{"insufficient_balance", "There is not enough balance in the account for this operation."},
	{"balance", "The account balance does not allow this operation."},
	{"not_found", "The requested item could not be found. It may have been deleted."},
	{"not found", "The requested item could not be found. It may have been deleted."},
	{"unauthorized", "You are not allowed to perform this action."},
	{"duplicate", "An item with these details already exists."},
}

// UserMessage maps err to a sentence suitable for direct display.
// Translation keys pass through unchanged for the localization layer;
// unknown codes fall back to the raw server message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	switch KindOf(err) {
	case KindNetwork:
		return "Unable to reach the server. Check your connection and try again."
	case KindAuth:
		// Auth failures are handled by the session/redirect flow, not toasts.
		return ""
	}

	e := From(err)
	if e == nil {
		return err.Error()
	}

	if IsTranslationKey(e.Message) {
		return e.Message
	}

	code := strings.ToLower(e.Code)
	msg := strings.ToLower(e.Message)
	for _, f := range friendlyByCode {
		if strings.Contains(code, f.substr) || strings.Contains(msg, f.substr) {
			return f.message
		}
	}

	if KindOf(err) == KindValidation && len(e.Messages) > 0 {
		return strings.Join(e.Messages, "; ")
	}

	return e.Message
}
