// Screen-reader and user-friendly substitutions for error messages in Uplift.

package accessibility

import "strings"

// Technical messages keyed by the status code they usually mention.
var screenReaderReplacements = map[string]string{
	"401": "Authentication required. Please log in to continue.",
	"403": "Access denied. You don't have permission for this action.",
	"404": "The requested resource was not found.",
	"422": "The submitted data contains errors. Please check and try again.",
	"500": "A server error occurred. Please try again later or contact support.",
}

// Phrase-keyed substitutions for a plainer wording of common failures.
var userFriendlyReplacements = map[string]string{
	"validation error":      "Please check the information you entered and try again.",
	"unauthorized":          "Please sign in to access this feature.",
	"forbidden":             "You don't have permission to perform this action.",
	"not found":             "The item you're looking for couldn't be found.",
	"internal server error": "Something went wrong. Please try again in a moment.",
}

// Default suggestion attached to error responses which carry no better hint.
const defaultSuggestedAction = "Please check your request and try again"

// ScreenReaderMessage converts a technical error message into a screen reader
// friendly format. Falls back to the original message when nothing matches.
func ScreenReaderMessage(message string) string {
	for code, friendly := range screenReaderReplacements {
		if strings.Contains(message, code) {
			return friendly
		}
	}
	return message
}

// UserFriendlyMessage converts a technical error message into plain wording.
// Falls back to the original message when nothing matches.
func UserFriendlyMessage(message string) string {
	lowered := strings.ToLower(message)
	for trigger, friendly := range userFriendlyReplacements {
		if strings.Contains(lowered, trigger) {
			return friendly
		}
	}
	return message
}
