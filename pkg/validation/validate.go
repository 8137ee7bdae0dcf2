// Handles all sorts of custom data validations happening in Uplift.

package validation

import (
	"strings"

	"github.com/asaskevich/govalidator"
)

// This function registers custom validation tags to be used as annotations in struct.
// After registering and adding the annotation, govalidator.ValidateStruct will trigger the validation.
func RegisterCustomValidations() {
	// This custom validation checks if there's any spaces in the input string.
	govalidator.TagMap["nospace"] = govalidator.Validator(func(str string) bool {
		return !strings.Contains(str, " ")
	})
	// This custom validation checks an incoming live-connection message type against the supported set.
	govalidator.TagMap["livemsgtype"] = govalidator.Validator(func(msgtype string) bool {
		switch msgtype {
		case "join_accessibility_room", "subscribe_empowerment_analytics":
			return true
		}
		return false
	})
}
