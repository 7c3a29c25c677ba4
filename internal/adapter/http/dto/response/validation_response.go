package response

import "esquadrias_xpto/pkg"

// ValidationErrorResponse reports every violated field of a rejected form in
// one round trip.
type ValidationErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

func FromFieldErrors(fieldErrs pkg.FieldErrors) ValidationErrorResponse {
	return ValidationErrorResponse{
		Code:    "VALIDATION_FAILED",
		Message: "One or more fields are invalid",
		Fields:  fieldErrs,
	}
}
