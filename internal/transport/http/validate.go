package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// decodeAndValidate decodes a JSON body into dst and runs its validate tags.
// On failure it writes the error response and reports false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
		return false
	}
	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			field := strings.ToLower(verrs[0].Field())
			writeError(w, http.StatusBadRequest, codeValidationFailed,
				fmt.Sprintf("invalid field %q (%s)", field, verrs[0].Tag()))
			return false
		}
		writeError(w, http.StatusBadRequest, codeValidationFailed, "validation failed")
		return false
	}
	return true
}
