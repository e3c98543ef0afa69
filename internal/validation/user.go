package validation

import (
	"strings"

	"github.com/investdash/investment-dashboard-backend/internal/api/request"
)

// ValidateCreateUser checks a user creation request body.
func ValidateCreateUser(req request.CreateUserRequest) error {
	fields := map[string]string{}

	if strings.TrimSpace(req.Name) == "" {
		fields["name"] = "name is required"
	}
	if strings.TrimSpace(req.Email) == "" {
		fields["email"] = "email is required"
	} else if !strings.Contains(req.Email, "@") {
		fields["email"] = "email is not valid"
	}

	if len(fields) > 0 {
		return &Error{Fields: fields}
	}
	return nil
}
