package wedding

import "fmt"

// ValidationError reports a rejected wedding registration or update.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func ErrInvalidSubdomain(sub string) error {
	return &ValidationError{
		Code:    "invalidSubdomain",
		Message: fmt.Sprintf("subdomain %q must be 3-63 lowercase letters, digits or hyphens", sub),
	}
}

func ErrReservedSubdomain(sub string) error {
	return &ValidationError{
		Code:    "reservedSubdomain",
		Message: fmt.Sprintf("subdomain %q is reserved by the platform", sub),
	}
}

func ErrSubdomainTaken(sub string) error {
	return &ValidationError{
		Code:    "subdomainTaken",
		Message: fmt.Sprintf("subdomain %q is already claimed", sub),
	}
}

func ErrCustomDomainTaken(domain string) error {
	return &ValidationError{
		Code:    "customDomainTaken",
		Message: fmt.Sprintf("domain %q is already connected to another wedding", domain),
	}
}
