package validation

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/mwold/netplague/pkg/worldmap"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate

	// Validation constants
	MaxNodeCount = 100000
	MinNodeCount = 2
	MaxHubs      = 500
	MaxNameLen   = 64

	hubNamePattern = regexp.MustCompile(`^[a-zA-Z0-9 ._'-]+$`)
)

func init() {
	validate = validator.New()
}

// RunRequest describes a simulation run as submitted by a driver.
type RunRequest struct {
	NodeCount   int    `json:"nodeCount" validate:"required,min=2,max=100000"`
	Ticks       int    `json:"ticks" validate:"min=0,max=1000000"`
	Rule        string `json:"rule" validate:"required,oneof=deterministic probabilistic"`
	Seed        int64  `json:"seed"`
	PatientZero uint64 `json:"patientZero" validate:"omitempty,min=1"`
}

// ValidateRunRequest validates a run request.
func ValidateRunRequest(req *RunRequest) error {
	if req == nil {
		return errors.New("run request cannot be nil")
	}
	if err := validate.Struct(req); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// ValidateStruct validates any tagged struct with the shared validator.
func ValidateStruct(v any) error {
	if err := validate.Struct(v); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// ValidateHubs validates a population hub table.
func ValidateHubs(hubs []worldmap.HubRegion) error {
	if len(hubs) == 0 {
		return errors.New("hub table cannot be empty")
	}
	if len(hubs) > MaxHubs {
		return fmt.Errorf("Hubs: maximum %d hubs allowed, got %d", MaxHubs, len(hubs))
	}

	seen := make(map[string]bool, len(hubs))
	for i, h := range hubs {
		if h.Name == "" {
			return fmt.Errorf("Hubs: hub at index %d has no name", i)
		}
		if len(h.Name) > MaxNameLen {
			return fmt.Errorf("Hubs: hub '%s' name exceeds %d characters", h.Name, MaxNameLen)
		}
		if !hubNamePattern.MatchString(h.Name) {
			return fmt.Errorf("Hubs: hub '%s' contains invalid characters", h.Name)
		}
		if seen[h.Name] {
			return fmt.Errorf("Hubs: duplicate hub '%s'", h.Name)
		}
		seen[h.Name] = true

		if !h.Center().Valid() {
			return fmt.Errorf("Hubs: hub '%s' center (%v, %v) is out of bounds", h.Name, h.Lon, h.Lat)
		}
		if h.Weight <= 0 {
			return fmt.Errorf("Hubs: hub '%s' weight must be positive, got %v", h.Name, h.Weight)
		}
		if h.LatSpread < 0 || h.LonSpread < 0 {
			return fmt.Errorf("Hubs: hub '%s' spread must be non-negative", h.Name)
		}
	}
	return nil
}

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	// Return the first validation error in a user-friendly format
	for _, e := range validationErrs {
		field := e.Field()
		tag := e.Tag()
		param := e.Param()

		switch tag {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "min":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "max":
			return fmt.Errorf("%s: must not exceed %s", field, param)
		case "oneof":
			return fmt.Errorf("%s: must be one of [%s]", field, param)
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, tag)
		}
	}

	return err
}
