package validation

import (
	"errors"
	"testing"
	"time"
)

func TestConfigValidator_CollectsAllErrors(t *testing.T) {
	cv := NewConfigValidator("Placement")
	cv.Positive("NodeCount", 0).
		NonNegative("MaxRetries", -1).
		Required("Hub", "")

	if !cv.HasErrors() {
		t.Fatal("expected errors")
	}
	if got := len(cv.Errors()); got != 3 {
		t.Errorf("collected %d errors, want 3", got)
	}
	err := cv.Validate()
	if err == nil {
		t.Fatal("Validate returned nil with errors present")
	}
}

func TestConfigValidator_Clean(t *testing.T) {
	cv := NewConfigValidator("Topology")
	cv.Positive("TopK", 3).
		PositiveFloat("MaxDistanceKm", 1500).
		RangeInt("LinkCap", 100, 1, 1000000).
		OneOf("Rule", "probabilistic", []string{"deterministic", "probabilistic"}).
		MinDuration("TickInterval", 100*time.Millisecond, 10*time.Millisecond)

	if cv.HasErrors() {
		t.Errorf("clean config reported errors: %v", cv.Errors())
	}
	if err := cv.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestConfigValidator_RangeFloat(t *testing.T) {
	cv := NewConfigValidator("Outbreak")
	cv.RangeFloat("BaseRate", 1.5, 0, 1)
	if !cv.HasErrors() {
		t.Error("out-of-range float accepted")
	}

	cv2 := NewConfigValidator("Outbreak")
	cv2.RangeFloat("BaseRate", 0.05, 0, 1)
	if cv2.HasErrors() {
		t.Errorf("in-range float rejected: %v", cv2.Errors())
	}
}

func TestConfigValidator_Custom(t *testing.T) {
	wantErr := errors.New("hub table broken")
	cv := NewConfigValidator("World")
	cv.Custom("Hubs", func() error { return wantErr })

	err := cv.Validate()
	if !errors.Is(err, wantErr) {
		t.Errorf("custom error not wrapped: %v", err)
	}
}

func TestConfigValidator_When(t *testing.T) {
	cv := NewConfigValidator("Visualization")
	cv.When(false, func(v *ConfigValidator) {
		v.Required("OutputDir", "")
	})
	if cv.HasErrors() {
		t.Error("disabled branch was validated")
	}

	cv.When(true, func(v *ConfigValidator) {
		v.Required("OutputDir", "")
	})
	if !cv.HasErrors() {
		t.Error("enabled branch was skipped")
	}
}

func TestValidateConfig_Nil(t *testing.T) {
	if err := ValidateConfig(nil); err == nil {
		t.Error("nil config accepted")
	}
}

func TestDefaults(t *testing.T) {
	if got := DefaultOrInt(0, 8); got != 8 {
		t.Errorf("DefaultOrInt(0, 8) = %d", got)
	}
	if got := DefaultOrInt(3, 8); got != 3 {
		t.Errorf("DefaultOrInt(3, 8) = %d", got)
	}
	if got := DefaultOrFloat(0, 0.05); got != 0.05 {
		t.Errorf("DefaultOrFloat(0, 0.05) = %v", got)
	}
	if got := DefaultOrDuration(0, time.Second); got != time.Second {
		t.Errorf("DefaultOrDuration(0, 1s) = %v", got)
	}
	if got := DefaultOrDuration(2*time.Second, time.Second); got != 2*time.Second {
		t.Errorf("DefaultOrDuration(2s, 1s) = %v", got)
	}
}
