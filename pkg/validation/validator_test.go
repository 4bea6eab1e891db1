package validation

import (
	"bytes"
	"strings"
	"testing"
)

func TestValidateAnalyzeOptions(t *testing.T) {
	valid := &AnalyzeOptions{TopK: 5, SuspiciousRatio: 0.1}
	if err := ValidateAnalyzeOptions(valid); err != nil {
		t.Errorf("Expected valid options, got %v", err)
	}

	zero := &AnalyzeOptions{}
	if err := ValidateAnalyzeOptions(zero); err != nil {
		t.Errorf("Zero values mean defaults and must pass, got %v", err)
	}

	if err := ValidateAnalyzeOptions(&AnalyzeOptions{TopK: 101}); err == nil {
		t.Error("Expected failure for top_k above maximum")
	}
	if err := ValidateAnalyzeOptions(&AnalyzeOptions{SuspiciousRatio: 1.5}); err == nil {
		t.Error("Expected failure for ratio above 1")
	}
	if err := ValidateAnalyzeOptions(nil); err == nil {
		t.Error("Expected failure for nil options")
	}
}

func TestValidateUpload(t *testing.T) {
	if err := ValidateUpload([]byte("A B C\nB D")); err != nil {
		t.Errorf("Expected valid upload, got %v", err)
	}

	if err := ValidateUpload(nil); err == nil {
		t.Error("Expected failure for empty upload")
	}

	big := bytes.Repeat([]byte("x"), MaxUploadBytes+1)
	if err := ValidateUpload(big); err == nil {
		t.Error("Expected failure for oversized upload")
	}

	long := "A " + strings.Repeat("x", MaxLabelLength+1)
	if err := ValidateUpload([]byte(long)); err == nil {
		t.Error("Expected failure for oversized label")
	}
}
