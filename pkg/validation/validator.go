package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate

	// Upload limits
	MaxUploadBytes = 8 << 20
	MaxLines       = 100000
	MaxLineTokens  = 10000
	MaxLabelLength = 100

	labelPattern = regexp.MustCompile(`^[[:graph:]]+$`)
)

func init() {
	validate = validator.New()
}

// AnalyzeOptions carries the caller-tunable knobs of an analysis request.
type AnalyzeOptions struct {
	TopK            int     `json:"top_k" validate:"omitempty,min=1,max=100"`
	SuspiciousRatio float64 `json:"suspicious_ratio" validate:"omitempty,gte=0,lte=1"`
}

// ValidateAnalyzeOptions validates request options via struct tags.
func ValidateAnalyzeOptions(opts *AnalyzeOptions) error {
	if opts == nil {
		return errors.New("options cannot be nil")
	}
	if err := validate.Struct(opts); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// ValidateUpload checks an adjacency-list upload against size and shape
// limits before it reaches the parser. It does not validate graph semantics;
// that is the parser's job.
func ValidateUpload(content []byte) error {
	if len(content) == 0 {
		return errors.New("upload is empty")
	}
	if len(content) > MaxUploadBytes {
		return fmt.Errorf("upload of %d bytes exceeds limit of %d", len(content), MaxUploadBytes)
	}

	lines := strings.Split(string(content), "\n")
	if len(lines) > MaxLines {
		return fmt.Errorf("upload of %d lines exceeds limit of %d", len(lines), MaxLines)
	}

	for i, line := range lines {
		tokens := strings.Fields(line)
		if len(tokens) > MaxLineTokens {
			return fmt.Errorf("line %d: %d tokens exceeds limit of %d", i+1, len(tokens), MaxLineTokens)
		}
		for _, token := range tokens {
			if len(token) > MaxLabelLength {
				return fmt.Errorf("line %d: label exceeds maximum length of %d characters", i+1, MaxLabelLength)
			}
			if !labelPattern.MatchString(token) {
				return fmt.Errorf("line %d: invalid label %q", i+1, token)
			}
		}
	}
	return nil
}

// formatValidationError converts validator errors into readable messages.
func formatValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		messages := make([]string, 0, len(validationErrors))
		for _, fe := range validationErrors {
			messages = append(messages, fmt.Sprintf("%s: failed %s validation", fe.Field(), fe.Tag()))
		}
		return errors.New(strings.Join(messages, "; "))
	}
	return err
}
