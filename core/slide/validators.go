package slide

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/darasa/core"
)

var (
	unclosedFenceTag  = "codefence"
	unclosedFenceText = "content has an unclosed code fence; everything after it would be dropped"
)

func init() {
	// register validators
	core.Validate.RegisterStructValidation(newSlideStructValidation, NewSlide{})
	core.Validate.RegisterStructValidation(updateSlideStructValidation, UpdateSlide{})
	core.RegisterCustomTranslation(unclosedFenceTag, unclosedFenceText)
}

func newSlideStructValidation(sl validator.StructLevel) {
	if ns, ok := sl.Current().Interface().(NewSlide); ok {
		if hasUnclosedFence(ns.Body) {
			sl.ReportError(ns.Body, "body", "Body", unclosedFenceTag, "")
		}
	}
}

func updateSlideStructValidation(sl validator.StructLevel) {
	if us, ok := sl.Current().Interface().(UpdateSlide); ok {
		if hasUnclosedFence(us.Body) {
			sl.ReportError(us.Body, "body", "Body", unclosedFenceTag, "")
		}
	}
}

// hasUnclosedFence reports whether a body leaves a code fence open; the
// renderer silently drops everything accumulated after an unclosed fence, so
// authors get warned at save time instead.
func hasUnclosedFence(body string) bool {
	var open bool
	for _, line := range strings.Split(body, "\n") {
		if strings.HasPrefix(line, "# ") {
			continue
		}
		if strings.HasPrefix(line, "```") {
			open = !open
		}
	}
	return open
}
