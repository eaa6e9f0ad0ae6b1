package slide

import (
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/trezcool/darasa/core"
)

type Slide struct {
	ID          string      `json:"id" db:"id"`
	LessonID    int         `json:"lesson_id" db:"lesson_id"`
	Title       string      `json:"title" db:"title"`
	Body        string      `json:"body" db:"body"`
	Position    int         `json:"position" db:"position"`
	Notes       null.String `json:"notes" db:"notes"`
	IsPublished bool        `json:"is_published" db:"is_published"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"` // UTC
	UpdatedAt   time.Time   `json:"updated_at" db:"updated_at"` // UTC
}

// Content renders the slide body into its ordered content blocks.
func (s *Slide) Content() []ContentBlock {
	return ParseContent(s.Body)
}

// NewSlide contains information needed to create a new Slide.
type NewSlide struct {
	LessonID int    `json:"lesson_id" validate:"required,min=1"`
	Title    string `json:"title" validate:"required,notblank"`
	Body     string `json:"body" validate:"required"`
	Position int    `json:"position" validate:"required,min=1"`
	Notes    string `json:"notes"`
}

func (ns *NewSlide) Validate(svc *Service) error {
	ns.Title = core.CleanString(ns.Title)

	if err := core.Validate.Struct(ns); err != nil {
		return err
	}
	return svc.CheckPosition(ns.LessonID, ns.Position)
}

// UpdateSlide defines what information may be provided to modify an existing Slide.
// Zero-valued fields are left untouched.
type UpdateSlide struct {
	Title       string  `json:"title" validate:"omitempty,notblank"`
	Body        string  `json:"body"`
	Position    int     `json:"position" validate:"omitempty,min=1"`
	Notes       *string `json:"notes"`
	IsPublished *bool   `json:"is_published"`
}

func (us *UpdateSlide) Validate(origSlide Slide, svc *Service) error {
	us.Title = core.CleanString(us.Title)

	if err := core.Validate.Struct(us); err != nil {
		return err
	}
	if us.Position != 0 && us.Position != origSlide.Position {
		return svc.CheckPosition(origSlide.LessonID, us.Position, origSlide)
	}
	return nil
}
