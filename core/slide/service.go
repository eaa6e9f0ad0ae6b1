package slide

import (
	"errors"
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/trezcool/darasa/core"
)

var (
	// errors
	ErrNotFound      = errors.New("slide not found")
	ErrPositionTaken = errors.New("a slide already occupies this position in the lesson")
)

type (
	QueryFilter struct {
		LessonID    int
		Search      string // case-insensitive match on Slide.Title
		IsPublished *bool
		Orderings   []core.DBOrdering
	}

	Repository interface {
		CheckPositionUniqueness(lessonID, position int, excludedSlides ...Slide) error
		CreateSlide(slide Slide) (Slide, error)
		QueryAllSlides() ([]Slide, error)
		GetSlideByID(id string) (Slide, error)
		// FilterSlides applies AND operation on available QueryFilter fields.
		// defaults to ordering by Slide.Position when no ordering is requested.
		FilterSlides(filter QueryFilter) ([]Slide, error)
		UpdateSlide(slide Slide, isPublished *bool) (Slide, error)
		DeleteSlidesByID(ids ...string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) CheckPosition(lessonID, position int, exclSlides ...Slide) error {
	if err := svc.repo.CheckPositionUniqueness(lessonID, position, exclSlides...); err != nil {
		if err == ErrPositionTaken {
			return core.NewValidationError(err, core.FieldError{Field: "position", Error: err.Error()})
		}
		return err
	}
	return nil
}

func (svc *Service) Create(ns NewSlide) (Slide, error) {
	now := time.Now().UTC()
	sld := Slide{
		LessonID:  ns.LessonID,
		Title:     ns.Title,
		Body:      ns.Body,
		Position:  ns.Position,
		Notes:     null.NewString(ns.Notes, ns.Notes != ""),
		CreatedAt: now,
		UpdatedAt: now,
	}
	return svc.repo.CreateSlide(sld)
}

func (svc *Service) QueryAll() ([]Slide, error) {
	return svc.repo.QueryAllSlides()
}

func (svc *Service) GetByID(id string) (Slide, error) {
	return svc.repo.GetSlideByID(id)
}

func (svc *Service) Filter(filter QueryFilter) ([]Slide, error) {
	return svc.repo.FilterSlides(filter)
}

func (svc *Service) Update(id string, us UpdateSlide) (Slide, error) {
	sld := Slide{
		ID:        id,
		Title:     us.Title,
		Body:      us.Body,
		Position:  us.Position,
		UpdatedAt: time.Now().UTC(),
	}
	if us.Notes != nil {
		sld.Notes = null.StringFromPtr(us.Notes)
	}
	return svc.repo.UpdateSlide(sld, us.IsPublished)
}

func (svc *Service) Delete(ids ...string) error {
	return svc.repo.DeleteSlidesByID(ids...)
}

// Render loads a slide and parses its body into renderable content blocks.
func (svc *Service) Render(id string) ([]ContentBlock, error) {
	sld, err := svc.repo.GetSlideByID(id)
	if err != nil {
		return nil, err
	}
	return sld.Content(), nil
}

// Preview parses an arbitrary body without persisting anything.
func (svc *Service) Preview(body string) []ContentBlock {
	return ParseContent(body)
}
