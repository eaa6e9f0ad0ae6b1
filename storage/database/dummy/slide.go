package dummydb

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/slide"
)

type slideRepository struct {
	db *slideTable
}

func NewSlideRepository(db *DB) slide.Repository {
	return &slideRepository{db: db.slide}
}

func (repo *slideRepository) query() []slide.Slide {
	slides := make([]slide.Slide, 0, len(repo.db.table))
	for _, s := range repo.db.table {
		slides = append(slides, *s)
	}
	sort.Slice(slides, func(i, j int) bool {
		if slides[i].LessonID != slides[j].LessonID {
			return slides[i].LessonID < slides[j].LessonID
		}
		return slides[i].Position < slides[j].Position
	})
	return slides
}

func (repo *slideRepository) CheckPositionUniqueness(lessonID, position int, excludedSlides ...slide.Slide) error {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, sld := range repo.db.table {
		if sld.LessonID == lessonID && sld.Position == position && !isExcluded(*sld, excludedSlides) {
			return slide.ErrPositionTaken
		}
	}
	return nil
}

func isExcluded(sld slide.Slide, excludedSlides []slide.Slide) bool {
	for _, excl := range excludedSlides {
		if sld.ID == excl.ID {
			return true
		}
	}
	return false
}

func (repo *slideRepository) CreateSlide(sld slide.Slide) (slide.Slide, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for _, existing := range repo.db.table {
		if existing.LessonID == sld.LessonID && existing.Position == sld.Position {
			return slide.Slide{}, slide.ErrPositionTaken
		}
	}

	sld.ID = uuid.New().String()
	repo.db.table[sld.ID] = &sld
	return sld, nil
}

func (repo *slideRepository) QueryAllSlides() ([]slide.Slide, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(), nil
}

func (repo *slideRepository) GetSlideByID(id string) (slide.Slide, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if sld, ok := repo.db.table[id]; ok {
		return *sld, nil
	}
	return slide.Slide{}, slide.ErrNotFound
}

func (repo *slideRepository) FilterSlides(filter slide.QueryFilter) ([]slide.Slide, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	slides := make([]slide.Slide, 0)
	for _, sld := range repo.query() {
		if filter.LessonID != 0 && sld.LessonID != filter.LessonID {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(sld.Title), strings.ToLower(filter.Search)) {
			continue
		}
		if filter.IsPublished != nil && sld.IsPublished != *filter.IsPublished {
			continue
		}
		slides = append(slides, sld)
	}
	applyOrderings(slides, filter.Orderings)
	return slides, nil
}

// applyOrderings sorts in reverse ordering precedence with a stable sort so
// the first requested ordering wins. query() already ordered by position.
func applyOrderings(slides []slide.Slide, orderings []core.DBOrdering) {
	for i := len(orderings) - 1; i >= 0; i-- {
		ord := orderings[i]
		less := slideLessFunc(slides, ord.Field)
		if less == nil { // unknown field
			continue
		}
		if ord.Ascending {
			sort.SliceStable(slides, less)
		} else {
			sort.SliceStable(slides, func(i, j int) bool { return less(j, i) })
		}
	}
}

func slideLessFunc(slides []slide.Slide, field string) func(i, j int) bool {
	switch field {
	case "position":
		return func(i, j int) bool { return slides[i].Position < slides[j].Position }
	case "title":
		return func(i, j int) bool { return slides[i].Title < slides[j].Title }
	case "lesson_id":
		return func(i, j int) bool { return slides[i].LessonID < slides[j].LessonID }
	case "created_at":
		return func(i, j int) bool { return slides[i].CreatedAt.Before(slides[j].CreatedAt) }
	case "updated_at":
		return func(i, j int) bool { return slides[i].UpdatedAt.Before(slides[j].UpdatedAt) }
	}
	return nil
}

func (repo *slideRepository) UpdateSlide(sld slide.Slide, isPublished *bool) (slide.Slide, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	orig, ok := repo.db.table[sld.ID]
	if !ok {
		return slide.Slide{}, slide.ErrNotFound
	}

	if sld.Title != "" {
		orig.Title = sld.Title
	}
	if sld.Body != "" {
		orig.Body = sld.Body
	}
	if sld.Position != 0 {
		orig.Position = sld.Position
	}
	if sld.Notes.Valid {
		orig.Notes = sld.Notes
	}
	if isPublished != nil {
		orig.IsPublished = *isPublished
	}
	orig.UpdatedAt = sld.UpdatedAt
	return *orig, nil
}

func (repo *slideRepository) DeleteSlidesByID(ids ...string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for _, id := range ids {
		delete(repo.db.table, id)
	}
	return nil
}
