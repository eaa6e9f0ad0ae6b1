package sqlxrepos

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/slide"
)

// uniqueViolation is the postgres error code raised by the
// (lesson_id, position) unique constraint.
const uniqueViolation = "23505"

var allowedOrderingFields = map[string]bool{
	"position":   true,
	"title":      true,
	"lesson_id":  true,
	"created_at": true,
	"updated_at": true,
}

type slideRepository struct {
	db *sqlx.DB
}

func NewSlideRepository(db *sql.DB) slide.Repository {
	return &slideRepository{db: sqlx.NewDb(db, "postgres")}
}

func (repo *slideRepository) CheckPositionUniqueness(lessonID, position int, excludedSlides ...slide.Slide) error {
	q := `SELECT EXISTS (SELECT 1 FROM slide WHERE lesson_id = ? AND "position" = ?`
	args := []interface{}{lessonID, position}
	if len(excludedSlides) > 0 {
		ids := make([]string, len(excludedSlides))
		for i, sld := range excludedSlides {
			ids[i] = sld.ID
		}
		q += ` AND id NOT IN (?)`
		args = append(args, ids)
	}
	q += `)`

	q, inArgs, err := sqlx.In(q, args...)
	if err != nil {
		return errors.Wrap(err, "building position check")
	}

	var exists bool
	if err := repo.db.Get(&exists, repo.db.Rebind(q), inArgs...); err != nil {
		return errors.Wrap(err, "checking position")
	}
	if exists {
		return slide.ErrPositionTaken
	}
	return nil
}

func (repo *slideRepository) CreateSlide(sld slide.Slide) (slide.Slide, error) {
	sld.ID = uuid.New().String()

	const q = `
INSERT INTO slide (id, lesson_id, title, body, "position", notes, is_published, created_at, updated_at)
VALUES (:id, :lesson_id, :title, :body, :position, :notes, :is_published, :created_at, :updated_at)`
	if _, err := repo.db.NamedExec(q, sld); err != nil {
		if pqErr, ok := errors.Cause(err).(*pq.Error); ok && string(pqErr.Code) == uniqueViolation {
			return slide.Slide{}, slide.ErrPositionTaken
		}
		return slide.Slide{}, errors.Wrap(err, "inserting slide")
	}
	return sld, nil
}

func (repo *slideRepository) QueryAllSlides() ([]slide.Slide, error) {
	slides := make([]slide.Slide, 0)
	const q = `SELECT * FROM slide ORDER BY lesson_id, "position"`
	if err := repo.db.Select(&slides, q); err != nil {
		return nil, errors.Wrap(err, "querying slides")
	}
	return slides, nil
}

func (repo *slideRepository) GetSlideByID(id string) (slide.Slide, error) {
	var sld slide.Slide
	if err := repo.db.Get(&sld, `SELECT * FROM slide WHERE id = $1`, id); err != nil {
		if err == sql.ErrNoRows {
			return slide.Slide{}, slide.ErrNotFound
		}
		return slide.Slide{}, errors.Wrap(err, "getting slide")
	}
	return sld, nil
}

func (repo *slideRepository) FilterSlides(filter slide.QueryFilter) ([]slide.Slide, error) {
	q := `SELECT * FROM slide`
	var clauses []string
	var args []interface{}

	if filter.LessonID != 0 {
		args = append(args, filter.LessonID)
		clauses = append(clauses, fmt.Sprintf("lesson_id = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		clauses = append(clauses, fmt.Sprintf("title ILIKE $%d", len(args)))
	}
	if filter.IsPublished != nil {
		args = append(args, *filter.IsPublished)
		clauses = append(clauses, fmt.Sprintf("is_published = $%d", len(args)))
	}
	if len(clauses) > 0 {
		q += " WHERE " + strings.Join(clauses, " AND ")
	}
	q += orderBy(filter.Orderings)

	slides := make([]slide.Slide, 0)
	if err := repo.db.Select(&slides, q, args...); err != nil {
		return nil, errors.Wrap(err, "filtering slides")
	}
	return slides, nil
}

// orderBy builds an ORDER BY clause from the requested orderings, dropping
// fields that are not sortable columns. Defaults to position order.
func orderBy(orderings []core.DBOrdering) string {
	var parts []string
	for _, ord := range orderings {
		if !allowedOrderingFields[ord.Field] {
			continue
		}
		parts = append(parts, fmt.Sprintf("%q %s", ord.Field, direction(ord)))
	}
	if len(parts) == 0 {
		return ` ORDER BY "position" ASC`
	}
	return " ORDER BY " + strings.Join(parts, ", ")
}

func direction(ord core.DBOrdering) string {
	if ord.Ascending {
		return "ASC"
	}
	return "DESC"
}

func (repo *slideRepository) UpdateSlide(sld slide.Slide, isPublished *bool) (slide.Slide, error) {
	orig, err := repo.GetSlideByID(sld.ID)
	if err != nil {
		return slide.Slide{}, err
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

	const q = `
UPDATE slide
SET title = :title, body = :body, "position" = :position, notes = :notes,
    is_published = :is_published, updated_at = :updated_at
WHERE id = :id`
	if _, err := repo.db.NamedExec(q, orig); err != nil {
		if pqErr, ok := errors.Cause(err).(*pq.Error); ok && string(pqErr.Code) == uniqueViolation {
			return slide.Slide{}, slide.ErrPositionTaken
		}
		return slide.Slide{}, errors.Wrap(err, "updating slide")
	}
	return orig, nil
}

func (repo *slideRepository) DeleteSlidesByID(ids ...string) error {
	q, args, err := sqlx.In(`DELETE FROM slide WHERE id IN (?)`, ids)
	if err != nil {
		return errors.Wrap(err, "building slide delete")
	}
	if _, err := repo.db.Exec(repo.db.Rebind(q), args...); err != nil {
		return errors.Wrap(err, "deleting slides")
	}
	return nil
}
