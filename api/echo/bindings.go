package echoapi

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/darasa/core"
)

var orderingParam = "ordering"

type Ordering struct {
	Orderings []core.DBOrdering
}

func (ord *Ordering) Bind(ctx echo.Context) {
	data := ctx.QueryParams()
	if len(data) == 0 {
		return
	}
	val, ok := data[orderingParam]
	if !ok || len(val) == 0 || val[0] == "" {
		return
	}

	for _, field := range strings.Split(val[0], ",") {
		field = strings.TrimSpace(field)
		descending := strings.HasPrefix(field, "-")
		if descending {
			field = field[1:] // drop "-"
		}
		ord.Orderings = append(ord.Orderings, core.DBOrdering{Field: field, Ascending: !descending})
	}
}

// SlideQuery binds the slide collection query params.
type SlideQuery struct {
	LessonID    int
	Search      string
	IsPublished *bool
	Ordering
}

func (q *SlideQuery) Bind(ctx echo.Context) error {
	if val := ctx.QueryParam("lesson_id"); val != "" {
		id, err := strconv.Atoi(val)
		if err != nil {
			return core.NewValidationError(nil, core.FieldError{Field: "lesson_id", Error: "must be an integer"})
		}
		q.LessonID = id
	}
	q.Search = core.CleanString(ctx.QueryParam("search"))
	if val := ctx.QueryParam("is_published"); val != "" {
		published, err := strconv.ParseBool(val)
		if err != nil {
			return core.NewValidationError(nil, core.FieldError{Field: "is_published", Error: "must be a boolean"})
		}
		q.IsPublished = &published
	}
	q.Ordering.Bind(ctx)
	return nil
}
