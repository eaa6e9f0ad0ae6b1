package echoapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/slide"
)

type slideApi struct {
	svc *slide.Service
}

func registerSlideAPI(g *echo.Group, svc *slide.Service) {
	api := slideApi{svc: svc}

	sg := g.Group("/slides")
	sg.POST("", api.create)
	sg.GET("", api.query)
	sg.DELETE("", api.destroyMultiple)
	sg.POST("/render", api.render)

	// detail endpoints
	dg := sg.Group("/:id")
	dg.GET("", api.retrieve)
	dg.PUT("", api.update)
	dg.DELETE("", api.destroy)
	dg.GET("/content", api.content)
}

// Handlers

func (api *slideApi) create(ctx echo.Context) error {
	var data slide.NewSlide
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewSlide")
	}
	if err := data.Validate(api.svc); err != nil {
		return err
	}

	sld, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating slide")
	}

	return ctx.JSON(http.StatusCreated, sld)
}

func (api *slideApi) query(ctx echo.Context) error {
	var q SlideQuery
	if err := q.Bind(ctx); err != nil {
		return err
	}

	slides, err := api.svc.Filter(slide.QueryFilter{
		LessonID:    q.LessonID,
		Search:      q.Search,
		IsPublished: q.IsPublished,
		Orderings:   q.Orderings,
	})
	if err != nil {
		return errors.Wrap(err, "filtering slides")
	}

	return ctx.JSON(http.StatusOK, slides)
}

func (api *slideApi) retrieve(ctx echo.Context) error {
	sld, err := api.getSlide(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, sld)
}

func (api *slideApi) update(ctx echo.Context) error {
	sld, err := api.getSlide(ctx.Param("id"))
	if err != nil {
		return err
	}

	var data slide.UpdateSlide
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateSlide")
	}
	if err := data.Validate(sld, api.svc); err != nil {
		return err
	}

	sld, err = api.svc.Update(sld.ID, data)
	if err != nil {
		return errors.Wrap(err, "updating slide")
	}

	return ctx.JSON(http.StatusOK, sld)
}

func (api *slideApi) destroy(ctx echo.Context) error {
	sld, err := api.getSlide(ctx.Param("id"))
	if err != nil {
		return err
	}
	if err := api.svc.Delete(sld.ID); err != nil {
		return errors.Wrap(err, "deleting slide")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *slideApi) destroyMultiple(ctx echo.Context) error {
	val := core.CleanString(ctx.QueryParam("ids"))
	if val == "" {
		return core.NewValidationError(nil, core.FieldError{Field: "ids", Error: "this field is required"})
	}

	ids := strings.Split(val, ",")
	for i, id := range ids {
		ids[i] = core.CleanString(id)
	}
	if err := api.svc.Delete(ids...); err != nil {
		return errors.Wrap(err, "deleting slides")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// content returns the slide body rendered into typed content blocks, the
// contract consumed by the frontend renderer.
func (api *slideApi) content(ctx echo.Context) error {
	sld, err := api.getSlide(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, sld.Content())
}

type RenderRequest struct {
	Body string `json:"body" validate:"required"`
}

func (r *RenderRequest) Validate() error {
	return core.Validate.Struct(r)
}

// render previews an arbitrary body without persisting anything; used by the
// authoring UI while editing.
func (api *slideApi) render(ctx echo.Context) error {
	var data RenderRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to RenderRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, api.svc.Preview(data.Body))
}

func (api *slideApi) getSlide(id string) (slide.Slide, error) {
	sld, err := api.svc.GetByID(id)
	if err != nil {
		if errors.Cause(err) == slide.ErrNotFound {
			return slide.Slide{}, errHttpNotFound
		}
		return slide.Slide{}, errors.Wrap(err, "getting slide")
	}
	return sld, nil
}
