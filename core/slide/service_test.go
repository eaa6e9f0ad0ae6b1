package slide_test

import (
	"reflect"
	"testing"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/slide"
	dummydb "github.com/trezcool/darasa/storage/database/dummy"
)

func setup(t *testing.T) (*slide.Service, slide.Repository) {
	db, err := dummydb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	repo := dummydb.NewSlideRepository(db)
	svc := slide.NewService(repo)
	return svc, repo
}

func createSlide(t *testing.T, svc *slide.Service, lessonID int, title, body string, pos int) slide.Slide {
	sld, err := svc.Create(slide.NewSlide{
		LessonID: lessonID,
		Title:    title,
		Body:     body,
		Position: pos,
	})
	if err != nil {
		t.Fatalf("createSlide() failed: %v", err)
	}
	return sld
}

func TestService_Create(t *testing.T) {
	svc, _ := setup(t)

	sld := createSlide(t, svc, 1, "Intro", "hello", 1)
	if sld.ID == "" {
		t.Error("Create() did not assign an ID")
	}
	if sld.CreatedAt.IsZero() || sld.UpdatedAt.IsZero() {
		t.Error("Create() did not set timestamps")
	}

	got, err := svc.GetByID(sld.ID)
	if err != nil {
		t.Fatalf("GetByID() failed: %v", err)
	}
	if !reflect.DeepEqual(got, sld) {
		t.Errorf("GetByID() = %+v, want %+v", got, sld)
	}
}

func TestService_GetByID_notFound(t *testing.T) {
	svc, _ := setup(t)

	if _, err := svc.GetByID("nope"); err != slide.ErrNotFound {
		t.Errorf("GetByID() error = %v, wantErr %v", err, slide.ErrNotFound)
	}
}

func TestService_CheckPosition(t *testing.T) {
	svc, _ := setup(t)

	sld := createSlide(t, svc, 1, "Intro", "hello", 1)

	if err := svc.CheckPosition(1, 2); err != nil {
		t.Errorf("CheckPosition() on a free position failed: %v", err)
	}
	if err := svc.CheckPosition(2, 1); err != nil {
		t.Errorf("CheckPosition() in another lesson failed: %v", err)
	}

	err := svc.CheckPosition(1, 1)
	vErr, ok := err.(*core.ValidationError)
	if !ok {
		t.Fatalf("CheckPosition() error = %v, want *core.ValidationError", err)
	}
	if len(vErr.Fields) != 1 || vErr.Fields[0].Field != "position" {
		t.Errorf("CheckPosition() fields = %+v, want a position field error", vErr.Fields)
	}

	// the checked slide itself can be excluded
	if err := svc.CheckPosition(1, 1, sld); err != nil {
		t.Errorf("CheckPosition() with exclusion failed: %v", err)
	}
}

func TestService_Filter(t *testing.T) {
	svc, _ := setup(t)

	createSlide(t, svc, 1, "Intro", "hello", 1)
	deepDive := createSlide(t, svc, 1, "Deep Dive", "more", 2)
	createSlide(t, svc, 2, "Other Lesson Intro", "hi", 1)

	published := true
	if _, err := svc.Update(deepDive.ID, slide.UpdateSlide{IsPublished: &published}); err != nil {
		t.Fatalf("Update() failed: %v", err)
	}

	tests := []struct {
		name   string
		filter slide.QueryFilter
		want   []string // expected titles, in order
	}{
		{name: "by lesson", filter: slide.QueryFilter{LessonID: 1}, want: []string{"Intro", "Deep Dive"}},
		{name: "by search", filter: slide.QueryFilter{Search: "intro"}, want: []string{"Intro", "Other Lesson Intro"}},
		{name: "by published", filter: slide.QueryFilter{IsPublished: &published}, want: []string{"Deep Dive"}},
		{
			name: "descending position",
			filter: slide.QueryFilter{
				LessonID:  1,
				Orderings: []core.DBOrdering{{Field: "position", Ascending: false}},
			},
			want: []string{"Deep Dive", "Intro"},
		},
		{name: "no match", filter: slide.QueryFilter{LessonID: 3}, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slides, err := svc.Filter(tt.filter)
			if err != nil {
				t.Fatalf("Filter() failed: %v", err)
			}
			titles := make([]string, len(slides))
			for i, sld := range slides {
				titles[i] = sld.Title
			}
			if !reflect.DeepEqual(titles, tt.want) {
				t.Errorf("Filter() titles = %v, want %v", titles, tt.want)
			}
		})
	}
}

func TestService_Update(t *testing.T) {
	svc, _ := setup(t)

	sld := createSlide(t, svc, 1, "Intro", "hello", 1)

	notes := "speaker notes"
	published := true
	updated, err := svc.Update(sld.ID, slide.UpdateSlide{
		Title:       "Welcome",
		Notes:       &notes,
		IsPublished: &published,
	})
	if err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	if updated.Title != "Welcome" {
		t.Errorf("Update() title = %s, want Welcome", updated.Title)
	}
	if updated.Body != "hello" {
		t.Errorf("Update() must not touch an omitted body; got %s", updated.Body)
	}
	if !updated.IsPublished {
		t.Error("Update() did not publish the slide")
	}
	if updated.Notes.String != notes {
		t.Errorf("Update() notes = %s, want %s", updated.Notes.String, notes)
	}
	if !updated.UpdatedAt.After(sld.UpdatedAt) {
		t.Error("Update() did not refresh UpdatedAt")
	}
}

func TestService_Delete(t *testing.T) {
	svc, _ := setup(t)

	sld1 := createSlide(t, svc, 1, "One", "a", 1)
	sld2 := createSlide(t, svc, 1, "Two", "b", 2)

	if err := svc.Delete(sld1.ID, sld2.ID); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, err := svc.GetByID(sld1.ID); err != slide.ErrNotFound {
		t.Errorf("GetByID() after delete error = %v, wantErr %v", err, slide.ErrNotFound)
	}
}

func TestService_Render(t *testing.T) {
	svc, _ := setup(t)

	body := "# Deck\n## Points\n- **bold** one\n- two"
	sld := createSlide(t, svc, 1, "Intro", body, 1)

	blocks, err := svc.Render(sld.ID)
	if err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	if len(blocks) != 1 {
		t.Fatalf("Render() returned %d blocks, want 1", len(blocks))
	}
	if blocks[0].Kind != slide.BlockList || blocks[0].Title != "Points" {
		t.Errorf("Render() block = %+v, want a list titled Points", blocks[0])
	}
	if len(blocks[0].Items) != 2 {
		t.Errorf("Render() items = %d, want 2", len(blocks[0].Items))
	}

	if _, err := svc.Render("nope"); err != slide.ErrNotFound {
		t.Errorf("Render() error = %v, wantErr %v", err, slide.ErrNotFound)
	}
}

func TestService_Preview(t *testing.T) {
	svc, _ := setup(t)

	body := "- one\n- two"
	if !reflect.DeepEqual(svc.Preview(body), slide.ParseContent(body)) {
		t.Error("Preview() must parse the body as-is")
	}
}
