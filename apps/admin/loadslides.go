package main

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/slide"
)

// bodies this similar to an existing slide are treated as re-imports
const duplicateRatio = .97

// loadSlides bulk-imports the .md files of a directory as slides of a lesson.
// File name order gives the slide position (appended after the lesson's last
// slide) and the first "# " line gives the title, falling back to the file
// name. Near-duplicates of already loaded slides are skipped: authors
// re-export whole decks often enough that exact matching is not enough.
func (cli *commandLine) loadSlides(lessonID int, dir string) error {
	paths, err := filepath.Glob(filepath.Join(dir, "*.md"))
	if err != nil {
		return err
	}
	sort.Strings(paths)

	existing, err := cli.slideRepo.FilterSlides(slide.QueryFilter{LessonID: lessonID})
	if err != nil {
		return err
	}

	pos := maxPosition(existing)
	var loaded int
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		body := string(data)

		if dup, ok := nearDuplicate(body, existing); ok {
			logger.Printf("skipping %s: near-duplicate of slide %q", filepath.Base(path), dup.Title)
			continue
		}

		pos++
		now := time.Now().UTC()
		sld := slide.Slide{
			LessonID:  lessonID,
			Title:     slideTitle(body, path),
			Body:      body,
			Position:  pos,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if sld, err = cli.slideRepo.CreateSlide(sld); err != nil {
			return err
		}
		existing = append(existing, sld)
		loaded++
	}

	logger.Printf("loaded %d slide(s) into lesson %d", loaded, lessonID)
	return nil
}

func nearDuplicate(body string, slides []slide.Slide) (slide.Slide, bool) {
	newLines := strings.Split(body, "\n")
	for _, sld := range slides {
		ratio := difflib.NewMatcher(strings.Split(sld.Body, "\n"), newLines).QuickRatio()
		if ratio > duplicateRatio {
			return sld, true
		}
	}
	return slide.Slide{}, false
}

func slideTitle(body, path string) string {
	for _, line := range strings.Split(body, "\n") {
		if strings.HasPrefix(line, "# ") {
			return core.CleanString(strings.TrimPrefix(line, "# "))
		}
	}
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func maxPosition(slides []slide.Slide) int {
	var max int
	for _, sld := range slides {
		if sld.Position > max {
			max = sld.Position
		}
	}
	return max
}
