package dummydb

import (
	"sync"

	"github.com/trezcool/darasa/core/slide"
)

type (
	DB struct {
		slide *slideTable
	}

	slideTable struct {
		mutex sync.RWMutex
		table map[string]*slide.Slide
	}
)

func Open() (*DB, error) {
	db := &DB{
		slide: &slideTable{table: make(map[string]*slide.Slide)},
	}
	return db, nil
}
