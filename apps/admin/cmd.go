package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"

	"github.com/trezcool/darasa/core/slide"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	db        *sql.DB
	slideRepo slide.Repository
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  migrate COMMAND [ARGS] - run database migrations (up, up-to, down, down-to, redo, reset, status, version, create, fix)")
	fmt.Println("  loadslides -lesson ID -dir DIR - bulk-import .md files from DIR as slides of lesson ID")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	loadSlidesCmd := flag.NewFlagSet("loadslides", flag.ExitOnError)
	loadSlidesLesson := loadSlidesCmd.Int("lesson", 0, "The target lesson ID.")
	loadSlidesDir := loadSlidesCmd.String("dir", "", "Directory containing the .md slide files.")

	switch args[1] {
	case "migrate":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		return cli.migrate(args[2:])
	case "loadslides":
		if err := loadSlidesCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *loadSlidesLesson <= 0 || *loadSlidesDir == "" {
			loadSlidesCmd.Usage()
			return errHelp
		}
		return cli.loadSlides(*loadSlidesLesson, *loadSlidesDir)
	default:
		cli.printUsage()
		return errHelp
	}
}
