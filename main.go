package main

import (
	"log"
	"os"

	echoapi "github.com/trezcool/darasa/api/echo"
	"github.com/trezcool/darasa/core"
	"github.com/trezcool/darasa/core/slide"
	logsvc "github.com/trezcool/darasa/services/logger"
	"github.com/trezcool/darasa/storage/database"
	sqlxrepos "github.com/trezcool/darasa/storage/database/sqlx"
)

// build is the git version of this program. It is set using build flags in the makefile.
var build = "develop"

// TODO:
// - graceful shutdown on SIGTERM (shutdown errors already drain the server)
// - APM/Tracing
func main() {
	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf, err := core.NewConfig(build)
	if err != nil {
		std.Fatal(err)
	}

	logger := logsvc.NewRollbarLogger(std, conf)
	logger.Enable(!(conf.Debug || conf.TestMode)) // local-only logs in DEV|TEST

	// set up DB
	db, err := database.Open(conf)
	if err != nil {
		logger.Fatal("opening database", err)
	}
	defer db.Close()
	if err = database.Migrate(db); err != nil {
		logger.Fatal("migrating database", err)
	}

	// set up services
	slideSvc := slide.NewService(sqlxrepos.NewSlideRepository(db))

	// start API server
	app := echoapi.NewServer(&echoapi.Options{
		Address:  conf.ServerAddress(),
		Conf:     conf,
		Logger:   logger,
		SlideSvc: slideSvc,
	})
	app.Start()
}
