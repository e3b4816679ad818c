package api

import (
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/hatchdotlol/cipherpass/pkg/db"
	"github.com/hatchdotlol/cipherpass/pkg/models"
	"github.com/hatchdotlol/cipherpass/pkg/strength"
	"github.com/hatchdotlol/cipherpass/pkg/util"
	"github.com/hatchdotlol/cipherpass/pkg/web"
	"github.com/rs/cors"
)

const maxBodyBytes = 64 << 10

var estimator *strength.Estimator

func Info(w http.ResponseWriter, r *http.Request) {
	// entries held both in memory and in the sqlite index count twice, so
	// this is an upper bound
	var size int64
	if l, ok := estimator.List.(interface{ Len() int }); ok {
		size = int64(l.Len())
	}

	indexed, err := db.CountPasswords()
	if err != nil {
		sentry.CaptureException(err)
	}

	sendJSON(w, models.InfoResp{
		StartTime:    util.Config.StartTime,
		Version:      util.Config.Version,
		WordlistSize: size + indexed,
	})
}

func Router(est *strength.Estimator) *chi.Mux {
	estimator = est

	r := chi.NewRouter()

	cors := cors.New(cors.Options{
		AllowedOrigins: util.Config.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	r.Use(cors.Handler)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.RequestSize(maxBodyBytes))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) { SendError(w, NotFound) })
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) { SendError(w, MethodNotAllowed) })

	r.Get("/favicon.ico", func(w http.ResponseWriter, r *http.Request) {})
	r.Get("/", web.Page)
	r.Get("/info", Info)

	r.Mount("/check", CheckRouter())
	r.Mount("/generate", GenerateRouter())

	return r
}
