package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/getsentry/sentry-go"
	"github.com/go-chi/chi/v5"
	"github.com/hatchdotlol/cipherpass/pkg/generator"
	"github.com/hatchdotlol/cipherpass/pkg/models"
	"github.com/hatchdotlol/cipherpass/pkg/strength"
	"github.com/hatchdotlol/cipherpass/pkg/util"
)

const defaultWords = 12

func GenerateRouter() *chi.Mux {
	r := chi.NewRouter()
	r.Post("/", generate)
	r.Get("/passphrase", passphrase)
	return r
}

func generate(w http.ResponseWriter, r *http.Request) {
	var form models.Generate

	body := util.HttpBody(r, maxBodyBytes)
	if body == nil {
		SendError(w, InvalidForm)
		return
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &form); err != nil {
			SendError(w, InvalidForm)
			return
		}
	}

	opts := generator.Default
	if form.Length != nil {
		opts.Length = *form.Length
	}
	if form.Lower != nil {
		opts.Lower = *form.Lower
	}
	if form.Upper != nil {
		opts.Upper = *form.Upper
	}
	if form.Numbers != nil {
		opts.Numbers = *form.Numbers
	}
	if form.Symbols != nil {
		opts.Symbols = *form.Symbols
	}

	password, err := generator.Generate(opts)
	if errors.Is(err, generator.ErrNoCharset) || errors.Is(err, generator.ErrLength) {
		SendError(w, BadRequest(err.Error()))
		return
	}
	if err != nil {
		sentry.CaptureException(err)
		SendError(w, InternalServerError)
		return
	}

	report := estimator.Check(password)
	resp := models.GenerateResp{
		Password:    password,
		Entropy:     report.Entropy,
		EntropyText: report.EntropyText,
		CrackTime:   report.CrackTimes.GPU,
	}

	if form.Hash {
		hash, err := generator.Hash(password)
		if err != nil {
			sentry.CaptureException(err)
			SendError(w, InternalServerError)
			return
		}
		resp.Hash = hash
	}

	sendJSON(w, resp)
}

func passphrase(w http.ResponseWriter, r *http.Request) {
	words := defaultWords
	if _words := r.URL.Query().Get("words"); _words != "" {
		n, err := strconv.Atoi(_words)
		if err != nil {
			SendError(w, BadRequest("words must be a number"))
			return
		}
		words = n
	}

	phrase, bits, err := generator.Passphrase(words)
	if errors.Is(err, generator.ErrWordCount) {
		SendError(w, BadRequest(err.Error()))
		return
	}
	if err != nil {
		sentry.CaptureException(err)
		SendError(w, InternalServerError)
		return
	}

	sendJSON(w, models.PassphraseResp{
		Passphrase:  phrase,
		Words:       words,
		Entropy:     bits,
		EntropyText: strength.EntropyText(float64(bits)),
	})
}
