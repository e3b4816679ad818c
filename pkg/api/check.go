package api

import (
	"encoding/json"
	"net/http"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/hatchdotlol/cipherpass/pkg/models"
	"github.com/hatchdotlol/cipherpass/pkg/util"
)

func CheckRouter() *chi.Mux {
	r := chi.NewRouter()
	r.Post("/", check)
	return r
}

func check(w http.ResponseWriter, r *http.Request) {
	var form models.Check

	body := util.HttpBody(r, maxBodyBytes)
	if body == nil {
		SendError(w, InvalidForm)
		return
	}
	if err := json.Unmarshal(body, &form); err != nil {
		SendError(w, InvalidForm)
		return
	}

	if utf8.RuneCountInString(form.Password) > util.Config.MaxPasswordLength {
		SendError(w, PasswordTooLong)
		return
	}

	sendJSON(w, models.CheckResp(estimator.Check(form.Password)))
}
