package api

import (
	"encoding/json"
	"net/http"
)

type Error struct {
	err  string
	code int
}

var (
	NotFound            = Error{err: "Resource not found", code: http.StatusNotFound}
	InternalServerError = Error{err: "Internal server error", code: http.StatusInternalServerError}
	MethodNotAllowed    = Error{err: "Method not allowed", code: http.StatusMethodNotAllowed}
	InvalidForm         = Error{err: "Invalid form", code: http.StatusBadRequest}
	PasswordTooLong     = Error{err: "Password is too long", code: http.StatusRequestEntityTooLarge}
)

func BadRequest(msg string) Error {
	return Error{err: msg, code: http.StatusBadRequest}
}

func SendError(w http.ResponseWriter, err Error) {
	body, _ := json.Marshal(map[string]string{"error": err.err})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.code)
	w.Write(body)
}

func sendJSON(w http.ResponseWriter, v any) {
	resp, err := json.Marshal(v)
	if err != nil {
		SendError(w, InternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(resp)
}
