package response

import (
	"encoding/json"
	"net/http"
)

// Bodies follow the public API contract: successful reads and creates wrap
// their payload in {"data": ...}, mutations without a payload return
// {"ok": true}, and failures return {"error": "<message>"}. Error messages
// are stable strings owned by this API; storage error text is never relayed.

type errorBody struct {
	Error string `json:"error"`
}

type dataBody struct {
	Data interface{} `json:"data"`
}

type okBody struct {
	OK       bool `json:"ok"`
	Inserted int  `json:"inserted,omitempty"`
}

func JSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

func Data(w http.ResponseWriter, statusCode int, data interface{}) {
	JSON(w, statusCode, dataBody{Data: data})
}

func OK(w http.ResponseWriter) {
	JSON(w, http.StatusOK, okBody{OK: true})
}

func OKInserted(w http.ResponseWriter, inserted int) {
	JSON(w, http.StatusOK, okBody{OK: true, Inserted: inserted})
}

func Error(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, errorBody{Error: message})
}

func BadRequest(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Bad request"
	}
	Error(w, http.StatusBadRequest, message)
}

func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Unauthorized"
	}
	Error(w, http.StatusUnauthorized, message)
}

func Forbidden(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Forbidden"
	}
	Error(w, http.StatusForbidden, message)
}

func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Resource not found"
	}
	Error(w, http.StatusNotFound, message)
}

func InternalServerError(w http.ResponseWriter) {
	Error(w, http.StatusInternalServerError, "Internal server error")
}
