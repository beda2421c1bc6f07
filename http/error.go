package http

import (
	"net/http"

	"github.com/fwojciec/askd"
)

// MsgAskFailed is the error reason reported for every non-validation failure.
const MsgAskFailed = "AI request failed."

// ErrorResponse is the JSON body of a failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// codes maps application error codes to HTTP status codes.
var codes = map[string]int{
	askd.EINVALID:  http.StatusBadRequest,
	askd.EUPSTREAM: http.StatusInternalServerError,
	askd.EINTERNAL: http.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status code for an application error code.
func ErrorStatusCode(code string) int {
	if v, ok := codes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}

// Error writes err to w as an ErrorResponse.
func (s *Server) Error(w http.ResponseWriter, r *http.Request, err error) {
	code := askd.ErrorCode(err)

	resp := ErrorResponse{Error: MsgAskFailed}
	if code == askd.EINVALID {
		resp.Error = askd.ErrorMessage(err)
	} else if !s.HideErrorDetails {
		resp.Message = askd.ErrorMessage(err)
	}

	s.writeJSON(w, r, ErrorStatusCode(code), resp)
}
