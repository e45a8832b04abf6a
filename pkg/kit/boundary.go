package kit

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// InternalErrorMessage is the only body a caller ever sees for a failure the
// handler did not anticipate.
const InternalErrorMessage = "Something broke!"

// HandlerFunc is an http handler that can fail. Anticipated failures (such as
// a missing product) are written by the handler itself; a returned error is
// unanticipated and becomes a 500.
type HandlerFunc func(http.ResponseWriter, *http.Request) error

// Handle adapts fn to http.HandlerFunc, routing returned errors through the
// same path as recovered panics.
func Handle(log *zap.Logger, fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			InternalError(w, r, log, zap.Error(err))
		}
	}
}

// InternalError logs the failure detail and writes the fixed 500 response.
func InternalError(w http.ResponseWriter, r *http.Request, log *zap.Logger, fields ...zap.Field) {
	logFailure(r, log, fields...)
	WriteText(w, http.StatusInternalServerError, InternalErrorMessage)
}

func logFailure(r *http.Request, log *zap.Logger, fields ...zap.Field) {
	if log == nil {
		return
	}
	log.Error("request failed", append(fields,
		zap.String("request_id", chimw.GetReqID(r.Context())),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)...)
}
