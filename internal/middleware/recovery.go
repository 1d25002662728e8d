package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/RubachokBoss/textinspect/pkg/utils"
)

// Recovery turns a handler panic into a JSON 500. The panic is logged through
// the request-scoped logger when RequestLogger runs earlier in the chain.
func Recovery(log zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				if rvr == http.ErrAbortHandler {
					// клиент ушёл, net/http сам закроет соединение
					panic(rvr)
				}

				panicLog := requestScoped(r, log)
				panicLog.Error().
					Interface("recover", rvr).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Bytes("stack", debug.Stack()).
					Msg("Panic recovered")

				utils.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
			}()

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(fn)
	}
}

// requestScoped returns the logger RequestLogger stored in the context or,
// without one, the fallback tagged with the chi request id.
func requestScoped(r *http.Request, fallback zerolog.Logger) *zerolog.Logger {
	if l := zerolog.Ctx(r.Context()); l.GetLevel() != zerolog.Disabled {
		return l
	}

	l := fallback.With().Str("request_id", middleware.GetReqID(r.Context())).Logger()
	return &l
}
