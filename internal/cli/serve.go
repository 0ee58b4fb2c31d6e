package cli

import (
	"errors"
	"net/http"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	apperrors "github.com/c4kit/c4kit/pkg/errors"
	"github.com/c4kit/c4kit/pkg/manifest"
)

// newServeCmd creates the serve command: an HTTP endpoint that accepts
// JSON workspace definitions and returns Structurizr DSL.
func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve workspace-to-DSL conversion over HTTP",
		Long: `Start an HTTP server exposing POST /v1/export.

The endpoint accepts a JSON workspace definition body and responds
with the serialized Structurizr DSL as text/plain.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			logger := loggerFromContext(c.Context())
			srv := &http.Server{
				Addr:              addr,
				Handler:           newRouter(logger),
				ReadHeaderTimeout: 5 * time.Second,
			}

			go func() {
				<-c.Context().Done()
				_ = srv.Close()
			}()

			logger.Infof("Listening on %s", addr)
			if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}

// newRouter builds the chi router for the export endpoint.
func newRouter(logger *charmlog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Post("/v1/export", func(w http.ResponseWriter, req *http.Request) {
		ws, err := manifest.DecodeJSON(req.Body)
		if err != nil {
			fail(w, apperrors.Wrap(apperrors.ErrCodeInvalidFormat, err, "decode request body"))
			return
		}
		s, err := ws.Serializer()
		if err != nil {
			fail(w, apperrors.Classify(err))
			return
		}
		out, err := s.Serialize()
		if err != nil {
			fail(w, apperrors.Classify(err))
			return
		}
		logger.Debugf("Exported workspace %q (%d bytes)", ws.Name, len(out))
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(out + "\n"))
	})

	return r
}

// fail writes an error response carrying the machine-readable code and
// the user-facing message.
func fail(w http.ResponseWriter, err *apperrors.Error) {
	http.Error(w, err.Error(), apperrors.HTTPStatus(err.Code))
}
