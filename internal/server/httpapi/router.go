package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// routes builds the endpoint table. The Authorization response header is
// exposed through CORS so browser clients can read the issued token.
func (s *Server) routes(allowedOrigins []string) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	r.HandleFunc("/users", s.handleRegister).Methods(http.MethodPost)
	r.HandleFunc("/users/sign_in", s.handleLogin).Methods(http.MethodPost)
	r.Handle("/users", s.requireAuth(http.HandlerFunc(s.handleUpdate))).Methods(http.MethodPut)
	r.Handle("/users", s.requireAuth(http.HandlerFunc(s.handleDelete))).Methods(http.MethodDelete)

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Authorization"},
		AllowCredentials: false,
	})

	return c.Handler(r)
}
