package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/AleksandrYakovlevgtn/shareit/internal/logger"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// HeaderUserID matches the server's identity header.
const HeaderUserID = "X-Sharer-User-Id"

// Gateway re-validates request shape and forwards everything that passes to
// the server module, preserving status codes, headers and bodies.
type Gateway struct {
	serverURL string
	client    *http.Client
	validate  *validator.Validate
}

func New(serverURL string) *Gateway {
	return &Gateway{
		serverURL: serverURL,
		client:    newClient(),
		validate:  validator.New(),
	}
}

// Router mirrors the server's route surface.
func (g *Gateway) Router() *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/users", g.validatedBody(func() interface{} { return &createUserRequest{} }, false)).Methods("POST")
	router.HandleFunc("/users", g.passThrough).Methods("GET")
	router.HandleFunc("/users/{id}", g.passThrough).Methods("GET", "DELETE")
	router.HandleFunc("/users/{id}", g.validatedBody(func() interface{} { return &updateUserRequest{} }, false)).Methods("PATCH")

	router.HandleFunc("/items", g.validatedBody(func() interface{} { return &createItemRequest{} }, true)).Methods("POST")
	router.HandleFunc("/items", g.paginated).Methods("GET")
	router.HandleFunc("/items/search", g.paginated).Methods("GET")
	router.HandleFunc("/items/{id}", g.identified).Methods("GET")
	router.HandleFunc("/items/{id}", g.validatedBody(func() interface{} { return &updateItemRequest{} }, true)).Methods("PATCH")
	router.HandleFunc("/items/{id}", g.passThrough).Methods("DELETE")
	router.HandleFunc("/items/{id}/comment", g.validatedBody(func() interface{} { return &createCommentRequest{} }, true)).Methods("POST")

	router.HandleFunc("/bookings", g.createBooking).Methods("POST")
	router.HandleFunc("/bookings", g.paginated).Methods("GET")
	router.HandleFunc("/bookings/owner", g.paginated).Methods("GET")
	router.HandleFunc("/bookings/{id}", g.identified).Methods("GET", "PATCH")

	router.HandleFunc("/requests", g.validatedBody(func() interface{} { return &createRequestRequest{} }, true)).Methods("POST")
	router.HandleFunc("/requests", g.identified).Methods("GET")
	router.HandleFunc("/requests/all", g.paginated).Methods("GET")
	router.HandleFunc("/requests/{id}", g.identified).Methods("GET")

	return router
}

func (g *Gateway) passThrough(w http.ResponseWriter, r *http.Request) {
	g.forward(w, r, nil)
}

// identified requires the identity header but forwards the body untouched.
func (g *Gateway) identified(w http.ResponseWriter, r *http.Request) {
	if !g.requireUser(w, r) {
		return
	}
	g.forward(w, r, nil)
}

// paginated requires the identity header and well-formed from/size params.
func (g *Gateway) paginated(w http.ResponseWriter, r *http.Request) {
	if !g.requireUser(w, r) {
		return
	}
	if raw := r.URL.Query().Get("from"); raw != "" {
		if from, err := strconv.Atoi(raw); err != nil || from < 0 {
			g.reject(w, fmt.Sprintf("invalid from parameter: %s", raw))
			return
		}
	}
	if raw := r.URL.Query().Get("size"); raw != "" {
		if size, err := strconv.Atoi(raw); err != nil || size <= 0 {
			g.reject(w, fmt.Sprintf("invalid size parameter: %s", raw))
			return
		}
	}
	g.forward(w, r, nil)
}

// validatedBody decodes the body into the DTO produced by newDTO, runs
// struct validation and forwards the original bytes on success.
func (g *Gateway) validatedBody(newDTO func() interface{}, requireUser bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if requireUser && !g.requireUser(w, r) {
			return
		}
		body, err := io.ReadAll(r.Body)
		if err != nil {
			g.reject(w, "failed to read request body")
			return
		}
		dto := newDTO()
		if err := json.Unmarshal(body, dto); err != nil {
			g.reject(w, "invalid request body")
			return
		}
		if err := g.validate.Struct(dto); err != nil {
			g.reject(w, err.Error())
			return
		}
		g.forward(w, r, body)
	}
}

// createBooking layers time-window checks on top of the struct validation:
// the window must start no earlier than now and end in the future.
func (g *Gateway) createBooking(w http.ResponseWriter, r *http.Request) {
	if !g.requireUser(w, r) {
		return
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		g.reject(w, "failed to read request body")
		return
	}
	var dto bookItemRequest
	if err := json.Unmarshal(body, &dto); err != nil {
		g.reject(w, "invalid request body")
		return
	}
	if err := g.validate.Struct(&dto); err != nil {
		g.reject(w, err.Error())
		return
	}
	now := time.Now()
	if dto.Start.Before(now) {
		g.reject(w, "booking start must not be in the past")
		return
	}
	if !dto.End.After(now) {
		g.reject(w, "booking end must be in the future")
		return
	}
	g.forward(w, r, body)
}

func (g *Gateway) requireUser(w http.ResponseWriter, r *http.Request) bool {
	raw := r.Header.Get(HeaderUserID)
	if raw == "" {
		g.reject(w, fmt.Sprintf("missing %s header", HeaderUserID))
		return false
	}
	if id, err := strconv.ParseInt(raw, 10, 64); err != nil || id <= 0 {
		g.reject(w, fmt.Sprintf("invalid %s header", HeaderUserID))
		return false
	}
	return true
}

func (g *Gateway) reject(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// forward relays the request to the server and copies the response back.
// A nil body streams the incoming request body as-is.
func (g *Gateway) forward(w http.ResponseWriter, r *http.Request, body []byte) {
	var reader io.Reader = r.Body
	if body != nil {
		reader = bytes.NewReader(body)
	}

	url := g.serverURL + r.URL.RequestURI()
	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, reader)
	if err != nil {
		logger.Error("failed to build upstream request", "url", url, "error", err)
		http.Error(w, "gateway error", http.StatusInternalServerError)
		return
	}
	req.Header = r.Header.Clone()

	resp, err := g.client.Do(req)
	if err != nil {
		logger.Error("upstream request failed", "url", url, "error", err)
		http.Error(w, "shareit server unavailable", http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	for key, values := range resp.Header {
		for _, value := range values {
			w.Header().Add(key, value)
		}
	}
	w.WriteHeader(resp.StatusCode)
	if _, err := io.Copy(w, resp.Body); err != nil {
		logger.Warn("failed to copy upstream response", "url", url, "error", err)
	}
}
