package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// HeaderUserID carries the acting user's id. Identity is a trusted
// client-supplied integer; no authentication layer exists in front of it.
const HeaderUserID = "X-Sharer-User-Id"

const (
	defaultPageFrom = 0
	defaultPageSize = 10
)

func userID(r *http.Request) (int64, error) {
	raw := r.Header.Get(HeaderUserID)
	if raw == "" {
		return 0, fmt.Errorf("missing %s header", HeaderUserID)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s header", HeaderUserID)
	}
	return id, nil
}

func pathID(r *http.Request) (int64, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id: %s", raw)
	}
	return id, nil
}

// pagination reads the from/size query pair, applying the 0/10 defaults.
func pagination(r *http.Request) (from, size int, err error) {
	from = defaultPageFrom
	size = defaultPageSize

	if raw := r.URL.Query().Get("from"); raw != "" {
		from, err = strconv.Atoi(raw)
		if err != nil || from < 0 {
			return 0, 0, fmt.Errorf("invalid from parameter: %s", raw)
		}
	}
	if raw := r.URL.Query().Get("size"); raw != "" {
		size, err = strconv.Atoi(raw)
		if err != nil || size <= 0 {
			return 0, 0, fmt.Errorf("invalid size parameter: %s", raw)
		}
	}
	return from, size, nil
}
