package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-contact-keeper/internal/utils"
	"github.com/MKhiriev/go-contact-keeper/models"
	"github.com/go-chi/chi/v5"
)

var errInvalidPathID = errors.New("invalid id in path")

// pathID extracts the {id} route parameter as a positive int64.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidPathID
	}

	return id, nil
}

// principalFrom returns the verified principal stored by the auth middleware.
// A missing principal means the route was wired outside the authenticated
// group; the request is rejected with 401 and ok is false.
func principalFrom(w http.ResponseWriter, r *http.Request) (models.Principal, bool) {
	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return models.Principal{}, false
	}

	return principal, true
}
