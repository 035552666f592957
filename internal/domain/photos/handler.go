package photos

import (
	_ "embed"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/juju/errors"
)

//go:embed default-pet.svg
var defaultPetSVG []byte

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/photos/{name}", getPhotoHandler(svc))
}

// getPhotoHandler godoc
// @Summary Descargar foto de mascota
// @Description Devuelve los bytes de la foto con su content type. default-pet.svg siempre existe.
// @Tags photos
// @Produce image/jpeg,image/png,image/gif,image/svg+xml
// @Param name path string true "Nombre del archivo"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string
// @Router /photos/{name} [get]
func getPhotoHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		if name == DefaultPhoto {
			w.Header().Set("Content-Type", ContentType(name))
			w.Header().Set("Content-Length", strconv.Itoa(len(defaultPetSVG)))
			w.Header().Set("Cache-Control", "public, max-age=86400")
			_, _ = w.Write(defaultPetSVG)
			return
		}

		rc, contentType, err := svc.Open(r.Context(), name)
		if err != nil {
			status, msg := http.StatusInternalServerError, "internal error"
			switch {
			case errors.Is(err, ErrNotFound):
				status, msg = http.StatusNotFound, "not found"
			case errors.Is(err, ErrInvalidFilename):
				status, msg = http.StatusBadRequest, err.Error()
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
			return
		}
		defer rc.Close()

		// Los nombres son UUIDs; el contenido de un nombre no cambia.
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		w.WriteHeader(http.StatusOK)
		_, _ = io.Copy(w, rc)
	}
}
