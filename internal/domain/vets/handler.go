package vets

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/vets", listVetsHandler(svc))
}

type specialtyResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type vetResponse struct {
	ID          int                 `json:"id"`
	FirstName   string              `json:"firstName"`
	LastName    string              `json:"lastName"`
	Specialties []specialtyResponse `json:"specialties"`
}

type vetPageResponse struct {
	Vets       []vetResponse `json:"vets"`
	Page       int           `json:"page"`
	TotalPages int           `json:"totalPages"`
	TotalItems int           `json:"totalItems"`
}

// listVetsHandler godoc
// @Summary Listar veterinarios
// @Description Staff de la clínica de a 5 por página. Las especialidades de cada vet vienen ordenadas por nombre.
// @Tags vets
// @Produce json
// @Param page query int false "Página (desde 1)"
// @Success 200 {object} vetPageResponse
// @Failure 500 {object} map[string]string
// @Router /vets [get]
func listVetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))

		res, err := svc.List(r.Context(), page)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
			return
		}

		out := vetPageResponse{
			Vets:       make([]vetResponse, 0, len(res.Vets)),
			Page:       res.Number,
			TotalPages: res.TotalPages(),
			TotalItems: res.Total,
		}
		for _, v := range res.Vets {
			vr := vetResponse{
				ID:          v.ID.Int(),
				FirstName:   v.FirstName,
				LastName:    v.LastName,
				Specialties: make([]specialtyResponse, 0, v.NrOfSpecialties()),
			}
			for _, s := range v.Specialties() {
				vr.Specialties = append(vr.Specialties, specialtyResponse{ID: s.ID.Int(), Name: s.Name})
			}
			out.Vets = append(out.Vets, vr)
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
