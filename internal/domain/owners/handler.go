package owners

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/juju/errors"

	"petclinic/internal/domain/photos"
	"petclinic/internal/middleware"
)

// multipartOverhead es el margen sobre MaxFileSize para headers y boundaries del form.
const multipartOverhead = 1 << 20

func RegisterRoutes(r chi.Router, svc *Service, photosSvc *photos.Service) {
	r.Get("/pettypes", listPetTypesHandler(svc))

	r.Route("/owners", func(or chi.Router) {
		or.Get("/", searchOwnersHandler(svc))
		or.Post("/", createOwnerHandler(svc))

		or.Route("/{ownerID}", func(o chi.Router) {
			o.Get("/", getOwnerHandler(svc))
			o.Put("/", updateOwnerHandler(svc))

			o.Post("/pets", createPetHandler(svc))
			o.Put("/pets/{petID}", updatePetHandler(svc))

			o.Get("/pets/{petID}/visits", listVisitsHandler(svc))
			o.Post("/pets/{petID}/visits", createVisitHandler(svc))

			o.Post("/pets/{petID}/photo", uploadPhotoHandler(svc, photosSvc))
			o.Delete("/pets/{petID}/photo", deletePhotoHandler(svc, photosSvc))
		})
	})
}

type ownerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Telephone string `json:"telephone"`
}

type petRequest struct {
	Name      string `json:"name"`
	BirthDate string `json:"birthDate"` // YYYY-MM-DD
	Type      string `json:"type"`
}

type visitRequest struct {
	Date        string `json:"date"` // YYYY-MM-DD opcional; default hoy
	Description string `json:"description"`
}

type visitResponse struct {
	ID          int    `json:"id"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

type petResponse struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	BirthDate string          `json:"birthDate,omitempty"`
	Type      string          `json:"type"`
	Photo     string          `json:"photo"`
	PhotoURL  string          `json:"photoUrl"`
	Visits    []visitResponse `json:"visits"`
}

type ownerResponse struct {
	ID        int           `json:"id"`
	FirstName string        `json:"firstName"`
	LastName  string        `json:"lastName"`
	Address   string        `json:"address"`
	City      string        `json:"city"`
	Telephone string        `json:"telephone"`
	Pets      []petResponse `json:"pets"`
}

type ownerPageResponse struct {
	Owners     []ownerResponse `json:"owners"`
	Page       int             `json:"page"`
	TotalPages int             `json:"totalPages"`
	TotalItems int             `json:"totalItems"`
}

type petTypeResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type photoResponse struct {
	Photo    string `json:"photo"`
	PhotoURL string `json:"photoUrl"`
}

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// searchOwnersHandler godoc
// @Summary Buscar owners
// @Description Lista owners cuyo apellido empieza con lastName (sin distinguir mayúsculas), de a 5 por página y ordenados por id. Sin lastName lista todos.
// @Tags owners
// @Produce json
// @Param lastName query string false "Prefijo del apellido"
// @Param page query int false "Página (desde 1)"
// @Success 200 {object} ownerPageResponse
// @Failure 500 {object} errorResponse
// @Router /owners [get]
func searchOwnersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))

		res, err := svc.Search(r.Context(), r.URL.Query().Get("lastName"), page)
		if err != nil {
			writeError(w, err)
			return
		}

		out := ownerPageResponse{
			Owners:     make([]ownerResponse, 0, len(res.Owners)),
			Page:       res.Number,
			TotalPages: res.TotalPages(),
			TotalItems: res.Total,
		}
		for _, o := range res.Owners {
			out.Owners = append(out.Owners, toOwnerResponse(o))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// createOwnerHandler godoc
// @Summary Crear owner
// @Description Todos los campos son obligatorios; telephone debe tener exactamente 10 dígitos. Requiere autenticación (`X-Debug-User-ID` en dev o `Authorization: Bearer <token>`).
// @Tags owners
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev"
// @Param Authorization header string false "Bearer token en producción"
// @Param payload body ownerRequest true "Datos del owner"
// @Success 201 {object} ownerResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Router /owners [post]
func createOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireClaims(w, r) {
			return
		}

		var req ownerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid json")
			return
		}

		o, err := svc.Create(r.Context(), req.input())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toOwnerResponse(o))
	}
}

// getOwnerHandler godoc
// @Summary Ver owner
// @Description Devuelve el owner con sus mascotas y el historial de visitas de cada una.
// @Tags owners
// @Produce json
// @Param ownerID path int true "ID del owner"
// @Success 200 {object} ownerResponse
// @Failure 404 {object} errorResponse
// @Router /owners/{ownerID} [get]
func getOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := pathID(w, r, "ownerID")
		if !ok {
			return
		}

		o, err := svc.Get(r.Context(), ownerID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toOwnerResponse(o))
	}
}

// updateOwnerHandler godoc
// @Summary Actualizar owner
// @Description Reemplaza los datos de contacto del owner. Mismas reglas que el alta.
// @Tags owners
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev"
// @Param Authorization header string false "Bearer token en producción"
// @Param ownerID path int true "ID del owner"
// @Param payload body ownerRequest true "Datos del owner"
// @Success 200 {object} ownerResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /owners/{ownerID} [put]
func updateOwnerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireClaims(w, r) {
			return
		}
		ownerID, ok := pathID(w, r, "ownerID")
		if !ok {
			return
		}

		var req ownerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid json")
			return
		}

		o, err := svc.Update(r.Context(), ownerID, req.input())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toOwnerResponse(o))
	}
}

// listPetTypesHandler godoc
// @Summary Tipos de mascota
// @Tags owners
// @Produce json
// @Success 200 {array} petTypeResponse
// @Router /pettypes [get]
func listPetTypesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		types, err := svc.PetTypes(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		out := make([]petTypeResponse, 0, len(types))
		for _, t := range types {
			out = append(out, petTypeResponse{ID: t.ID.Int(), Name: t.Name})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// createPetHandler godoc
// @Summary Agregar mascota
// @Description name, type y birthDate son obligatorios. El nombre no puede repetir el de otra mascota guardada del mismo owner (sin distinguir mayúsculas) y la fecha de nacimiento no puede ser futura.
// @Tags pets
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev"
// @Param Authorization header string false "Bearer token en producción"
// @Param ownerID path int true "ID del owner"
// @Param payload body petRequest true "Datos de la mascota; birthDate YYYY-MM-DD"
// @Success 201 {object} petResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /owners/{ownerID}/pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireClaims(w, r) {
			return
		}
		ownerID, ok := pathID(w, r, "ownerID")
		if !ok {
			return
		}

		in, ok := decodePet(w, r)
		if !ok {
			return
		}

		_, p, err := svc.AddPet(r.Context(), ownerID, in)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

// updatePetHandler godoc
// @Summary Editar mascota
// @Description Mismas reglas que el alta; renombrar a su propio nombre es válido.
// @Tags pets
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev"
// @Param Authorization header string false "Bearer token en producción"
// @Param ownerID path int true "ID del owner"
// @Param petID path int true "ID de la mascota"
// @Param payload body petRequest true "Datos de la mascota; birthDate YYYY-MM-DD"
// @Success 200 {object} petResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /owners/{ownerID}/pets/{petID} [put]
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireClaims(w, r) {
			return
		}
		ownerID, ok := pathID(w, r, "ownerID")
		if !ok {
			return
		}
		petID, ok := pathID(w, r, "petID")
		if !ok {
			return
		}

		in, ok := decodePet(w, r)
		if !ok {
			return
		}

		_, p, err := svc.UpdatePet(r.Context(), ownerID, petID, in)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// listVisitsHandler godoc
// @Summary Historial de visitas
// @Description Visitas de la mascota en el orden en que se registraron.
// @Tags visits
// @Produce json
// @Param ownerID path int true "ID del owner"
// @Param petID path int true "ID de la mascota"
// @Success 200 {array} visitResponse
// @Failure 404 {object} errorResponse
// @Router /owners/{ownerID}/pets/{petID}/visits [get]
func listVisitsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := pathID(w, r, "ownerID")
		if !ok {
			return
		}
		petID, ok := pathID(w, r, "petID")
		if !ok {
			return
		}

		visits, err := svc.Visits(r.Context(), ownerID, petID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toVisitResponses(visits))
	}
}

// createVisitHandler godoc
// @Summary Registrar visita
// @Description Agrega una visita al historial de la mascota. description es obligatoria; date (YYYY-MM-DD) es opcional y por defecto es hoy.
// @Tags visits
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev"
// @Param Authorization header string false "Bearer token en producción"
// @Param ownerID path int true "ID del owner"
// @Param petID path int true "ID de la mascota"
// @Param payload body visitRequest true "Datos de la visita"
// @Success 201 {object} visitResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /owners/{ownerID}/pets/{petID}/visits [post]
func createVisitHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireClaims(w, r) {
			return
		}
		ownerID, ok := pathID(w, r, "ownerID")
		if !ok {
			return
		}
		petID, ok := pathID(w, r, "petID")
		if !ok {
			return
		}

		var req visitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid json")
			return
		}
		in := VisitInput{Description: req.Description}
		if strings.TrimSpace(req.Date) != "" {
			d, err := time.Parse(time.DateOnly, strings.TrimSpace(req.Date))
			if err != nil {
				writeMessage(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
				return
			}
			in.Date = &d
		}

		v, err := svc.AddVisit(r.Context(), ownerID, petID, in)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toVisitResponse(v))
	}
}

// uploadPhotoHandler godoc
// @Summary Subir foto de mascota
// @Description multipart/form-data con el archivo en el campo `photo`. Acepta JPG, JPEG, PNG o GIF hasta 5MB. Reemplaza la foto anterior, que se borra del storage.
// @Tags photos
// @Accept mpfd
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev"
// @Param Authorization header string false "Bearer token en producción"
// @Param ownerID path int true "ID del owner"
// @Param petID path int true "ID de la mascota"
// @Param photo formData file true "Imagen"
// @Success 200 {object} photoResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 413 {object} errorResponse
// @Failure 415 {object} errorResponse
// @Router /owners/{ownerID}/pets/{petID}/photo [post]
func uploadPhotoHandler(svc *Service, photosSvc *photos.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireClaims(w, r) {
			return
		}
		ownerID, ok := pathID(w, r, "ownerID")
		if !ok {
			return
		}
		petID, ok := pathID(w, r, "petID")
		if !ok {
			return
		}

		// Antes de leer el archivo: que la mascota exista.
		if _, err := svc.Visits(r.Context(), ownerID, petID); err != nil {
			writeError(w, err)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, photos.MaxFileSize+multipartOverhead)
		upload, err := readUpload(r)
		if err != nil {
			var tooBig *http.MaxBytesError
			if errors.As(err, &tooBig) {
				writeError(w, photos.ErrFileTooLarge)
				return
			}
			writeMessage(w, http.StatusBadRequest, "invalid multipart form")
			return
		}

		name, err := photosSvc.Upload(r.Context(), upload)
		if err != nil {
			writeError(w, err)
			return
		}
		if name == photos.NoPhoto {
			writeMessage(w, http.StatusBadRequest, "no photo uploaded")
			return
		}

		previous, err := svc.SetPetPhoto(r.Context(), ownerID, petID, name)
		if err != nil {
			photosSvc.Delete(r.Context(), name)
			writeError(w, err)
			return
		}
		photosSvc.Delete(r.Context(), previous)

		writeJSON(w, http.StatusOK, photoResponse{Photo: name, PhotoURL: photoURL(name)})
	}
}

// deletePhotoHandler godoc
// @Summary Quitar foto de mascota
// @Description Vuelve a la imagen por defecto y borra el archivo anterior. Es idempotente.
// @Tags photos
// @Param X-Debug-User-ID header string false "Solo en modo dev"
// @Param Authorization header string false "Bearer token en producción"
// @Param ownerID path int true "ID del owner"
// @Param petID path int true "ID de la mascota"
// @Success 204
// @Failure 401 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /owners/{ownerID}/pets/{petID}/photo [delete]
func deletePhotoHandler(svc *Service, photosSvc *photos.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireClaims(w, r) {
			return
		}
		ownerID, ok := pathID(w, r, "ownerID")
		if !ok {
			return
		}
		petID, ok := pathID(w, r, "petID")
		if !ok {
			return
		}

		previous, err := svc.SetPetPhoto(r.Context(), ownerID, petID, photos.NoPhoto)
		if err != nil {
			writeError(w, err)
			return
		}
		photosSvc.Delete(r.Context(), previous)
		w.WriteHeader(http.StatusNoContent)
	}
}

func readUpload(r *http.Request) (photos.Upload, error) {
	file, header, err := r.FormFile("photo")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return photos.Upload{}, nil
		}
		return photos.Upload{}, err
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return photos.Upload{}, err
	}
	return photos.Upload{Content: content, Filename: header.Filename, Size: header.Size}, nil
}

func (req ownerRequest) input() OwnerInput {
	return OwnerInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Address:   req.Address,
		City:      req.City,
		Telephone: req.Telephone,
	}
}

func decodePet(w http.ResponseWriter, r *http.Request) (PetInput, bool) {
	var req petRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid json")
		return PetInput{}, false
	}

	in := PetInput{Name: req.Name, Type: req.Type}
	if s := strings.TrimSpace(req.BirthDate); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "birthDate must be YYYY-MM-DD")
			return PetInput{}, false
		}
		in.BirthDate = &t
	}
	return in, true
}

func requireClaims(w http.ResponseWriter, r *http.Request) bool {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		writeMessage(w, http.StatusUnauthorized, "unauthorized")
		return false
	}
	return true
}

func pathID(w http.ResponseWriter, r *http.Request, param string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, param))
	if err != nil || id <= 0 {
		writeMessage(w, http.StatusNotFound, "not found")
		return 0, false
	}
	return id, true
}

func toOwnerResponse(o *Owner) ownerResponse {
	out := ownerResponse{
		ID:        o.ID.Int(),
		FirstName: o.FirstName,
		LastName:  o.LastName,
		Address:   o.Address,
		City:      o.City,
		Telephone: o.Telephone,
		Pets:      make([]petResponse, 0, len(o.pets)),
	}
	for _, p := range o.Pets() {
		out.Pets = append(out.Pets, toPetResponse(p))
	}
	return out
}

func toPetResponse(p *Pet) petResponse {
	out := petResponse{
		ID:       p.ID.Int(),
		Name:     p.Name,
		Type:     p.Type.Name,
		Photo:    p.PhotoOrDefault(),
		PhotoURL: photoURL(p.PhotoOrDefault()),
		Visits:   toVisitResponses(p.Visits()),
	}
	if !p.BirthDate.IsZero() {
		out.BirthDate = p.BirthDate.Format(time.DateOnly)
	}
	return out
}

func toVisitResponses(visits []*Visit) []visitResponse {
	out := make([]visitResponse, 0, len(visits))
	for _, v := range visits {
		out = append(out, toVisitResponse(v))
	}
	return out
}

func toVisitResponse(v *Visit) visitResponse {
	return visitResponse{ID: v.ID.Int(), Date: v.Date.Format(time.DateOnly), Description: v.Description}
}

func photoURL(name string) string {
	return "/photos/" + name
}

// writeError traduce los errores de dominio a status HTTP.
func writeError(w http.ResponseWriter, err error) {
	var verrs ValidationErrors
	switch {
	case errors.As(err, &verrs):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: ErrInvalidInput.Error(), Fields: verrs})
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidArgument):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound), errors.Is(err, photos.ErrNotFound):
		writeMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, photos.ErrFileTooLarge):
		writeMessage(w, http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, photos.ErrUnsupportedFileType):
		writeMessage(w, http.StatusUnsupportedMediaType, err.Error())
	case errors.Is(err, photos.ErrInvalidFilename):
		writeMessage(w, http.StatusBadRequest, err.Error())
	default:
		writeMessage(w, http.StatusInternalServerError, "internal error")
	}
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
