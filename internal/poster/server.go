package poster

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"watchhive/internal/common"
)

// maxPosterSize caps multipart uploads at 10 MB.
const maxPosterSize = 10 << 20

// HTTPServer serves poster files on their own port so image traffic
// stays off the API server.
type HTTPServer struct {
	service PosterService
}

func NewHTTPServer(service PosterService) *HTTPServer {
	return &HTTPServer{service: service}
}

func (s *HTTPServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	router := mux.NewRouter()

	router.HandleFunc("/posters/{mediaID:[0-9]+}", s.serveFile).Methods("GET")
	router.HandleFunc("/health", s.health).Methods("GET")

	router.ServeHTTP(w, r)
}

func (s *HTTPServer) serveFile(w http.ResponseWriter, r *http.Request) {
	mediaID, err := strconv.ParseUint(mux.Vars(r)["mediaID"], 10, 64)
	if err != nil {
		http.Error(w, "invalid media id", http.StatusBadRequest)
		return
	}

	reader, ref, err := s.service.Download(r.Context(), mediaID)
	if err != nil {
		http.Error(w, "poster not found", http.StatusNotFound)
		return
	}

	contentType := ref.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", fmt.Sprintf("%d", ref.Size))

	if _, err := io.Copy(w, reader); err != nil {
		log.Printf("error streaming poster %d: %v", mediaID, err)
	}
}

func (s *HTTPServer) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("poster server is healthy"))
}

// Handler exposes the upload and delete endpoints on the API server.
type Handler struct {
	service PosterService
}

func NewHandler(service PosterService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/medias/{id:[0-9]+}/poster", h.Upload).Methods("POST")
	r.HandleFunc("/medias/{id:[0-9]+}/poster", h.Delete).Methods("DELETE")
}

func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	mediaID, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid media id")
		return
	}

	if err := r.ParseMultipartForm(maxPosterSize); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("poster")
	if err != nil {
		common.WriteError(w, http.StatusBadRequest, "poster file is required")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	ref, err := h.service.Upload(r.Context(), mediaID, header.Filename, contentType, file)
	if err != nil {
		common.WriteDomainError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusCreated, ref)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	mediaID, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid media id")
		return
	}

	if err := h.service.Delete(r.Context(), mediaID); err != nil {
		common.WriteDomainError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string]string{"message": "poster deleted"})
}
