package media

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"watchhive/internal/common"
	"watchhive/internal/dbmysql"
)

type Handler struct {
	mediaService MediaService
}

func NewHandler(mediaService MediaService) *Handler {
	return &Handler{mediaService: mediaService}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/medias/search", h.Search).Methods("GET")
	r.HandleFunc("/medias/best_rated", h.BestRated).Methods("GET")
	r.HandleFunc("/medias/recommended", h.Recommended).Methods("GET")
	r.HandleFunc("/medias/random", h.RandomByGenre).Methods("GET")
	r.HandleFunc("/medias/by_genre", h.ByGenrePage).Methods("GET")
	r.HandleFunc("/medias/{id:[0-9]+}", h.GetMedia).Methods("GET")
	r.HandleFunc("/medias/{id:[0-9]+}/comments", h.CreateComment).Methods("POST")
	r.HandleFunc("/medias/{id:[0-9]+}/comments/{commentID:[0-9]+}", h.DeleteComment).Methods("DELETE")
}

func (h *Handler) GetMedia(w http.ResponseWriter, r *http.Request) {
	mediaID, err := pathID(r, "id")
	if err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid media id")
		return
	}

	var viewerID *uint64
	if id, ok := common.UserIDFromContext(r.Context()); ok {
		viewerID = &id
	}

	detail, err := h.mediaService.GetMedia(r.Context(), mediaID, viewerID)
	if err != nil {
		common.WriteDomainError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, detail)
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	offset, limit := paginationParams(r)

	medias, err := h.mediaService.SearchByTitle(r.Context(), term, offset, limit)
	if err != nil {
		common.WriteDomainError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string][]dbmysql.Media{"medias": medias})
}

func (h *Handler) BestRated(w http.ResponseWriter, r *http.Request) {
	_, limit := paginationParams(r)

	ranked, err := h.mediaService.BestRated(r.Context(), limit)
	if err != nil {
		common.WriteDomainError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string][]RankedMedia{"medias": ranked})
}

func (h *Handler) Recommended(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, http.StatusUnauthorized, "user not authenticated")
		return
	}
	_, limit := paginationParams(r)

	ranked, err := h.mediaService.Recommended(r.Context(), userID, limit)
	if err != nil {
		common.WriteDomainError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string][]RankedMedia{"medias": ranked})
}

func (h *Handler) RandomByGenre(w http.ResponseWriter, r *http.Request) {
	genreID, mediaType, ok := genreParams(w, r)
	if !ok {
		return
	}

	medias, err := h.mediaService.RandomByGenre(r.Context(), genreID, mediaType)
	if err != nil {
		common.WriteDomainError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string][]dbmysql.Media{"medias": medias})
}

func (h *Handler) ByGenrePage(w http.ResponseWriter, r *http.Request) {
	genreID, mediaType, ok := genreParams(w, r)
	if !ok {
		return
	}
	offset, limit := paginationParams(r)

	medias, err := h.mediaService.ByGenrePage(r.Context(), genreID, mediaType, offset, limit)
	if err != nil {
		common.WriteDomainError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string][]dbmysql.Media{"medias": medias})
}

type createCommentRequest struct {
	Content string `json:"content"`
}

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, http.StatusUnauthorized, "user not authenticated")
		return
	}

	mediaID, err := pathID(r, "id")
	if err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid media id")
		return
	}

	var req createCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	comment, err := h.mediaService.CreateComment(r.Context(), mediaID, userID, req.Content)
	if err != nil {
		common.WriteDomainError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusCreated, comment)
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, http.StatusUnauthorized, "user not authenticated")
		return
	}

	mediaID, err := pathID(r, "id")
	if err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid media id")
		return
	}
	commentID, err := pathID(r, "commentID")
	if err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid comment id")
		return
	}

	if err := h.mediaService.DeleteComment(r.Context(), mediaID, commentID, userID); err != nil {
		common.WriteDomainError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string]string{"message": "comment deleted"})
}

func pathID(r *http.Request, name string) (uint64, error) {
	return strconv.ParseUint(mux.Vars(r)[name], 10, 64)
}

func paginationParams(r *http.Request) (offset, limit int) {
	offset, _ = strconv.Atoi(r.URL.Query().Get("offset"))
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	if offset < 0 {
		offset = 0
	}
	if limit < 1 {
		limit = defaultLimit
	}
	return offset, limit
}

func genreParams(w http.ResponseWriter, r *http.Request) (uint64, string, bool) {
	genreID, err := strconv.ParseUint(r.URL.Query().Get("genre_id"), 10, 64)
	if err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid genre id")
		return 0, "", false
	}

	mediaType := r.URL.Query().Get("type")
	if mediaType != dbmysql.MediaTypeMovie && mediaType != dbmysql.MediaTypeSeries {
		common.WriteError(w, http.StatusBadRequest, "type must be movie or series")
		return 0, "", false
	}

	return genreID, mediaType, true
}
