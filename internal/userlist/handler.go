package userlist

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"watchhive/internal/common"
	"watchhive/internal/dbmysql"
)

type Handler struct {
	listService ListService
}

func NewHandler(listService ListService) *Handler {
	return &Handler{listService: listService}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/lists/{kind}", h.ListMedia).Methods("GET")
	r.HandleFunc("/lists/{kind}/medias/{mediaID:[0-9]+}", h.AddMedia).Methods("POST")
	r.HandleFunc("/lists/{kind}/medias/{mediaID:[0-9]+}", h.RemoveMedia).Methods("DELETE")
}

func (h *Handler) AddMedia(w http.ResponseWriter, r *http.Request) {
	userID, listName, mediaID, ok := h.requestParams(w, r)
	if !ok {
		return
	}

	if err := h.listService.AddToList(r.Context(), userID, mediaID, listName); err != nil {
		common.WriteDomainError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusCreated, map[string]string{"message": "title added to the list"})
}

func (h *Handler) RemoveMedia(w http.ResponseWriter, r *http.Request) {
	userID, listName, mediaID, ok := h.requestParams(w, r)
	if !ok {
		return
	}

	if err := h.listService.RemoveFromList(r.Context(), userID, mediaID, listName); err != nil {
		common.WriteDomainError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string]string{"message": "title removed from the list"})
}

func (h *Handler) ListMedia(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, http.StatusUnauthorized, "user not authenticated")
		return
	}

	listName, ok := listKind(mux.Vars(r)["kind"])
	if !ok {
		common.WriteError(w, http.StatusBadRequest, "unknown list kind")
		return
	}

	medias, err := h.listService.ListMedia(r.Context(), userID, listName)
	if err != nil {
		common.WriteDomainError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string][]dbmysql.Media{"medias": medias})
}

func (h *Handler) requestParams(w http.ResponseWriter, r *http.Request) (userID uint64, listName string, mediaID uint64, ok bool) {
	userID, ok = common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, http.StatusUnauthorized, "user not authenticated")
		return 0, "", 0, false
	}

	listName, ok = listKind(mux.Vars(r)["kind"])
	if !ok {
		common.WriteError(w, http.StatusBadRequest, "unknown list kind")
		return 0, "", 0, false
	}

	mediaID, err := strconv.ParseUint(mux.Vars(r)["mediaID"], 10, 64)
	if err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid media id")
		return 0, "", 0, false
	}

	return userID, listName, mediaID, true
}

func listKind(kind string) (string, bool) {
	switch kind {
	case dbmysql.ListWatched:
		return dbmysql.ListWatched, true
	case dbmysql.ListToWatch:
		return dbmysql.ListToWatch, true
	default:
		return "", false
	}
}
