package review

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"watchhive/internal/common"
)

type Handler struct {
	reviewService ReviewService
}

func NewHandler(reviewService ReviewService) *Handler {
	return &Handler{reviewService: reviewService}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/medias/{id:[0-9]+}/reviews", h.CreateReview).Methods("POST")
	r.HandleFunc("/reviews/{id:[0-9]+}", h.DeleteReview).Methods("DELETE")
}

type createReviewRequest struct {
	Score int `json:"score"`
}

func (h *Handler) CreateReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, http.StatusUnauthorized, "user not authenticated")
		return
	}

	mediaID, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid media id")
		return
	}

	var req createReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	review, err := h.reviewService.CreateReview(r.Context(), mediaID, userID, req.Score)
	if err != nil {
		common.WriteDomainError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusCreated, review)
}

func (h *Handler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, http.StatusUnauthorized, "user not authenticated")
		return
	}

	reviewID, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid review id")
		return
	}

	if err := h.reviewService.DeleteReview(r.Context(), reviewID, userID); err != nil {
		common.WriteDomainError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string]string{"message": "review deleted"})
}
