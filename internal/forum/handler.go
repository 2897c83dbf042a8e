package forum

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"watchhive/internal/common"
	"watchhive/internal/dbmysql"
)

type Handler struct {
	groups   GroupService
	messages MessageService
	posts    PostService
}

func NewHandler(groups GroupService, messages MessageService, posts PostService) *Handler {
	return &Handler{groups: groups, messages: messages, posts: posts}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/forum_groups", h.CreateGroup).Methods("POST")
	r.HandleFunc("/forum_groups/full", h.CreateGroupFull).Methods("POST")
	r.HandleFunc("/forum_groups/created", h.CreatedGroups).Methods("GET")
	r.HandleFunc("/forum_groups/participating", h.ParticipatingGroups).Methods("GET")
	r.HandleFunc("/forum_groups/{id:[0-9]+}", h.GetGroup).Methods("GET")
	r.HandleFunc("/forum_groups/{id:[0-9]+}", h.UpdateGroup).Methods("PUT")
	r.HandleFunc("/forum_groups/{id:[0-9]+}", h.DeleteGroup).Methods("DELETE")
	r.HandleFunc("/forum_groups/{id:[0-9]+}/participants/{userID:[0-9]+}", h.AddParticipant).Methods("POST")
	r.HandleFunc("/forum_groups/{id:[0-9]+}/participants/{userID:[0-9]+}", h.RemoveParticipant).Methods("DELETE")
	r.HandleFunc("/forum_groups/{id:[0-9]+}/messages", h.CreateMessage).Methods("POST")
	r.HandleFunc("/forum_groups/{id:[0-9]+}/messages", h.ListMessages).Methods("GET")
	r.HandleFunc("/forum_groups/{id:[0-9]+}/messages/{messageID:[0-9]+}", h.DeleteMessage).Methods("DELETE")
	r.HandleFunc("/forum_posts", h.CreatePost).Methods("POST")
	r.HandleFunc("/forum_posts", h.ListPosts).Methods("GET")
	r.HandleFunc("/forum_posts/{id:[0-9]+}", h.GetPost).Methods("GET")
	r.HandleFunc("/forum_posts/{id:[0-9]+}", h.UpdatePost).Methods("PUT")
	r.HandleFunc("/forum_posts/{id:[0-9]+}", h.DeletePost).Methods("DELETE")
}

type groupRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type groupFullRequest struct {
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	Participants []uint64 `json:"participants"`
}

type contentRequest struct {
	Content string `json:"content"`
}

func (h *Handler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	var req groupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	group, err := h.groups.CreateGroup(r.Context(), req.Title, req.Content, userID)
	if err != nil {
		common.WriteDomainError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusCreated, group)
}

func (h *Handler) CreateGroupFull(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	var req groupFullRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	group, err := h.groups.CreateGroupFull(r.Context(), req.Title, req.Content, req.Participants, userID)
	if err != nil {
		common.WriteDomainError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusCreated, group)
}

func (h *Handler) GetGroup(w http.ResponseWriter, r *http.Request) {
	groupID, ok := pathGroupID(w, r)
	if !ok {
		return
	}

	group, err := h.groups.GetGroup(r.Context(), groupID)
	if err != nil {
		common.WriteDomainError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, group)
}

func (h *Handler) UpdateGroup(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}
	groupID, ok := pathGroupID(w, r)
	if !ok {
		return
	}

	var req groupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	group, err := h.groups.UpdateGroup(r.Context(), groupID, req.Title, req.Content, userID)
	if err != nil {
		common.WriteDomainError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, group)
}

func (h *Handler) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}
	groupID, ok := pathGroupID(w, r)
	if !ok {
		return
	}

	if err := h.groups.DeleteGroup(r.Context(), groupID, userID); err != nil {
		common.WriteDomainError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string]string{"message": "group deleted"})
}

func (h *Handler) CreatedGroups(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	groups, err := h.groups.CreatedGroups(r.Context(), userID)
	if err != nil {
		common.WriteDomainError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string][]dbmysql.ForumGroup{"groups": groups})
}

func (h *Handler) ParticipatingGroups(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	groups, err := h.groups.ParticipatingGroups(r.Context(), userID)
	if err != nil {
		common.WriteDomainError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string][]dbmysql.ForumGroup{"groups": groups})
}

func (h *Handler) AddParticipant(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}
	groupID, ok := pathGroupID(w, r)
	if !ok {
		return
	}
	participantID, err := strconv.ParseUint(mux.Vars(r)["userID"], 10, 64)
	if err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := h.groups.AddParticipant(r.Context(), groupID, participantID, userID); err != nil {
		common.WriteDomainError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusCreated, map[string]string{"message": "participant added"})
}

func (h *Handler) RemoveParticipant(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}
	groupID, ok := pathGroupID(w, r)
	if !ok {
		return
	}
	participantID, err := strconv.ParseUint(mux.Vars(r)["userID"], 10, 64)
	if err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := h.groups.RemoveParticipant(r.Context(), groupID, participantID, userID); err != nil {
		common.WriteDomainError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string]string{"message": "participant removed"})
}

func (h *Handler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}
	groupID, ok := pathGroupID(w, r)
	if !ok {
		return
	}

	var req contentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	message, err := h.messages.CreateMessage(r.Context(), groupID, userID, req.Content)
	if err != nil {
		common.WriteDomainError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusCreated, message)
}

func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	groupID, ok := pathGroupID(w, r)
	if !ok {
		return
	}

	messages, err := h.messages.ListMessages(r.Context(), groupID)
	if err != nil {
		common.WriteDomainError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string][]dbmysql.ForumMessage{"messages": messages})
}

func (h *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}
	groupID, ok := pathGroupID(w, r)
	if !ok {
		return
	}
	messageID, err := strconv.ParseUint(mux.Vars(r)["messageID"], 10, 64)
	if err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid message id")
		return
	}

	if err := h.messages.DeleteMessage(r.Context(), groupID, messageID, userID); err != nil {
		common.WriteDomainError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string]string{"message": "message deleted"})
}

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	var req groupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	post, err := h.posts.CreatePost(r.Context(), req.Title, req.Content, userID)
	if err != nil {
		common.WriteDomainError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusCreated, post)
}

func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathGroupID(w, r)
	if !ok {
		return
	}

	post, err := h.posts.GetPost(r.Context(), postID)
	if err != nil {
		common.WriteDomainError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, post)
}

func (h *Handler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}
	postID, ok := pathGroupID(w, r)
	if !ok {
		return
	}

	var req groupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	post, err := h.posts.UpdatePost(r.Context(), postID, req.Title, req.Content, userID)
	if err != nil {
		common.WriteDomainError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, post)
}

func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}
	postID, ok := pathGroupID(w, r)
	if !ok {
		return
	}

	if err := h.posts.DeletePost(r.Context(), postID, userID); err != nil {
		common.WriteDomainError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string]string{"message": "post deleted"})
}

func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	posts, err := h.posts.ListPosts(r.Context(), offset, limit)
	if err != nil {
		common.WriteDomainError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string][]dbmysql.ForumPost{"posts": posts})
}

func authedUser(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, http.StatusUnauthorized, "user not authenticated")
		return 0, false
	}
	return userID, true
}

func pathGroupID(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
