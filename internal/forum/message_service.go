package forum

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"gorm.io/gorm"

	"watchhive/internal/common"
	"watchhive/internal/dbmysql"
)

// Broadcaster is the push side of the registry as the message path sees it.
type Broadcaster interface {
	Broadcast(groupID uint64, message string)
}

type MessageService interface {
	CreateMessage(ctx context.Context, groupID, userID uint64, content string) (*dbmysql.ForumMessage, error)
	DeleteMessage(ctx context.Context, groupID, messageID, currentUserID uint64) error
	ListMessages(ctx context.Context, groupID uint64) ([]dbmysql.ForumMessage, error)
}

type messageService struct {
	repo        ForumRepository
	broadcaster Broadcaster
}

func NewMessageService(repo ForumRepository, broadcaster Broadcaster) MessageService {
	return &messageService{repo: repo, broadcaster: broadcaster}
}

// messagePayload is the wire shape pushed over the group's channels.
type messagePayload struct {
	ID      uint64 `json:"id"`
	UserID  uint64 `json:"user_id"`
	Content string `json:"content"`
}

// CreateMessage persists a message from a participant and fans it out to
// every channel subscribed to the group.
func (s *messageService) CreateMessage(ctx context.Context, groupID, userID uint64, content string) (*dbmysql.ForumMessage, error) {
	if _, err := s.group(ctx, groupID); err != nil {
		return nil, err
	}

	participant, err := s.repo.IsParticipant(ctx, groupID, userID)
	if err != nil {
		return nil, err
	}
	if !participant {
		return nil, common.NewPermissionError("you are not part of the group")
	}

	if content == "" {
		return nil, common.NewBusinessError("message content cannot be empty")
	}

	message := &dbmysql.ForumMessage{
		ForumGroupID: groupID,
		UserID:       userID,
		Content:      content,
	}
	if err := s.repo.CreateMessage(ctx, message); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(messagePayload{
		ID:      message.ID,
		UserID:  message.UserID,
		Content: message.Content,
	})
	if err != nil {
		log.Printf("failed to serialize message %d for broadcast: %v", message.ID, err)
		return message, nil
	}
	s.broadcaster.Broadcast(groupID, string(payload))

	return message, nil
}

// DeleteMessage is allowed for the message author and for the group creator.
func (s *messageService) DeleteMessage(ctx context.Context, groupID, messageID, currentUserID uint64) error {
	group, err := s.group(ctx, groupID)
	if err != nil {
		return err
	}

	message, err := s.repo.GetMessage(ctx, messageID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return common.NewNotFound("message not found")
	}
	if err != nil {
		return err
	}
	if message.ForumGroupID != groupID {
		return common.NewNotFound("message not found")
	}

	if message.UserID != currentUserID && group.UserID != currentUserID {
		return common.NewPermissionError("you cannot delete this message")
	}

	return s.repo.DeleteMessage(ctx, messageID)
}

func (s *messageService) ListMessages(ctx context.Context, groupID uint64) ([]dbmysql.ForumMessage, error) {
	if _, err := s.group(ctx, groupID); err != nil {
		return nil, err
	}
	return s.repo.ListMessages(ctx, groupID)
}

func (s *messageService) group(ctx context.Context, groupID uint64) (*dbmysql.ForumGroup, error) {
	group, err := s.repo.GetGroup(ctx, groupID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.NewNotFound("group not found on the WatchHive forum")
	}
	if err != nil {
		return nil, err
	}
	return group, nil
}
