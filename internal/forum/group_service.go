package forum

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"watchhive/internal/common"
	"watchhive/internal/dbmysql"
)

// UserChecker is the slice of the user subsystem the forum needs.
type UserChecker interface {
	UserExists(ctx context.Context, userID uint64) (bool, error)
}

type GroupService interface {
	CreateGroup(ctx context.Context, title, content string, userID uint64) (*dbmysql.ForumGroup, error)
	CreateGroupFull(ctx context.Context, title, content string, participantIDs []uint64, userID uint64) (*dbmysql.ForumGroup, error)
	GetGroup(ctx context.Context, groupID uint64) (*dbmysql.ForumGroup, error)
	UpdateGroup(ctx context.Context, groupID uint64, title, content string, currentUserID uint64) (*dbmysql.ForumGroup, error)
	DeleteGroup(ctx context.Context, groupID, currentUserID uint64) error
	CreatedGroups(ctx context.Context, userID uint64) ([]dbmysql.ForumGroup, error)
	ParticipatingGroups(ctx context.Context, userID uint64) ([]dbmysql.ForumGroup, error)
	AddParticipant(ctx context.Context, groupID, participantID, currentUserID uint64) error
	RemoveParticipant(ctx context.Context, groupID, participantID, currentUserID uint64) error
}

type groupService struct {
	repo  ForumRepository
	users UserChecker
}

func NewGroupService(repo ForumRepository, users UserChecker) GroupService {
	return &groupService{repo: repo, users: users}
}

// CreateGroup also enrolls the creator as the group's first participant.
func (s *groupService) CreateGroup(ctx context.Context, title, content string, userID uint64) (*dbmysql.ForumGroup, error) {
	return s.CreateGroupFull(ctx, title, content, nil, userID)
}

func (s *groupService) CreateGroupFull(ctx context.Context, title, content string, participantIDs []uint64, userID uint64) (*dbmysql.ForumGroup, error) {
	if title == "" {
		return nil, common.NewBusinessError("group title cannot be empty")
	}

	group := &dbmysql.ForumGroup{
		Title:   title,
		Content: content,
		UserID:  userID,
	}

	// Creator always ends up a participant, and the incoming set may
	// mention them or repeat ids.
	seen := map[uint64]struct{}{userID: {}}
	ids := []uint64{userID}
	for _, id := range participantIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	if err := s.repo.CreateGroup(ctx, group, ids); err != nil {
		return nil, err
	}

	return group, nil
}

func (s *groupService) GetGroup(ctx context.Context, groupID uint64) (*dbmysql.ForumGroup, error) {
	group, err := s.repo.GetGroup(ctx, groupID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.NewNotFound("group not found on the WatchHive forum")
	}
	if err != nil {
		return nil, err
	}
	return group, nil
}

func (s *groupService) UpdateGroup(ctx context.Context, groupID uint64, title, content string, currentUserID uint64) (*dbmysql.ForumGroup, error) {
	group, err := s.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	if group.UserID != currentUserID {
		return nil, common.NewPermissionError("only the group creator can edit the group")
	}

	group.Title = title
	group.Content = content
	if err := s.repo.UpdateGroup(ctx, group); err != nil {
		return nil, err
	}

	return group, nil
}

func (s *groupService) DeleteGroup(ctx context.Context, groupID, currentUserID uint64) error {
	group, err := s.GetGroup(ctx, groupID)
	if err != nil {
		return err
	}

	if group.UserID != currentUserID {
		return common.NewPermissionError("only the group creator can delete the group")
	}

	return s.repo.DeleteGroup(ctx, groupID)
}

func (s *groupService) CreatedGroups(ctx context.Context, userID uint64) ([]dbmysql.ForumGroup, error) {
	return s.repo.GroupsCreatedBy(ctx, userID)
}

func (s *groupService) ParticipatingGroups(ctx context.Context, userID uint64) ([]dbmysql.ForumGroup, error) {
	return s.repo.GroupsParticipatedBy(ctx, userID)
}

func (s *groupService) AddParticipant(ctx context.Context, groupID, participantID, currentUserID uint64) error {
	group, err := s.GetGroup(ctx, groupID)
	if err != nil {
		return err
	}

	if group.UserID != currentUserID {
		return common.NewPermissionError("only the group creator can add participants")
	}

	already, err := s.repo.IsParticipant(ctx, groupID, participantID)
	if err != nil {
		return err
	}
	if already {
		return common.NewBusinessError("user already belongs to the group")
	}

	exists, err := s.users.UserExists(ctx, participantID)
	if err != nil {
		return err
	}
	if !exists {
		return common.NewNotFound("user not found")
	}

	err = s.repo.AddParticipant(ctx, &dbmysql.ForumParticipant{
		ForumGroupID: groupID,
		UserID:       participantID,
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return common.NewBusinessError("user already belongs to the group")
	}
	return err
}

func (s *groupService) RemoveParticipant(ctx context.Context, groupID, participantID, currentUserID uint64) error {
	group, err := s.GetGroup(ctx, groupID)
	if err != nil {
		return err
	}

	if group.UserID != currentUserID {
		return common.NewPermissionError("only the group creator can remove participants")
	}

	removed, err := s.repo.RemoveParticipant(ctx, groupID, participantID)
	if err != nil {
		return err
	}
	if removed == 0 {
		return common.NewBusinessError("user does not belong to the group")
	}
	return nil
}
