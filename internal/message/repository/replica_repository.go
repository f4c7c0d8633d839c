package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gochat/internal/dbmysql"
)

var (
	ErrChatNotFound = errors.New("chat not found")
	ErrUserNotFound = errors.New("user not found")
)

// ReplicaRepository is the message service's read-only copy of users and
// chats owned by other services. It lags the owners by however long the
// bus takes to deliver their events.
type ReplicaRepository interface {
	UpsertUser(ctx context.Context, user *dbmysql.UserReplica) error
	DeactivateUser(ctx context.Context, userID int64) error
	UpsertChat(ctx context.Context, chat *dbmysql.ChatReplica, members []int64) error
	DeleteChat(ctx context.Context, chatID int64) error
	GetChat(ctx context.Context, chatID int64) (*dbmysql.ChatReplica, error)
	GetUser(ctx context.Context, userID int64) (*dbmysql.UserReplica, error)
	GetUsers(ctx context.Context, userIDs []int64) ([]dbmysql.UserReplica, error)
	// ActiveMembers returns the chat's members whose user replica is active.
	ActiveMembers(ctx context.Context, chatID int64) ([]int64, error)
}

type replicaRepo struct {
	db *gorm.DB
}

func NewReplicaRepository(db *gorm.DB) ReplicaRepository {
	return &replicaRepo{db: db}
}

func (r *replicaRepo) UpsertUser(ctx context.Context, user *dbmysql.UserReplica) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(user).Error
	if err != nil {
		return fmt.Errorf("failed to upsert user %d: %w", user.UserID, err)
	}
	return nil
}

func (r *replicaRepo) DeactivateUser(ctx context.Context, userID int64) error {
	err := r.db.WithContext(ctx).
		Model(&dbmysql.UserReplica{}).
		Where("user_id = ?", userID).
		Update("is_active", false).Error
	if err != nil {
		return fmt.Errorf("failed to deactivate user %d: %w", userID, err)
	}
	return nil
}

func (r *replicaRepo) UpsertChat(ctx context.Context, chat *dbmysql.ChatReplica, members []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Members").Clauses(clause.OnConflict{UpdateAll: true}).Create(chat).Error; err != nil {
			return fmt.Errorf("failed to upsert chat %d: %w", chat.ChatID, err)
		}
		if err := tx.Where("chat_id = ?", chat.ChatID).Delete(&dbmysql.ChatReplicaMember{}).Error; err != nil {
			return fmt.Errorf("failed to clear members of chat %d: %w", chat.ChatID, err)
		}
		if len(members) == 0 {
			return nil
		}

		rows := make([]dbmysql.ChatReplicaMember, 0, len(members))
		seen := make(map[int64]struct{}, len(members))
		for _, id := range members {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			rows = append(rows, dbmysql.ChatReplicaMember{ChatID: chat.ChatID, UserID: id})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to insert members of chat %d: %w", chat.ChatID, err)
		}
		chat.Members = rows
		return nil
	})
}

func (r *replicaRepo) DeleteChat(ctx context.Context, chatID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("chat_id = ?", chatID).Delete(&dbmysql.ChatReplicaMember{}).Error; err != nil {
			return fmt.Errorf("failed to delete members of chat %d: %w", chatID, err)
		}
		if err := tx.Where("chat_id = ?", chatID).Delete(&dbmysql.ChatReplica{}).Error; err != nil {
			return fmt.Errorf("failed to delete chat %d: %w", chatID, err)
		}
		return nil
	})
}

func (r *replicaRepo) GetChat(ctx context.Context, chatID int64) (*dbmysql.ChatReplica, error) {
	var chat dbmysql.ChatReplica
	err := r.db.WithContext(ctx).Preload("Members").Where("chat_id = ?", chatID).First(&chat).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrChatNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get chat %d: %w", chatID, err)
	}
	return &chat, nil
}

func (r *replicaRepo) GetUser(ctx context.Context, userID int64) (*dbmysql.UserReplica, error) {
	var user dbmysql.UserReplica
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", userID, err)
	}
	return &user, nil
}

func (r *replicaRepo) GetUsers(ctx context.Context, userIDs []int64) ([]dbmysql.UserReplica, error) {
	var users []dbmysql.UserReplica
	if len(userIDs) == 0 {
		return users, nil
	}
	if err := r.db.WithContext(ctx).Where("user_id IN ?", userIDs).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to get %d users: %w", len(userIDs), err)
	}
	return users, nil
}

func (r *replicaRepo) ActiveMembers(ctx context.Context, chatID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Table("chat_replica_members AS m").
		Joins("JOIN user_replicas AS u ON u.user_id = m.user_id").
		Where("m.chat_id = ? AND u.is_active = ?", chatID, true).
		Order("m.user_id").
		Pluck("m.user_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get active members of chat %d: %w", chatID, err)
	}
	return ids, nil
}
