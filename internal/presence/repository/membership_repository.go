package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the part of *pgxpool.Pool the repository uses.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// MembershipRepository is the presence service's replica of chat membership,
// fed from chat and user lifecycle events.
type MembershipRepository interface {
	ReplaceMembers(ctx context.Context, chatID int64, members []int64) error
	DeleteChat(ctx context.Context, chatID int64) error
	DeleteUser(ctx context.Context, userID int64) error
	// Relations returns every other user sharing at least one chat with userID.
	Relations(ctx context.Context, userID int64) ([]int64, error)
}

const (
	deleteChatMembersSQL = `DELETE FROM chat_members WHERE chat_id = $1`
	insertChatMembersSQL = `INSERT INTO chat_members (chat_id, user_id)
		SELECT $1, unnest($2::bigint[])
		ON CONFLICT (chat_id, user_id) DO NOTHING`
	deleteUserMembershipsSQL = `DELETE FROM chat_members WHERE user_id = $1`
	relationsSQL             = `SELECT DISTINCT user_id FROM chat_members
		WHERE chat_id IN (SELECT chat_id FROM chat_members WHERE user_id = $1)
		AND user_id <> $1
		ORDER BY user_id`
)

type membershipRepo struct {
	db DB
}

func NewMembershipRepository(db DB) MembershipRepository {
	return &membershipRepo{db: db}
}

func (r *membershipRepo) ReplaceMembers(ctx context.Context, chatID int64, members []int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}

	if _, err := tx.Exec(ctx, deleteChatMembersSQL, chatID); err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("failed to clear members of chat %d: %w", chatID, err)
	}
	if len(members) > 0 {
		if _, err := tx.Exec(ctx, insertChatMembersSQL, chatID, members); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("failed to insert members of chat %d: %w", chatID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit members of chat %d: %w", chatID, err)
	}
	return nil
}

func (r *membershipRepo) DeleteChat(ctx context.Context, chatID int64) error {
	if _, err := r.db.Exec(ctx, deleteChatMembersSQL, chatID); err != nil {
		return fmt.Errorf("failed to delete chat %d: %w", chatID, err)
	}
	return nil
}

func (r *membershipRepo) DeleteUser(ctx context.Context, userID int64) error {
	if _, err := r.db.Exec(ctx, deleteUserMembershipsSQL, userID); err != nil {
		return fmt.Errorf("failed to delete memberships of user %d: %w", userID, err)
	}
	return nil
}

func (r *membershipRepo) Relations(ctx context.Context, userID int64) ([]int64, error) {
	rows, err := r.db.Query(ctx, relationsSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query relations of user %d: %w", userID, err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("failed to read relations of user %d: %w", userID, err)
	}
	return ids, nil
}
