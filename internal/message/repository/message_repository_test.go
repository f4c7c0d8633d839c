package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"gochat/internal/dbmongo"
)

const messagesNS = "gochat.messages"

func messageDoc(id primitive.ObjectID, chatID, userID int64, content string) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "chat_id", Value: chatID},
		{Key: "user_id", Value: userID},
		{Key: "content", Value: content},
		{Key: "is_read", Value: false},
		{Key: "created_at", Value: id.Timestamp()},
		{Key: "metadata", Value: bson.D{{Key: "reactions", Value: bson.D{}}}},
	}
}

func updateResult(matched, modified int) bson.D {
	return mtest.CreateSuccessResponse(
		bson.E{Key: "n", Value: matched},
		bson.E{Key: "nModified", Value: modified},
	)
}

func TestMessageRepository_InsertAndGet(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("insert assigns id and reactions", func(mt *mtest.T) {
		repo := NewMessageRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		msg := &dbmongo.Message{ChatID: 42, UserID: 1, Content: "hi"}
		require.NoError(mt, repo.Insert(context.Background(), msg))
		assert.False(mt, msg.ID.IsZero())
		assert.NotNil(mt, msg.Metadata.Reactions)
		assert.WithinDuration(mt, time.Now(), msg.CreatedAt, time.Second)
	})

	mt.Run("insert failure", func(mt *mtest.T) {
		repo := NewMessageRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key"}))

		err := repo.Insert(context.Background(), &dbmongo.Message{ChatID: 42, UserID: 1, Content: "hi"})
		assert.Error(mt, err)
	})

	mt.Run("get", func(mt *mtest.T) {
		repo := NewMessageRepository(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, messagesNS, mtest.FirstBatch, messageDoc(id, 42, 1, "hi")))

		msg, err := repo.Get(context.Background(), id)
		require.NoError(mt, err)
		assert.Equal(mt, id, msg.ID)
		assert.Equal(mt, int64(42), msg.ChatID)
		assert.Equal(mt, "hi", msg.Content)
	})

	mt.Run("get missing", func(mt *mtest.T) {
		repo := NewMessageRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, messagesNS, mtest.FirstBatch))

		_, err := repo.Get(context.Background(), primitive.NewObjectID())
		assert.ErrorIs(mt, err, ErrMessageNotFound)
	})
}

func TestMessageRepository_GetByChat(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("ascending", func(mt *mtest.T) {
		repo := NewMessageRepository(mt.DB)
		first, second := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, messagesNS, mtest.FirstBatch,
			messageDoc(first, 42, 1, "one"),
			messageDoc(second, 42, 2, "two"),
		))

		messages, err := repo.GetByChat(context.Background(), 42)
		require.NoError(mt, err)
		require.Len(mt, messages, 2)
		assert.Equal(mt, "one", messages[0].Content)
		assert.Equal(mt, "two", messages[1].Content)
	})

	mt.Run("empty chat", func(mt *mtest.T) {
		repo := NewMessageRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, messagesNS, mtest.FirstBatch))

		messages, err := repo.GetByChat(context.Background(), 42)
		require.NoError(mt, err)
		assert.NotNil(mt, messages)
		assert.Empty(mt, messages)
	})
}

func TestMessageRepository_UpdateAndDelete(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("update", func(mt *mtest.T) {
		repo := NewMessageRepository(mt.DB)
		mt.AddMockResponses(updateResult(1, 1))
		assert.NoError(mt, repo.UpdateContent(context.Background(), primitive.NewObjectID(), "edited"))
	})

	mt.Run("update missing", func(mt *mtest.T) {
		repo := NewMessageRepository(mt.DB)
		mt.AddMockResponses(updateResult(0, 0))
		assert.ErrorIs(mt, repo.UpdateContent(context.Background(), primitive.NewObjectID(), "edited"), ErrMessageNotFound)
	})

	mt.Run("delete removes read statuses", func(mt *mtest.T) {
		repo := NewMessageRepository(mt.DB)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 2}),
		)
		assert.NoError(mt, repo.Delete(context.Background(), primitive.NewObjectID()))
	})

	mt.Run("delete missing", func(mt *mtest.T) {
		repo := NewMessageRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))
		assert.ErrorIs(mt, repo.Delete(context.Background(), primitive.NewObjectID()), ErrMessageNotFound)
	})

	mt.Run("delete by chat", func(mt *mtest.T) {
		repo := NewMessageRepository(mt.DB)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, messagesNS, mtest.FirstBatch,
				bson.D{{Key: "_id", Value: primitive.NewObjectID()}},
				bson.D{{Key: "_id", Value: primitive.NewObjectID()}},
			),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 3}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 2}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
		)

		deleted, err := repo.DeleteByChat(context.Background(), 42)
		require.NoError(mt, err)
		assert.Equal(mt, int64(2), deleted)
	})
}

func TestMessageRepository_Reactions(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("add then add again", func(mt *mtest.T) {
		repo := NewMessageRepository(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(updateResult(1, 1), updateResult(1, 0))

		added, err := repo.AddReaction(context.Background(), id, "like", 2)
		require.NoError(mt, err)
		assert.True(mt, added)

		added, err = repo.AddReaction(context.Background(), id, "like", 2)
		require.NoError(mt, err)
		assert.False(mt, added, "user already reacted")
	})

	mt.Run("remove", func(mt *mtest.T) {
		repo := NewMessageRepository(mt.DB)
		id := primitive.NewObjectID()
		// pull, then cleanup of the emptied label, then a pull that changes nothing
		mt.AddMockResponses(updateResult(1, 1), updateResult(1, 1), updateResult(1, 0))

		removed, err := repo.RemoveReaction(context.Background(), id, "like", 2)
		require.NoError(mt, err)
		assert.True(mt, removed)

		removed, err = repo.RemoveReaction(context.Background(), id, "like", 2)
		require.NoError(mt, err)
		assert.False(mt, removed)
	})
}

func TestMessageRepository_AdvanceProgress(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("first read", func(mt *mtest.T) {
		repo := NewMessageRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		prev, err := repo.AdvanceProgress(context.Background(), 42, 2, primitive.NewObjectID())
		require.NoError(mt, err)
		assert.True(mt, prev.IsZero())
	})

	mt.Run("returns replaced pointer", func(mt *mtest.T) {
		repo := NewMessageRepository(mt.DB)
		old := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "chat_id", Value: int64(42)},
			{Key: "user_id", Value: int64(2)},
			{Key: "last_read_message_id", Value: old},
		}}))

		prev, err := repo.AdvanceProgress(context.Background(), 42, 2, primitive.NewObjectID())
		require.NoError(mt, err)
		assert.Equal(mt, old, prev)
	})
}

func TestMessageRepository_MarkRead(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("collects only flipped", func(mt *mtest.T) {
		repo := NewMessageRepository(mt.DB)
		unread, alreadyRead := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, messagesNS, mtest.FirstBatch, messageDoc(unread, 42, 1, "hi")),
			updateResult(1, 1),
		)

		flipped, err := repo.MarkRead(context.Background(), []primitive.ObjectID{unread, alreadyRead})
		require.NoError(mt, err)
		require.Len(mt, flipped, 1)
		assert.Equal(mt, unread, flipped[0].ID)
		assert.Equal(mt, int64(1), flipped[0].UserID)
		assert.True(mt, flipped[0].IsRead)

		// one find and one update, whatever the number of ids
		started := mt.GetAllStartedEvents()
		require.Len(mt, started, 2)
		assert.Equal(mt, "find", started[0].CommandName)
		assert.Equal(mt, "update", started[1].CommandName)
	})

	mt.Run("nothing unread skips the update", func(mt *mtest.T) {
		repo := NewMessageRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, messagesNS, mtest.FirstBatch))

		flipped, err := repo.MarkRead(context.Background(), []primitive.ObjectID{primitive.NewObjectID()})
		require.NoError(mt, err)
		assert.Empty(mt, flipped)
		assert.Len(mt, mt.GetAllStartedEvents(), 1)
	})

	mt.Run("no ids means no round trip", func(mt *mtest.T) {
		repo := NewMessageRepository(mt.DB)

		flipped, err := repo.MarkRead(context.Background(), nil)
		require.NoError(mt, err)
		assert.Empty(mt, flipped)
		assert.Empty(mt, mt.GetAllStartedEvents())
	})

	mt.Run("read statuses bulk upsert", func(mt *mtest.T) {
		repo := NewMessageRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 2},
			bson.E{Key: "nModified", Value: 0},
		))

		err := repo.UpsertReadStatuses(context.Background(),
			[]primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID()}, 2, time.Now())
		assert.NoError(mt, err)
		// nothing to write means no round trip
		assert.NoError(mt, repo.UpsertReadStatuses(context.Background(), nil, 2, time.Now()))
	})

	mt.Run("read range", func(mt *mtest.T) {
		repo := NewMessageRepository(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, messagesNS, mtest.FirstBatch, messageDoc(id, 42, 1, "hi")))

		messages, err := repo.FindReadRange(context.Background(), 42, 2, primitive.NilObjectID, id)
		require.NoError(mt, err)
		require.Len(mt, messages, 1)
		assert.Equal(mt, id, messages[0].ID)
	})

	mt.Run("read statuses of message", func(mt *mtest.T) {
		repo := NewMessageRepository(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "gochat.read_statuses", mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "message_id", Value: id},
				{Key: "read_by", Value: int64(2)},
				{Key: "read_at", Value: time.Now()},
			},
		))

		statuses, err := repo.ReadStatuses(context.Background(), id)
		require.NoError(mt, err)
		require.Len(mt, statuses, 1)
		assert.Equal(mt, int64(2), statuses[0].ReadBy)
	})
}
