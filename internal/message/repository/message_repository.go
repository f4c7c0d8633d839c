package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gochat/internal/dbmongo"
)

var ErrMessageNotFound = errors.New("message not found")

// MessageRepository persists messages and their read tracking in MongoDB.
type MessageRepository interface {
	Insert(ctx context.Context, msg *dbmongo.Message) error
	Get(ctx context.Context, id primitive.ObjectID) (*dbmongo.Message, error)
	GetByChat(ctx context.Context, chatID int64) ([]*dbmongo.Message, error)
	UpdateContent(ctx context.Context, id primitive.ObjectID, content string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByChat(ctx context.Context, chatID int64) (int64, error)

	// AddReaction and RemoveReaction report whether the document changed.
	AddReaction(ctx context.Context, id primitive.ObjectID, label string, userID int64) (bool, error)
	RemoveReaction(ctx context.Context, id primitive.ObjectID, label string, userID int64) (bool, error)

	// AdvanceProgress moves the read pointer forward and returns the one it
	// replaced (NilObjectID when there was none). The pointer never moves back.
	AdvanceProgress(ctx context.Context, chatID, userID int64, lastRead primitive.ObjectID) (primitive.ObjectID, error)
	// FindReadRange lists messages in (after, upTo] not written by readerID.
	FindReadRange(ctx context.Context, chatID, readerID int64, after, upTo primitive.ObjectID) ([]*dbmongo.Message, error)
	UpsertReadStatuses(ctx context.Context, messageIDs []primitive.ObjectID, readerID int64, readAt time.Time) error
	// MarkRead flips is_read on the given messages and returns only those
	// that were unread before the call.
	MarkRead(ctx context.Context, ids []primitive.ObjectID) ([]*dbmongo.Message, error)
	ReadStatuses(ctx context.Context, messageID primitive.ObjectID) ([]dbmongo.ReadStatus, error)
}

type messageRepo struct {
	messages *mongo.Collection
	statuses *mongo.Collection
	progress *mongo.Collection
}

func NewMessageRepository(db *mongo.Database) MessageRepository {
	return &messageRepo{
		messages: db.Collection(dbmongo.MessagesCollection),
		statuses: db.Collection(dbmongo.ReadStatusCollection),
		progress: db.Collection(dbmongo.ReadProgressCollection),
	}
}

func reactionField(label string) string {
	return "metadata.reactions." + label
}

func (r *messageRepo) Insert(ctx context.Context, msg *dbmongo.Message) error {
	if msg.ID.IsZero() {
		msg.ID = primitive.NewObjectID()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}
	// $addToSet cannot create a field inside a null document
	if msg.Metadata.Reactions == nil {
		msg.Metadata.Reactions = map[string][]int64{}
	}
	if _, err := r.messages.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return nil
}

func (r *messageRepo) Get(ctx context.Context, id primitive.ObjectID) (*dbmongo.Message, error) {
	var msg dbmongo.Message
	err := r.messages.FindOne(ctx, bson.M{"_id": id}).Decode(&msg)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrMessageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get message %s: %w", id.Hex(), err)
	}
	return &msg, nil
}

func (r *messageRepo) find(ctx context.Context, filter bson.M) ([]*dbmongo.Message, error) {
	cursor, err := r.messages.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	messages := make([]*dbmongo.Message, 0)
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *messageRepo) GetByChat(ctx context.Context, chatID int64) ([]*dbmongo.Message, error) {
	messages, err := r.find(ctx, bson.M{"chat_id": chatID})
	if err != nil {
		return nil, fmt.Errorf("failed to list messages of chat %d: %w", chatID, err)
	}
	return messages, nil
}

func (r *messageRepo) UpdateContent(ctx context.Context, id primitive.ObjectID, content string) error {
	res, err := r.messages.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"content": content, "metadata.is_edited": true}},
	)
	if err != nil {
		return fmt.Errorf("failed to update message %s: %w", id.Hex(), err)
	}
	if res.MatchedCount == 0 {
		return ErrMessageNotFound
	}
	return nil
}

func (r *messageRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.messages.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete message %s: %w", id.Hex(), err)
	}
	if res.DeletedCount == 0 {
		return ErrMessageNotFound
	}
	if _, err := r.statuses.DeleteMany(ctx, bson.M{"message_id": id}); err != nil {
		return fmt.Errorf("failed to delete read statuses of %s: %w", id.Hex(), err)
	}
	return nil
}

func (r *messageRepo) DeleteByChat(ctx context.Context, chatID int64) (int64, error) {
	cursor, err := r.messages.Find(ctx, bson.M{"chat_id": chatID}, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return 0, fmt.Errorf("failed to list messages of chat %d: %w", chatID, err)
	}
	var ids []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cursor.All(ctx, &ids); err != nil {
		return 0, fmt.Errorf("failed to read message ids of chat %d: %w", chatID, err)
	}

	if len(ids) > 0 {
		objectIDs := make([]primitive.ObjectID, len(ids))
		for i, doc := range ids {
			objectIDs[i] = doc.ID
		}
		if _, err := r.statuses.DeleteMany(ctx, bson.M{"message_id": bson.M{"$in": objectIDs}}); err != nil {
			return 0, fmt.Errorf("failed to delete read statuses of chat %d: %w", chatID, err)
		}
	}

	res, err := r.messages.DeleteMany(ctx, bson.M{"chat_id": chatID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete messages of chat %d: %w", chatID, err)
	}
	if _, err := r.progress.DeleteMany(ctx, bson.M{"chat_id": chatID}); err != nil {
		return res.DeletedCount, fmt.Errorf("failed to delete read progress of chat %d: %w", chatID, err)
	}
	return res.DeletedCount, nil
}

func (r *messageRepo) AddReaction(ctx context.Context, id primitive.ObjectID, label string, userID int64) (bool, error) {
	res, err := r.messages.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$addToSet": bson.M{reactionField(label): userID}},
	)
	if err != nil {
		return false, fmt.Errorf("failed to add reaction to %s: %w", id.Hex(), err)
	}
	return res.ModifiedCount > 0, nil
}

func (r *messageRepo) RemoveReaction(ctx context.Context, id primitive.ObjectID, label string, userID int64) (bool, error) {
	field := reactionField(label)
	res, err := r.messages.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$pull": bson.M{field: userID}},
	)
	if err != nil {
		return false, fmt.Errorf("failed to remove reaction from %s: %w", id.Hex(), err)
	}
	if res.ModifiedCount == 0 {
		return false, nil
	}

	// drop labels nobody uses anymore; a failure only leaves an empty list behind
	_, _ = r.messages.UpdateOne(ctx,
		bson.M{"_id": id, field: bson.M{"$size": 0}},
		bson.M{"$unset": bson.M{field: ""}},
	)
	return true, nil
}

func (r *messageRepo) AdvanceProgress(ctx context.Context, chatID, userID int64, lastRead primitive.ObjectID) (primitive.ObjectID, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.Before)

	var previous dbmongo.ReadProgress
	err := r.progress.FindOneAndUpdate(ctx,
		bson.M{"chat_id": chatID, "user_id": userID},
		bson.M{
			"$max": bson.M{"last_read_message_id": lastRead},
			"$set": bson.M{"updated_at": time.Now().UTC()},
		},
		opts,
	).Decode(&previous)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return primitive.NilObjectID, nil
	}
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to advance read progress of user %d in chat %d: %w", userID, chatID, err)
	}
	return previous.LastReadMessageID, nil
}

func (r *messageRepo) FindReadRange(ctx context.Context, chatID, readerID int64, after, upTo primitive.ObjectID) ([]*dbmongo.Message, error) {
	idRange := bson.M{"$lte": upTo}
	if !after.IsZero() {
		idRange["$gt"] = after
	}
	messages, err := r.find(ctx, bson.M{
		"chat_id": chatID,
		"_id":     idRange,
		"user_id": bson.M{"$ne": readerID},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find read range in chat %d: %w", chatID, err)
	}
	return messages, nil
}

func (r *messageRepo) UpsertReadStatuses(ctx context.Context, messageIDs []primitive.ObjectID, readerID int64, readAt time.Time) error {
	if len(messageIDs) == 0 {
		return nil
	}

	models := make([]mongo.WriteModel, 0, len(messageIDs))
	for _, id := range messageIDs {
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"message_id": id, "read_by": readerID}).
			SetUpdate(bson.M{"$setOnInsert": bson.M{"read_at": readAt}}).
			SetUpsert(true))
	}
	if _, err := r.statuses.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false)); err != nil {
		return fmt.Errorf("failed to upsert %d read statuses: %w", len(models), err)
	}
	return nil
}

// MarkRead reads the unread subset of ids and flips it with one UpdateMany.
// Two concurrent calls over the same ids can both report a message as
// flipped; the flag itself is idempotent, so the cost is a repeated receipt.
func (r *messageRepo) MarkRead(ctx context.Context, ids []primitive.ObjectID) ([]*dbmongo.Message, error) {
	flipped := make([]*dbmongo.Message, 0, len(ids))
	if len(ids) == 0 {
		return flipped, nil
	}

	cursor, err := r.messages.Find(ctx,
		bson.M{"_id": bson.M{"$in": ids}, "is_read": false},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to find unread messages: %w", err)
	}
	if err := cursor.All(ctx, &flipped); err != nil {
		return nil, fmt.Errorf("failed to decode unread messages: %w", err)
	}
	if len(flipped) == 0 {
		return flipped, nil
	}

	unread := make([]primitive.ObjectID, len(flipped))
	for i, msg := range flipped {
		unread[i] = msg.ID
	}
	if _, err := r.messages.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": unread}, "is_read": false},
		bson.M{"$set": bson.M{"is_read": true}},
	); err != nil {
		return nil, fmt.Errorf("failed to mark %d messages read: %w", len(unread), err)
	}
	for _, msg := range flipped {
		msg.IsRead = true
	}
	return flipped, nil
}

func (r *messageRepo) ReadStatuses(ctx context.Context, messageID primitive.ObjectID) ([]dbmongo.ReadStatus, error) {
	cursor, err := r.statuses.Find(ctx,
		bson.M{"message_id": messageID},
		options.Find().SetSort(bson.D{{Key: "read_at", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list read statuses of %s: %w", messageID.Hex(), err)
	}
	statuses := make([]dbmongo.ReadStatus, 0)
	if err := cursor.All(ctx, &statuses); err != nil {
		return nil, fmt.Errorf("failed to decode read statuses of %s: %w", messageID.Hex(), err)
	}
	return statuses, nil
}
