package notification

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store is the persistence contract of the dispatch orchestrator and the
// record CRUD operations.
type Store interface {
	Insert(ctx context.Context, n *Notification) error
	List(ctx context.Context) ([]Notification, error)
	FindByID(ctx context.Context, id string) (*Notification, error)
	Replace(ctx context.Context, id string, n *Notification) (*Notification, error)
	Delete(ctx context.Context, id string) (*Notification, error)
}

type Repository struct {
	collection *mongo.Collection
}

func NewStore(db *mongo.Database) Store {
	return &Repository{collection: db.Collection("notifications")}
}

func (r *Repository) Insert(ctx context.Context, n *Notification) error {
	now := time.Now()
	n.CreatedAt = now
	n.UpdatedAt = now
	res, err := r.collection.InsertOne(ctx, n)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		n.ID = oid
	}
	return nil
}

// List returns all records, newest first.
func (r *Repository) List(ctx context.Context) ([]Notification, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	notifications := []Notification{}
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *Repository) FindByID(ctx context.Context, id string) (*Notification, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var n Notification
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&n)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

// Replace overwrites the domain fields of a record, keeping its creation
// timestamp, and returns the updated document.
func (r *Repository) Replace(ctx context.Context, id string, n *Notification) (*Notification, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	update := bson.M{"$set": bson.M{
		"type":       n.Type,
		"content":    n.Content,
		"recipients": n.Recipients,
		"subject":    n.Subject,
		"title":      n.Title,
		"status":     n.Status,
		"updatedAt":  time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated Notification
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &updated, nil
}

func (r *Repository) Delete(ctx context.Context, id string) (*Notification, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var deleted Notification
	err = r.collection.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&deleted)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &deleted, nil
}
