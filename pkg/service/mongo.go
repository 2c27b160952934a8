package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ansys/ansys-tools-visualization-interface/pkg/errors"
)

const scenesCollection = "scenes"

// MongoStore persists scene documents in MongoDB. Used by multi-replica
// deployments where the memory store would fragment state.
type MongoStore struct {
	client *mongo.Client
	col    *mongo.Collection
}

// NewMongoStore connects to MongoDB and verifies the connection.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "failed to connect to mongodb")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "mongodb ping failed")
	}
	return &MongoStore{
		client: client,
		col:    client.Database(database).Collection(scenesCollection),
	}, nil
}

// Put stores or replaces a scene document.
func (s *MongoStore) Put(ctx context.Context, doc SceneDoc) error {
	_, err := s.col.ReplaceOne(ctx,
		bson.M{"_id": doc.ID}, doc,
		options.Replace().SetUpsert(true))
	if err != nil {
		return errors.Wrap(errors.ErrCodeNetwork, err, "failed to store scene %s", doc.ID)
	}
	return nil
}

// Get retrieves a scene document by ID.
func (s *MongoStore) Get(ctx context.Context, id string) (SceneDoc, error) {
	var doc SceneDoc
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return SceneDoc{}, errors.New(errors.ErrCodeSceneNotFound, "scene %q not found", id)
	}
	if err != nil {
		return SceneDoc{}, errors.Wrap(errors.ErrCodeNetwork, err, "failed to load scene %s", id)
	}
	return doc, nil
}

// Delete removes a scene document.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(errors.ErrCodeNetwork, err, "failed to delete scene %s", id)
	}
	if res.DeletedCount == 0 {
		return errors.New(errors.ErrCodeSceneNotFound, "scene %q not found", id)
	}
	return nil
}

// List returns all scene documents without their Data payloads.
func (s *MongoStore) List(ctx context.Context) ([]SceneDoc, error) {
	cur, err := s.col.Find(ctx, bson.M{},
		options.Find().
			SetProjection(bson.M{"data": 0}).
			SetSort(bson.M{"_id": 1}))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "failed to list scenes")
	}
	var docs []SceneDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "failed to decode scenes")
	}
	return docs, nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
