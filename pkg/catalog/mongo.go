package catalog

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSource is a [Source] backed by a MongoDB collection of materials.
// It loads the full collection (sorted by name) on subscription and
// re-loads it whenever the collection's change stream reports an event.
//
// Change streams require a replica set; when watching fails the source
// degrades to the initial snapshot and logs a warning rather than erroring,
// since a stale catalogue is still usable.
type MongoSource struct {
	coll   *mongo.Collection
	logger *log.Logger
}

// MongoConfig holds connection settings for a catalogue collection.
type MongoConfig struct {
	URI        string
	Database   string
	Collection string
}

// NewMongoSource connects to the configured collection. The connection is
// verified with a ping before returning.
func NewMongoSource(ctx context.Context, cfg MongoConfig, logger *log.Logger) (*MongoSource, error) {
	if logger == nil {
		logger = log.Default()
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, err
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return &MongoSource{
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
		logger: logger,
	}, nil
}

// Subscribe implements [Source].
func (s *MongoSource) Subscribe(ctx context.Context, fn func([]Material)) (func(), error) {
	snapshot, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	fn(snapshot)

	watchCtx, cancel := context.WithCancel(ctx)
	go s.watch(watchCtx, fn)

	return cancel, nil
}

// load reads the full collection ordered by name.
func (s *MongoSource) load(ctx context.Context) ([]Material, error) {
	cur, err := s.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var materials []Material
	if err := cur.All(ctx, &materials); err != nil {
		return nil, err
	}
	return materials, nil
}

// watch follows the collection's change stream and pushes a fresh snapshot
// on every event. Individual change events are not applied incrementally;
// the collection is small and a full reload keeps ordering trivially
// correct.
func (s *MongoSource) watch(ctx context.Context, fn func([]Material)) {
	stream, err := s.coll.Watch(ctx, mongo.Pipeline{})
	if err != nil {
		s.logger.Warn("catalogue change stream unavailable; snapshot is static", "err", err)
		return
	}
	defer stream.Close(ctx)

	for stream.Next(ctx) {
		snapshot, err := s.load(ctx)
		if err != nil {
			s.logger.Warn("catalogue reload failed", "err", err)
			continue
		}
		s.logger.Debug("catalogue snapshot updated", "materials", len(snapshot))
		fn(snapshot)
	}
}

// Close disconnects the underlying client.
func (s *MongoSource) Close(ctx context.Context) error {
	return s.coll.Database().Client().Disconnect(ctx)
}
