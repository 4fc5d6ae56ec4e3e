package db

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	Client   *mongo.Client
	Database *mongo.Database
)

// InitMongo connects to the document store and pings it. The client and
// database handles are package-level, mirroring how the rest of the app
// resolves its dependencies at startup.
func InitMongo() error {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "aeromart"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var err error
	for i := 0; i < 10; i++ {
		Client, err = mongo.Connect(ctx, options.Client().ApplyURI(uri))
		if err == nil {
			if err = Client.Ping(ctx, readpref.Primary()); err == nil {
				Database = Client.Database(dbName)
				return nil
			}
		}
		time.Sleep(500 * time.Millisecond)
	}
	return fmt.Errorf("failed to connect to MongoDB at %s: %w", uri, err)
}

// CloseMongo disconnects the shared client.
func CloseMongo(ctx context.Context) error {
	if Client == nil {
		return nil
	}
	return Client.Disconnect(ctx)
}
