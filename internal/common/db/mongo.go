package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/ametova/valentine-api/internal/common/constants"
	"github.com/ametova/valentine-api/internal/common/logger"
)

func Connect(log *logger.Logger, uri string) *mongo.Client {
	opts := options.Client().
		ApplyURI(uri).
		SetAppName("valentine-api").
		SetConnectTimeout(constants.MongoConnectTimeout)

	for attempt := 1; attempt <= constants.MongoConnectAttempts; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), constants.MongoConnectTimeout)
		client, err := mongo.Connect(ctx, opts)
		if err == nil {
			err = client.Ping(ctx, readpref.Primary())
		}
		cancel()

		if err == nil {
			log.Infof("mongodb connection established")
			return client
		}

		log.Warnf("failed to connect to mongodb (attempt %d/%d): %v", attempt, constants.MongoConnectAttempts, err)

		if attempt == constants.MongoConnectAttempts {
			log.Fatalf("failed to connect to mongodb after %d attempts: %v", constants.MongoConnectAttempts, err)
			return nil
		}

		time.Sleep(constants.MongoConnectDelay)
	}

	log.Fatalf("failed to connect to mongodb after %d attempts", constants.MongoConnectAttempts)
	return nil
}

func Disconnect(ctx context.Context, client *mongo.Client, log *logger.Logger) error {
	if client == nil {
		return nil
	}
	if err := client.Disconnect(ctx); err != nil {
		log.Errorf("failed to disconnect from mongodb: %v", err)
		return err
	}
	log.Infof("mongodb connection closed")
	return nil
}
