package db

import (
	"context"
	"fmt"

	"github.com/tonniewhood/stegostrips/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PlanDbClient struct {
	client         *mongo.Client
	PlanCollection *mongo.Collection
}

func (r *PlanDbClient) Close() error {
	return r.client.Disconnect(context.TODO())
}

func NewDbClient(cfg *config.Configuration) (*PlanDbClient, error) {
	clientOpts := options.Client().ApplyURI(cfg.Database.Address)

	dbClient := &PlanDbClient{}

	client, err := mongo.Connect(context.TODO(), clientOpts)
	if err != nil {
		return nil, err
	}
	dbClient.client = client

	err = client.Ping(context.TODO(), nil)
	if err != nil {
		return nil, err
	}

	dbClient.PlanCollection = client.Database(cfg.Database.DatabaseName).Collection(cfg.Database.Collection)
	if dbClient.PlanCollection == nil {
		return nil, fmt.Errorf("can't resolve collection %s", cfg.Database.DatabaseName+"."+cfg.Database.Collection)
	}
	return dbClient, nil
}
