package dao

import (
	"context"
	"time"

	"github.com/tonniewhood/stegostrips/internal/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SolveRecord is one archived planner run.
type SolveRecord struct {
	FEN         string             `bson:"fen" json:"fen"`
	Endgame     string             `bson:"endgame,omitempty" json:"endgame,omitempty"`
	Succeeded   bool               `bson:"succeeded" json:"succeeded"`
	Plan        []string           `bson:"plan" json:"plan"`
	Diagnostics []string           `bson:"diagnostics,omitempty" json:"diagnostics,omitempty"`
	SolvedAt    primitive.DateTime `bson:"solved_at" json:"solved_at"`
}

type PlanRepository interface {
	InsertRecord(rec SolveRecord) error

	GetRecentRecords(limit int64) ([]SolveRecord, error)

	GetRecordsForFEN(fen string) ([]SolveRecord, error)
}

type planRepository struct {
	dbClient *db.PlanDbClient
}

func NewPlanRepository(dbClient *db.PlanDbClient) PlanRepository {
	return &planRepository{dbClient}
}

func (p *planRepository) InsertRecord(rec SolveRecord) error {
	ctx, cancel := context.WithTimeout(context.TODO(), time.Second)
	defer cancel()

	_, err := p.dbClient.PlanCollection.InsertOne(ctx, rec)
	return err
}

func (p *planRepository) GetRecentRecords(limit int64) ([]SolveRecord, error) {
	ctx, cancel := context.WithTimeout(context.TODO(), time.Second)
	defer cancel()

	opts := options.Find()
	opts.SetSort(bson.D{{Key: "solved_at", Value: -1}})
	opts.SetLimit(limit)

	cur, err := p.dbClient.PlanCollection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}

	var records []SolveRecord
	if err = cur.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (p *planRepository) GetRecordsForFEN(fen string) ([]SolveRecord, error) {
	ctx, cancel := context.WithTimeout(context.TODO(), time.Second)
	defer cancel()

	filter := bson.D{{Key: "fen", Value: fen}}

	cur, err := p.dbClient.PlanCollection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	var records []SolveRecord
	if err = cur.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
