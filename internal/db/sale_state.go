package db

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tokenforge-io/presale-ledger/internal/db/model"
)

func (db *Database) UpsertSaleState(ctx context.Context, totalCurrentTokens string) error {
	filter := bson.M{"_id": model.SaleStateId}
	update := bson.M{
		"$set": bson.M{
			"total_current_tokens": totalCurrentTokens,
			"last_updated":         time.Now().Unix(),
		},
	}
	opts := options.Update().SetUpsert(true)

	_, err := db.collection(model.SaleStateCollection).UpdateOne(ctx, filter, update, opts)
	return err
}

func (db *Database) GetSaleState(ctx context.Context) (*model.SaleStateDocument, error) {
	filter := bson.M{"_id": model.SaleStateId}

	var doc model.SaleStateDocument
	err := db.collection(model.SaleStateCollection).FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     model.SaleStateId,
				Message: "sale state not initialized",
			}
		}
		return nil, err
	}

	return &doc, nil
}
