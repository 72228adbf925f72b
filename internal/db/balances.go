package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tokenforge-io/presale-ledger/internal/db/model"
)

func (db *Database) GetBalance(ctx context.Context, account string) (*model.BalanceDocument, error) {
	filter := bson.M{"_id": account}

	var doc model.BalanceDocument
	err := db.collection(model.BalanceCollection).FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     account,
				Message: "no issued balance for account",
			}
		}
		return nil, err
	}

	return &doc, nil
}

func (db *Database) SetBalance(ctx context.Context, account, balance string) error {
	filter := bson.M{"_id": account}
	update := bson.M{"$set": bson.M{"balance": balance}}
	opts := options.Update().SetUpsert(true)

	_, err := db.collection(model.BalanceCollection).UpdateOne(ctx, filter, update, opts)
	return err
}
