package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tokenforge-io/presale-ledger/internal/db/model"
)

// UpsertDeposit writes the full row; ledger rows are never deleted, only
// overwritten with their latest committed values.
func (db *Database) UpsertDeposit(ctx context.Context, doc *model.DepositDocument) error {
	filter := bson.M{"_id": doc.Id}
	update := bson.M{"$set": doc}
	opts := options.Update().SetUpsert(true)

	_, err := db.collection(model.DepositCollection).UpdateOne(ctx, filter, update, opts)
	return err
}

func (db *Database) GetDeposit(ctx context.Context, account, asset string) (*model.DepositDocument, error) {
	filter := bson.M{"_id": model.DepositId(account, asset)}

	var doc model.DepositDocument
	err := db.collection(model.DepositCollection).FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     model.DepositId(account, asset),
				Message: "deposit not found",
			}
		}
		return nil, err
	}

	return &doc, nil
}

// GetAllDeposits streams every ledger row; used to rebuild the in-memory
// book at startup.
func (db *Database) GetAllDeposits(ctx context.Context) ([]model.DepositDocument, error) {
	cursor, err := db.collection(model.DepositCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var deposits []model.DepositDocument
	if err = cursor.All(ctx, &deposits); err != nil {
		return nil, err
	}

	return deposits, nil
}
