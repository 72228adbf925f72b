package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tokenforge-io/presale-ledger/internal/db/model"
)

func (db *Database) SaveAsset(ctx context.Context, doc *model.AssetDocument) error {
	_, err := db.collection(model.AssetCollection).InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return &DuplicateKeyError{
				Key:     doc.Id,
				Message: "asset already whitelisted",
			}
		}
		return err
	}
	return nil
}

func (db *Database) GetAsset(ctx context.Context, id string) (*model.AssetDocument, error) {
	filter := bson.M{"_id": id}

	var doc model.AssetDocument
	err := db.collection(model.AssetCollection).FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     id,
				Message: "asset not whitelisted",
			}
		}
		return nil, err
	}

	return &doc, nil
}

func (db *Database) GetAllAssets(ctx context.Context) ([]model.AssetDocument, error) {
	cursor, err := db.collection(model.AssetCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var assets []model.AssetDocument
	if err = cursor.All(ctx, &assets); err != nil {
		return nil, err
	}

	return assets, nil
}

func (db *Database) MarkAssetStrategyApproved(ctx context.Context, id string) error {
	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{"strategy_approved": true}}

	res, err := db.collection(model.AssetCollection).UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return &NotFoundError{
			Key:     id,
			Message: "asset not whitelisted",
		}
	}
	return nil
}
