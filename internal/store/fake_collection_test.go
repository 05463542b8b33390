package store

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// fakeCollection is a func-field test double for the [Collection] interface.
// Result values are built with the driver's NewSingleResultFromDocument and
// NewCursorFromDocuments constructors so Decode/All behave like the real thing.
type fakeCollection struct {
	insertOneFunc      func(ctx context.Context, document any) (*mongo.InsertOneResult, error)
	findOneFunc        func(ctx context.Context, filter any) *mongo.SingleResult
	findFunc           func(ctx context.Context, filter any) (*mongo.Cursor, error)
	countDocumentsFunc func(ctx context.Context, filter any) (int64, error)
}

func (f *fakeCollection) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	return f.insertOneFunc(ctx, document)
}

func (f *fakeCollection) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult {
	return f.findOneFunc(ctx, filter)
}

func (f *fakeCollection) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error) {
	return f.findFunc(ctx, filter)
}

func (f *fakeCollection) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	return f.countDocumentsFunc(ctx, filter)
}
