// Copyright 2025 StockWise Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stockwise/registry-service/internal/db"
	"github.com/stockwise/registry-service/internal/logging"
	"github.com/stockwise/registry-service/internal/monitoring"
	"github.com/stockwise/registry-service/internal/tracing"
	"github.com/stockwise/registry-service/internal/types"
)

const (
	businessesCollection   = "Businesses"
	usersCollection        = "Users"
	branchesCollection     = "Branches"
	transactionsCollection = "Transactions"
)

var _ StorageInterface = (*Storage)(nil)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func (s *Storage) collection(name string) *mongo.Collection {
	return s.db.Database().Collection(name)
}

// EnsureIndexes creates the unique indexes the workflows rely on. The
// pre-insert uniqueness checks in the services are advisory only; these
// indexes are authoritative under concurrent registration.
func (s *Storage) EnsureIndexes(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "storage.EnsureIndexes")
	defer span.End()

	// Collation strength 2 makes the business name index case-insensitive.
	nameCI := options.Index().
		SetUnique(true).
		SetCollation(&options.Collation{Locale: "en", Strength: 2})

	_, err := s.collection(businessesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: nameCI,
	})
	if err != nil {
		return fmt.Errorf("failed to create business name index: %w", err)
	}

	_, err = s.collection(usersCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "phone", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}

	_, err = s.collection(branchesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create branch name index: %w", err)
	}

	return nil
}

func (s *Storage) GetBusinessByName(ctx context.Context, name string) (*types.Business, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetBusinessByName")
	defer span.End()

	filter := bson.M{"name": bson.M{"$regex": fmt.Sprintf("^%s$", escapeRegex(name)), "$options": "i"}}

	var b types.Business
	err := s.collection(businessesCollection).FindOne(ctx, filter).Decode(&b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get business: %w", err)
	}

	return &b, nil
}

func (s *Storage) InsertBusiness(ctx context.Context, b *types.Business) (string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.InsertBusiness")
	defer span.End()

	res, err := s.collection(businessesCollection).InsertOne(ctx, b)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return "", ErrDuplicateKey
		}
		return "", fmt.Errorf("failed to insert business: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}

	return id.Hex(), nil
}

func (s *Storage) GetUserByID(ctx context.Context, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByID")
	defer span.End()

	var u types.User
	err := s.collection(usersCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &u, nil
}

func (s *Storage) GetUserByEmailOrPhone(ctx context.Context, email, phone string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByEmailOrPhone")
	defer span.End()

	filter := bson.M{"$or": bson.A{bson.M{"email": email}, bson.M{"phone": phone}}}

	var u types.User
	err := s.collection(usersCollection).FindOne(ctx, filter).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &u, nil
}

func (s *Storage) InsertUser(ctx context.Context, u *types.User) error {
	ctx, span := s.tracer.Start(ctx, "storage.InsertUser")
	defer span.End()

	if _, err := s.collection(usersCollection).InsertOne(ctx, u); err != nil {
		if IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

func (s *Storage) CreateBranch(ctx context.Context, b *types.Branch) (string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateBranch")
	defer span.End()

	res, err := s.collection(branchesCollection).InsertOne(ctx, b)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return "", ErrDuplicateKey
		}
		return "", fmt.Errorf("failed to insert branch: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}

	return id.Hex(), nil
}

func (s *Storage) GetBranchByName(ctx context.Context, name string) (*types.Branch, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetBranchByName")
	defer span.End()

	var b types.Branch
	err := s.collection(branchesCollection).FindOne(ctx, bson.M{"name": name}).Decode(&b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get branch: %w", err)
	}

	return &b, nil
}

func (s *Storage) GetBranchByID(ctx context.Context, id string) (*types.Branch, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetBranchByID")
	defer span.End()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var b types.Branch
	err = s.collection(branchesCollection).FindOne(ctx, bson.M{"_id": oid}).Decode(&b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get branch: %w", err)
	}

	return &b, nil
}

func (s *Storage) ListBranches(ctx context.Context) ([]*types.Branch, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListBranches")
	defer span.End()

	cursor, err := s.collection(branchesCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	defer cursor.Close(ctx)

	var branches []*types.Branch
	if err := cursor.All(ctx, &branches); err != nil {
		return nil, fmt.Errorf("failed to decode branches: %w", err)
	}

	return branches, nil
}

func (s *Storage) UpdateBranch(ctx context.Context, id string, fields map[string]interface{}) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateBranch")
	defer span.End()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	res, err := s.collection(branchesCollection).UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		if IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to update branch: %w", err)
	}

	if res.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) DeleteBranch(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteBranch")
	defer span.End()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	res, err := s.collection(branchesCollection).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete branch: %w", err)
	}

	if res.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) InsertTransaction(ctx context.Context, t *types.Transaction) (string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.InsertTransaction")
	defer span.End()

	res, err := s.collection(transactionsCollection).InsertOne(ctx, t)
	if err != nil {
		return "", fmt.Errorf("failed to insert transaction: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}

	return id.Hex(), nil
}

func (s *Storage) ListTransactionsByBusinessID(ctx context.Context, businessID string) ([]*types.Transaction, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTransactionsByBusinessID")
	defer span.End()

	cursor, err := s.collection(transactionsCollection).Find(ctx, bson.M{"business_id": businessID})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer cursor.Close(ctx)

	var transactions []*types.Transaction
	if err := cursor.All(ctx, &transactions); err != nil {
		return nil, fmt.Errorf("failed to decode transactions: %w", err)
	}

	return transactions, nil
}

// escapeRegex quotes regex metacharacters so a business name is matched
// literally in the case-insensitive lookup.
func escapeRegex(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '.', '+', '*', '?', '(', ')', '[', ']', '{', '}', '^', '$', '|', '\\':
			out = append(out, '\\')
		}
		out = append(out, c)
	}
	return string(out)
}
