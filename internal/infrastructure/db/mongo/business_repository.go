package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shoply/storefront-api/internal/core/domain"
)

const businessesCollection = "businesses"

type BusinessRepository struct {
	coll *mongo.Collection
}

func NewBusinessRepository(db *mongo.Database) *BusinessRepository {
	return &BusinessRepository{coll: db.Collection(businessesCollection)}
}

type businessDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID     primitive.ObjectID `bson:"owner_id"`
	Name        string             `bson:"business_name"`
	City        string             `bson:"city"`
	Region      string             `bson:"region"`
	Description string             `bson:"business_description,omitempty"`
	Logo        string             `bson:"logo"`
	CreatedAt   int64              `bson:"created_at"`
}

func (d businessDoc) toDomain() *domain.Business {
	return &domain.Business{
		ID:          d.ID.Hex(),
		OwnerID:     d.OwnerID.Hex(),
		Name:        d.Name,
		City:        d.City,
		Region:      d.Region,
		Description: d.Description,
		Logo:        d.Logo,
		CreatedAt:   unixToTime(d.CreatedAt),
	}
}

func (r *BusinessRepository) Create(ctx context.Context, b *domain.Business) (*domain.Business, error) {
	ownerID, err := primitive.ObjectIDFromHex(b.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("invalid owner id: %w", err)
	}

	doc := businessDoc{
		OwnerID:     ownerID,
		Name:        b.Name,
		City:        b.City,
		Region:      b.Region,
		Description: b.Description,
		Logo:        b.Logo,
		CreatedAt:   b.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert business: %w", err)
	}

	created := *b
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *BusinessRepository) FindByID(ctx context.Context, id string) (*domain.Business, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBusinessNotFound
	}

	var doc businessDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBusinessNotFound
		}
		return nil, fmt.Errorf("find business: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *BusinessRepository) FindByOwner(ctx context.Context, ownerID string) (*domain.Business, error) {
	oid, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, domain.ErrBusinessNotFound
	}

	var doc businessDoc
	if err := r.coll.FindOne(ctx, bson.M{"owner_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBusinessNotFound
		}
		return nil, fmt.Errorf("find business by owner: %w", err)
	}
	return doc.toDomain(), nil
}

// Update writes the mutable profile fields only; owner_id is never part of
// the update document.
func (r *BusinessRepository) Update(ctx context.Context, b *domain.Business) error {
	oid, err := primitive.ObjectIDFromHex(b.ID)
	if err != nil {
		return domain.ErrBusinessNotFound
	}

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"business_name":        b.Name,
		"city":                 b.City,
		"region":               b.Region,
		"business_description": b.Description,
	}})
	if err != nil {
		return fmt.Errorf("update business: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrBusinessNotFound
	}
	return nil
}

func (r *BusinessRepository) UpdateLogo(ctx context.Context, id, logo string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrBusinessNotFound
	}

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"logo": logo}})
	if err != nil {
		return fmt.Errorf("update logo: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrBusinessNotFound
	}
	return nil
}

// EnsureIndexes creates the owner lookup index.
func (r *BusinessRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner_id", Value: 1}},
	})
	return err
}
