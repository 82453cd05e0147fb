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

const productsCollection = "products"

type ProductRepository struct {
	coll *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{coll: db.Collection(productsCollection)}
}

type productDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	BusinessID      primitive.ObjectID `bson:"business_id"`
	Name            string             `bson:"name"`
	Category        string             `bson:"category"`
	OriginalPrice   float64            `bson:"original_price"`
	NewPrice        float64            `bson:"new_price"`
	PercentDiscount float64            `bson:"percentage_discount"`
	OfferExpiresAt  int64              `bson:"offer_expiration_date,omitempty"`
	Image           string             `bson:"product_image"`
	PublishedAt     int64              `bson:"date_published"`
}

func (d productDoc) toDomain() *domain.Product {
	return &domain.Product{
		ID:              d.ID.Hex(),
		BusinessID:      d.BusinessID.Hex(),
		Name:            d.Name,
		Category:        d.Category,
		OriginalPrice:   d.OriginalPrice,
		NewPrice:        d.NewPrice,
		PercentDiscount: d.PercentDiscount,
		OfferExpiresAt:  unixToTime(d.OfferExpiresAt),
		Image:           d.Image,
		PublishedAt:     unixToTime(d.PublishedAt),
	}
}

func fromDomainProduct(p *domain.Product) (productDoc, error) {
	businessID, err := primitive.ObjectIDFromHex(p.BusinessID)
	if err != nil {
		return productDoc{}, fmt.Errorf("invalid business id: %w", err)
	}
	doc := productDoc{
		BusinessID:      businessID,
		Name:            p.Name,
		Category:        p.Category,
		OriginalPrice:   p.OriginalPrice,
		NewPrice:        p.NewPrice,
		PercentDiscount: p.PercentDiscount,
		Image:           p.Image,
		PublishedAt:     p.PublishedAt.Unix(),
	}
	if !p.OfferExpiresAt.IsZero() {
		doc.OfferExpiresAt = p.OfferExpiresAt.Unix()
	}
	return doc, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	doc, err := fromDomainProduct(p)
	if err != nil {
		return nil, err
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}

	created := *p
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProductNotFound
	}

	var doc productDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ProductRepository) List(ctx context.Context) ([]*domain.Product, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.Product
	for cursor.Next(ctx) {
		var doc productDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode product: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return out, nil
}

// Update writes the mutable product fields only; business_id is never part
// of the update document.
func (r *ProductRepository) Update(ctx context.Context, p *domain.Product) error {
	oid, err := primitive.ObjectIDFromHex(p.ID)
	if err != nil {
		return domain.ErrProductNotFound
	}

	set := bson.M{
		"name":                p.Name,
		"category":            p.Category,
		"original_price":      p.OriginalPrice,
		"new_price":           p.NewPrice,
		"percentage_discount": p.PercentDiscount,
	}
	if !p.OfferExpiresAt.IsZero() {
		set["offer_expiration_date"] = p.OfferExpiresAt.Unix()
	}

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrProductNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) UpdateImage(ctx context.Context, id, image string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrProductNotFound
	}

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"product_image": image}})
	if err != nil {
		return fmt.Errorf("update product image: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// EnsureIndexes creates the business lookup index.
func (r *ProductRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "business_id", Value: 1}},
	})
	return err
}
