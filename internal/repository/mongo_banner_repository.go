package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront-admin/internal/domain"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type bannerDocument struct {
	ID          bson.ObjectID `bson:"_id,omitempty"`
	Image       string        `bson:"image"`
	Title       string        `bson:"title"`
	Description string        `bson:"description"`
	IsActive    bool          `bson:"isActive"`
	CreatedAt   time.Time     `bson:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt"`
}

func (d *bannerDocument) toDomain() *domain.Banner {
	return &domain.Banner{
		ID:          d.ID.Hex(),
		Image:       d.Image,
		Title:       d.Title,
		Description: d.Description,
		IsActive:    d.IsActive,
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
}

type mongoBannerRepository struct {
	collection *mongo.Collection
}

// NewMongoBannerRepository creates a MongoDB backed BannerRepository
func NewMongoBannerRepository(db *mongo.Database) BannerRepository {
	return &mongoBannerRepository{collection: db.Collection(bannersCollection)}
}

func (r *mongoBannerRepository) List(ctx context.Context, filter domain.BannerFilter) ([]*domain.Banner, error) {
	query := bson.D{}
	if filter.ActiveOnly {
		query = bson.D{{Key: "isActive", Value: true}}
	}

	cursor, err := r.collection.Find(ctx, query, options.Find().SetSort(newestFirst))
	if err != nil {
		return nil, fmt.Errorf("failed to list banners: %w", err)
	}

	var docs []bannerDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode banners: %w", err)
	}

	banners := make([]*domain.Banner, 0, len(docs))
	for i := range docs {
		banners = append(banners, docs[i].toDomain())
	}
	return banners, nil
}

func (r *mongoBannerRepository) FindByID(ctx context.Context, id string) (*domain.Banner, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var doc bannerDocument
	if err := r.collection.FindOne(ctx, byID(oid)).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBannerNotFound
		}
		return nil, fmt.Errorf("failed to find banner by ID: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *mongoBannerRepository) Create(ctx context.Context, banner *domain.Banner) error {
	doc := bannerDocument{
		ID:          bson.NewObjectID(),
		Image:       banner.Image,
		Title:       banner.Title,
		Description: banner.Description,
		IsActive:    banner.IsActive,
		CreatedAt:   banner.CreatedAt,
		UpdatedAt:   banner.UpdatedAt,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to create banner: %w", err)
	}

	banner.ID = doc.ID.Hex()
	return nil
}

func (r *mongoBannerRepository) Update(ctx context.Context, id string, patch domain.BannerPatch) (*domain.Banner, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	set := bson.D{{Key: "updatedAt", Value: modifiedAt(patch.UpdatedAt, time.Now)}}
	if patch.Image != nil {
		set = append(set, bson.E{Key: "image", Value: *patch.Image})
	}
	if patch.Title != nil {
		set = append(set, bson.E{Key: "title", Value: *patch.Title})
	}
	if patch.Description != nil {
		set = append(set, bson.E{Key: "description", Value: *patch.Description})
	}
	if patch.IsActive != nil {
		set = append(set, bson.E{Key: "isActive", Value: *patch.IsActive})
	}

	var doc bannerDocument
	err = r.collection.FindOneAndUpdate(
		ctx,
		byID(oid),
		bson.D{{Key: "$set", Value: set}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBannerNotFound
		}
		return nil, fmt.Errorf("failed to update banner: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *mongoBannerRepository) Delete(ctx context.Context, id string) (*domain.Banner, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var doc bannerDocument
	if err := r.collection.FindOneAndDelete(ctx, byID(oid)).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBannerNotFound
		}
		return nil, fmt.Errorf("failed to delete banner: %w", err)
	}
	return doc.toDomain(), nil
}
