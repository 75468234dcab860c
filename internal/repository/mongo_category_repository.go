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

type categoryDocument struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	Name      string        `bson:"name"`
	Image     string        `bson:"image"`
	Banner    string        `bson:"banner"`
	CreatedAt time.Time     `bson:"createdAt"`
	UpdatedAt time.Time     `bson:"updatedAt"`
}

func (d *categoryDocument) toDomain() *domain.Category {
	return &domain.Category{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Image:     d.Image,
		Banner:    d.Banner,
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

type mongoCategoryRepository struct {
	collection *mongo.Collection
}

// NewMongoCategoryRepository creates a MongoDB backed CategoryRepository
func NewMongoCategoryRepository(db *mongo.Database) CategoryRepository {
	return &mongoCategoryRepository{collection: db.Collection(categoriesCollection)}
}

func (r *mongoCategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	cursor, err := r.collection.Find(ctx, bson.D{}, options.Find().SetSort(newestFirst))
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	var docs []categoryDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}

	categories := make([]*domain.Category, 0, len(docs))
	for i := range docs {
		categories = append(categories, docs[i].toDomain())
	}
	return categories, nil
}

func (r *mongoCategoryRepository) FindByID(ctx context.Context, id string) (*domain.Category, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var doc categoryDocument
	if err := r.collection.FindOne(ctx, byID(oid)).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to find category by ID: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *mongoCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	doc := categoryDocument{
		ID:        bson.NewObjectID(),
		Name:      category.Name,
		Image:     category.Image,
		Banner:    category.Banner,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrCategoryAlreadyExists
		}
		return fmt.Errorf("failed to create category: %w", err)
	}

	category.ID = doc.ID.Hex()
	return nil
}

func (r *mongoCategoryRepository) Update(ctx context.Context, id string, patch domain.CategoryPatch) (*domain.Category, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	set := bson.D{{Key: "updatedAt", Value: modifiedAt(patch.UpdatedAt, time.Now)}}
	if patch.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *patch.Name})
	}
	if patch.Image != nil {
		set = append(set, bson.E{Key: "image", Value: *patch.Image})
	}
	if patch.Banner != nil {
		set = append(set, bson.E{Key: "banner", Value: *patch.Banner})
	}

	var doc categoryDocument
	err = r.collection.FindOneAndUpdate(
		ctx,
		byID(oid),
		bson.D{{Key: "$set", Value: set}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCategoryNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrCategoryAlreadyExists
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *mongoCategoryRepository) Delete(ctx context.Context, id string) (*domain.Category, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var doc categoryDocument
	if err := r.collection.FindOneAndDelete(ctx, byID(oid)).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to delete category: %w", err)
	}
	return doc.toDomain(), nil
}
