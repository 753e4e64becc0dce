package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/multixy/storefront/internal/core/domain"
)

const collectionCarts = "carts"

type CartRepository struct {
	col      *mongo.Collection
	products *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{
		col:      db.Collection(collectionCarts),
		products: db.Collection(collectionProducts),
	}
}

func (r *CartRepository) Create(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	item.ID = primitive.NewObjectID().Hex()
	if _, err := r.col.InsertOne(ctx, item); err != nil {
		return nil, fmt.Errorf("insert cart item: %w", err)
	}
	return item, nil
}

func (r *CartRepository) FindItem(ctx context.Context, userID, productID string) (*domain.CartItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var item domain.CartItem
	err := r.col.FindOne(ctx, bson.M{
		"user_id":    userID,
		"product_id": productID,
		"is_deleted": false,
	}).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCartItemNotFound
		}
		return nil, fmt.Errorf("find cart item: %w", err)
	}
	return &item, nil
}

// ListByUser loads the user's active cart items and joins each with its
// product in a single $in query.
func (r *CartRepository) ListByUser(ctx context.Context, userID string) ([]domain.CartLine, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"user_id": userID, "is_deleted": false})
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}

	var items []domain.CartItem
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode cart items: %w", err)
	}
	if len(items) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}

	pcur, err := r.products.Find(ctx, bson.M{"_id": bson.M{"$in": ids}, "is_deleted": false})
	if err != nil {
		return nil, fmt.Errorf("load cart products: %w", err)
	}
	var products []domain.Product
	if err := pcur.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode cart products: %w", err)
	}

	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	lines := make([]domain.CartLine, 0, len(items))
	for _, it := range items {
		product, ok := byID[it.ProductID]
		if !ok {
			// Product was removed or soft-deleted after being carted;
			// skip the stale line.
			continue
		}
		lines = append(lines, domain.CartLine{Item: it, Product: product})
	}
	return lines, nil
}

func (r *CartRepository) UpdateQuantity(ctx context.Context, itemID string, quantity int) (*domain.CartItem, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var item domain.CartItem
	err := r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": itemID, "is_deleted": false},
		bson.M{"$set": bson.M{"quantity": quantity}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCartItemNotFound
		}
		return nil, fmt.Errorf("update cart quantity: %w", err)
	}
	return &item, nil
}

func (r *CartRepository) SoftDelete(ctx context.Context, itemID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": itemID, "is_deleted": false}, bson.M{"$set": bson.M{"is_deleted": true}})
	if err != nil {
		return fmt.Errorf("soft delete cart item: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCartItemNotFound
	}
	return nil
}

func (r *CartRepository) Clear(ctx context.Context, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.UpdateMany(ctx, bson.M{"user_id": userID, "is_deleted": false}, bson.M{"$set": bson.M{"is_deleted": true}})
	if err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
