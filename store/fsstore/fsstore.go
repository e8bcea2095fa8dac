// Package fsstore keeps the catalog, orders and user profiles in Cloud
// Firestore, using the same collection layout as the mobile app.
package fsstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/junaidrashid-git/kula-api/models"
	"github.com/junaidrashid-git/kula-api/store"
)

const (
	foodsCollection  = "foods"
	ordersCollection = "orders"
	usersCollection  = "users"
)

type Store struct {
	client *firestore.Client
}

var _ store.Store = (*Store)(nil)

func New(client *firestore.Client) *Store {
	return &Store{client: client}
}

func (s *Store) Close() error { return s.client.Close() }

func (s *Store) ListFoods(ctx context.Context) ([]models.Food, error) {
	docs, err := s.client.Collection(foodsCollection).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}
	foods := make([]models.Food, 0, len(docs))
	for _, doc := range docs {
		foods = append(foods, foodFromData(doc.Ref.ID, doc.Data()))
	}
	return foods, nil
}

func (s *Store) GetFood(ctx context.Context, id string) (models.Food, error) {
	doc, err := s.client.Collection(foodsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return models.Food{}, store.ErrNotFound
		}
		return models.Food{}, fmt.Errorf("get food %s: %w", id, err)
	}
	return foodFromData(doc.Ref.ID, doc.Data()), nil
}

func (s *Store) CreateOrder(ctx context.Context, line models.OrderLine) (models.OrderLine, error) {
	ref := s.client.Collection(ordersCollection).NewDoc()
	_, err := ref.Set(ctx, map[string]interface{}{
		"userId":    line.OwnerID,
		"name":      line.Name,
		"desc":      line.Description,
		"price":     line.UnitPrice.InexactFloat64(),
		"qty":       line.Quantity,
		"image":     string(line.Image),
		"location":  line.Location,
		"notes":     line.Notes,
		"createdAt": firestore.ServerTimestamp,
	})
	if err != nil {
		return models.OrderLine{}, err
	}
	line.ID = ref.ID
	return line, nil
}

func (s *Store) WatchOrders(ctx context.Context, ownerID string) (store.OrderWatch, error) {
	it := s.client.Collection(ordersCollection).Where("userId", "==", ownerID).Snapshots(ctx)
	return &orderWatch{ctx: ctx, it: it}, nil
}

type orderWatch struct {
	ctx context.Context
	it  *firestore.QuerySnapshotIterator
}

func (w *orderWatch) Next() ([]models.OrderLine, error) {
	snap, err := w.it.Next()
	if err != nil {
		if w.ctx.Err() != nil || errors.Is(err, iterator.Done) || status.Code(err) == codes.Canceled {
			return nil, store.ErrWatchStopped
		}
		return nil, fmt.Errorf("watch orders: %w", err)
	}
	docs, err := snap.Documents.GetAll()
	if err != nil {
		return nil, fmt.Errorf("read order snapshot: %w", err)
	}
	lines := make([]models.OrderLine, 0, len(docs))
	for _, doc := range docs {
		lines = append(lines, orderFromData(doc.Ref.ID, doc.Data()))
	}
	return lines, nil
}

func (w *orderWatch) Stop() { w.it.Stop() }

func (s *Store) PutProfile(ctx context.Context, p models.UserProfile) error {
	data := map[string]interface{}{
		"name":      p.Name,
		"email":     p.Email,
		"role":      p.Role,
		"createdAt": p.CreatedAt,
	}
	if p.Username != "" {
		data["username"] = p.Username
	}
	if p.Description != "" {
		data["description"] = p.Description
	}
	if _, err := s.client.Collection(usersCollection).Doc(p.ID).Set(ctx, data); err != nil {
		return err
	}
	return nil
}

func (s *Store) GetProfile(ctx context.Context, id string) (models.UserProfile, error) {
	doc, err := s.client.Collection(usersCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return models.UserProfile{}, store.ErrNotFound
		}
		return models.UserProfile{}, fmt.Errorf("get user %s: %w", id, err)
	}
	data := doc.Data()
	return models.UserProfile{
		ID:          doc.Ref.ID,
		Name:        stringField(data, "name"),
		Email:       stringField(data, "email"),
		Role:        stringField(data, "role"),
		Username:    stringField(data, "username"),
		Description: stringField(data, "description"),
		CreatedAt:   timeField(data, "createdAt"),
	}, nil
}

func foodFromData(id string, data map[string]interface{}) models.Food {
	return models.Food{
		ID:    id,
		Name:  stringField(data, "name"),
		Desc:  stringField(data, "desc"),
		Price: models.ParsePrice(data["price"]),
	}
}

func orderFromData(id string, data map[string]interface{}) models.OrderLine {
	return models.OrderLine{
		ID:          id,
		OwnerID:     stringField(data, "userId"),
		Name:        stringField(data, "name"),
		Description: stringField(data, "desc"),
		UnitPrice:   models.ParsePrice(data["price"]),
		Quantity:    intField(data, "qty"),
		Image:       models.ImageKey(stringField(data, "image")),
		Location:    stringField(data, "location"),
		Notes:       stringField(data, "notes"),
		CreatedAt:   timeField(data, "createdAt"),
	}
}

func stringField(data map[string]interface{}, key string) string {
	s, _ := data[key].(string)
	return s
}

func intField(data map[string]interface{}, key string) int {
	switch v := data[key].(type) {
	case int64:
		return int(v)
	case int:
		return v
	case float64:
		return int(v)
	default:
		return 0
	}
}

// timeField returns the zero time for missing or pending timestamps.
func timeField(data map[string]interface{}, key string) time.Time {
	t, _ := data[key].(time.Time)
	return t
}
