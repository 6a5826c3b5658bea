package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/syndicma/syndic-platform/internal/core/domain"
	"github.com/syndicma/syndic-platform/internal/core/ports"
)

const apartmentsCollection = "apartments"

// ApartmentRepository persists apartments in MongoDB.
type ApartmentRepository struct {
	coll *mongo.Collection
}

func NewApartmentRepository(db *mongo.Database) *ApartmentRepository {
	return &ApartmentRepository{coll: db.Collection(apartmentsCollection)}
}

type apartmentDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Number     string             `bson:"number"`
	Floor      int                `bson:"floor"`
	SizeM2     float64            `bson:"size_m2"`
	Rooms      int                `bson:"rooms"`
	Status     string             `bson:"status"`
	MonthlyFee float64            `bson:"monthly_fee"`
	OwnerID    string             `bson:"owner_id,omitempty"`
	TenantID   string             `bson:"tenant_id,omitempty"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

func (d *apartmentDoc) toDomain() *domain.Apartment {
	return &domain.Apartment{
		ID:         d.ID.Hex(),
		Number:     d.Number,
		Floor:      d.Floor,
		SizeM2:     d.SizeM2,
		Rooms:      d.Rooms,
		Status:     domain.ApartmentStatus(d.Status),
		MonthlyFee: d.MonthlyFee,
		OwnerID:    d.OwnerID,
		TenantID:   d.TenantID,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func (r *ApartmentRepository) Create(ctx context.Context, a *domain.Apartment) (*domain.Apartment, error) {
	doc := apartmentDoc{
		Number:     a.Number,
		Floor:      a.Floor,
		SizeM2:     a.SizeM2,
		Rooms:      a.Rooms,
		Status:     string(a.Status),
		MonthlyFee: a.MonthlyFee,
		OwnerID:    a.OwnerID,
		TenantID:   a.TenantID,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert apartment: %w", err)
	}

	created := *a
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *ApartmentRepository) FindByID(ctx context.Context, id string) (*domain.Apartment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrApartmentNotFound
	}

	var doc apartmentDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrApartmentNotFound
		}
		return nil, fmt.Errorf("find apartment: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ApartmentRepository) Update(ctx context.Context, a *domain.Apartment) error {
	oid, err := primitive.ObjectIDFromHex(a.ID)
	if err != nil {
		return domain.ErrApartmentNotFound
	}

	update := bson.M{"$set": bson.M{
		"status":      string(a.Status),
		"monthly_fee": a.MonthlyFee,
		"owner_id":    a.OwnerID,
		"tenant_id":   a.TenantID,
		"updated_at":  a.UpdatedAt,
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update apartment: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrApartmentNotFound
	}
	return nil
}

func (r *ApartmentRepository) List(ctx context.Context, filter ports.ListApartmentsFilter) ([]*domain.Apartment, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = string(filter.Status)
	}
	if filter.OwnerID != "" {
		query["owner_id"] = filter.OwnerID
	}
	if filter.Floor != nil {
		query["floor"] = *filter.Floor
	}

	cursor, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "number", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list apartments: %w", err)
	}
	defer cursor.Close(ctx)

	var apartments []*domain.Apartment
	for cursor.Next(ctx) {
		var doc apartmentDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode apartment: %w", err)
		}
		apartments = append(apartments, doc.toDomain())
	}
	return apartments, cursor.Err()
}
