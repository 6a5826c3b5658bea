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

const maintenanceCollection = "maintenance_requests"

// MaintenanceRepository persists maintenance requests in MongoDB.
type MaintenanceRepository struct {
	coll *mongo.Collection
}

func NewMaintenanceRepository(db *mongo.Database) *MaintenanceRepository {
	return &MaintenanceRepository{coll: db.Collection(maintenanceCollection)}
}

type maintenanceDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	ApartmentID   string             `bson:"apartment_id"`
	RequesterID   string             `bson:"requester_id"`
	Title         string             `bson:"title"`
	Description   string             `bson:"description"`
	Category      string             `bson:"category,omitempty"`
	Priority      string             `bson:"priority"`
	Status        string             `bson:"status"`
	AssignedTo    string             `bson:"assigned_to,omitempty"`
	EstimatedCost float64            `bson:"estimated_cost,omitempty"`
	ActualCost    float64            `bson:"actual_cost,omitempty"`
	CreatedAt     time.Time          `bson:"created_at"`
	CompletedAt   *time.Time         `bson:"completed_at,omitempty"`
}

func (d *maintenanceDoc) toDomain() *domain.MaintenanceRequest {
	return &domain.MaintenanceRequest{
		ID:            d.ID.Hex(),
		ApartmentID:   d.ApartmentID,
		RequesterID:   d.RequesterID,
		Title:         d.Title,
		Description:   d.Description,
		Category:      d.Category,
		Priority:      domain.MaintenancePriority(d.Priority),
		Status:        domain.MaintenanceStatus(d.Status),
		AssignedTo:    d.AssignedTo,
		EstimatedCost: d.EstimatedCost,
		ActualCost:    d.ActualCost,
		CreatedAt:     d.CreatedAt,
		CompletedAt:   d.CompletedAt,
	}
}

func (r *MaintenanceRepository) Create(ctx context.Context, m *domain.MaintenanceRequest) (*domain.MaintenanceRequest, error) {
	doc := maintenanceDoc{
		ApartmentID: m.ApartmentID,
		RequesterID: m.RequesterID,
		Title:       m.Title,
		Description: m.Description,
		Category:    m.Category,
		Priority:    string(m.Priority),
		Status:      string(m.Status),
		CreatedAt:   m.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert maintenance request: %w", err)
	}

	created := *m
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MaintenanceRepository) FindByID(ctx context.Context, id string) (*domain.MaintenanceRequest, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMaintenanceNotFound
	}

	var doc maintenanceDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrMaintenanceNotFound
		}
		return nil, fmt.Errorf("find maintenance request: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *MaintenanceRepository) Update(ctx context.Context, m *domain.MaintenanceRequest) error {
	oid, err := primitive.ObjectIDFromHex(m.ID)
	if err != nil {
		return domain.ErrMaintenanceNotFound
	}

	update := bson.M{"$set": bson.M{
		"status":         string(m.Status),
		"assigned_to":    m.AssignedTo,
		"estimated_cost": m.EstimatedCost,
		"actual_cost":    m.ActualCost,
		"completed_at":   m.CompletedAt,
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update maintenance request: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrMaintenanceNotFound
	}
	return nil
}

func (r *MaintenanceRepository) List(ctx context.Context, filter ports.ListMaintenanceFilter) ([]*domain.MaintenanceRequest, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = string(filter.Status)
	}
	if filter.ApartmentID != "" {
		query["apartment_id"] = filter.ApartmentID
	}
	if filter.RequesterID != "" {
		query["requester_id"] = filter.RequesterID
	}
	if filter.AssignedTo != "" {
		query["assigned_to"] = filter.AssignedTo
	}

	cursor, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list maintenance requests: %w", err)
	}
	defer cursor.Close(ctx)

	var requests []*domain.MaintenanceRequest
	for cursor.Next(ctx) {
		var doc maintenanceDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode maintenance request: %w", err)
		}
		requests = append(requests, doc.toDomain())
	}
	return requests, cursor.Err()
}
