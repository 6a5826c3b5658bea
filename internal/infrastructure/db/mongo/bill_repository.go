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

const billsCollection = "bills"

// BillRepository persists bills in MongoDB.
type BillRepository struct {
	coll *mongo.Collection
}

func NewBillRepository(db *mongo.Database) *BillRepository {
	return &BillRepository{coll: db.Collection(billsCollection)}
}

type billDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	ApartmentID   string             `bson:"apartment_id"`
	OwnerID       string             `bson:"owner_id"`
	Amount        float64            `bson:"amount"`
	Type          string             `bson:"type"`
	Description   string             `bson:"description,omitempty"`
	Status        string             `bson:"status"`
	DueDate       time.Time          `bson:"due_date"`
	PaidDate      *time.Time         `bson:"paid_date,omitempty"`
	PaymentMethod string             `bson:"payment_method,omitempty"`
	CreatedAt     time.Time          `bson:"created_at"`
}

func (d *billDoc) toDomain() *domain.Bill {
	return &domain.Bill{
		ID:            d.ID.Hex(),
		ApartmentID:   d.ApartmentID,
		OwnerID:       d.OwnerID,
		Amount:        d.Amount,
		Type:          domain.BillType(d.Type),
		Description:   d.Description,
		Status:        domain.BillStatus(d.Status),
		DueDate:       d.DueDate,
		PaidDate:      d.PaidDate,
		PaymentMethod: d.PaymentMethod,
		CreatedAt:     d.CreatedAt,
	}
}

func (r *BillRepository) Create(ctx context.Context, b *domain.Bill) (*domain.Bill, error) {
	doc := billDoc{
		ApartmentID: b.ApartmentID,
		OwnerID:     b.OwnerID,
		Amount:      b.Amount,
		Type:        string(b.Type),
		Description: b.Description,
		Status:      string(b.Status),
		DueDate:     b.DueDate,
		CreatedAt:   b.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert bill: %w", err)
	}

	created := *b
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *BillRepository) FindByID(ctx context.Context, id string) (*domain.Bill, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBillNotFound
	}

	var doc billDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrBillNotFound
		}
		return nil, fmt.Errorf("find bill: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *BillRepository) Update(ctx context.Context, b *domain.Bill) error {
	oid, err := primitive.ObjectIDFromHex(b.ID)
	if err != nil {
		return domain.ErrBillNotFound
	}

	update := bson.M{"$set": bson.M{
		"status":         string(b.Status),
		"paid_date":      b.PaidDate,
		"payment_method": b.PaymentMethod,
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update bill: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrBillNotFound
	}
	return nil
}

func (r *BillRepository) List(ctx context.Context, filter ports.ListBillsFilter) ([]*domain.Bill, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = string(filter.Status)
	}
	if filter.ApartmentID != "" {
		query["apartment_id"] = filter.ApartmentID
	}
	if filter.OwnerID != "" {
		query["owner_id"] = filter.OwnerID
	}

	cursor, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "due_date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list bills: %w", err)
	}
	defer cursor.Close(ctx)

	var bills []*domain.Bill
	for cursor.Next(ctx) {
		var doc billDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode bill: %w", err)
		}
		bills = append(bills, doc.toDomain())
	}
	return bills, cursor.Err()
}
