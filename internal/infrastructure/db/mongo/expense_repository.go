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

const expensesCollection = "expenses"

// ExpenseRepository persists building expenses in MongoDB.
type ExpenseRepository struct {
	coll *mongo.Collection
}

func NewExpenseRepository(db *mongo.Database) *ExpenseRepository {
	return &ExpenseRepository{coll: db.Collection(expensesCollection)}
}

type expenseDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Description string             `bson:"description"`
	Amount      float64            `bson:"amount"`
	Category    string             `bson:"category,omitempty"`
	Vendor      string             `bson:"vendor,omitempty"`
	Status      string             `bson:"status"`
	ApprovedBy  string             `bson:"approved_by,omitempty"`
	CreatedByID string             `bson:"created_by_id"`
	CreatedAt   time.Time          `bson:"created_at"`
	PaidAt      *time.Time         `bson:"paid_at,omitempty"`
}

func (d *expenseDoc) toDomain() *domain.Expense {
	return &domain.Expense{
		ID:          d.ID.Hex(),
		Description: d.Description,
		Amount:      d.Amount,
		Category:    d.Category,
		Vendor:      d.Vendor,
		Status:      domain.ExpenseStatus(d.Status),
		ApprovedBy:  d.ApprovedBy,
		CreatedByID: d.CreatedByID,
		CreatedAt:   d.CreatedAt,
		PaidAt:      d.PaidAt,
	}
}

func (r *ExpenseRepository) Create(ctx context.Context, e *domain.Expense) (*domain.Expense, error) {
	doc := expenseDoc{
		Description: e.Description,
		Amount:      e.Amount,
		Category:    e.Category,
		Vendor:      e.Vendor,
		Status:      string(e.Status),
		CreatedByID: e.CreatedByID,
		CreatedAt:   e.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert expense: %w", err)
	}

	created := *e
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *ExpenseRepository) FindByID(ctx context.Context, id string) (*domain.Expense, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrExpenseNotFound
	}

	var doc expenseDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrExpenseNotFound
		}
		return nil, fmt.Errorf("find expense: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ExpenseRepository) Update(ctx context.Context, e *domain.Expense) error {
	oid, err := primitive.ObjectIDFromHex(e.ID)
	if err != nil {
		return domain.ErrExpenseNotFound
	}

	update := bson.M{"$set": bson.M{
		"status":      string(e.Status),
		"approved_by": e.ApprovedBy,
		"paid_at":     e.PaidAt,
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update expense: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrExpenseNotFound
	}
	return nil
}

func (r *ExpenseRepository) List(ctx context.Context, filter ports.ListExpensesFilter) ([]*domain.Expense, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = string(filter.Status)
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}

	cursor, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer cursor.Close(ctx)

	var expenses []*domain.Expense
	for cursor.Next(ctx) {
		var doc expenseDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode expense: %w", err)
		}
		expenses = append(expenses, doc.toDomain())
	}
	return expenses, cursor.Err()
}
