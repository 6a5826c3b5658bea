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
)

const announcementsCollection = "announcements"

// AnnouncementRepository persists announcements in MongoDB.
type AnnouncementRepository struct {
	coll *mongo.Collection
}

func NewAnnouncementRepository(db *mongo.Database) *AnnouncementRepository {
	return &AnnouncementRepository{coll: db.Collection(announcementsCollection)}
}

type announcementDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	AuthorID   string             `bson:"author_id"`
	Title      string             `bson:"title"`
	Content    string             `bson:"content"`
	Category   string             `bson:"category,omitempty"`
	Priority   string             `bson:"priority,omitempty"`
	Pinned     bool               `bson:"pinned"`
	Audience   string             `bson:"audience"`
	ExpiryDate *time.Time         `bson:"expiry_date,omitempty"`
	CreatedAt  time.Time          `bson:"created_at"`
}

func (d *announcementDoc) toDomain() *domain.Announcement {
	return &domain.Announcement{
		ID:         d.ID.Hex(),
		AuthorID:   d.AuthorID,
		Title:      d.Title,
		Content:    d.Content,
		Category:   d.Category,
		Priority:   d.Priority,
		Pinned:     d.Pinned,
		Audience:   domain.Audience(d.Audience),
		ExpiryDate: d.ExpiryDate,
		CreatedAt:  d.CreatedAt,
	}
}

func (r *AnnouncementRepository) Create(ctx context.Context, a *domain.Announcement) (*domain.Announcement, error) {
	doc := announcementDoc{
		AuthorID:   a.AuthorID,
		Title:      a.Title,
		Content:    a.Content,
		Category:   a.Category,
		Priority:   a.Priority,
		Pinned:     a.Pinned,
		Audience:   string(a.Audience),
		ExpiryDate: a.ExpiryDate,
		CreatedAt:  a.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert announcement: %w", err)
	}

	created := *a
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

// List returns notices for the given audience; AudienceAll notices are
// always included. Pinned notices sort first, then newest.
func (r *AnnouncementRepository) List(ctx context.Context, audience domain.Audience) ([]*domain.Announcement, error) {
	query := bson.M{}
	if audience != "" && audience != domain.AudienceAll {
		query["audience"] = bson.M{"$in": bson.A{string(domain.AudienceAll), string(audience)}}
	}

	sort := options.Find().SetSort(bson.D{
		{Key: "pinned", Value: -1},
		{Key: "created_at", Value: -1},
	})
	cursor, err := r.coll.Find(ctx, query, sort)
	if err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	defer cursor.Close(ctx)

	var items []*domain.Announcement
	for cursor.Next(ctx) {
		var doc announcementDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode announcement: %w", err)
		}
		items = append(items, doc.toDomain())
	}
	return items, cursor.Err()
}
