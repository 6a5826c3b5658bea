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

const meetingsCollection = "meetings"

// MeetingRepository persists meetings in MongoDB. Votes live inside the
// meeting document; ballots are stored but never serialized to clients.
type MeetingRepository struct {
	coll *mongo.Collection
}

func NewMeetingRepository(db *mongo.Database) *MeetingRepository {
	return &MeetingRepository{coll: db.Collection(meetingsCollection)}
}

type voteDoc struct {
	ID       string            `bson:"id"`
	Question string            `bson:"question"`
	Options  []string          `bson:"options"`
	Status   string            `bson:"status"`
	Ballots  map[string]string `bson:"ballots,omitempty"`
	Results  map[string]int    `bson:"results,omitempty"`
}

type meetingDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	ScheduledAt time.Time          `bson:"scheduled_at"`
	Location    string             `bson:"location,omitempty"`
	Type        string             `bson:"type"`
	Status      string             `bson:"status"`
	Agenda      []string           `bson:"agenda,omitempty"`
	Votes       []voteDoc          `bson:"votes,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (d *meetingDoc) toDomain() *domain.Meeting {
	meeting := &domain.Meeting{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		ScheduledAt: d.ScheduledAt,
		Location:    d.Location,
		Type:        domain.MeetingType(d.Type),
		Status:      domain.MeetingStatus(d.Status),
		Agenda:      d.Agenda,
		CreatedAt:   d.CreatedAt,
	}
	for _, v := range d.Votes {
		meeting.Votes = append(meeting.Votes, &domain.Vote{
			ID:       v.ID,
			Question: v.Question,
			Options:  v.Options,
			Status:   domain.VoteStatus(v.Status),
			Ballots:  v.Ballots,
			Results:  v.Results,
		})
	}
	return meeting
}

func voteDocs(votes []*domain.Vote) []voteDoc {
	docs := make([]voteDoc, 0, len(votes))
	for _, v := range votes {
		docs = append(docs, voteDoc{
			ID:       v.ID,
			Question: v.Question,
			Options:  v.Options,
			Status:   string(v.Status),
			Ballots:  v.Ballots,
			Results:  v.Results,
		})
	}
	return docs
}

func (r *MeetingRepository) Create(ctx context.Context, m *domain.Meeting) (*domain.Meeting, error) {
	doc := meetingDoc{
		Title:       m.Title,
		Description: m.Description,
		ScheduledAt: m.ScheduledAt,
		Location:    m.Location,
		Type:        string(m.Type),
		Status:      string(m.Status),
		Agenda:      m.Agenda,
		Votes:       voteDocs(m.Votes),
		CreatedAt:   m.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert meeting: %w", err)
	}

	created := *m
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *MeetingRepository) FindByID(ctx context.Context, id string) (*domain.Meeting, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMeetingNotFound
	}

	var doc meetingDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("find meeting: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *MeetingRepository) Update(ctx context.Context, m *domain.Meeting) error {
	oid, err := primitive.ObjectIDFromHex(m.ID)
	if err != nil {
		return domain.ErrMeetingNotFound
	}

	update := bson.M{"$set": bson.M{
		"status": string(m.Status),
		"votes":  voteDocs(m.Votes),
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update meeting: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrMeetingNotFound
	}
	return nil
}

func (r *MeetingRepository) List(ctx context.Context, filter ports.ListMeetingsFilter) ([]*domain.Meeting, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = string(filter.Status)
	}
	if filter.Type != "" {
		query["type"] = string(filter.Type)
	}

	cursor, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "scheduled_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list meetings: %w", err)
	}
	defer cursor.Close(ctx)

	var meetings []*domain.Meeting
	for cursor.Next(ctx) {
		var doc meetingDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode meeting: %w", err)
		}
		meetings = append(meetings, doc.toDomain())
	}
	return meetings, cursor.Err()
}
