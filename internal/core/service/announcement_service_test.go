package service

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/syndicma/syndic-platform/internal/core/domain"
	"github.com/syndicma/syndic-platform/internal/core/ports"
)

type stubAnnouncementRepo struct {
	mu    sync.Mutex
	items []*domain.Announcement
}

func (r *stubAnnouncementRepo) Create(_ context.Context, a *domain.Announcement) (*domain.Announcement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *a
	c.ID = strconv.Itoa(len(r.items) + 1)
	r.items = append(r.items, &c)
	out := c
	return &out, nil
}

func (r *stubAnnouncementRepo) List(_ context.Context, audience domain.Audience) ([]*domain.Announcement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Announcement
	for _, a := range r.items {
		if audience != "" && audience != domain.AudienceAll && a.Audience != audience && a.Audience != domain.AudienceAll {
			continue
		}
		c := *a
		out = append(out, &c)
	}
	return out, nil
}

func TestAnnouncementService_Publish_DefaultAudience(t *testing.T) {
	svc := NewAnnouncementService(&stubAnnouncementRepo{}, zerolog.Nop())

	published, err := svc.Publish(context.Background(), ports.PublishAnnouncementInput{
		AuthorID: "admin-1",
		Title:    "Water cut",
		Content:  "Water will be cut on Saturday morning.",
	})
	if err != nil {
		t.Fatalf("Publish returned error: %v", err)
	}
	if published.Audience != domain.AudienceAll {
		t.Fatalf("omitted audience must default to ALL, got %s", published.Audience)
	}
}

func TestAnnouncementService_List_DropsExpired(t *testing.T) {
	svc := NewAnnouncementService(&stubAnnouncementRepo{}, zerolog.Nop())
	ctx := context.Background()

	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	if _, err := svc.Publish(ctx, ports.PublishAnnouncementInput{AuthorID: "a", Title: "old", Content: "x", ExpiryDate: &past}); err != nil {
		t.Fatalf("publish expired: %v", err)
	}
	if _, err := svc.Publish(ctx, ports.PublishAnnouncementInput{AuthorID: "a", Title: "current", Content: "x", ExpiryDate: &future}); err != nil {
		t.Fatalf("publish current: %v", err)
	}
	if _, err := svc.Publish(ctx, ports.PublishAnnouncementInput{AuthorID: "a", Title: "evergreen", Content: "x"}); err != nil {
		t.Fatalf("publish evergreen: %v", err)
	}

	visible, err := svc.List(ctx, domain.AudienceAll)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(visible) != 2 {
		t.Fatalf("expected 2 visible announcements, got %d", len(visible))
	}
	for _, a := range visible {
		if a.Title == "old" {
			t.Fatalf("expired announcement leaked into the listing")
		}
	}
}

func TestAnnouncementService_List_OwnerAudience(t *testing.T) {
	svc := NewAnnouncementService(&stubAnnouncementRepo{}, zerolog.Nop())
	ctx := context.Background()

	if _, err := svc.Publish(ctx, ports.PublishAnnouncementInput{AuthorID: "a", Title: "agm", Content: "x", Audience: domain.AudienceOwners}); err != nil {
		t.Fatalf("publish owners: %v", err)
	}
	if _, err := svc.Publish(ctx, ports.PublishAnnouncementInput{AuthorID: "a", Title: "lease", Content: "x", Audience: domain.AudienceTenants}); err != nil {
		t.Fatalf("publish tenants: %v", err)
	}
	if _, err := svc.Publish(ctx, ports.PublishAnnouncementInput{AuthorID: "a", Title: "all", Content: "x"}); err != nil {
		t.Fatalf("publish general: %v", err)
	}

	owners, err := svc.List(ctx, domain.AudienceOwners)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(owners) != 2 {
		t.Fatalf("owners must see owner-targeted and general notices, got %d", len(owners))
	}
	for _, a := range owners {
		if a.Audience == domain.AudienceTenants {
			t.Fatalf("tenant-only notice leaked to owners")
		}
	}
}
