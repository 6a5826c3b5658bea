package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/rs/zerolog"

	"github.com/syndicma/syndic-platform/internal/core/domain"
	"github.com/syndicma/syndic-platform/internal/core/ports"
)

// MeetingService schedules owners' assemblies and runs their votes. Ballots
// are one per voter; results are tallied live while a vote is ACTIVE and
// frozen when it closes.
type MeetingService struct {
	repo   ports.MeetingRepository
	logger zerolog.Logger
}

func NewMeetingService(repo ports.MeetingRepository, logger zerolog.Logger) *MeetingService {
	return &MeetingService{repo: repo, logger: logger}
}

// Schedule calls a meeting. An omitted type defaults to GENERAL.
func (s *MeetingService) Schedule(ctx context.Context, input ports.ScheduleMeetingInput) (*domain.Meeting, error) {
	meetingType := input.Type
	if meetingType == "" {
		meetingType = domain.MeetingGeneral
	}
	if !meetingType.Valid() {
		return nil, domain.ErrInvalidTransition
	}

	created, err := s.repo.Create(ctx, &domain.Meeting{
		Title:       input.Title,
		Description: input.Description,
		ScheduledAt: input.ScheduledAt,
		Location:    input.Location,
		Type:        meetingType,
		Status:      domain.MeetingScheduled,
		Agenda:      input.Agenda,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("meeting_id", created.ID).Str("type", string(meetingType)).Msg("meeting scheduled")
	return created, nil
}

func (s *MeetingService) List(ctx context.Context, filter ports.ListMeetingsFilter) ([]*domain.Meeting, error) {
	return s.repo.List(ctx, filter)
}

// UpdateStatus advances the meeting through its lifecycle. Completing or
// cancelling a meeting closes any vote still open.
func (s *MeetingService) UpdateStatus(ctx context.Context, id string, status domain.MeetingStatus) (*domain.Meeting, error) {
	meeting, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !meeting.Status.CanTransitionTo(status) {
		return nil, domain.ErrInvalidTransition
	}

	meeting.Status = status
	if status == domain.MeetingCompleted || status == domain.MeetingCancelled {
		for _, vote := range meeting.Votes {
			if vote.Status == domain.VoteActive {
				vote.Status = domain.VoteClosed
				vote.Results = vote.Tally()
			}
		}
	}
	if err := s.repo.Update(ctx, meeting); err != nil {
		return nil, err
	}
	return meeting, nil
}

// OpenVote puts a question to the owners. The meeting must still be live
// (SCHEDULED or IN_PROGRESS).
func (s *MeetingService) OpenVote(ctx context.Context, input ports.OpenVoteInput) (*domain.Vote, error) {
	if input.Question == "" || len(input.Options) < 2 {
		return nil, domain.ErrInvalidBallot
	}

	meeting, err := s.repo.FindByID(ctx, input.MeetingID)
	if err != nil {
		return nil, err
	}
	if meeting.Status != domain.MeetingScheduled && meeting.Status != domain.MeetingInProgress {
		return nil, domain.ErrInvalidTransition
	}

	vote := &domain.Vote{
		ID:       newVoteID(),
		Question: input.Question,
		Options:  input.Options,
		Status:   domain.VoteActive,
		Ballots:  make(map[string]string),
	}
	meeting.Votes = append(meeting.Votes, vote)
	if err := s.repo.Update(ctx, meeting); err != nil {
		return nil, err
	}

	s.logger.Info().Str("meeting_id", meeting.ID).Str("vote_id", vote.ID).Msg("vote opened")
	return vote, nil
}

// CastBallot records one voter's choice. Voting twice, voting on a closed
// question and voting for an unlisted option are all rejected.
func (s *MeetingService) CastBallot(ctx context.Context, meetingID, voteID, voterID, option string) (*domain.Vote, error) {
	meeting, err := s.repo.FindByID(ctx, meetingID)
	if err != nil {
		return nil, err
	}

	vote := meeting.VoteByID(voteID)
	if vote == nil {
		return nil, domain.ErrVoteNotFound
	}
	if vote.Status != domain.VoteActive {
		return nil, domain.ErrInvalidTransition
	}
	if !vote.HasOption(option) {
		return nil, domain.ErrInvalidBallot
	}
	if _, voted := vote.Ballots[voterID]; voted {
		return nil, domain.ErrAlreadyVoted
	}

	if vote.Ballots == nil {
		vote.Ballots = make(map[string]string)
	}
	vote.Ballots[voterID] = option
	vote.Results = vote.Tally()
	if err := s.repo.Update(ctx, meeting); err != nil {
		return nil, err
	}
	return vote, nil
}

// CloseVote ends the poll; the tally at close time is the final result.
func (s *MeetingService) CloseVote(ctx context.Context, meetingID, voteID string) (*domain.Vote, error) {
	meeting, err := s.repo.FindByID(ctx, meetingID)
	if err != nil {
		return nil, err
	}

	vote := meeting.VoteByID(voteID)
	if vote == nil {
		return nil, domain.ErrVoteNotFound
	}
	if vote.Status != domain.VoteActive {
		return nil, domain.ErrInvalidTransition
	}

	vote.Status = domain.VoteClosed
	vote.Results = vote.Tally()
	if err := s.repo.Update(ctx, meeting); err != nil {
		return nil, err
	}

	s.logger.Info().Str("meeting_id", meeting.ID).Str("vote_id", vote.ID).Msg("vote closed")
	return vote, nil
}

func newVoteID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
