package service

import (
	"Credo/internal/model"
	"Credo/internal/pkg/kafka"
	"Credo/internal/pkg/redis"
	"Credo/internal/pkg/util"
	"context"
	"errors"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

type voteKey struct {
	voterID       uint64
	publicationID uint64
}

type fakeVoteRepo struct {
	votes map[voteKey]*model.Vote
}

func newFakeVoteRepo() *fakeVoteRepo {
	return &fakeVoteRepo{votes: make(map[voteKey]*model.Vote)}
}

func (s *fakeVoteRepo) Get(_ context.Context, voterID, publicationID uint64) (*model.Vote, error) {
	return s.votes[voteKey{voterID, publicationID}], nil
}

func (s *fakeVoteRepo) Upsert(_ context.Context, vote *model.Vote) error {
	key := voteKey{vote.VoterID, vote.PublicationID}
	if existing, ok := s.votes[key]; ok {
		existing.Believed = vote.Believed
		return nil
	}
	s.votes[key] = vote
	return nil
}

func (s *fakeVoteRepo) CountByStance(_ context.Context, publicationID uint64) (int64, int64, error) {
	var believed, disbelieved int64
	for key, vote := range s.votes {
		if key.publicationID != publicationID || vote.Believed == nil {
			continue
		}
		if *vote.Believed {
			believed++
		} else {
			disbelieved++
		}
	}
	return believed, disbelieved, nil
}

type fakeProducer struct {
	events []*kafka.VoteEvent
}

func (s *fakeProducer) Publish(_ context.Context, event *kafka.VoteEvent) error {
	s.events = append(s.events, event)
	return nil
}

func (s *fakeProducer) Close() error { return nil }

// 脏集合写入走全局客户端，单测里指向一个必然连不上的地址，
// 让它走快速失败分支而不是空指针
func setTestRedis(t *testing.T) {
	t.Helper()
	old := redis.Rdb
	redis.Rdb = goredis.NewClient(&goredis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() {
		_ = redis.Rdb.Close()
		redis.Rdb = old
	})
}

func TestCastVoteNotFound(t *testing.T) {
	setTestConfig(t)
	setTestRedis(t)
	voteRepo := newFakeVoteRepo()
	publicationRepo := &fakePublicationRepo{}
	svc := NewVoteService(voteRepo, publicationRepo, nil)

	err := svc.CastVote(context.Background(), 1, 999, util.PtrBool(true))
	if !errors.Is(err, ErrPublicationNotFound) {
		t.Fatalf("err = %v, want ErrPublicationNotFound", err)
	}
	if len(voteRepo.votes) != 0 {
		t.Error("vote against missing publication must not be written")
	}
}

func TestCastVoteInsertThenRevise(t *testing.T) {
	setTestConfig(t)
	setTestRedis(t)
	voteRepo := newFakeVoteRepo()
	publicationRepo := &fakePublicationRepo{}
	_ = publicationRepo.Create(context.Background(), &model.Publication{URL: "https://vk.com/v", Platform: model.PlatformVK})
	svc := NewVoteService(voteRepo, publicationRepo, nil)

	if err := svc.CastVote(context.Background(), 7, 1, util.PtrBool(true)); err != nil {
		t.Fatalf("first vote: %v", err)
	}
	if err := svc.CastVote(context.Background(), 7, 1, util.PtrBool(false)); err != nil {
		t.Fatalf("revised vote: %v", err)
	}

	if len(voteRepo.votes) != 1 {
		t.Fatalf("revote must stay a single row, got %d", len(voteRepo.votes))
	}
	vote := voteRepo.votes[voteKey{7, 1}]
	if vote.Believed == nil || *vote.Believed {
		t.Error("revote must overwrite the stance in place")
	}
}

func TestCastVoteIdempotentRepeat(t *testing.T) {
	setTestConfig(t)
	setTestRedis(t)
	voteRepo := newFakeVoteRepo()
	publicationRepo := &fakePublicationRepo{}
	_ = publicationRepo.Create(context.Background(), &model.Publication{URL: "https://vk.com/v", Platform: model.PlatformVK})
	producer := &fakeProducer{}
	svc := NewVoteService(voteRepo, publicationRepo, producer)

	for i := 0; i < 3; i++ {
		if err := svc.CastVote(context.Background(), 7, 1, util.PtrBool(true)); err != nil {
			t.Fatalf("vote %d: %v", i, err)
		}
	}

	if len(voteRepo.votes) != 1 {
		t.Fatalf("repeated identical votes must stay a single row, got %d", len(voteRepo.votes))
	}
	believed, disbelieved, _ := voteRepo.CountByStance(context.Background(), 1)
	if believed != 1 || disbelieved != 0 {
		t.Errorf("counts = %d/%d, want 1/0", believed, disbelieved)
	}
	// 表态没变的重复投票是空操作，只有首票触发计票同步
	if len(producer.events) != 1 {
		t.Errorf("identical repeats published %d events, want 1", len(producer.events))
	}
}

func TestCastVoteExplicitNullStance(t *testing.T) {
	setTestConfig(t)
	setTestRedis(t)
	voteRepo := newFakeVoteRepo()
	publicationRepo := &fakePublicationRepo{}
	_ = publicationRepo.Create(context.Background(), &model.Publication{URL: "https://vk.com/v", Platform: model.PlatformVK})
	svc := NewVoteService(voteRepo, publicationRepo, nil)

	if err := svc.CastVote(context.Background(), 7, 1, nil); err != nil {
		t.Fatalf("null stance vote: %v", err)
	}
	vote := voteRepo.votes[voteKey{7, 1}]
	if vote == nil || vote.Believed != nil {
		t.Error("null stance must be recorded as a row with empty stance")
	}
	believed, disbelieved, _ := voteRepo.CountByStance(context.Background(), 1)
	if believed != 0 || disbelieved != 0 {
		t.Errorf("null stance must not count, got %d/%d", believed, disbelieved)
	}
}

func TestCastVotePublishesEvent(t *testing.T) {
	setTestConfig(t)
	setTestRedis(t)
	voteRepo := newFakeVoteRepo()
	publicationRepo := &fakePublicationRepo{}
	_ = publicationRepo.Create(context.Background(), &model.Publication{URL: "https://vk.com/v", Platform: model.PlatformVK})
	producer := &fakeProducer{}
	svc := NewVoteService(voteRepo, publicationRepo, producer)

	if err := svc.CastVote(context.Background(), 7, 1, util.PtrBool(true)); err != nil {
		t.Fatalf("CastVote: %v", err)
	}

	if len(producer.events) != 1 {
		t.Fatalf("expected 1 vote event, got %d", len(producer.events))
	}
	event := producer.events[0]
	if event.PublicationID != 1 || event.VoterID != 7 {
		t.Errorf("unexpected event: %+v", event)
	}
}
