package service

import (
	"context"
	"fmt"
	"sync"
	"time"
	"venturemind/internal/model"
	"venturemind/pkg/channel"
)

type fakeCompleter struct {
	reply    string
	err      error
	calls    int
	lastUser string
}

func (f *fakeCompleter) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	f.calls++
	f.lastUser = userPrompt
	return f.reply, f.err
}

func (f *fakeCompleter) Name() string {
	return "fake"
}

type fakeAnalysisStore struct {
	err      error
	insights []*model.Insight
	ads      []*model.AdContent
}

func (f *fakeAnalysisStore) SaveAnalysis(ctx context.Context, insight *model.Insight, ads []*model.AdContent) error {
	if f.err != nil {
		return f.err
	}
	insight.ID = fmt.Sprintf("insight-%d", len(f.insights)+1)
	insight.CreatedAt = time.Now()
	f.insights = append(f.insights, insight)
	for i, ad := range ads {
		ad.ID = fmt.Sprintf("ad-%d", len(f.ads)+i+1)
	}
	f.ads = append(f.ads, ads...)
	return nil
}

// fakeAdStore serializes PublishAd the way the row lock does.
type fakeAdStore struct {
	mu  sync.Mutex
	ads map[string]*model.AdContent
}

func newFakeAdStore(ads ...model.AdContent) *fakeAdStore {
	s := &fakeAdStore{ads: make(map[string]*model.AdContent)}
	for i := range ads {
		ad := ads[i]
		s.ads[ad.ID] = &ad
	}
	return s
}

func (s *fakeAdStore) lookup(ownerID, id string) *model.AdContent {
	ad, ok := s.ads[id]
	if !ok || ad.OwnerID != ownerID {
		return nil
	}
	return ad
}

func (s *fakeAdStore) GetAd(ctx context.Context, ownerID, id string) (*model.AdContent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ad := s.lookup(ownerID, id)
	if ad == nil {
		return nil, nil
	}
	cp := *ad
	return &cp, nil
}

func (s *fakeAdStore) ApproveAd(ctx context.Context, ownerID, id string) (*model.AdContent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ad := s.lookup(ownerID, id)
	if ad == nil {
		return nil, nil
	}
	if ad.Status != model.StatusDraft {
		return nil, model.ErrInvalidState
	}
	ad.Status = model.StatusApproved
	cp := *ad
	return &cp, nil
}

func (s *fakeAdStore) PublishAd(ctx context.Context, ownerID, id string, postedAt time.Time, send func(model.AdContent) error) (*model.AdContent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ad := s.lookup(ownerID, id)
	if ad == nil {
		return nil, nil
	}
	if !ad.Status.Publishable() {
		return nil, model.ErrInvalidState
	}
	if err := send(*ad); err != nil {
		return nil, err
	}
	ad.Status = model.StatusPosted
	ad.PostedAt = &postedAt
	cp := *ad
	return &cp, nil
}

func (s *fakeAdStore) get(id string) model.AdContent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.ads[id]
}

type fakeProfiles struct {
	profile *model.Profile
	err     error
}

func (f *fakeProfiles) GetProfile(ctx context.Context, ownerID string) (*model.Profile, error) {
	if f.profile == nil || f.profile.OwnerID != ownerID {
		return nil, f.err
	}
	return f.profile, f.err
}

type fakeBackend struct {
	kind      channel.Kind
	needsCred bool
	err       error

	mu          sync.Mutex
	posts       []channel.Post
	credentials []string
}

func (b *fakeBackend) Kind() channel.Kind {
	return b.kind
}

func (b *fakeBackend) RequiresCredential() bool {
	return b.needsCred
}

func (b *fakeBackend) Send(ctx context.Context, post channel.Post, credential string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.posts = append(b.posts, post)
	b.credentials = append(b.credentials, credential)
	return b.err
}

func (b *fakeBackend) calls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.posts)
}

type fakeBackends map[channel.Kind]channel.Backend

func (f fakeBackends) Get(kind channel.Kind) (channel.Backend, bool) {
	b, ok := f[kind]
	return b, ok
}

func strPtr(s string) *string {
	return &s
}
