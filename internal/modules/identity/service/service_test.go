package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"anoa.com/sekolahadmin/internal/cache"
	"anoa.com/sekolahadmin/internal/model"
	"anoa.com/sekolahadmin/internal/modules/identity/dto"
)

type fakeProvider struct {
	users []dto.IdentityUser
	err   error
	calls int
}

func (f *fakeProvider) ListUsers(ctx context.Context) ([]dto.IdentityUser, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.users, nil
}

func identityFixture() []dto.IdentityUser {
	return []dto.IdentityUser{
		{
			ID:        "user_2abc",
			FirstName: "Budi",
			LastName:  "Santoso",
			EmailAddresses: []dto.IdentityEmail{
				{EmailAddress: "budi@mail.com"},
			},
			ImageURL: "https://img.clerk.com/budi.png",
		},
		{
			ID:        "user_2def",
			FirstName: "Siti",
			LastName:  "Aminah",
			EmailAddresses: []dto.IdentityEmail{
				{EmailAddress: "siti@mail.com"},
			},
		},
	}
}

func strPtr(s string) *string { return &s }

func TestResolveDecoratesMatchedUsers(t *testing.T) {
	provider := &fakeProvider{users: identityFixture()}
	svc := NewDirectoryService(provider, cache.NewMemoryCache(), nil, time.Minute)

	users := []model.User{
		{ID: "user_2abc", ClerkID: strPtr("user_2abc")},
		{ID: "local-1", ClerkID: nil},
		{ID: "local-2", ClerkID: strPtr("user_gone")},
	}

	entries, err := svc.Resolve(context.Background(), users)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}

	matched := entries[0]
	if !matched.HasIdentity {
		t.Error("user with matching clerk_id should be decorated")
	}
	if matched.Name != "Budi Santoso" || matched.Email != "budi@mail.com" {
		t.Errorf("decoration = %q / %q, want Budi Santoso / budi@mail.com", matched.Name, matched.Email)
	}
	if matched.AvatarURL != "https://img.clerk.com/budi.png" {
		t.Errorf("avatar = %q", matched.AvatarURL)
	}

	for i, entry := range entries[1:] {
		if entry.HasIdentity {
			t.Errorf("entry %d should not resolve", i+1)
		}
		if entry.Name != dto.PlaceholderName || entry.Email != dto.PlaceholderEmail {
			t.Errorf("entry %d placeholder = %q / %q", i+1, entry.Name, entry.Email)
		}
	}
}

func TestResolveEmptyUserList(t *testing.T) {
	provider := &fakeProvider{users: identityFixture()}
	svc := NewDirectoryService(provider, cache.NewMemoryCache(), nil, time.Minute)

	entries, err := svc.Resolve(context.Background(), nil)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries, want 0", len(entries))
	}
}

func TestListIdentitiesUsesCache(t *testing.T) {
	provider := &fakeProvider{users: identityFixture()}
	svc := NewDirectoryService(provider, cache.NewMemoryCache(), nil, time.Minute)
	ctx := context.Background()

	if _, err := svc.ListIdentities(ctx); err != nil {
		t.Fatalf("first ListIdentities: %v", err)
	}
	if _, err := svc.ListIdentities(ctx); err != nil {
		t.Fatalf("second ListIdentities: %v", err)
	}

	if provider.calls != 1 {
		t.Errorf("provider called %d times, want 1 (second hit from cache)", provider.calls)
	}
}

func TestRefreshInvalidatesCache(t *testing.T) {
	provider := &fakeProvider{users: identityFixture()}
	svc := NewDirectoryService(provider, cache.NewMemoryCache(), nil, time.Minute)
	ctx := context.Background()

	if _, err := svc.ListIdentities(ctx); err != nil {
		t.Fatalf("ListIdentities: %v", err)
	}

	count, err := svc.Refresh(ctx)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if count != 2 {
		t.Errorf("Refresh count = %d, want 2", count)
	}
	if provider.calls != 2 {
		t.Errorf("provider called %d times, want 2 (refresh bypasses cache)", provider.calls)
	}
}

func TestResolveUpstreamFailure(t *testing.T) {
	provider := &fakeProvider{err: errors.New("connection refused")}
	svc := NewDirectoryService(provider, cache.NewMemoryCache(), nil, time.Minute)

	if _, err := svc.Resolve(context.Background(), []model.User{{ID: "u1"}}); err == nil {
		t.Error("expected error when the provider is unreachable")
	}
}

func TestSearchFallbackFilters(t *testing.T) {
	provider := &fakeProvider{users: identityFixture()}
	svc := NewDirectoryService(provider, cache.NewMemoryCache(), nil, time.Minute)

	profiles, err := svc.Search(context.Background(), "siti")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(profiles) != 1 {
		t.Fatalf("got %d profiles, want 1", len(profiles))
	}
	if profiles[0].ID != "user_2def" {
		t.Errorf("profile ID = %q, want user_2def", profiles[0].ID)
	}
}

func TestSearchEmptyQueryReturnsAll(t *testing.T) {
	provider := &fakeProvider{users: identityFixture()}
	svc := NewDirectoryService(provider, cache.NewMemoryCache(), nil, time.Minute)

	profiles, err := svc.Search(context.Background(), "")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(profiles) != 2 {
		t.Errorf("got %d profiles, want 2", len(profiles))
	}
}
