package identity

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"

	"anoa.com/sekolahadmin/internal/cache"
	"anoa.com/sekolahadmin/internal/model"
	"anoa.com/sekolahadmin/internal/modules/identity/dto"
	"anoa.com/sekolahadmin/internal/modules/identity/search"
)

// ProviderClient is satisfied by client.Client.
type ProviderClient interface {
	ListUsers(ctx context.Context) ([]dto.IdentityUser, error)
}

// DirectoryService resolves local users against the identity provider. The
// identity list is fetched once per cache window and reconciliation is a
// single batched map lookup rather than a per-row scan.
type DirectoryService interface {
	ListIdentities(ctx context.Context) ([]dto.IdentityUser, error)
	Resolve(ctx context.Context, users []model.User) ([]dto.DirectoryEntry, error)
	Search(ctx context.Context, query string) ([]dto.IdentityProfile, error)
	Refresh(ctx context.Context) (int, error)
}

type directoryService struct {
	client ProviderClient
	cache  cache.Cache
	index  search.Index
	ttl    time.Duration
}

func NewDirectoryService(client ProviderClient, c cache.Cache, index search.Index, ttl time.Duration) DirectoryService {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &directoryService{
		client: client,
		cache:  c,
		index:  index,
		ttl:    ttl,
	}
}

func (s *directoryService) ListIdentities(ctx context.Context) ([]dto.IdentityUser, error) {
	var cached []dto.IdentityUser
	if hit, err := s.cache.GetJSON(ctx, cache.KeyIdentityUsers, &cached); err == nil && hit {
		return cached, nil
	}

	users, err := s.client.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetJSON(ctx, cache.KeyIdentityUsers, users, s.ttl); err != nil {
		log.Printf("failed to cache identity users: %v", err)
	}

	return users, nil
}

// Resolve decorates each user with its identity record's name/email/avatar.
// A user whose clerk_id is unset, or points at a record the provider no
// longer returns, gets the placeholder decoration; a stale reference is not
// an error.
func (s *directoryService) Resolve(ctx context.Context, users []model.User) ([]dto.DirectoryEntry, error) {
	identities, err := s.ListIdentities(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]dto.IdentityUser, len(identities))
	for _, identity := range identities {
		byID[identity.ID] = identity
	}

	entries := make([]dto.DirectoryEntry, 0, len(users))
	for _, user := range users {
		entry := dto.DirectoryEntry{
			UserID:    user.ID,
			ClerkID:   user.ClerkID,
			Name:      dto.PlaceholderName,
			Email:     dto.PlaceholderEmail,
			RoleNames: roleNames(user.Roles),
		}

		if user.ClerkID != nil {
			if identity, ok := byID[*user.ClerkID]; ok {
				entry.HasIdentity = true
				entry.Name = identity.FullName()
				entry.Email = identity.PrimaryEmail()
				entry.AvatarURL = identity.ImageURL
			}
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

func (s *directoryService) Search(ctx context.Context, query string) ([]dto.IdentityProfile, error) {
	if s.index != nil {
		profiles, err := s.index.Search(query, 20)
		if err == nil {
			return profiles, nil
		}
		log.Printf("identity search index unavailable, falling back to list filter: %v", err)
	}

	// Fallback: substring filter over the cached identity list
	identities, err := s.ListIdentities(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	var profiles []dto.IdentityProfile
	for _, identity := range identities {
		profile := dto.ProfileOf(identity)
		if needle == "" ||
			strings.Contains(strings.ToLower(profile.Name), needle) ||
			strings.Contains(strings.ToLower(profile.Email), needle) {
			profiles = append(profiles, profile)
		}
	}

	sort.Slice(profiles, func(i, j int) bool { return profiles[i].Name < profiles[j].Name })
	if len(profiles) > 20 {
		profiles = profiles[:20]
	}
	return profiles, nil
}

// Refresh drops the cached identity list, refetches it and reindexes the
// picker. Returns the number of identity records fetched.
func (s *directoryService) Refresh(ctx context.Context) (int, error) {
	if err := s.cache.Invalidate(ctx, cache.KeyIdentityUsers); err != nil {
		log.Printf("failed to invalidate identity cache: %v", err)
	}

	identities, err := s.ListIdentities(ctx)
	if err != nil {
		return 0, err
	}

	if s.index != nil {
		profiles := make([]dto.IdentityProfile, 0, len(identities))
		for _, identity := range identities {
			profiles = append(profiles, dto.ProfileOf(identity))
		}
		if err := s.index.IndexIdentities(profiles); err != nil {
			log.Printf("failed to reindex identities: %v", err)
		}
	}

	return len(identities), nil
}

func roleNames(userRoles []model.UserRole) []string {
	names := make([]string, 0, len(userRoles))
	for _, ur := range userRoles {
		names = append(names, ur.Role.Name)
	}
	return names
}
