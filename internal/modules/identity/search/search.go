// Package search maintains the Meilisearch index backing the identity picker.
package search

import (
	"encoding/json"
	"html"
	"log"
	"strings"

	"anoa.com/sekolahadmin/internal/modules/identity/dto"
	"github.com/meilisearch/meilisearch-go"
	"github.com/microcosm-cc/bluemonday"
)

const identityIndex = "identities"

type Index interface {
	IndexIdentities(profiles []dto.IdentityProfile) error
	Search(query string, limit int) ([]dto.IdentityProfile, error)
}

type meiliIndex struct {
	client    meilisearch.ServiceManager
	sanitizer *bluemonday.Policy
}

func NewMeiliIndex(client meilisearch.ServiceManager) Index {
	s := &meiliIndex{
		client:    client,
		sanitizer: bluemonday.StrictPolicy(),
	}
	s.initIndex()
	return s
}

func (s *meiliIndex) initIndex() {
	sortableAttrs := []string{"name"}
	if _, err := s.client.Index(identityIndex).UpdateSortableAttributes(&sortableAttrs); err != nil {
		log.Printf("Failed to update identities sortable attributes: %v", err)
	}
}

func (s *meiliIndex) cleanForIndex(value string) string {
	sanitized := s.sanitizer.Sanitize(value)
	cleanText := html.UnescapeString(sanitized)
	return strings.Join(strings.Fields(cleanText), " ")
}

func (s *meiliIndex) IndexIdentities(profiles []dto.IdentityProfile) error {
	docs := make([]dto.IdentityProfile, 0, len(profiles))
	for _, p := range profiles {
		p.Name = s.cleanForIndex(p.Name)
		docs = append(docs, p)
	}

	task, err := s.client.Index(identityIndex).AddDocuments(docs, strPtr("id"))
	if err != nil {
		return err
	}
	log.Printf("Indexed %d identities, task id: %d", len(docs), task.TaskUID)
	return nil
}

func (s *meiliIndex) Search(query string, limit int) ([]dto.IdentityProfile, error) {
	resp, err := s.client.Index(identityIndex).Search(query, &meilisearch.SearchRequest{
		Limit: int64(limit),
	})
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(resp.Hits)
	if err != nil {
		return nil, err
	}

	var profiles []dto.IdentityProfile
	if err := json.Unmarshal(raw, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

func strPtr(s string) *string {
	return &s
}
