package services

import (
	"context"
	"errors"
	"slices"

	"github.com/dmitrijs2005/moodkeeper/internal/client/storage"
	"github.com/dmitrijs2005/moodkeeper/internal/common"
)

// SavedService keeps the ids of bookmarked articles under the
// "savedResources" key.
type SavedService interface {
	List(ctx context.Context) ([]string, error)
	Save(ctx context.Context, id string) (bool, error)
	Unsave(ctx context.Context, id string) (bool, error)
}

type savedService struct {
	store *storage.Store
}

func NewSavedService(store *storage.Store) SavedService {
	return &savedService{store: store}
}

func (s *savedService) List(ctx context.Context) ([]string, error) {
	var ids []string
	err := storage.GetJSON(ctx, s.store, common.StorageKeySavedResources, &ids)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, nil
	}
	return ids, err
}

// Save adds id and reports whether it was new.
func (s *savedService) Save(ctx context.Context, id string) (bool, error) {
	added := false
	err := storage.UpdateJSON(ctx, s.store, common.StorageKeySavedResources, func(ids []string) ([]string, error) {
		if slices.Contains(ids, id) {
			return ids, nil
		}
		added = true
		return append(ids, id), nil
	})
	return added, err
}

// Unsave removes id and reports whether it was present.
func (s *savedService) Unsave(ctx context.Context, id string) (bool, error) {
	removed := false
	err := storage.UpdateJSON(ctx, s.store, common.StorageKeySavedResources, func(ids []string) ([]string, error) {
		i := slices.Index(ids, id)
		if i < 0 {
			return ids, nil
		}
		removed = true
		return slices.Delete(ids, i, i+1), nil
	})
	return removed, err
}
