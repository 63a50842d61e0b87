package services

import (
	json "github.com/goccy/go-json"

	"lifedash/internal/models"
	"lifedash/internal/providers"
	"lifedash/internal/storage"
)

type QuickLaunchServiceInterface interface {
	List() []models.QuickLaunchItem
	Add(url, title, icon string) (models.QuickLaunchItem, []models.QuickLaunchItem)
	Remove(id string) []models.QuickLaunchItem
	Replace(items []models.QuickLaunchItem) []models.QuickLaunchItem
	Merge(incoming []models.QuickLaunchItem) []models.QuickLaunchItem
}

// QuickLaunchService reads its list fresh from the store on every call; the
// store blob is the single source of truth shared with the backup engine.
type QuickLaunchService struct {
	store  storage.StoreInterface
	logger providers.Logger
}

func NewQuickLaunchService(store storage.StoreInterface, logger providers.Logger) QuickLaunchServiceInterface {
	return &QuickLaunchService{store: store, logger: logger}
}

func (qs *QuickLaunchService) List() []models.QuickLaunchItem {
	raw, ok := qs.store.Get(storage.QuickLaunchKey)
	if !ok {
		return models.DefaultQuickLaunch()
	}
	var items []models.QuickLaunchItem
	if err := json.Unmarshal(raw, &items); err != nil {
		qs.logger.Warnf(providers.TypeApp, "Discarding corrupt quick-launch blob: %s", err)
		return models.DefaultQuickLaunch()
	}
	if items == nil {
		items = []models.QuickLaunchItem{}
	}
	return items
}

// Add prepends a new item (newest-first). Empty title and icon fall back to
// the URL host and the s2 favicon endpoint.
func (qs *QuickLaunchService) Add(url, title, icon string) (models.QuickLaunchItem, []models.QuickLaunchItem) {
	normalized := models.NormalizeURL(url)
	if title == "" {
		title = models.Host(normalized)
	}
	if icon == "" {
		icon = models.FaviconURL(normalized)
	}
	item := models.QuickLaunchItem{
		Id:    models.NewId("ql"),
		Url:   normalized,
		Title: title,
		Icon:  icon,
	}
	next := append([]models.QuickLaunchItem{item}, qs.List()...)
	qs.persist(next)
	return item, next
}

func (qs *QuickLaunchService) Remove(id string) []models.QuickLaunchItem {
	items := qs.List()
	kept := make([]models.QuickLaunchItem, 0, len(items))
	for _, it := range items {
		if it.Id != id {
			kept = append(kept, it)
		}
	}
	qs.persist(kept)
	return kept
}

func (qs *QuickLaunchService) Replace(items []models.QuickLaunchItem) []models.QuickLaunchItem {
	if items == nil {
		items = []models.QuickLaunchItem{}
	}
	qs.persist(items)
	return items
}

// Merge concatenates current and incoming, de-duplicated by id (URL when the
// id is absent) with incoming winning on collision.
func (qs *QuickLaunchService) Merge(incoming []models.QuickLaunchItem) []models.QuickLaunchItem {
	merged := uniqueBy(append(qs.List(), incoming...), func(it models.QuickLaunchItem) string {
		if it.Id != "" {
			return it.Id
		}
		return it.Url
	})
	qs.persist(merged)
	return merged
}

func (qs *QuickLaunchService) persist(items []models.QuickLaunchItem) {
	raw, err := json.Marshal(items)
	if err != nil {
		qs.logger.Errorf(providers.TypeApp, "Quick-launch marshal failed: %s", err)
		return
	}
	if err := qs.store.Set(storage.QuickLaunchKey, raw); err != nil {
		qs.logger.Errorf(providers.TypeApp, "Quick-launch write failed: %s", err)
	}
}
