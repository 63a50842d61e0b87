package services

import (
	"fmt"
	"time"

	json "github.com/goccy/go-json"

	"lifedash/internal/models"
	"lifedash/internal/providers"
	"lifedash/internal/storage"
)

type WorldClockEntry struct {
	models.City
	Time string `json:"time"`
	Dst  bool   `json:"dst"`
}

type WorldClockServiceInterface interface {
	List(now time.Time) []WorldClockEntry
	Add(tz, label string) (models.City, error)
	Remove(id string) []models.City
}

type WorldClockService struct {
	store  storage.StoreInterface
	logger providers.Logger
}

func NewWorldClockService(store storage.StoreInterface, logger providers.Logger) WorldClockServiceInterface {
	return &WorldClockService{store: store, logger: logger}
}

func (ws *WorldClockService) cities() []models.City {
	raw, ok := ws.store.Get(storage.WorldClockKey)
	if !ok {
		return models.DefaultCities()
	}
	var cities []models.City
	if err := json.Unmarshal(raw, &cities); err != nil {
		ws.logger.Warnf(providers.TypeApp, "Discarding corrupt world-clock blob: %s", err)
		return models.DefaultCities()
	}
	if cities == nil {
		cities = []models.City{}
	}
	return cities
}

func (ws *WorldClockService) List(now time.Time) []WorldClockEntry {
	cities := ws.cities()
	out := make([]WorldClockEntry, 0, len(cities))
	for _, c := range cities {
		loc, err := time.LoadLocation(c.Tz)
		if err != nil {
			// keep the entry but show nothing rather than dropping user data
			out = append(out, WorldClockEntry{City: c})
			continue
		}
		out = append(out, WorldClockEntry{
			City: c,
			Time: now.In(loc).Format("15:04"),
			Dst:  zoneObservesDST(now.Year(), loc),
		})
	}
	return out
}

func (ws *WorldClockService) Add(tz, label string) (models.City, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return models.City{}, fmt.Errorf("unknown timezone %q", tz)
	}
	if label == "" {
		label = loc.String()
	}
	city := models.City{Id: models.NewId("wc"), Tz: tz, Label: label}
	ws.persist(append(ws.cities(), city))
	return city, nil
}

func (ws *WorldClockService) Remove(id string) []models.City {
	cities := ws.cities()
	kept := make([]models.City, 0, len(cities))
	for _, c := range cities {
		if c.Id != id {
			kept = append(kept, c)
		}
	}
	ws.persist(kept)
	return kept
}

func (ws *WorldClockService) persist(cities []models.City) {
	raw, err := json.Marshal(cities)
	if err != nil {
		ws.logger.Errorf(providers.TypeApp, "World-clock marshal failed: %s", err)
		return
	}
	if err := ws.store.Set(storage.WorldClockKey, raw); err != nil {
		ws.logger.Errorf(providers.TypeApp, "World-clock write failed: %s", err)
	}
}

// zoneObservesDST reports whether a zone shifts its offset between January
// and July of the given year.
func zoneObservesDST(year int, loc *time.Location) bool {
	_, janOff := time.Date(year, time.January, 1, 12, 0, 0, 0, loc).Zone()
	_, julOff := time.Date(year, time.July, 1, 12, 0, 0, 0, loc).Zone()
	return janOff != julOff
}
