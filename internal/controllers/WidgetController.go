package controllers

import (
	"net/http"
	"strconv"
	"time"

	json "github.com/goccy/go-json"

	"lifedash/internal/exif"
	"lifedash/internal/geo"
	"lifedash/internal/linkmeta"
	"lifedash/internal/providers"
	"lifedash/internal/services"
	"lifedash/internal/solar"
	"lifedash/internal/weather"
)

// WidgetController serves the read-mostly widget feeds: weather, location,
// link metadata, EXIF extraction, the sun arc and the daily quote. Responses
// that depend only on the request go through the shared cache.
type WidgetController struct {
	logger   providers.Logger
	cache    providers.CacheProviderInterface
	weather  weather.ClientInterface
	resolver geo.ResolverInterface
	linkMeta linkmeta.FetcherInterface
}

func NewWidgetController(
	logger providers.Logger,
	cache providers.CacheProviderInterface,
	weatherClient weather.ClientInterface,
	resolver geo.ResolverInterface,
	linkMeta linkmeta.FetcherInterface,
) *WidgetController {
	return &WidgetController{
		logger:   logger,
		cache:    cache,
		weather:  weatherClient,
		resolver: resolver,
		linkMeta: linkMeta,
	}
}

// serveFromCacheOrCompute answers from the byte cache when possible and
// otherwise marshals the computed value and stores it for the next hit.
func (wc *WidgetController) serveFromCacheOrCompute(w http.ResponseWriter, key string, compute func() (any, error)) {
	if cached, ok := wc.cache.Get(key); ok {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(cached)
		return
	}
	value, err := compute()
	if err != nil {
		wc.logger.Errorf(providers.TypeGet, "Computing %s failed: %s", key, err)
		http.Error(w, "Bad Gateway", http.StatusBadGateway)
		return
	}
	gson, err := json.Marshal(value)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	wc.cache.Set(key, gson)
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(gson)
}

// coords reads lat/lon from the query, falling back to the resolver chain
// when they are absent or malformed.
func (wc *WidgetController) coords(r *http.Request) (float64, float64, string) {
	q := r.URL.Query()
	lat, errLat := strconv.ParseFloat(q.Get("lat"), 64)
	lon, errLon := strconv.ParseFloat(q.Get("lon"), 64)
	if errLat == nil && errLon == nil {
		return lat, lon, ""
	}
	loc := wc.resolver.Resolve(r.Context())
	return loc.Lat, loc.Lon, loc.Label
}

func coordsKey(prefix string, lat, lon float64) string {
	return prefix + ":" + strconv.FormatFloat(lat, 'f', 3, 64) + "," + strconv.FormatFloat(lon, 'f', 3, 64)
}

func (wc *WidgetController) GetCurrentWeather(w http.ResponseWriter, r *http.Request) {
	lat, lon, _ := wc.coords(r)
	wc.serveFromCacheOrCompute(w, coordsKey("weather:current", lat, lon), func() (any, error) {
		return wc.weather.Current(r.Context(), lat, lon)
	})
}

func (wc *WidgetController) GetHourlyWeather(w http.ResponseWriter, r *http.Request) {
	lat, lon, _ := wc.coords(r)
	wc.serveFromCacheOrCompute(w, coordsKey("weather:hourly", lat, lon), func() (any, error) {
		hours, err := wc.weather.Hourly(r.Context(), lat, lon, time.Now())
		if err != nil {
			return nil, err
		}
		return struct {
			Hours []weather.HourEntry `json:"hours"`
		}{hours}, nil
	})
}

func (wc *WidgetController) GetLocation(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, wc.resolver.Resolve(r.Context()))
}

func (wc *WidgetController) GetLinkMeta(w http.ResponseWriter, r *http.Request) {
	pageURL := r.URL.Query().Get("url")
	if pageURL == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	wc.serveFromCacheOrCompute(w, "linkmeta:"+pageURL, func() (any, error) {
		return wc.linkMeta.Fetch(r.Context(), pageURL), nil
	})
}

func (wc *WidgetController) PostExif(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		DataUrl string `json:"dataUrl"`
	}
	if !decodeBody(w, r, &payload) {
		return
	}
	tags, ok := exif.DecodeDataURL(payload.DataUrl)
	writeJSON(w, http.StatusOK, struct {
		Found bool        `json:"found"`
		Tags  exif.TagMap `json:"tags"`
	}{ok, tags})
}

func (wc *WidgetController) GetSun(w http.ResponseWriter, r *http.Request) {
	lat, lon, _ := wc.coords(r)
	writeJSON(w, http.StatusOK, solar.ComputeArc(lat, lon, time.Now()))
}

func (wc *WidgetController) GetQuote(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	wc.serveFromCacheOrCompute(w, "quote:"+now.UTC().Format("20060102"), func() (any, error) {
		return services.QuoteOfTheDay(now), nil
	})
}
