// Package service implements the weather lookup operations on top of the
// network client and the place store.
package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/umahmood/haversine"
	"golang.org/x/sync/errgroup"

	"github.com/Accelerator586/SunnyWeather/internal/caiyun"
	"github.com/Accelerator586/SunnyWeather/internal/model"
	"github.com/Accelerator586/SunnyWeather/internal/repository"
)

//go:generate mockgen -source=service.go -destination=mock/mock.go Client,PlaceStore

// Client provides the three weather API requests.
type Client interface {
	SearchPlaces(ctx context.Context, query string) (*caiyun.PlaceResponse, error)
	Realtime(ctx context.Context, loc model.Location) (*caiyun.RealtimeResponse, error)
	Daily(ctx context.Context, loc model.Location) (*caiyun.DailyResponse, error)
}

// PlaceStore persists at most one saved place.
type PlaceStore interface {
	Save(ctx context.Context, place model.Place) error
	Get(ctx context.Context) (model.Place, error)
	Exists(ctx context.Context) (bool, error)
}

// WeatherService provides weather lookup functionality.
type WeatherService struct {
	client Client
	store  PlaceStore
}

// New creates new WeatherService.
func New(client Client, store PlaceStore) *WeatherService {
	return &WeatherService{
		client: client,
		store:  store,
	}
}

// SearchPlaces looks up place candidates for the query. A response whose
// status is not ok is a failure even though the transport succeeded. When a
// place is saved, candidates are ordered by distance to it, nearest first.
func (ws *WeatherService) SearchPlaces(ctx context.Context, query string) ([]model.Place, error) {
	resp, err := ws.client.SearchPlaces(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search places: %w", err)
	}

	if resp.Status != caiyun.StatusOK {
		return nil, fmt.Errorf("place search response status is %s", resp.Status)
	}

	places := make([]model.Place, 0, len(resp.Places))
	for _, entry := range resp.Places {
		places = append(places, entry.Place())
	}

	ws.rankBySavedPlace(ctx, places)

	return places, nil
}

// rankBySavedPlace sorts candidates by distance to the saved place. Ranking
// is best effort: without a saved place the API order is kept.
func (ws *WeatherService) rankBySavedPlace(ctx context.Context, places []model.Place) {
	saved, err := ws.store.Get(ctx)
	if err != nil {
		return
	}

	origin := haversine.Coord{Lat: saved.Location.Lat, Lon: saved.Location.Lng}
	sort.SliceStable(places, func(i, j int) bool {
		_, di := haversine.Distance(origin, haversine.Coord{Lat: places[i].Location.Lat, Lon: places[i].Location.Lng})
		_, dj := haversine.Distance(origin, haversine.Coord{Lat: places[j].Location.Lat, Lon: places[j].Location.Lng})
		return di < dj
	})
}

// RefreshWeather fetches current conditions and the daily forecast for the
// location. The two requests are independent and issued concurrently; the
// aggregate is only built when both report an ok status.
func (ws *WeatherService) RefreshWeather(ctx context.Context, loc model.Location) (*model.Weather, error) {
	var (
		realtime *caiyun.RealtimeResponse
		daily    *caiyun.DailyResponse
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		resp, err := ws.client.Realtime(gctx, loc)
		if err != nil {
			return fmt.Errorf("failed to get realtime weather: %w", err)
		}
		realtime = resp
		return nil
	})

	g.Go(func() error {
		resp, err := ws.client.Daily(gctx, loc)
		if err != nil {
			return fmt.Errorf("failed to get daily forecast: %w", err)
		}
		daily = resp
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if realtime.Status != caiyun.StatusOK || daily.Status != caiyun.StatusOK {
		return nil, fmt.Errorf("realtime response status is %s, daily response status is %s",
			realtime.Status, daily.Status)
	}

	return &model.Weather{
		Realtime: realtime.Snapshot(),
		Daily:    daily.Forecast(),
	}, nil
}

// SavePlace overwrites the saved place; the previous one, if any, is lost.
func (ws *WeatherService) SavePlace(ctx context.Context, place model.Place) error {
	if err := ws.store.Save(ctx, place); err != nil {
		return fmt.Errorf("failed to save place: %w", err)
	}

	return nil
}

// SavedPlace returns the saved place, or repository.ErrNoSavedPlace.
func (ws *WeatherService) SavedPlace(ctx context.Context) (model.Place, error) {
	place, err := ws.store.Get(ctx)
	if errors.Is(err, repository.ErrNoSavedPlace) {
		return model.Place{}, err
	}
	if err != nil {
		return model.Place{}, fmt.Errorf("failed to get saved place: %w", err)
	}

	return place, nil
}

// IsPlaceSaved reports whether a place has been saved.
func (ws *WeatherService) IsPlaceSaved(ctx context.Context) (bool, error) {
	saved, err := ws.store.Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check saved place: %w", err)
	}

	return saved, nil
}
