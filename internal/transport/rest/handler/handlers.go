package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Accelerator586/SunnyWeather/internal/logger"
	"github.com/Accelerator586/SunnyWeather/internal/model"
	"github.com/Accelerator586/SunnyWeather/internal/repository"
)

//go:generate mockgen -source=handlers.go -destination=mock/mock.go WeatherService

// WeatherService provides weather service methods.
type WeatherService interface {
	SearchPlaces(ctx context.Context, query string) ([]model.Place, error)
	RefreshWeather(ctx context.Context, loc model.Location) (*model.Weather, error)
	SavePlace(ctx context.Context, place model.Place) error
	SavedPlace(ctx context.Context) (model.Place, error)
}

// WeatherServer is a server for weather data processing.
type WeatherServer struct {
	service WeatherService
}

// NewWeatherServer creates new WeatherServer.
func NewWeatherServer(service WeatherService) *WeatherServer {
	return &WeatherServer{service}
}

// SearchPlacesHandler handles place search requests.
func (s *WeatherServer) SearchPlacesHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		respondErr(w, http.StatusBadRequest, errors.New("query parameter not provided in query"))
		return
	}

	places, err := s.service.SearchPlaces(r.Context(), query)
	if err != nil {
		logger.Error(fmt.Errorf("failed to search places: %v", err))
		respondErr(w, http.StatusInternalServerError, err)
		return
	}

	respond(w, http.StatusOK, places)
}

// GetWeatherHandler handles weather refresh requests.
func (s *WeatherServer) GetWeatherHandler(w http.ResponseWriter, r *http.Request) {
	loc, err := validateLocationParams(r.URL.Query())
	if err != nil {
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	weather, err := s.service.RefreshWeather(r.Context(), *loc)
	if err != nil {
		logger.Error(fmt.Errorf("failed to refresh weather: %v", err))
		respondErr(w, http.StatusInternalServerError, err)
		return
	}

	respond(w, http.StatusOK, weather)
}

// GetSavedPlaceHandler handles saved place retrieval.
func (s *WeatherServer) GetSavedPlaceHandler(w http.ResponseWriter, r *http.Request) {
	place, err := s.service.SavedPlace(r.Context())
	if errors.Is(err, repository.ErrNoSavedPlace) {
		respondErr(w, http.StatusNotFound, repository.ErrNoSavedPlace)
		return
	}
	if err != nil {
		logger.Error(fmt.Errorf("failed to get saved place: %v", err))
		respondErr(w, http.StatusInternalServerError, err)
		return
	}

	respond(w, http.StatusOK, place)
}

// SavePlaceHandler handles saving a place; the previous saved place is
// overwritten.
func (s *WeatherServer) SavePlaceHandler(w http.ResponseWriter, r *http.Request) {
	var place model.Place
	if err := json.NewDecoder(r.Body).Decode(&place); err != nil {
		respondErr(w, http.StatusBadRequest, fmt.Errorf("invalid place payload: %w", err))
		return
	}

	if place.Name == "" {
		respondErr(w, http.StatusBadRequest, errors.New("place name must not be empty"))
		return
	}

	if err := s.service.SavePlace(r.Context(), place); err != nil {
		logger.Error(fmt.Errorf("failed to save place: %v", err))
		respondErr(w, http.StatusInternalServerError, err)
		return
	}

	respond(w, http.StatusOK, place)
}

func validateLocationParams(params url.Values) (*model.Location, error) {
	lngStr := params.Get("lng")
	if lngStr == "" {
		return nil, errors.New("lng parameter not provided in query")
	}

	latStr := params.Get("lat")
	if latStr == "" {
		return nil, errors.New("lat parameter not provided in query")
	}

	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return nil, fmt.Errorf("lng parameter is not a number: %w", err)
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil, fmt.Errorf("lat parameter is not a number: %w", err)
	}

	return &model.Location{Lng: lng, Lat: lat}, nil
}
