package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/tj/assert"

	"github.com/Accelerator586/SunnyWeather/internal/model"
	"github.com/Accelerator586/SunnyWeather/internal/repository"
	mock "github.com/Accelerator586/SunnyWeather/internal/transport/rest/handler/mock"
)

var errTest = errors.New("test error")

var testPlace = model.Place{
	Name:     "北京市",
	Address:  "中国北京市",
	Location: model.Location{Lng: 116.4074, Lat: 39.9042},
}

func TestSearchPlacesHandler(t *testing.T) {
	cases := []struct {
		name           string
		target         string
		expectedStatus int
		serviceErr     error
		isMockCalled   bool
	}{
		{
			name:           "missing query",
			target:         "/places",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "service error",
			target:         "/places?query=beijing",
			expectedStatus: http.StatusInternalServerError,
			serviceErr:     errTest,
			isMockCalled:   true,
		},
		{
			name:           "ok",
			target:         "/places?query=beijing",
			expectedStatus: http.StatusOK,
			isMockCalled:   true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mock.NewMockWeatherService(ctrl)
			s := NewWeatherServer(mockService)

			if tc.isMockCalled {
				mockService.EXPECT().
					SearchPlaces(gomock.Any(), "beijing").
					Return([]model.Place{testPlace}, tc.serviceErr)
			}

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, tc.target, nil)

			s.SearchPlacesHandler(w, r)

			assert.Equal(t, tc.expectedStatus, w.Result().StatusCode)

			if tc.expectedStatus == http.StatusOK {
				var places []model.Place
				assert.Nil(t, json.NewDecoder(w.Result().Body).Decode(&places))
				assert.Equal(t, []model.Place{testPlace}, places)
			}
		})
	}
}

func TestGetWeatherHandler(t *testing.T) {
	weather := &model.Weather{
		Realtime: model.Realtime{Temperature: 23.2, Skycon: "CLEAR_DAY", AQI: 56},
	}

	cases := []struct {
		name           string
		target         string
		expectedStatus int
		serviceErr     error
		isMockCalled   bool
	}{
		{
			name:           "missing coordinates",
			target:         "/weather",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed longitude",
			target:         "/weather?lng=east&lat=39.9",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "service error",
			target:         "/weather?lng=116.4&lat=39.9",
			expectedStatus: http.StatusInternalServerError,
			serviceErr:     errTest,
			isMockCalled:   true,
		},
		{
			name:           "ok",
			target:         "/weather?lng=116.4&lat=39.9",
			expectedStatus: http.StatusOK,
			isMockCalled:   true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mock.NewMockWeatherService(ctrl)
			s := NewWeatherServer(mockService)

			if tc.isMockCalled {
				var resp *model.Weather
				if tc.serviceErr == nil {
					resp = weather
				}
				mockService.EXPECT().
					RefreshWeather(gomock.Any(), model.Location{Lng: 116.4, Lat: 39.9}).
					Return(resp, tc.serviceErr)
			}

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, tc.target, nil)

			s.GetWeatherHandler(w, r)

			assert.Equal(t, tc.expectedStatus, w.Result().StatusCode)

			if tc.expectedStatus == http.StatusOK {
				var got model.Weather
				assert.Nil(t, json.NewDecoder(w.Result().Body).Decode(&got))
				assert.Equal(t, weather.Realtime, got.Realtime)
			}
		})
	}
}

func TestGetSavedPlaceHandler(t *testing.T) {
	cases := []struct {
		name           string
		place          model.Place
		serviceErr     error
		expectedStatus int
	}{
		{
			name:           "no saved place",
			serviceErr:     repository.ErrNoSavedPlace,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "service error",
			serviceErr:     errTest,
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "ok",
			place:          testPlace,
			expectedStatus: http.StatusOK,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mock.NewMockWeatherService(ctrl)
			s := NewWeatherServer(mockService)

			mockService.EXPECT().
				SavedPlace(gomock.Any()).
				Return(tc.place, tc.serviceErr)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/place", nil)

			s.GetSavedPlaceHandler(w, r)

			assert.Equal(t, tc.expectedStatus, w.Result().StatusCode)
		})
	}
}

func TestSavePlaceHandler(t *testing.T) {
	cases := []struct {
		name           string
		body           []byte
		serviceErr     error
		expectedStatus int
		isMockCalled   bool
	}{
		{
			name:           "malformed body",
			body:           []byte("{not json"),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty name",
			body:           mustMarshal(t, model.Place{}),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "service error",
			body:           mustMarshal(t, testPlace),
			serviceErr:     errTest,
			expectedStatus: http.StatusInternalServerError,
			isMockCalled:   true,
		},
		{
			name:           "ok",
			body:           mustMarshal(t, testPlace),
			expectedStatus: http.StatusOK,
			isMockCalled:   true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mock.NewMockWeatherService(ctrl)
			s := NewWeatherServer(mockService)

			if tc.isMockCalled {
				mockService.EXPECT().
					SavePlace(gomock.Any(), testPlace).
					Return(tc.serviceErr)
			}

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPut, "/place", bytes.NewReader(tc.body))

			s.SavePlaceHandler(w, r)

			assert.Equal(t, tc.expectedStatus, w.Result().StatusCode)
		})
	}
}

func mustMarshal(t *testing.T, v interface{}) []byte {
	t.Helper()

	body, err := json.Marshal(v)
	assert.Nil(t, err)
	return body
}
