package caiyun

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tj/assert"

	"github.com/Accelerator586/SunnyWeather/internal/model"
)

const testToken = "test-token"

func testClient(baseURL string) *Client {
	return New(testToken, baseURL, 5*time.Second)
}

func TestSearchPlaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/place", r.URL.Path)
		assert.Equal(t, "beijing", r.URL.Query().Get("query"))
		assert.Equal(t, testToken, r.URL.Query().Get("token"))

		resp := PlaceResponse{
			Status: "ok",
			Places: []PlaceEntry{
				{
					Name:     "北京市",
					Address:  "中国北京市",
					Location: Coordinate{Lng: 116.4074, Lat: 39.9042},
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		assert.Nil(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	resp, err := c.SearchPlaces(context.Background(), "beijing")

	assert.Nil(t, err)
	assert.Equal(t, StatusOK, resp.Status)
	assert.Len(t, resp.Places, 1)

	place := resp.Places[0].Place()
	assert.Equal(t, "北京市", place.Name)
	assert.Equal(t, "中国北京市", place.Address)
	assert.Equal(t, 116.4074, place.Location.Lng)
	assert.Equal(t, 39.9042, place.Location.Lat)
}

func TestRealtime(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2.5/test-token/116.4,39.9/realtime.json", r.URL.Path)

		resp := RealtimeResponse{
			Status: "ok",
			Result: RealtimeResult{
				Realtime: RealtimePayload{
					Temperature: 23.2,
					Skycon:      "PARTLY_CLOUDY_DAY",
					AirQuality:  AirQuality{AQI: AQI{Chn: 56}},
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		assert.Nil(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	resp, err := c.Realtime(context.Background(), testLocation())

	assert.Nil(t, err)
	assert.Equal(t, StatusOK, resp.Status)

	snapshot := resp.Snapshot()
	assert.Equal(t, 23.2, snapshot.Temperature)
	assert.Equal(t, "PARTLY_CLOUDY_DAY", snapshot.Skycon)
	assert.Equal(t, float64(56), snapshot.AQI)
}

func TestDaily(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2.5/test-token/116.4,39.9/daily.json", r.URL.Path)

		resp := DailyResponse{
			Status: "ok",
			Result: DailyResult{
				Daily: DailyPayload{
					Temperature: []DayRange{
						{Date: "2026-08-24", Max: 31, Min: 22},
						{Date: "2026-08-25", Max: 28, Min: 20},
					},
					Skycon: []DayValue{
						{Date: "2026-08-24", Value: "CLEAR_DAY"},
						{Date: "2026-08-25", Value: "RAIN"},
					},
					LifeIndex: LifeIndexPayload{
						ColdRisk:   []IndexDesc{{Desc: "少发"}, {Desc: "易发"}},
						CarWashing: []IndexDesc{{Desc: "适宜"}, {Desc: "较不适宜"}},
					},
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		assert.Nil(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	resp, err := c.Daily(context.Background(), testLocation())

	assert.Nil(t, err)
	assert.Equal(t, StatusOK, resp.Status)

	forecast := resp.Forecast()
	assert.Len(t, forecast.Temperature, 2)
	assert.Equal(t, 31.0, forecast.Temperature[0].Max)
	assert.Equal(t, "RAIN", forecast.Skycon[1].Value)
	assert.Equal(t, []string{"少发", "易发"}, forecast.LifeIndex.ColdRisk)
	assert.Equal(t, []string{"适宜", "较不适宜"}, forecast.LifeIndex.CarWashing)
}

func TestDoRequestServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	_, err := c.SearchPlaces(context.Background(), "beijing")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 500")
}

func TestDoRequestMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	_, err := c.Realtime(context.Background(), testLocation())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode response")
}

func testLocation() model.Location {
	return model.Location{Lng: 116.4, Lat: 39.9}
}
