package caiyun

import "github.com/Accelerator586/SunnyWeather/internal/model"

// StatusOK is the status value the API reports on success. Any other value
// is a domain-level failure even though the transport succeeded.
const StatusOK = "ok"

// Coordinate is the wire form of a coordinate pair.
type Coordinate struct {
	Lng float64 `json:"lng"`
	Lat float64 `json:"lat"`
}

// PlaceEntry is one geocoding candidate in a place search response.
type PlaceEntry struct {
	Name     string     `json:"name"`
	Address  string     `json:"formatted_address"`
	Location Coordinate `json:"location"`
}

// Place converts the wire entry into the domain type.
func (e PlaceEntry) Place() model.Place {
	return model.Place{
		Name:    e.Name,
		Address: e.Address,
		Location: model.Location{
			Lng: e.Location.Lng,
			Lat: e.Location.Lat,
		},
	}
}

// PlaceResponse is the place search response.
type PlaceResponse struct {
	Status string       `json:"status"`
	Places []PlaceEntry `json:"places"`
}

// RealtimeResponse is the current conditions response.
type RealtimeResponse struct {
	Status string         `json:"status"`
	Result RealtimeResult `json:"result"`
}

// RealtimeResult wraps the realtime payload.
type RealtimeResult struct {
	Realtime RealtimePayload `json:"realtime"`
}

// RealtimePayload carries the current conditions values.
type RealtimePayload struct {
	Temperature float64    `json:"temperature"`
	Skycon      string     `json:"skycon"`
	AirQuality  AirQuality `json:"air_quality"`
}

// AirQuality carries the air quality indices.
type AirQuality struct {
	AQI AQI `json:"aqi"`
}

// AQI is the air quality index by scale.
type AQI struct {
	Chn float64 `json:"chn"`
}

// Snapshot converts the response into the domain realtime snapshot.
func (r *RealtimeResponse) Snapshot() model.Realtime {
	return model.Realtime{
		Temperature: r.Result.Realtime.Temperature,
		Skycon:      r.Result.Realtime.Skycon,
		AQI:         r.Result.Realtime.AirQuality.AQI.Chn,
	}
}

// DailyResponse is the daily forecast response.
type DailyResponse struct {
	Status string      `json:"status"`
	Result DailyResult `json:"result"`
}

// DailyResult wraps the daily payload.
type DailyResult struct {
	Daily DailyPayload `json:"daily"`
}

// DailyPayload carries the per-day forecast series.
type DailyPayload struct {
	Temperature []DayRange       `json:"temperature"`
	Skycon      []DayValue       `json:"skycon"`
	LifeIndex   LifeIndexPayload `json:"life_index"`
}

// DayRange is one forecast day's min/max values.
type DayRange struct {
	Date string  `json:"date"`
	Max  float64 `json:"max"`
	Min  float64 `json:"min"`
}

// DayValue is one forecast day's categorical value.
type DayValue struct {
	Date  string `json:"date"`
	Value string `json:"value"`
}

// LifeIndexPayload carries the per-day lifestyle index series.
type LifeIndexPayload struct {
	ColdRisk   []IndexDesc `json:"coldRisk"`
	CarWashing []IndexDesc `json:"carWashing"`
	Ullergy    []IndexDesc `json:"ullergy"`
	Dressing   []IndexDesc `json:"dressing"`
}

// IndexDesc is a single lifestyle index description.
type IndexDesc struct {
	Desc string `json:"desc"`
}

// Forecast converts the response into the domain daily forecast.
func (r *DailyResponse) Forecast() model.Daily {
	d := r.Result.Daily

	temps := make([]model.DailyTemperature, 0, len(d.Temperature))
	for _, t := range d.Temperature {
		temps = append(temps, model.DailyTemperature{Date: t.Date, Max: t.Max, Min: t.Min})
	}

	skycons := make([]model.DailySkycon, 0, len(d.Skycon))
	for _, s := range d.Skycon {
		skycons = append(skycons, model.DailySkycon{Date: s.Date, Value: s.Value})
	}

	return model.Daily{
		Temperature: temps,
		Skycon:      skycons,
		LifeIndex: model.LifeIndex{
			ColdRisk:   descs(d.LifeIndex.ColdRisk),
			CarWashing: descs(d.LifeIndex.CarWashing),
			Ullergy:    descs(d.LifeIndex.Ullergy),
			Dressing:   descs(d.LifeIndex.Dressing),
		},
	}
}

func descs(in []IndexDesc) []string {
	out := make([]string, 0, len(in))
	for _, d := range in {
		out = append(out, d.Desc)
	}
	return out
}
