package viewmodel

import (
	"context"
	"sync"

	"github.com/Accelerator586/SunnyWeather/internal/model"
)

// Refresher is the slice of the service the weather screen uses.
type Refresher interface {
	RefreshWeather(ctx context.Context, loc model.Location) (*model.Weather, error)
}

// WeatherViewModel turns location updates into an observable weather stream.
// It retains the selected location and its display name for the lifetime of
// the screen.
type WeatherViewModel struct {
	mu        sync.Mutex
	location  model.Location
	placeName string

	sw *switcher[model.Location, *model.Weather]
}

// NewWeatherViewModel creates a view model on top of the refresher.
func NewWeatherViewModel(refresher Refresher) *WeatherViewModel {
	return &WeatherViewModel{
		sw: newSwitcher(refresher.RefreshWeather),
	}
}

// Refresh updates the location trigger, re-issuing the weather request.
func (vm *WeatherViewModel) Refresh(loc model.Location) {
	vm.mu.Lock()
	vm.location = loc
	vm.mu.Unlock()

	vm.sw.Set(loc)
}

// Outcomes returns the derived weather stream.
func (vm *WeatherViewModel) Outcomes() <-chan Outcome[*model.Weather] {
	return vm.sw.Outcomes()
}

// SetPlaceName retains the display name of the selected place.
func (vm *WeatherViewModel) SetPlaceName(name string) {
	vm.mu.Lock()
	vm.placeName = name
	vm.mu.Unlock()
}

// PlaceName returns the display name of the selected place.
func (vm *WeatherViewModel) PlaceName() string {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	return vm.placeName
}

// Location returns the selected location.
func (vm *WeatherViewModel) Location() model.Location {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	return vm.location
}

// Close releases the view model's worker.
func (vm *WeatherViewModel) Close() {
	vm.sw.Close()
}
