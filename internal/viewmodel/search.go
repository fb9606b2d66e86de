package viewmodel

import (
	"context"
	"sync"

	"github.com/Accelerator586/SunnyWeather/internal/model"
)

// Searcher is the slice of the service the place search screen uses.
type Searcher interface {
	SearchPlaces(ctx context.Context, query string) ([]model.Place, error)
}

// PlaceSearchViewModel turns query updates into an observable stream of place
// candidate lists. It retains the last query and the last successful list for
// the lifetime of the screen.
type PlaceSearchViewModel struct {
	mu     sync.Mutex
	query  string
	places []model.Place

	sw *switcher[string, []model.Place]
}

// NewPlaceSearchViewModel creates a view model on top of the searcher.
func NewPlaceSearchViewModel(searcher Searcher) *PlaceSearchViewModel {
	vm := &PlaceSearchViewModel{}
	vm.sw = newSwitcher(func(ctx context.Context, query string) ([]model.Place, error) {
		places, err := searcher.SearchPlaces(ctx, query)
		if err == nil {
			vm.setPlaces(places)
		}
		return places, err
	})

	return vm
}

// Search updates the query trigger, re-issuing the search.
func (vm *PlaceSearchViewModel) Search(query string) {
	vm.mu.Lock()
	vm.query = query
	vm.mu.Unlock()

	vm.sw.Set(query)
}

// Outcomes returns the derived place list stream.
func (vm *PlaceSearchViewModel) Outcomes() <-chan Outcome[[]model.Place] {
	return vm.sw.Outcomes()
}

// Query returns the last search query.
func (vm *PlaceSearchViewModel) Query() string {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	return vm.query
}

// Places returns the last successful candidate list.
func (vm *PlaceSearchViewModel) Places() []model.Place {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	return vm.places
}

// Close releases the view model's worker.
func (vm *PlaceSearchViewModel) Close() {
	vm.sw.Close()
}

func (vm *PlaceSearchViewModel) setPlaces(places []model.Place) {
	vm.mu.Lock()
	vm.places = places
	vm.mu.Unlock()
}
