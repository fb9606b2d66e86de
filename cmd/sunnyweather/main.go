package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/Accelerator586/SunnyWeather/internal/api"
	"github.com/Accelerator586/SunnyWeather/internal/caiyun"
	"github.com/Accelerator586/SunnyWeather/internal/config"
	"github.com/Accelerator586/SunnyWeather/internal/logger"
	"github.com/Accelerator586/SunnyWeather/internal/model"
	"github.com/Accelerator586/SunnyWeather/internal/repository"
	"github.com/Accelerator586/SunnyWeather/internal/service"
	"github.com/Accelerator586/SunnyWeather/internal/viewmodel"
)

func main() {
	flag.Usage = usage
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(fmt.Errorf("failed to load config: %v", err))
	}

	ctx := context.Background()

	store, closeStore, err := newPlaceStore(ctx, cfg)
	if err != nil {
		logger.Fatal(fmt.Errorf("failed to create place store: %v", err))
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Error(err)
		}
	}()

	client := caiyun.New(cfg.Token, cfg.BaseURL, cfg.HTTPTimeout)
	svc := service.New(client, store)

	switch flag.Arg(0) {
	case "search":
		err = runSearch(svc, flag.Arg(1))
	case "save":
		err = runSave(ctx, svc, flag.Arg(1))
	case "weather":
		err = runWeather(ctx, svc, flag.Args()[1:])
	case "serve":
		err = api.RunAPI(svc, cfg.Port, cfg.CORSOrigin)
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		logger.Fatal(err)
	}
}

// newPlaceStore picks the mongo store when a connection string is configured
// and the local file store otherwise.
func newPlaceStore(ctx context.Context, cfg *config.Config) (service.PlaceStore, func() error, error) {
	if cfg.MongoURI != "" {
		store, err := repository.NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	}

	return repository.NewFileStore(cfg.PlaceFile), func() error { return nil }, nil
}

func runSearch(svc *service.WeatherService, query string) error {
	if query == "" {
		return errors.New("usage: sunnyweather search <query>")
	}

	vm := viewmodel.NewPlaceSearchViewModel(svc)
	defer vm.Close()

	vm.Search(query)
	outcome := <-vm.Outcomes()
	if outcome.Err != nil {
		return outcome.Err
	}

	if len(outcome.Value) == 0 {
		fmt.Println("no places found")
		return nil
	}

	for _, place := range outcome.Value {
		fmt.Printf("%s\t%s\t(%v, %v)\n", place.Name, place.Address, place.Location.Lng, place.Location.Lat)
	}

	return nil
}

func runSave(ctx context.Context, svc *service.WeatherService, query string) error {
	if query == "" {
		return errors.New("usage: sunnyweather save <query>")
	}

	places, err := svc.SearchPlaces(ctx, query)
	if err != nil {
		return err
	}
	if len(places) == 0 {
		return fmt.Errorf("no places found for %q", query)
	}

	if err := svc.SavePlace(ctx, places[0]); err != nil {
		return err
	}

	fmt.Printf("saved %s (%s)\n", places[0].Name, places[0].Address)
	return nil
}

func runWeather(ctx context.Context, svc *service.WeatherService, args []string) error {
	place, err := resolvePlace(ctx, svc, args)
	if err != nil {
		return err
	}

	vm := viewmodel.NewWeatherViewModel(svc)
	defer vm.Close()

	vm.SetPlaceName(place.Name)
	vm.Refresh(place.Location)

	outcome := <-vm.Outcomes()
	if outcome.Err != nil {
		return outcome.Err
	}

	printWeather(vm.PlaceName(), outcome.Value)
	return nil
}

// resolvePlace uses explicit coordinates when given, the saved place otherwise.
func resolvePlace(ctx context.Context, svc *service.WeatherService, args []string) (model.Place, error) {
	if len(args) >= 2 {
		lng, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return model.Place{}, fmt.Errorf("invalid longitude: %w", err)
		}
		lat, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return model.Place{}, fmt.Errorf("invalid latitude: %w", err)
		}

		name := fmt.Sprintf("%v,%v", lng, lat)
		return model.Place{Name: name, Location: model.Location{Lng: lng, Lat: lat}}, nil
	}

	saved, err := svc.IsPlaceSaved(ctx)
	if err != nil {
		return model.Place{}, err
	}
	if !saved {
		return model.Place{}, errors.New("no place saved; run search and save first, or pass coordinates")
	}

	return svc.SavedPlace(ctx)
}

func printWeather(name string, weather *model.Weather) {
	fmt.Printf("%s\n", name)
	fmt.Printf("now: %.1f°C  %s  aqi %.0f\n",
		weather.Realtime.Temperature, weather.Realtime.Skycon, weather.Realtime.AQI)

	for i, temp := range weather.Daily.Temperature {
		skycon := ""
		if i < len(weather.Daily.Skycon) {
			skycon = weather.Daily.Skycon[i].Value
		}
		fmt.Printf("%s  %s  %.0f°C ~ %.0f°C\n", temp.Date, skycon, temp.Min, temp.Max)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage: sunnyweather <command> [arguments]

commands:
  search <query>        search place candidates
  save <query>          search and save the best candidate
  weather [lng lat]     show weather for coordinates or the saved place
  serve                 run the HTTP API
`)
}
