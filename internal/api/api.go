// Package api wires the HTTP surface of the weather service.
package api

import (
	"fmt"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/Accelerator586/SunnyWeather/internal/logger"
	"github.com/Accelerator586/SunnyWeather/internal/transport/rest/handler"
)

// RunAPI runs the weather API server.
func RunAPI(service handler.WeatherService, port, corsOrigin string) error {
	server := handler.NewWeatherServer(service)

	r := mux.NewRouter()

	r.HandleFunc("/places", server.SearchPlacesHandler).Methods("GET")
	r.HandleFunc("/weather", server.GetWeatherHandler).Methods("GET")
	r.HandleFunc("/place", server.GetSavedPlaceHandler).Methods("GET")
	r.HandleFunc("/place", server.SavePlaceHandler).Methods("PUT")

	logger.Info(fmt.Sprintf("Starting weather api at port %s", port))

	options := setupCorsOptions(corsOrigin)
	return http.ListenAndServe(":"+port, handlers.CORS(options...)(r))
}
