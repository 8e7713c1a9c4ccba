package api

import (
	"time"

	"github.com/jjmunozz/StrategicTeam-SGC/database"
	"github.com/jjmunozz/StrategicTeam-SGC/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, appName, version string, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		healthHandler:     newHealthHandler(appName, version, startupTime),
		projectHandler:    newProjectHandler(database),
		diagnosticHandler: newDiagnosticHandler(services.NewDiagnosticService(database)),
	}
}
