package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	healthHandler     healthHandler
	projectHandler    projectHandler
	diagnosticHandler diagnosticHandler
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error  string `json:"error" example:"invalid field: validation error: nombre_empresa: debe tener entre 2 y 255 caracteres"`
	Status string `json:"status" example:"error"`
	Detail string `json:"detail" example:"Proyecto no encontrado"`
	Field  string `json:"field,omitempty" example:"nombre_empresa"`
	IDs    []uint `json:"ids,omitempty" example:"998,999"`
	Cause  string `json:"cause,omitempty" example:"Underlying error cause"`
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	App     string `json:"app" example:"StrategicTeam SGC"`
	Version string `json:"version" example:"1.0.0"`
	Uptime  string `json:"uptime" example:"1h2m3s"`
}
