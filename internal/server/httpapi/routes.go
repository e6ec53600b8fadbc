package httpapi

import "net/http"

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	// Account and session.
	mux.HandleFunc("POST /signup", s.handleSignup)
	mux.HandleFunc("GET /login", s.handleLoginPage)
	mux.HandleFunc("POST /login", s.handleLogin)
	mux.HandleFunc("POST /logout", s.handleLogout)
	mux.HandleFunc("GET /dashboard", s.page(s.handleDashboard))
	mux.HandleFunc("GET /user_info", s.api(s.handleUserInfo))

	// Device registry.
	mux.HandleFunc("GET /devices", s.page(s.handleDevicesPage))
	mux.HandleFunc("POST /register-device", s.page(s.handleRegisterDevice))
	mux.HandleFunc("PUT /devices/{mac}", s.api(s.handleRenameDevice))
	mux.HandleFunc("DELETE /devices/{mac}", s.api(s.handleUnregisterDevice))

	// Sensor readings, one sub-tree per kind.
	mux.HandleFunc("GET /api/{kind}", s.api(s.handleListReadings))
	mux.HandleFunc("POST /api/{kind}", s.api(s.handleInsertReading))
	mux.HandleFunc("GET /api/{kind}/count", s.api(s.handleCountReadings))
	mux.HandleFunc("GET /api/{kind}/{id}", s.api(s.handleGetReading))
	mux.HandleFunc("PUT /api/{kind}/{id}", s.api(s.handleUpdateReading))
	mux.HandleFunc("DELETE /api/{kind}/{id}", s.api(s.handleDeleteReading))

	// Raw ingest channel; no session required.
	mux.HandleFunc("POST /add_temp", s.handleAddRawTemp)
	mux.HandleFunc("GET /get_temp/{mac}", s.handleGetRawTemp)

	// Wardrobe.
	mux.HandleFunc("GET /wardrobe", s.page(s.handleWardrobePage))
	mux.HandleFunc("GET /api/wardrobe", s.api(s.handleListWardrobe))
	mux.HandleFunc("POST /wardrobe", s.api(s.handleAddWardrobe))
	mux.HandleFunc("PUT /wardrobe/{id}", s.api(s.handleUpdateWardrobe))
	mux.HandleFunc("DELETE /wardrobe/{id}", s.api(s.handleDeleteWardrobe))

	// Weather lookup; no session required.
	mux.HandleFunc("POST /weather", s.handleWeather)

	// AI completion passthrough.
	mux.HandleFunc("POST /getairesponse", s.api(s.handleAIResponse))

	return mux
}
