package docs

// @title           SoloTrip Connect Trip API
// @version         1.0
// @description     Authentication and trip storage for the SoloTrip Connect web application.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token returned by /api/auth/login.
