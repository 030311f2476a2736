package cmd

// Config carries the environment configuration of the application.
// Values are read from the process environment (optionally via a .env file)
// by the entry point.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// Geocoder settings for the Yandex-compatible geocoding API.
	GeocoderBaseURL        string
	GeocoderAPIKey         string
	GeocoderTimeoutSeconds string
}
