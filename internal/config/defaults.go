package config

import "time"

// Default constants for application configuration
const (
	DefaultBaseURL    = "https://djinni.co/"
	DefaultListingURL = "https://djinni.co/jobs/"
	DefaultKeyword    = "Python"
	DefaultOutputPath = "vacancies.csv"
	DefaultLogFile    = "parser.log"
	DefaultLogLevel   = "info"
	DefaultUserAgent  = "Vacancies/1.0 (https://github.com/law-makers/vacancies)"
	// Zero leaves requests bounded only by the transport defaults
	DefaultHTTPTimeout = 0 * time.Second
)
