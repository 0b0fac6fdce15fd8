package constants

import "time"

const (
	PredictPath      = "/api/predict"
	HealthPath       = "/health"
	DefaultServerURL = "http://localhost:8000"
)

const (
	RenderDelay         = 500 * time.Millisecond
	CloseMatchThreshold = 40.0
)

const (
	ExternalAPITimeout = 10 * time.Second
	RequestTimeout     = 30 * time.Second
)

const (
	ShutdownTimeout = 5 * time.Second
)

// Display strings.
const (
	SubmitLabel      = "Predict"
	SubmitBusyLabel  = "Analyzing..."
	MissingTeamsText = "Please enter both teams"
	AnalyzingText    = "Analyzing statistics and calculating probabilities..."
	FailureText      = "Sorry, something went wrong. Please try again."
	NotAvailable     = "N/A"
)

const (
	WinGlyph  = "✓"
	DrawGlyph = "⟺"
	LossGlyph = "✗"
)
