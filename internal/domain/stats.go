package domain

import "time"

// AnalysisStats holds statistics about one analysis run.
type AnalysisStats struct {
	CurrentEvents  int
	PreviousEvents int
	CurrentVoices  int
	PreviousVoices int
	Trends         int
	Corroborated   int
	SentimentFound bool
	Ideas          int
	Duration       time.Duration
}

// IngestStats holds statistics about one ingestion run.
type IngestStats struct {
	Feeds    int
	Fetched  int
	New      int
	Skipped  int
	Errors   int
	Duration time.Duration
}
