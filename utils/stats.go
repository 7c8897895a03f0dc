package utils

import "time"

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
	LiveCells            int
	FrontierSize         int
	StoredCells          int
	Births               int
	Deaths               int
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records the outcome of one generation
func (s *Stats) Update(generation, population, frontier, stored int, duration time.Duration) {
	s.TotalGenerations = generation
	s.LiveCells = population
	s.FrontierSize = frontier
	s.StoredCells = stored
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// AddTransitions accumulates births and deaths across the run
func (s *Stats) AddTransitions(births, deaths int) {
	s.Births += births
	s.Deaths += deaths
}

// Elapsed returns time since the stats were created
func (s *Stats) Elapsed() time.Duration {
	return time.Since(s.StartTime)
}
