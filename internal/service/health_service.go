package service

import (
	"fmt"
	"sync"
)

// HealthService answers the health check and counts how often it was asked
type HealthService interface {
	// RecordVisit returns the number of earlier visits and counts this one
	RecordVisit() uint64
	Message(visits uint64) string
}

type healthService struct {
	response string

	mu     sync.Mutex
	visits uint64
}

// NewHealthService creates a HealthService answering with response
func NewHealthService(response string) HealthService {
	return &healthService{response: response}
}

func (s *healthService) RecordVisit() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := s.visits
	s.visits++
	return seen
}

func (s *healthService) Message(visits uint64) string {
	return fmt.Sprintf("%s %d times", s.response, visits)
}
