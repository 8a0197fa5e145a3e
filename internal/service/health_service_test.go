package service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthService_RecordVisitIsMonotonic(t *testing.T) {
	svc := NewHealthService("I'm OK.")

	assert.Equal(t, uint64(0), svc.RecordVisit())
	assert.Equal(t, uint64(1), svc.RecordVisit())
	assert.Equal(t, uint64(2), svc.RecordVisit())
	assert.Equal(t, "I'm OK. 3 times", svc.Message(3))
}

func TestHealthService_ConcurrentVisits(t *testing.T) {
	svc := NewHealthService("")

	const visits = 500
	var wg sync.WaitGroup
	seen := make([]uint64, visits)
	for i := 0; i < visits; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			seen[i] = svc.RecordVisit()
		}(i)
	}
	wg.Wait()

	unique := make(map[uint64]struct{}, visits)
	for _, v := range seen {
		unique[v] = struct{}{}
	}
	require.Len(t, unique, visits)
	assert.Equal(t, uint64(visits), svc.RecordVisit())
}
