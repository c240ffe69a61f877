package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	healthCheckInterval = 60 * time.Second
	healthCheckTimeout  = 5 * time.Second
)

// HealthStatus is the latest snapshot of backing-service connectivity.
type HealthStatus struct {
	Status    string    `json:"status"` // "ok" or "degraded"
	Mongo     bool      `json:"mongo"`
	Redis     []bool    `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth = HealthStatus{Status: "ok"}
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor pings Mongo and the Redis clients on an interval and
// keeps the in-memory snapshot current.
func StartHealthMonitor(redisClients []*redis.Client, mongoClient *mongo.Client) {
	go func() {
		ticker := time.NewTicker(healthCheckInterval)
		defer ticker.Stop()

		for range ticker.C {
			snapshot := probe(redisClients, mongoClient)

			healthMu.Lock()
			currentHealth = snapshot
			healthMu.Unlock()
		}
	}()
}

func probe(redisClients []*redis.Client, mongoClient *mongo.Client) HealthStatus {
	ctx, cancel := context.WithTimeout(context.Background(), healthCheckTimeout)
	defer cancel()

	redisHealth := make([]bool, 0, len(redisClients))
	healthy := true
	for _, client := range redisClients {
		ok := client.Ping(ctx).Err() == nil
		redisHealth = append(redisHealth, ok)
		healthy = healthy && ok
	}

	mongoOK := mongoClient.Ping(ctx, nil) == nil
	healthy = healthy && mongoOK

	status := "ok"
	if !healthy {
		status = "degraded"
	}
	return HealthStatus{
		Status:    status,
		Mongo:     mongoOK,
		Redis:     redisHealth,
		CheckedAt: time.Now(),
	}
}
