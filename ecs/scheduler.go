package ecs

import (
	"reflect"
	"strings"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

// queryCache is implemented by Query fields; the scheduler rebuilds each
// system's caches immediately before that system runs.
type queryCache interface {
	Execute()
}

// fieldInit is implemented by the addresses of Query and Singleton fields.
type fieldInit interface {
	Init(storage *Storage)
}

type scheduledSystem struct {
	system  System
	queries []queryCache
	stats   SystemStats
}

func (s *scheduledSystem) record(d time.Duration) {
	st := &s.stats
	st.ExecutionCount++
	st.LastDuration = d
	st.TotalDuration += d
	if st.ExecutionCount == 1 || d < st.MinDuration {
		st.MinDuration = d
	}
	st.MaxDuration = max(st.MaxDuration, d)
}

// Scheduler runs its systems in registration order, one after another.
type Scheduler struct {
	storage *Storage
	systems []*scheduledSystem
}

// NewScheduler creates a new scheduler for the given storage.
func NewScheduler(storage *Storage) *Scheduler {
	return &Scheduler{storage: storage}
}

// Register appends a system and wires its exported Query and Singleton
// fields to the scheduler's storage.
func (s *Scheduler) Register(system System) {
	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.systems = append(s.systems, &scheduledSystem{
		system:  system,
		queries: s.wireFields(system),
		stats:   SystemStats{Name: systemType.Name()},
	})
}

// wireFields initializes every Query and Singleton field of system and
// returns the queries so they can be executed before each run.
func (s *Scheduler) wireFields(system System) []queryCache {
	value := reflect.ValueOf(system)
	if value.Kind() == reflect.Ptr {
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil
	}

	var queries []queryCache
	for i := 0; i < value.NumField(); i++ {
		field := value.Field(i)
		if !field.CanSet() || field.Kind() != reflect.Struct {
			continue
		}

		typeName := field.Type().Name()
		isQuery := strings.HasPrefix(typeName, "Query[")
		if !isQuery && !strings.HasPrefix(typeName, "Singleton[") {
			continue
		}

		initializer, ok := field.Addr().Interface().(fieldInit)
		if !ok {
			panic("Init method not found on field: " + value.Type().Field(i).Name)
		}
		initializer.Init(s.storage)

		if isQuery {
			queries = append(queries, field.Addr().Interface().(queryCache))
		}
	}

	return queries
}

// Once runs every system once with delta time dt, executing each system's
// queries right before it, then flushes the frame's commands.
func (s *Scheduler) Once(dt float64) {
	frame := newUpdateFrame(dt, s.storage)

	for _, scheduled := range s.systems {
		start := time.Now()
		for _, query := range scheduled.queries {
			query.Execute()
		}
		scheduled.system.Execute(frame)
		scheduled.record(time.Since(start))
	}

	frame.Commands.Flush(s.storage)
}

// GetStats returns a copy of the per-system execution statistics.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Systems:     make([]SystemStats, len(s.systems)),
	}

	for i, scheduled := range s.systems {
		st := scheduled.stats
		if st.ExecutionCount > 0 {
			st.AvgDuration = st.TotalDuration / time.Duration(st.ExecutionCount)
		}
		stats.Systems[i] = st
		stats.TotalExecutions += st.ExecutionCount
	}

	return stats
}
