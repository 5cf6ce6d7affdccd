package adapters

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/rafaelandrade/intelligent-resume-matcher/internal/logging/types"
)

// BetterstackAdapter ships log entries to Betterstack in batches over HTTP
type BetterstackAdapter struct {
	name   string
	config BetterstackConfig
	client *http.Client

	mu      sync.Mutex
	batch   []map[string]interface{}
	closing chan struct{}
	done    chan struct{}
}

// BetterstackConfig represents configuration for the Betterstack adapter
type BetterstackConfig struct {
	SourceToken   string        `yaml:"source_token"`
	Endpoint      string        `yaml:"endpoint"`
	BatchSize     int           `yaml:"batch_size"`
	FlushInterval time.Duration `yaml:"flush_interval"`
	Timeout       time.Duration `yaml:"timeout"`
}

// NewBetterstackAdapter creates a new Betterstack adapter and starts its
// background flush loop
func NewBetterstackAdapter(name string, config BetterstackConfig) *BetterstackAdapter {
	if config.BatchSize <= 0 {
		config.BatchSize = 100
	}
	if config.FlushInterval <= 0 {
		config.FlushInterval = 5 * time.Second
	}
	if config.Timeout <= 0 {
		config.Timeout = 30 * time.Second
	}

	a := &BetterstackAdapter{
		name:    name,
		config:  config,
		client:  &http.Client{Timeout: config.Timeout},
		closing: make(chan struct{}),
		done:    make(chan struct{}),
	}

	go a.flushLoop()

	return a
}

// Write buffers a log entry for the next batch upload
func (a *BetterstackAdapter) Write(entry *types.LogEntry) error {
	event := map[string]interface{}{
		"dt":      entry.Timestamp.Format(time.RFC3339Nano),
		"level":   entry.Level.String(),
		"message": entry.Message,
	}
	for k, v := range entry.Fields {
		event[k] = v
	}

	a.mu.Lock()
	a.batch = append(a.batch, event)
	full := len(a.batch) >= a.config.BatchSize
	a.mu.Unlock()

	if full {
		a.flush()
	}
	return nil
}

// Close flushes any buffered entries and stops the background loop
func (a *BetterstackAdapter) Close() error {
	close(a.closing)
	<-a.done
	a.flush()
	return nil
}

// Health reports whether the Betterstack ingest endpoint is reachable
func (a *BetterstackAdapter) Health() error {
	req, err := http.NewRequest(http.MethodHead, a.config.Endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+a.config.SourceToken)

	resp, err := a.client.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// Name returns the name of the adapter
func (a *BetterstackAdapter) Name() string {
	return a.name
}

func (a *BetterstackAdapter) flushLoop() {
	ticker := time.NewTicker(a.config.FlushInterval)
	defer ticker.Stop()
	defer close(a.done)

	for {
		select {
		case <-ticker.C:
			a.flush()
		case <-a.closing:
			return
		}
	}
}

func (a *BetterstackAdapter) flush() {
	a.mu.Lock()
	if len(a.batch) == 0 {
		a.mu.Unlock()
		return
	}
	events := a.batch
	a.batch = nil
	a.mu.Unlock()

	payload, err := json.Marshal(events)
	if err != nil {
		return
	}

	req, err := http.NewRequest(http.MethodPost, a.config.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.config.SourceToken)

	resp, err := a.client.Do(req)
	if err != nil {
		fmt.Printf("betterstack flush failed: %v\n", err)
		return
	}
	resp.Body.Close()
}
