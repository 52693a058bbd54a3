package service

import (
	"context"
	"sync"
	"time"

	"plantcare-be/pkg/llm"
)

type fakeLLM struct {
	mu sync.Mutex

	reply   string
	err     error
	pingErr error
	block   bool
	delay   time.Duration

	histories [][]llm.Message
	prompts   []string
	pings     int
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	f.mu.Lock()
	cp := make([]llm.Message, len(history))
	copy(cp, history)
	f.histories = append(f.histories, cp)
	reply, err, block, delay := f.reply, f.err, f.block, f.delay
	f.mu.Unlock()

	if block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	if delay > 0 {
		time.Sleep(delay)
	}
	return reply, err
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

func (f *fakeLLM) Ping(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pings++
	return f.pingErr
}

func (f *fakeLLM) Name() string  { return "fake" }
func (f *fakeLLM) Model() string { return "fake-model" }

func (f *fakeLLM) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.histories) + len(f.prompts)
}

// fullReading is a valid body with every canonical column.
const fullReading = `{
	"Soil_Moisture": 35.2,
	"Ambient_Temperature": 24.5,
	"Soil_Temperature": 21.0,
	"Humidity": 60,
	"Light_Intensity": 540.3,
	"Soil_pH": 6.4,
	"Nitrogen_Level": 30,
	"Phosphorus_Level": 22.5,
	"Potassium_Level": 41,
	"Chlorophyll_Content": 32.1,
	"Electrochemical_Signal": 0.85
}`
