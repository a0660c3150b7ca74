// Command seed loads hotels from a JSON file and creates them through the
// running API, so seeding exercises the same auth and validation paths as any
// other client.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"

	"booking_api/internal/adapters/auth"
	"booking_api/internal/adapters/observability"
	"booking_api/internal/shared"
)

type seedHotel struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

type seeder struct {
	base  string
	hc    *http.Client
	rl    *rate.Limiter
	token string // bearer credential; empty in header-trust deployments
	user  string // x-user-id value when no token is set
}

func (s *seeder) createHotel(ctx context.Context, h seedHotel) error {
	if err := s.rl.Wait(ctx); err != nil {
		return err
	}
	body, _ := json.Marshal(h)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.base+"/hotels", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	} else {
		req.Header.Set(auth.UserIDHeader, s.user)
	}

	res, err := s.hc.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusCreated {
		msg, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return fmt.Errorf("POST /hotels: status %d: %s", res.StatusCode, msg)
	}
	return nil
}

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	raw, err := os.ReadFile(cfg.SeedFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.SeedFile).Msg("read seed file failed")
	}
	var hotels []seedHotel
	if err := json.Unmarshal(raw, &hotels); err != nil {
		log.Fatal().Err(err).Msg("seed file is not a JSON hotel list")
	}

	log.Info().
		Str("base", cfg.APIBaseURL).
		Int("hotels", len(hotels)).
		Int("workers", cfg.SeedWorkers).
		Msg("seeder starting")

	s := &seeder{
		base:  cfg.APIBaseURL,
		hc:    &http.Client{Timeout: 20 * time.Second},
		rl:    rate.NewLimiter(rate.Limit(cfg.SeedRPS), cfg.SeedRPS),
		token: cfg.SeedToken,
		user:  cfg.SeedUserID,
	}

	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup

	for _, h := range hotels {
		h := h

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(h seedHotel) {
			defer wg.Done()
			defer sem.Release(1)

			if err := s.createHotel(ctx, h); err != nil {
				log.Warn().Str("name", h.Name).Err(err).Msg("seed failed")
				return
			}
			log.Info().Str("name", h.Name).Msg("seed ok")
		}(h)
	}

	wg.Wait()
	log.Info().Msg("seeding completed")
}
