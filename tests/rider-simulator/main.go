// rider-simulator двигает курьеров по кругу и отправляет их позиции в API.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SergeyBogomolovv/courier-hub/internal/entities"
	"github.com/SergeyBogomolovv/courier-hub/internal/middleware"
)

var (
	baseURL  = flag.String("url", "http://localhost:8080", "адрес API")
	secret   = flag.String("secret", os.Getenv("JWT_SECRET"), "секрет JWT")
	riders   = flag.Int("riders", 5, "количество курьеров")
	interval = flag.Duration("interval", time.Second, "период отправки позиции")
)

// центр Манилы, радиус около километра
const (
	centerLat = 14.5995
	centerLng = 120.9842
	radius    = 0.01
)

func main() {
	flag.Parse()
	auth := middleware.NewAuthenticator(*secret)
	httpClient := &http.Client{Timeout: 5 * time.Second}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	for i := range *riders {
		rider := entities.Actor{ID: fmt.Sprintf("rider-%d", i), Role: entities.RoleRider}
		token, err := auth.Issue(rider, 24*time.Hour)
		if err != nil {
			log.Fatalf("Ошибка токена: %v", err)
		}
		if err := put(ctx, httpClient, token, "/riders/availability", map[string]bool{"available": true}); err != nil {
			log.Printf("%s: %v", rider.ID, err)
		}
		go drive(ctx, httpClient, rider.ID, token)
	}

	<-ctx.Done()
}

func drive(ctx context.Context, httpClient *http.Client, riderID, token string) {
	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	angle := rand.Float64() * 2 * math.Pi
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			angle += 0.1
			location := map[string]float64{
				"latitude":  centerLat + radius*math.Sin(angle),
				"longitude": centerLng + radius*math.Cos(angle),
			}
			if err := put(ctx, httpClient, token, "/deliveries/location", location); err != nil {
				log.Printf("%s: %v", riderID, err)
				continue
			}
			log.Printf("%s -> %.5f, %.5f", riderID, location["latitude"], location["longitude"])
		}
	}
}

func put(ctx context.Context, httpClient *http.Client, token, path string, body any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, *baseURL+path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("PUT %s -> %s", path, resp.Status)
	}
	return nil
}
