// claim-race создает подтвержденный заказ и отправляет одновременные заявки
// курьеров на одну доставку. Ровно одна заявка должна пройти.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/courier-hub/internal/entities"
	"github.com/SergeyBogomolovv/courier-hub/internal/middleware"
)

var (
	baseURL = flag.String("url", "http://localhost:8080", "адрес API")
	secret  = flag.String("secret", os.Getenv("JWT_SECRET"), "секрет JWT")
	riders  = flag.Int("riders", 20, "количество курьеров")
	rounds  = flag.Int("rounds", 5, "количество доставок")
)

type client struct {
	auth *middleware.Authenticator
	http *http.Client
}

func main() {
	flag.Parse()
	c := client{auth: middleware.NewAuthenticator(*secret), http: &http.Client{Timeout: 5 * time.Second}}

	for round := range *rounds {
		deliveryID, err := c.confirmedDelivery(round)
		if err != nil {
			fmt.Println("Ошибка подготовки:", err)
			os.Exit(1)
		}

		won, lost := c.race(deliveryID)
		fmt.Printf("доставка %s: успешно %d, отказано %d\n", deliveryID, won, lost)
		if won != 1 {
			fmt.Println("ОШИБКА: доставку взяли", won, "курьеров")
			os.Exit(1)
		}
	}
}

func (c client) confirmedDelivery(round int) (string, error) {
	order := map[string]any{
		"deliveryType":    "document",
		"sellerId":        "seller-1",
		"documentDetails": map[string]any{"description": fmt.Sprintf("contract #%d", round), "quantity": 1},
		"totalAmount":     "0",
		"deliveryFee":     "50",
		"distance":        3.2,
		"pickupAddress":   "Warehouse 1",
		"deliveryAddress": "Main st. 10",
	}

	var created struct {
		ID string `json:"id"`
	}
	buyer := entities.Actor{ID: "buyer-1", Role: entities.RoleBuyer}
	if _, err := c.do(http.MethodPost, "/orders", buyer, order, &created); err != nil {
		return "", err
	}

	var confirmed struct {
		DeliveryID string `json:"deliveryId"`
	}
	seller := entities.Actor{ID: "seller-1", Role: entities.RoleSeller}
	if _, err := c.do(http.MethodPut, "/orders/"+created.ID+"/status", seller, map[string]string{"status": "confirmed"}, &confirmed); err != nil {
		return "", err
	}
	if confirmed.DeliveryID == "" {
		return "", fmt.Errorf("order %s has no delivery", created.ID)
	}
	return confirmed.DeliveryID, nil
}

func (c client) race(deliveryID string) (won, lost int) {
	var (
		mu    sync.Mutex
		wg    sync.WaitGroup
		start = make(chan struct{})
	)

	for i := range *riders {
		wg.Go(func() {
			<-start
			rider := entities.Actor{ID: fmt.Sprintf("rider-%d", i), Role: entities.RoleRider}
			status, err := c.do(http.MethodPut, "/deliveries/"+deliveryID+"/assign", rider, nil, nil)
			if err != nil && status == 0 {
				fmt.Println("Ошибка запроса:", err)
				return
			}

			mu.Lock()
			defer mu.Unlock()
			if status == http.StatusOK {
				won++
			} else {
				lost++
			}
		})
	}

	close(start)
	wg.Wait()
	return won, lost
}

func (c client) do(method, path string, actor entities.Actor, body, out any) (int, error) {
	token, err := c.auth.Issue(actor, time.Minute)
	if err != nil {
		return 0, err
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, *baseURL+path, reader)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		msg, _ := io.ReadAll(resp.Body)
		return resp.StatusCode, fmt.Errorf("%s %s -> %s: %s", method, path, resp.Status, bytes.TrimSpace(msg))
	}
	if out != nil {
		return resp.StatusCode, json.NewDecoder(resp.Body).Decode(out)
	}
	return resp.StatusCode, nil
}
