package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Dashboard server base URL")
	city := flag.String("city", "", "City to select before printing the dashboard")
	wait := flag.Duration("wait", 15*time.Second, "How long to wait for the fetch to finish")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}

	fmt.Println("Weather Dashboard Client")
	fmt.Println("========================")

	if *city != "" {
		fmt.Printf("Selecting %s...\n", *city)
		if err := selectCity(client, *baseURL, *city); err != nil {
			fmt.Printf("Error selecting city: %v\n", err)
			os.Exit(1)
		}
	}

	// Poll until the cycle is no longer loading
	deadline := time.Now().Add(*wait)
	for {
		page, raw, err := fetchDashboard(client, *baseURL)
		if err != nil {
			fmt.Printf("Error fetching dashboard: %v\n", err)
			os.Exit(1)
		}

		if page.Status != "loading" {
			var pretty bytes.Buffer
			_ = json.Indent(&pretty, raw, "", "  ")
			fmt.Printf("\nDashboard for %s (%s):\n%s\n", page.City, page.Status, pretty.String())
			if page.Status != "ready" {
				os.Exit(2)
			}
			return
		}

		if time.Now().After(deadline) {
			fmt.Println("Timed out waiting for weather data.")
			os.Exit(1)
		}
		time.Sleep(500 * time.Millisecond)
	}
}

func selectCity(client *http.Client, baseURL, city string) error {
	payload, err := json.Marshal(map[string]string{"city": city})
	if err != nil {
		return err
	}

	resp, err := client.Post(baseURL+"/api/city", "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

type dashboardStatus struct {
	Status string `json:"status"`
	City   string `json:"city"`
}

func fetchDashboard(client *http.Client, baseURL string) (dashboardStatus, []byte, error) {
	resp, err := client.Get(baseURL + "/api/dashboard")
	if err != nil {
		return dashboardStatus{}, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return dashboardStatus{}, nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return dashboardStatus{}, nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(body))
	}

	var page dashboardStatus
	if err := json.Unmarshal(body, &page); err != nil {
		return dashboardStatus{}, nil, fmt.Errorf("decode dashboard: %w", err)
	}
	return page, body, nil
}
