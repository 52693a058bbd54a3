// Command smoke_api exercises a running PlantCare backend end to end.
//
//	go run ./scripts/smoke_api -base http://localhost:5000/api
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

	"github.com/fatih/color"
	"github.com/google/uuid"
)

var baseURL string

var sampleReading = map[string]interface{}{
	"Soil_Moisture":          12.4,
	"Ambient_Temperature":    29.1,
	"Soil_Temperature":       25.3,
	"Humidity":               38,
	"Light_Intensity":        820.5,
	"Soil_pH":                6.1,
	"Nitrogen_Level":         14,
	"Phosphorus_Level":       20.2,
	"Potassium_Level":        33,
	"Chlorophyll_Content":    24.7,
	"Electrochemical_Signal": 1.12,
}

// Pretty print JSON helper
func prettyPrint(body []byte) {
	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		fmt.Println(string(body))
		return
	}
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

// Request helper
func sendRequest(method, url, sessionID string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set("Session-ID", sessionID)
	}

	client := &http.Client{Timeout: 90 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func step(title, method, url, sessionID string, body interface{}) []byte {
	color.Yellow("\n%s", title)
	resp, respBody, err := sendRequest(method, url, sessionID, body)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	if resp.StatusCode >= 400 {
		color.Red("Status: %s", resp.Status)
	} else {
		color.Green("Status: %s", resp.Status)
	}
	prettyPrint(respBody)
	return respBody
}

func main() {
	flag.StringVar(&baseURL, "base", "http://localhost:5000/api", "API base URL")
	flag.Parse()

	sessionID := "smoke-" + uuid.NewString()[:8]
	color.Cyan("🚀 Starting PlantCare API smoke test (session %s)\n", sessionID)

	step("[HEALTH] 1. Service health", "GET", "/health", "", nil)
	step("[ML] 2. Model health", "GET", "/ml/health", "", nil)

	body := step("[ML] 3. Predict plant health", "POST", "/ml/predict", "", sampleReading)
	var prediction struct {
		Prediction string `json:"prediction"`
	}
	_ = json.Unmarshal(body, &prediction)

	incomplete := map[string]interface{}{}
	for k, v := range sampleReading {
		if k != "Soil_pH" && k != "Humidity" {
			incomplete[k] = v
		}
	}
	step("[ML] 4. Predict with two fields missing (expect 400)", "POST", "/ml/predict", "", incomplete)

	withStatus := map[string]interface{}{"predicted_status": prediction.Prediction}
	for k, v := range sampleReading {
		withStatus[k] = v
	}
	step("[SUGGEST] 5. Care suggestions", "POST", "/suggestions", "", withStatus)

	step("[CHAT] 6. First question", "POST", "/chat", sessionID, map[string]string{"message": "How often should I water a fern?"})
	step("[CHAT] 7. Follow-up", "POST", "/chat", sessionID, map[string]string{"message": "And in winter?"})
	step("[CHAT] 8. Session history", "GET", "/chat/history", sessionID, nil)
	step("[CHAT] 9. Reset session", "DELETE", "/chat/session", sessionID, nil)

	color.Cyan("\n✅ Smoke test finished")
}
