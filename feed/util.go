package feed

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const fetchTimeout = 60 * time.Second

// fetchArray GETs a JSON document expected to be an array of objects and
// returns the raw records. No caching here: feeds are snapshots, fetched once
// per run.
func fetchArray(addr string) ([]any, error) {
	client := &http.Client{Timeout: fetchTimeout}
	var jobj any
	if err := jwget(client, addr, &jobj); err != nil {
		return nil, err
	}
	records, ok := jobj.([]any)
	if !ok {
		return nil, fmt.Errorf("document is not a JSON array")
	}
	return records, nil
}

// jwget performs an HTTP GET request and unmarshals the JSON response into the provided data structure.
func jwget(client *http.Client, addr string, data interface{}) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	_, err = io.Copy(&buf, resp.Body)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return json.Unmarshal(buf.Bytes(), data)
}
