package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/harsh-simform/snapflow-desktop-sub001/log"
)

// Record is a stored capture reference as the service reports it.
type Record struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	Title       string `json:"title"`
	FileRef     string `json:"fileRef"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

// Client is the record service HTTP client.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// CreateRecord registers a saved capture for the user. Preconditions
// are checked before anything goes on the wire, each with its own
// user-facing message.
func (c *Client) CreateRecord(userID, title, fileRef, description string) (*Record, error) {
	if userID == "" {
		return nil, errors.New("you must be signed in to save a capture")
	}
	if title == "" {
		return nil, errors.New("a title is required to save a capture")
	}
	if fileRef == "" {
		return nil, errors.New("capture has not been exported yet")
	}

	payload, err := json.Marshal(Record{
		UserID:      userID,
		Title:       title,
		FileRef:     fileRef,
		Description: description,
	})
	if err != nil {
		return nil, errors.Wrap(err, "serializing record")
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/api/records", bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "creating request")
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "sending record")
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading response")
	}

	if res.StatusCode != http.StatusOK && res.StatusCode != http.StatusCreated {
		log.Trace.Printf("record service error: %s", string(body))
		return nil, fmt.Errorf("record service returned status %d", res.StatusCode)
	}

	var rec Record
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, errors.Wrap(err, "parsing response")
	}
	return &rec, nil
}
