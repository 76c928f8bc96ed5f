// Package boardclient is the Go view-model of the sticky-note board: an
// HTTP client for the notes/rooms API plus the reconciliation rules that
// keep a rendered board consistent with server state.
package boardclient

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/Galeria-Pequenas-Estrelas/GaleriaPeqEstrelas/models"
)

// APIError is a non-2xx response decoded into the server's error shape.
type APIError struct {
	Status int
	Code   string
	Fields map[string]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Code)
}

// Client talks to the notes/rooms API. Every request carries a per-client
// session id so server logs can correlate one board's activity.
type Client struct {
	http *resty.Client
}

func NewClient(baseURL string) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetHeader("X-Board-Session", uuid.NewString())
	return &Client{http: c}
}

// NoteDraft is the editable part of a note, as the user fills it in.
type NoteDraft struct {
	Name    string `json:"name"`
	Class   string `json:"class"`
	Shift   string `json:"shift"`
	Content string `json:"content"`
	Color   string `json:"color"`
	Room    string `json:"room,omitempty"`
}

func apiErr(resp *resty.Response) error {
	apiError := &APIError{Status: resp.StatusCode(), Code: "UNKNOWN"}
	var body struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error != "" {
		apiError.Code = body.Error
		apiError.Fields = body.Fields
	}
	return apiError
}

func (c *Client) ListNotes(room string) ([]models.Note, error) {
	var notes []models.Note
	resp, err := c.http.R().
		SetQueryParam("room", room).
		SetResult(&notes).
		Get("/notes")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	return notes, nil
}

func (c *Client) CreateNote(draft NoteDraft) (models.Note, error) {
	var note models.Note
	resp, err := c.http.R().
		SetBody(draft).
		SetResult(&note).
		Post("/notes")
	if err != nil {
		return models.Note{}, err
	}
	if resp.IsError() {
		return models.Note{}, apiErr(resp)
	}
	return note, nil
}

func (c *Client) UpdateNote(id uint, draft NoteDraft) (models.Note, error) {
	var note models.Note
	resp, err := c.http.R().
		SetBody(draft).
		SetResult(&note).
		Put(fmt.Sprintf("/notes/%d", id))
	if err != nil {
		return models.Note{}, err
	}
	if resp.IsError() {
		return models.Note{}, apiErr(resp)
	}
	return note, nil
}

func (c *Client) DeleteNote(id uint) error {
	resp, err := c.http.R().Delete(fmt.Sprintf("/notes/%d", id))
	if err != nil {
		return err
	}
	if resp.IsError() {
		return apiErr(resp)
	}
	return nil
}

func (c *Client) ListRooms() ([]string, error) {
	var rooms []string
	resp, err := c.http.R().
		SetResult(&rooms).
		Get("/rooms")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, apiErr(resp)
	}
	return rooms, nil
}

func (c *Client) CreateRoom(name string) (models.Room, error) {
	var room models.Room
	resp, err := c.http.R().
		SetBody(map[string]string{"room": name}).
		SetResult(&room).
		Post("/rooms")
	if err != nil {
		return models.Room{}, err
	}
	if resp.IsError() {
		return models.Room{}, apiErr(resp)
	}
	return room, nil
}

func (c *Client) DeleteRoom(name string) error {
	resp, err := c.http.R().Delete("/rooms/" + name)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return apiErr(resp)
	}
	return nil
}
