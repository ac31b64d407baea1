package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Southclaws/fault"

	"github.com/jsphweid/pianoroll/constants"
	"github.com/jsphweid/pianoroll/model"
)

// HTTP fetches a JSON array of {pitch, start, end, velocity} records.
type HTTP struct {
	URL    string
	Client *http.Client
}

func NewHTTP(url string) *HTTP {
	if url == "" {
		url = constants.DefaultDataURL
	}
	return &HTTP{
		URL:    url,
		Client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (h *HTTP) Load(ctx context.Context) (model.NoteSequence, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.URL, nil)
	if err != nil {
		return nil, unavailable(err, "could not build data request")
	}

	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, unavailable(err, "could not reach data source")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := fault.New(fmt.Sprintf("HTTP error! Status: %d", resp.StatusCode))
		return nil, unavailable(err, "data source returned an error status")
	}

	var raw []model.RawNote
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, unavailable(err, "could not decode note data")
	}
	return toSequence(raw), nil
}
