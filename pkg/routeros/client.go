// Package routeros is a read-only client for the MikroTik RouterOS REST API.
// Every domain wrapper is a thin fetch-and-reshape call over one generic
// Print primitive; the only bespoke logic lives in the log retrieval
// packages layered on top.
package routeros

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Logger can be modified by external for testing
var Logger = logrus.New()

const requestTimeout = 30 * time.Second

// Config holds the device connection parameters.
type Config struct {
	Host     string
	Username string
	Password string
	Port     int  // 0 means the scheme default (80 or 443)
	UseSSL   bool
}

func (x Config) baseURL() string {
	scheme := "http"
	port := 80
	if x.UseSSL {
		scheme = "https"
		port = 443
	}
	if x.Port != 0 {
		port = x.Port
	}
	return fmt.Sprintf("%s://%s:%d/rest", scheme, x.Host, port)
}

// Record is one row of a RouterOS print response. Values are strings for
// nearly all properties; numeric looking values still arrive quoted.
type Record = map[string]interface{}

// Endpoint describes one read-only print endpoint of the REST API.
type Endpoint struct {
	Path string
}

// Client issues requests against one RouterOS device.
type Client struct {
	config     Config
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the given device configuration.
func NewClient(config Config) *Client {
	return &Client{
		config:  config,
		baseURL: config.baseURL(),
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// Do sends one request and decodes the JSON response. The RouterOS REST API
// expects POST with a JSON body for print endpoints.
func (x *Client) Do(ctx context.Context, method, endpoint string, body interface{}) (interface{}, error) {
	if body == nil {
		body = map[string]interface{}{}
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Wrap(err, "fail to encode request body")
	}

	url := x.baseURL + endpoint
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(raw))
	if err != nil {
		return nil, errors.Wrapf(err, "fail to build request for %s", endpoint)
	}
	req.SetBasicAuth(x.config.Username, x.config.Password)
	req.Header.Set("Content-Type", "application/json")

	Logger.WithFields(logrus.Fields{
		"method":   method,
		"endpoint": endpoint,
	}).Debug("RouterOS request")

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "fail to request %s", endpoint)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "fail to read response of %s", endpoint)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail := string(data)
		if len(detail) > 200 {
			detail = detail[:200]
		}
		return nil, errors.Errorf("RouterOS API error on %s: status %d: %s", endpoint, resp.StatusCode, detail)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var decoded interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, errors.Wrapf(err, "fail to parse response of %s", endpoint)
	}

	return decoded, nil
}

// Print calls a print endpoint and normalizes the response to a record list.
// The API usually returns a bare JSON array, but some endpoints wrap it in a
// {"ret": [...]} envelope.
func (x *Client) Print(ctx context.Context, ep Endpoint, params map[string]interface{}) ([]Record, error) {
	resp, err := x.Do(ctx, http.MethodPost, ep.Path, params)
	if err != nil {
		return nil, err
	}

	return normalizeRecords(resp, ep.Path)
}

func normalizeRecords(resp interface{}, path string) ([]Record, error) {
	switch v := resp.(type) {
	case nil:
		return nil, nil
	case []interface{}:
		records := make([]Record, 0, len(v))
		for _, item := range v {
			rec, ok := item.(map[string]interface{})
			if !ok {
				return nil, errors.Errorf("unexpected record type %T in response of %s", item, path)
			}
			records = append(records, rec)
		}
		return records, nil
	case map[string]interface{}:
		if ret, ok := v["ret"]; ok {
			return normalizeRecords(ret, path)
		}
		Logger.WithField("path", path).Warn("Dict response without ret property")
		return nil, nil
	default:
		return nil, errors.Errorf("unexpected response type %T of %s", resp, path)
	}
}

// IsReachable checks connectivity by hitting the system resource endpoint.
func (x *Client) IsReachable(ctx context.Context) bool {
	_, err := x.Do(ctx, http.MethodPost, "/system/resource/print", nil)
	if err != nil {
		Logger.WithError(err).Debug("Connection test failed")
		return false
	}
	return true
}
