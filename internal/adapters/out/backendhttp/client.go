// Package backendhttp is the JSON client for the remote order backend, which
// owns all order and user state. It implements the OrderClient and
// ProfileClient ports.
package backendhttp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"courierapp/internal/core/domain/model/kernel"
	"courierapp/internal/core/domain/model/order"
	"courierapp/internal/core/domain/model/user"
	"courierapp/internal/core/ports"
	"courierapp/internal/pkg/errs"
	"courierapp/internal/pkg/metrics"
)

// errNotFound marks a backend 404 inside do; callers translate it into an
// ObjectNotFoundError with the looked-up id.
var errNotFound = errors.New("backend returned 404")

const defaultTimeout = 10 * time.Second

// maxErrorBodyBytes caps how much of an error response body travels into
// error messages and logs.
const maxErrorBodyBytes = 512

// Client talks to the order backend over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

var (
	_ ports.OrderClient   = (*Client)(nil)
	_ ports.ProfileClient = (*Client)(nil)
)

// NewClient creates a backend client for the given base URL. A zero timeout
// falls back to the default.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     slog.Default().With("component", "backendhttp"),
	}
}

// GetOrders fetches the order list with the filter passed through as query
// parameters. Filtering stays on the backend side.
func (c *Client) GetOrders(ctx context.Context, filter order.Filter) (order.List, error) {
	const op = "get orders"

	query := url.Values{}
	if filter.Status != nil {
		query.Set("status", filter.Status.String())
	}
	if filter.CourierID != nil {
		query.Set("courierId", filter.CourierID.String())
	}
	path := "/orders"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var dto orderListDTO
	if err := c.do(ctx, http.MethodGet, path, nil, &dto, op); err != nil {
		return order.List{}, err
	}
	return dto.toDomain()
}

// GetOrder fetches a single order snapshot.
func (c *Client) GetOrder(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	const op = "get order"

	var dto orderDTO
	err := c.do(ctx, http.MethodGet, "/orders/"+id.String(), nil, &dto, op)
	if err != nil {
		if errors.Is(err, errNotFound) {
			return nil, errs.NewObjectNotFoundError("orderID", id.String())
		}
		return nil, err
	}

	o, err := dto.toDomain()
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateStatus requests a status transition and returns the backend-confirmed
// snapshot.
func (c *Client) UpdateStatus(
	ctx context.Context,
	id kernel.UUID,
	update ports.StatusUpdate,
) (*order.Order, error) {
	const op = "update order status"

	body := newUpdateStatusRequest(update.Status, update.CourierID)

	var dto orderDTO
	err := c.do(ctx, http.MethodPatch, "/orders/"+id.String()+"/status", body, &dto, op)
	if err != nil {
		if errors.Is(err, errNotFound) {
			return nil, errs.NewObjectNotFoundError("orderID", id.String())
		}
		return nil, err
	}

	o, err := dto.toDomain()
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Cancel requests cancellation and returns the backend-confirmed snapshot.
func (c *Client) Cancel(
	ctx context.Context,
	id kernel.UUID,
	cancellation ports.Cancellation,
) (*order.Order, error) {
	const op = "cancel order"

	body := cancelRequestDTO{
		CourierID: cancellation.CourierID.String(),
		Reason:    cancellation.Reason,
	}

	var dto orderDTO
	err := c.do(ctx, http.MethodPost, "/orders/"+id.String()+"/cancel", body, &dto, op)
	if err != nil {
		if errors.Is(err, errNotFound) {
			return nil, errs.NewObjectNotFoundError("orderID", id.String())
		}
		return nil, err
	}

	o, err := dto.toDomain()
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// GetMe fetches the authenticated courier's own user record.
func (c *Client) GetMe(ctx context.Context) (*user.User, error) {
	const op = "get profile"

	var dto userDTO
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, &dto, op); err != nil {
		return nil, err
	}

	me, err := dto.toDomain()
	if err != nil {
		return nil, err
	}
	return &me, nil
}

// do issues one JSON request and decodes a 2xx response into out.
// Non-2xx responses and transport failures come back as RequestFailedError;
// 404 is additionally tagged so callers can translate it to not-found.
func (c *Client) do(ctx context.Context, method, path string, body, out any, op string) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errs.NewRequestFailedError(op, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return errs.NewRequestFailedError(op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.BackendRequestsTotal.WithLabelValues(op, "transport_error").Inc()
		c.logger.Error("backend request failed", "operation", op, "error", err)
		return errs.NewRequestFailedError(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		metrics.BackendRequestsTotal.WithLabelValues(op, "not_found").Inc()
		// Joined so the error matches both the 404 marker and the
		// request-failed taxonomy.
		return errors.Join(errNotFound, errs.NewRequestFailedError(op, fmt.Errorf("status 404")))
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		metrics.BackendRequestsTotal.WithLabelValues(op, "error").Inc()
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		c.logger.Error("backend returned error status",
			"operation", op, "status", resp.StatusCode, "body", string(detail))
		return errs.NewRequestFailedError(op,
			fmt.Errorf("status %d: %s", resp.StatusCode, string(detail)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		metrics.BackendRequestsTotal.WithLabelValues(op, "decode_error").Inc()
		return errs.NewRequestFailedError(op, err)
	}

	metrics.BackendRequestsTotal.WithLabelValues(op, "success").Inc()
	return nil
}
