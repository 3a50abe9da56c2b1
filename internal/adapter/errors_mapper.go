package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// mapGRPCError converts a gRPC call failure into the adapter sentinels.
// Cancellation and deadline errors keep matching their context errors.
func mapGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("%w: %w", ErrConfigurationServerFailed, err)
	}

	switch st.Code() {
	case codes.Unavailable:
		return fmt.Errorf("%w: %s", ErrConfigurationServerUnavailable, st.Message())
	case codes.Canceled:
		return fmt.Errorf("configuration server call: %w", context.Canceled)
	case codes.DeadlineExceeded:
		return fmt.Errorf("configuration server call: %w", context.DeadlineExceeded)
	default:
		return fmt.Errorf("%w: %s: %s", ErrConfigurationServerFailed, st.Code(), st.Message())
	}
}
