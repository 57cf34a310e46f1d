package client

import (
	"net/http"
	"net/http/httputil"
	"os"
)

// debugTransport dumps full HTTP requests and responses at debug level.
//
// When to use:
//   - Set POSTBOARD_DEBUG=true or DEBUG=true environment variable
//   - When investigating unexpected responses from the posts API
//
// Security considerations:
//   - Logs full request/response bodies and headers
//   - Only enable in development environments
type debugTransport struct {
	base  http.RoundTripper
	owner *Client
}

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	logger := dt.owner.logger
	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		logger.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		logger.Debug().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		logger.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested reports whether POSTBOARD_DEBUG=true or DEBUG=true.
func debugLoggingRequested() bool {
	return os.Getenv("POSTBOARD_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
