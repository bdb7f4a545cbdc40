package utils

import (
	"fmt"
	"io"
	"strings"
)

// maxBodySize is the maximum number of bytes read from a response body.
const maxBodySize = 2 * 1024 * 1024

// ReadBody reads at most 2MiB of the body and closes it.
func ReadBody(body io.ReadCloser) (data []byte, err error) {
	data, err = io.ReadAll(io.LimitReader(body, maxBodySize))
	if err != nil {
		_ = body.Close()
		return nil, fmt.Errorf("reading body: %w", err)
	}
	err = body.Close()
	if err != nil {
		return nil, fmt.Errorf("closing body: %w", err)
	}
	return data, nil
}

func ToSingleLine(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}
