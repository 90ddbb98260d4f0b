package system

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// Fetch downloads a catalog document. file:// URLs read from disk,
// everything else goes through HTTP. The bytes are handed to the
// catalog parser as-is.
func Fetch(url string) ([]byte, error) {
	if strings.HasPrefix(url, "file://") {
		return os.ReadFile(strings.TrimPrefix(url, "file://"))
	}

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: bad status %s", url, resp.Status)
	}

	return io.ReadAll(resp.Body)
}
