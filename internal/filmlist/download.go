package filmlist

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ulikunitz/xz"

	"bahnarchiv/internal/services"
)

// Download fetches the xz-compressed film list from url and extracts the
// records matching the keywords while streaming, so the multi-hundred-MB
// document is never held in memory or on disk.
func Download(ctx context.Context, client *http.Client, url, userAgent string, keywords []string) ([]Record, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "filmlist", "download", "build request", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, services.Wrap(services.ErrExternal, "filmlist", "download", "fetch film list", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, services.Wrap(services.ErrExternal, "filmlist", "download",
			fmt.Sprintf("unexpected status %s", resp.Status), nil)
	}

	decompressed, err := xz.NewReader(resp.Body)
	if err != nil {
		return nil, services.Wrap(services.ErrExternal, "filmlist", "download", "open xz stream", err)
	}

	records, err := Extract(decompressed, keywords)
	if err != nil {
		return nil, services.Wrap(services.ErrExternal, "filmlist", "download", "parse film list", err)
	}
	return records, nil
}
