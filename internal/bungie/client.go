package bungie

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

const defaultBaseURL = "https://www.bungie.net"

// Client fetches the Destiny 2 manifest and its content blobs. It is a
// one-shot collaborator: every fetch runs to completion or fails the run.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
}

func NewClient(apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 25 * time.Second},
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
	}
}

type manifestResponse struct {
	ErrorStatus string `json:"ErrorStatus"`
	Message     string `json:"Message"`
	Response    struct {
		JSONWorldComponentContentPaths map[string]map[string]string `json:"jsonWorldComponentContentPaths"`
	} `json:"Response"`
}

// FetchDefinitions pulls the manifest, resolves the English content paths
// and downloads the category, item and plug-set tables.
func (c *Client) FetchDefinitions(ctx context.Context) (Definitions, error) {
	var manifest manifestResponse
	if err := c.getJSON(ctx, c.baseURL+"/Platform/Destiny2/Manifest/", &manifest); err != nil {
		return Definitions{}, fmt.Errorf("fetch manifest: %w", err)
	}
	if manifest.ErrorStatus != "Success" {
		return Definitions{}, fmt.Errorf("fetch manifest: %s: %s", manifest.ErrorStatus, manifest.Message)
	}

	paths, ok := manifest.Response.JSONWorldComponentContentPaths["en"]
	if !ok {
		return Definitions{}, fmt.Errorf("manifest has no \"en\" content paths")
	}

	var defs Definitions
	var err error
	if defs.Categories, err = fetchTable[ItemCategoryDef](ctx, c, paths, "DestinyItemCategoryDefinition"); err != nil {
		return Definitions{}, err
	}
	if defs.Items, err = fetchTable[InventoryItemDef](ctx, c, paths, "DestinyInventoryItemDefinition"); err != nil {
		return Definitions{}, err
	}
	if defs.PlugSets, err = fetchTable[PlugSetDef](ctx, c, paths, "DestinyPlugSetDefinition"); err != nil {
		return Definitions{}, err
	}
	return defs, nil
}

func fetchTable[T any](ctx context.Context, c *Client, paths map[string]string, name string) (map[Hash]T, error) {
	path, ok := paths[name]
	if !ok {
		return nil, fmt.Errorf("manifest has no content path for %s", name)
	}

	var raw map[string]T
	if err := c.getJSON(ctx, c.baseURL+path, &raw); err != nil {
		return nil, fmt.Errorf("fetch %s: %w", name, err)
	}

	out := make(map[Hash]T, len(raw))
	for k, v := range raw {
		h, err := strconv.ParseUint(k, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%s: non-numeric key %q", name, k)
		}
		out[Hash(h)] = v
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return fmt.Errorf("bungie api status %d for %s: %s", resp.StatusCode, url, string(b))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode json from %s: %w", url, err)
	}
	return nil
}
