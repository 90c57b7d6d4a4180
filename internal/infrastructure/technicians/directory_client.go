package technicians

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"repairflow/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const randomTechnicianPath = "/technicians/random"

type randomTechnicianResponse struct {
	ID string `json:"id"`
}

// DirectoryClient asks the technician directory service for an available technician.
//
//   - 200 with {"id": "..."} -> found
//   - 204 or 404 -> no technician available
//   - anything else -> error
//
// Each lookup is a single request; there are no retries.
type DirectoryClient struct {
	baseURL string
	http    *http.Client
}

var _ interfaces.ITechnicianDirectory = (*DirectoryClient)(nil)

func NewDirectoryClient(baseURL string, timeout time.Duration) *DirectoryClient {
	return &DirectoryClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *DirectoryClient) GetRandomTechnician(ctx context.Context) (string, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+randomTechnicianPath, nil)
	if err != nil {
		return "", false, fmt.Errorf("build directory request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		zap.L().Warn("[technician][directory] request failed", zap.Error(err))
		return "", false, fmt.Errorf("technician directory request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNoContent, http.StatusNotFound:
		zap.L().Info("[technician][directory] no technician available", zap.Int("status", resp.StatusCode))
		return "", false, nil
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		zap.L().Warn("[technician][directory] unexpected status", zap.Int("status", resp.StatusCode), zap.ByteString("body", body))
		return "", false, fmt.Errorf("technician directory returned status %d", resp.StatusCode)
	}

	var body randomTechnicianResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&body); err != nil {
		return "", false, fmt.Errorf("decode technician directory response: %w", err)
	}
	// A 200 always means a technician was assigned; the caller validates the id.
	return strings.TrimSpace(body.ID), true, nil
}

// StaticDirectory always answers with the same technician. It stands in for the
// directory service in local runs.
type StaticDirectory struct {
	technicianID string
}

var _ interfaces.ITechnicianDirectory = (*StaticDirectory)(nil)

func NewStaticDirectory(technicianID string) *StaticDirectory {
	zap.L().Info("[technician][directory] mock mode enabled", zap.String("technician_id", technicianID))
	return &StaticDirectory{technicianID: strings.TrimSpace(technicianID)}
}

func (d *StaticDirectory) GetRandomTechnician(ctx context.Context) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	if d.technicianID == "" {
		return "", false, nil
	}
	return d.technicianID, true, nil
}
