package snapshotclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"

	"github.com/vfg2006/sales-comparison-api/infrastructure/snapshot"
	"github.com/vfg2006/sales-comparison-api/internal/config"
)

// SnapshotClient busca os documentos de vendas publicados em um servidor HTTP
type SnapshotClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient cria um cliente HTTP para a origem de snapshots
func NewClient(cfg config.Snapshot) *SnapshotClient {
	return &SnapshotClient{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL: cfg.BaseURL,
	}
}

// Open faz o GET do documento e devolve o corpo da resposta. O chamador deve fechá-lo.
func (c *SnapshotClient) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %s", snapshot.ErrNotFound, name)
	case resp.StatusCode != http.StatusOK:
		resp.Body.Close()
		return nil, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	return resp.Body, nil
}
