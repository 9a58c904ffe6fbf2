package snapshot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrNotFound indica que o documento não existe na origem
var ErrNotFound = errors.New("snapshot: documento não encontrado")

// Source abre documentos JSON de vendas pelo nome relativo (ex.: "2025-10-22.json", "archive/2024.json")
type Source interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// FileSource lê os documentos de um diretório local
type FileSource struct {
	Dir string
}

func NewFileSource(dir string) *FileSource {
	return &FileSource{Dir: dir}
}

func (s *FileSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := filepath.Join(s.Dir, filepath.FromSlash(name))
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("erro ao abrir o arquivo %s: %w", path, err)
	}

	return file, nil
}
