// Package storage implementa el almacenamiento durable del carrito como un
// único documento JSON bajo una ruta fija (el análogo del localStorage del
// navegador). Se apoya en afero para poder usar un filesystem en memoria en
// tests.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/gifted-solutions/storefront-api/internal/domain/entity"
)

// FileStore guarda las líneas del carrito serializadas en un archivo JSON.
type FileStore struct {
	fs   afero.Fs
	path string
}

// NewFileStore construye el adaptador sobre el filesystem y ruta dados.
func NewFileStore(fs afero.Fs, path string) *FileStore {
	return &FileStore{fs: fs, path: path}
}

// Load lee y deserializa el carrito. Un archivo ausente es un carrito nuevo,
// no un error; un archivo corrupto sí retorna error para que el Store lo
// degrade a carrito vacío con log.
func (st *FileStore) Load() ([]entity.CartLine, error) {
	data, err := afero.ReadFile(st.fs, st.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer carrito: %w", err)
	}
	var lines []entity.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, fmt.Errorf("carrito corrupto: %w", err)
	}
	return lines, nil
}

// Save serializa y escribe el carrito completo, creando el directorio si hace falta.
func (st *FileStore) Save(lines []entity.CartLine) error {
	if lines == nil {
		lines = []entity.CartLine{}
	}
	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("serializar carrito: %w", err)
	}
	if dir := filepath.Dir(st.path); dir != "." {
		if err := st.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("crear directorio del carrito: %w", err)
		}
	}
	if err := afero.WriteFile(st.fs, st.path, data, 0o600); err != nil {
		return fmt.Errorf("escribir carrito: %w", err)
	}
	return nil
}
