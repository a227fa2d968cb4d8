package storage

import (
	"errors"
	"io"
)

// ErrNotFound indica que o arquivo referenciado não existe.
var ErrNotFound = errors.New("storage: file not found")

// Storage guarda fotos enviadas e devolve uma referência opaca (o nome
// gerado). A exclusão é best-effort: quem chama decide se falha importa.
type Storage interface {
	Store(r io.Reader, originalName string) (string, error)
	Delete(name string) error
	Path(name string) (string, error)
}
