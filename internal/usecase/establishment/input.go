package establishment

import (
	"io"
	"strings"

	"github.com/avaliaccess/aa-server/internal/models"
)

// EstablishmentInput é o corpo validado de criação/edição.
type EstablishmentInput struct {
	Name    string
	Address string
	City    string
	State   string
	Type    string
}

func (in EstablishmentInput) apply(e *models.Establishment) {
	e.Name = in.Name
	e.Address = in.Address
	e.City = in.City
	e.State = strings.ToUpper(in.State)
	e.Type = in.Type
}

// PhotoUpload carrega a foto opcional enviada junto com o formulário.
type PhotoUpload struct {
	Reader       io.Reader
	OriginalName string
}

// PhotoURLPrefix é o caminho público pelo qual as fotos de
// estabelecimento são servidas; a entidade guarda prefixo + nome gerado.
const PhotoURLPrefix = "/api/establishments/photo/"

// photoFileName extrai o nome do arquivo a partir da referência
// guardada na entidade.
func photoFileName(photoURL string) string {
	if photoURL == "" {
		return ""
	}
	if i := strings.LastIndex(photoURL, "/"); i >= 0 {
		return photoURL[i+1:]
	}
	return photoURL
}
