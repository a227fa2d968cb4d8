package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/avaliaccess/aa-server/internal/httperr"
)

// writeBusinessError mapeia erros de negócio dos use cases para o
// status HTTP correspondente. Retorna false quando o erro não é de
// negócio (cabe ao chamador tratar como erro interno).
func writeBusinessError(c *gin.Context, err error) bool {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		return false
	}

	switch code {
	case httperr.CodeUserNotFound:
		httperr.NotFound(c, code, "Usuário não encontrado.")
	case httperr.CodeEstablishmentNotFound:
		httperr.NotFound(c, code, "Estabelecimento não encontrado.")
	case httperr.CodeReviewNotFound:
		httperr.NotFound(c, code, "Avaliação não encontrada.")
	case httperr.CodeDuplicateReview:
		httperr.Conflict(c, code, "Você já avaliou este estabelecimento.")
	case httperr.CodeForbidden:
		httperr.Forbidden(c, code, "Você não tem permissão para executar esta ação.")
	case httperr.CodeStorageError:
		httperr.Internal(c, code, "Erro ao gravar arquivo.")
	default:
		httperr.BadRequest(c, code, "Requisição inválida.")
	}
	return true
}
