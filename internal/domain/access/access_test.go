package access

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avaliaccess/aa-server/internal/models"
)

func TestCanEditEstablishment(t *testing.T) {
	creator := &models.User{ID: 1, Roles: models.RoleList{models.RoleUser}}
	stranger := &models.User{ID: 2, Roles: models.RoleList{models.RoleUser}}
	admin := &models.User{ID: 3, Roles: models.RoleList{models.RoleAdmin, models.RoleUser}}
	est := &models.Establishment{ID: 10, CreatedByID: 1}

	require.True(t, CanEditEstablishment(creator, est))
	require.False(t, CanEditEstablishment(stranger, est))
	require.True(t, CanEditEstablishment(admin, est))

	require.False(t, CanEditEstablishment(nil, est))
	require.False(t, CanEditEstablishment(creator, nil))
}

func TestCanEditReview(t *testing.T) {
	author := &models.User{ID: 1, Roles: models.RoleList{models.RoleUser}}
	stranger := &models.User{ID: 2, Roles: models.RoleList{models.RoleUser}}
	admin := &models.User{ID: 3, Roles: models.RoleList{models.RoleAdmin}}
	review := &models.Review{ID: 20, UserID: 1}

	require.True(t, CanEditReview(author, review))
	require.False(t, CanEditReview(stranger, review))

	// avaliação é opinião do autor: nem administrador edita
	require.False(t, CanEditReview(admin, review))

	require.False(t, CanEditReview(nil, review))
	require.False(t, CanEditReview(author, nil))
}
