package establishment

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/avaliaccess/aa-server/internal/audit"
	dbpkg "github.com/avaliaccess/aa-server/internal/db"
	domain "github.com/avaliaccess/aa-server/internal/domain/establishment"
	"github.com/avaliaccess/aa-server/internal/httperr"
	"github.com/avaliaccess/aa-server/internal/infra/repository"
	"github.com/avaliaccess/aa-server/internal/infra/storage"
	"github.com/avaliaccess/aa-server/internal/logger"
	"github.com/avaliaccess/aa-server/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, dbpkg.Migrate(db))
	return db
}

func newDispatcher(db *gorm.DB) *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(db), logger.NewNop())
}

func newStorage(t *testing.T) *storage.LocalStorage {
	t.Helper()

	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	return store
}

func createUser(t *testing.T, db *gorm.DB, email string, roles ...models.Role) *models.User {
	t.Helper()

	if len(roles) == 0 {
		roles = []models.Role{models.RoleUser}
	}
	user := &models.User{
		Name:         "Usuário " + email,
		Email:        email,
		PasswordHash: "x",
		Roles:        models.RoleList(roles),
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func sampleInput(name string) EstablishmentInput {
	return EstablishmentInput{
		Name:    name,
		Address: "Av. Paulista, 1000",
		City:    "São Paulo",
		State:   "sp",
		Type:    "restaurante",
	}
}

// ======================================================
// CREATE
// ======================================================

func TestCreateEstablishment_SetsCreatorAndNormalizesState(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewEstablishmentGormRepository(db)
	uc := NewCreateEstablishment(repo, newStorage(t), newDispatcher(db))

	creator := createUser(t, db, "dono@example.com")

	est, err := uc.Execute(context.Background(), creator.Email, sampleInput("Padaria Central"), nil)
	require.NoError(t, err)

	require.NotZero(t, est.ID)
	require.Equal(t, creator.ID, est.CreatedByID)
	require.Equal(t, "SP", est.State)
	require.Nil(t, est.AverageRating)
	require.Zero(t, est.TotalRatings)
}

func TestCreateEstablishment_WithPhoto(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewEstablishmentGormRepository(db)
	store := newStorage(t)
	uc := NewCreateEstablishment(repo, store, newDispatcher(db))

	creator := createUser(t, db, "dono@example.com")

	photo := &PhotoUpload{
		Reader:       strings.NewReader("fake-image-bytes"),
		OriginalName: "fachada.jpg",
	}
	est, err := uc.Execute(context.Background(), creator.Email, sampleInput("Padaria Central"), photo)
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(est.PhotoURL, PhotoURLPrefix))
	require.True(t, strings.HasSuffix(est.PhotoURL, ".jpg"))

	name := strings.TrimPrefix(est.PhotoURL, PhotoURLPrefix)
	path, err := store.Path(name)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "fake-image-bytes", string(data))
}

func TestCreateEstablishment_UnknownUser(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewEstablishmentGormRepository(db)
	uc := NewCreateEstablishment(repo, newStorage(t), newDispatcher(db))

	_, err := uc.Execute(context.Background(), "fantasma@example.com", sampleInput("Padaria"), nil)
	require.True(t, httperr.IsBusiness(err, httperr.CodeUserNotFound))
}

// ======================================================
// UPDATE
// ======================================================

func TestUpdateEstablishment_CreatorAndAdminAllowed(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewEstablishmentGormRepository(db)
	store := newStorage(t)
	log := logger.NewNop()
	createUC := NewCreateEstablishment(repo, store, newDispatcher(db))
	updateUC := NewUpdateEstablishment(repo, store, newDispatcher(db), log)

	creator := createUser(t, db, "dono@example.com")
	est, err := createUC.Execute(context.Background(), creator.Email, sampleInput("Padaria Central"), nil)
	require.NoError(t, err)

	// criador edita
	updated, err := updateUC.Execute(context.Background(), est.ID, creator.Email, sampleInput("Padaria Nova"), nil)
	require.NoError(t, err)
	require.Equal(t, "Padaria Nova", updated.Name)

	// outro usuário comum não edita
	stranger := createUser(t, db, "outro@example.com")
	_, err = updateUC.Execute(context.Background(), est.ID, stranger.Email, sampleInput("Invasão"), nil)
	require.True(t, httperr.IsBusiness(err, httperr.CodeForbidden))

	// administrador edita qualquer estabelecimento
	admin := createUser(t, db, "admin@example.com", models.RoleAdmin, models.RoleUser)
	updated, err = updateUC.Execute(context.Background(), est.ID, admin.Email, sampleInput("Padaria do Admin"), nil)
	require.NoError(t, err)
	require.Equal(t, "Padaria do Admin", updated.Name)
}

func TestUpdateEstablishment_ReplacesPhotoAndRemovesOld(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewEstablishmentGormRepository(db)
	store := newStorage(t)
	createUC := NewCreateEstablishment(repo, store, newDispatcher(db))
	updateUC := NewUpdateEstablishment(repo, store, newDispatcher(db), logger.NewNop())

	creator := createUser(t, db, "dono@example.com")

	est, err := createUC.Execute(context.Background(), creator.Email, sampleInput("Padaria"), &PhotoUpload{
		Reader:       strings.NewReader("old"),
		OriginalName: "antiga.png",
	})
	require.NoError(t, err)
	oldName := strings.TrimPrefix(est.PhotoURL, PhotoURLPrefix)

	updated, err := updateUC.Execute(context.Background(), est.ID, creator.Email, sampleInput("Padaria"), &PhotoUpload{
		Reader:       strings.NewReader("new"),
		OriginalName: "nova.png",
	})
	require.NoError(t, err)

	newName := strings.TrimPrefix(updated.PhotoURL, PhotoURLPrefix)
	require.NotEqual(t, oldName, newName)

	_, err = store.Path(oldName)
	require.ErrorIs(t, err, storage.ErrNotFound)

	path, err := store.Path(newName)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "new", string(data))
}

func TestUpdateEstablishment_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewEstablishmentGormRepository(db)
	uc := NewUpdateEstablishment(repo, newStorage(t), newDispatcher(db), logger.NewNop())

	user := createUser(t, db, "dono@example.com")

	_, err := uc.Execute(context.Background(), 4321, user.Email, sampleInput("Nada"), nil)
	require.True(t, httperr.IsBusiness(err, httperr.CodeEstablishmentNotFound))
}

// ======================================================
// DELETE
// ======================================================

func TestDeleteEstablishment_CascadesReviews(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewEstablishmentGormRepository(db)
	store := newStorage(t)
	createUC := NewCreateEstablishment(repo, store, newDispatcher(db))
	deleteUC := NewDeleteEstablishment(repo, store, newDispatcher(db), logger.NewNop())

	creator := createUser(t, db, "dono@example.com")
	est, err := createUC.Execute(context.Background(), creator.Email, sampleInput("Padaria"), nil)
	require.NoError(t, err)

	reviewer := createUser(t, db, "autor@example.com")
	require.NoError(t, db.Create(&models.Review{
		EstablishmentID: est.ID,
		UserID:          reviewer.ID,
		Rating:          4,
	}).Error)

	require.NoError(t, deleteUC.Execute(context.Background(), est.ID, creator.Email))

	var estCount, reviewCount int64
	require.NoError(t, db.Model(&models.Establishment{}).Where("id = ?", est.ID).Count(&estCount).Error)
	require.NoError(t, db.Model(&models.Review{}).Where("establishment_id = ?", est.ID).Count(&reviewCount).Error)
	require.Zero(t, estCount)
	require.Zero(t, reviewCount)
}

func TestDeleteEstablishment_StrangerForbiddenAdminAllowed(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewEstablishmentGormRepository(db)
	store := newStorage(t)
	createUC := NewCreateEstablishment(repo, store, newDispatcher(db))
	deleteUC := NewDeleteEstablishment(repo, store, newDispatcher(db), logger.NewNop())

	creator := createUser(t, db, "dono@example.com")
	est, err := createUC.Execute(context.Background(), creator.Email, sampleInput("Padaria"), nil)
	require.NoError(t, err)

	stranger := createUser(t, db, "outro@example.com")
	err = deleteUC.Execute(context.Background(), est.ID, stranger.Email)
	require.True(t, httperr.IsBusiness(err, httperr.CodeForbidden))

	admin := createUser(t, db, "admin@example.com", models.RoleAdmin, models.RoleUser)
	require.NoError(t, deleteUC.Execute(context.Background(), est.ID, admin.Email))
}

func TestDeleteEstablishment_RemovesStoredPhoto(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewEstablishmentGormRepository(db)
	store := newStorage(t)
	createUC := NewCreateEstablishment(repo, store, newDispatcher(db))
	deleteUC := NewDeleteEstablishment(repo, store, newDispatcher(db), logger.NewNop())

	creator := createUser(t, db, "dono@example.com")
	est, err := createUC.Execute(context.Background(), creator.Email, sampleInput("Padaria"), &PhotoUpload{
		Reader:       strings.NewReader("img"),
		OriginalName: "foto.jpg",
	})
	require.NoError(t, err)
	name := strings.TrimPrefix(est.PhotoURL, PhotoURLPrefix)

	require.NoError(t, deleteUC.Execute(context.Background(), est.ID, creator.Email))

	_, err = store.Path(name)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

// ======================================================
// GET / LIST
// ======================================================

func TestGetEstablishments(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewEstablishmentGormRepository(db)
	createUC := NewCreateEstablishment(repo, newStorage(t), newDispatcher(db))
	getUC := NewGetEstablishments(repo)

	creator := createUser(t, db, "dono@example.com")

	in := sampleInput("Padaria Central")
	est, err := createUC.Execute(context.Background(), creator.Email, in, nil)
	require.NoError(t, err)

	in2 := sampleInput("Museu de Arte")
	in2.City = "Curitiba"
	in2.Type = "museu"
	_, err = createUC.Execute(context.Background(), creator.Email, in2, nil)
	require.NoError(t, err)

	got, err := getUC.ByID(context.Background(), est.ID)
	require.NoError(t, err)
	require.Equal(t, "Padaria Central", got.Name)
	require.Equal(t, creator.Name, got.CreatedBy.Name)

	_, err = getUC.ByID(context.Background(), 9999)
	require.True(t, httperr.IsBusiness(err, httperr.CodeEstablishmentNotFound))

	all, err := getUC.All(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)

	byCity, err := getUC.ByCity(context.Background(), "Curitiba")
	require.NoError(t, err)
	require.Len(t, byCity, 1)
	require.Equal(t, "Museu de Arte", byCity[0].Name)

	byType, err := getUC.ByType(context.Background(), "restaurante")
	require.NoError(t, err)
	require.Len(t, byType, 1)
	require.Equal(t, "Padaria Central", byType[0].Name)
}

// ======================================================
// SEARCH
// ======================================================

func seedSearchFixtures(t *testing.T, db *gorm.DB, repo domain.Repository) {
	t.Helper()

	creator := createUser(t, db, "dono@example.com")
	createUC := NewCreateEstablishment(repo, newStorage(t), newDispatcher(db))

	fixtures := []EstablishmentInput{
		{Name: "Padaria Central", Address: "Rua A, 1", City: "São Paulo", State: "SP", Type: "padaria"},
		{Name: "Padaria do Bairro", Address: "Rua B, 2", City: "Campinas", State: "SP", Type: "padaria"},
		{Name: "Museu de Arte", Address: "Rua C, 3", City: "São Paulo", State: "SP", Type: "museu"},
		{Name: "Cinema Estrela", Address: "Rua D, 4", City: "Curitiba", State: "PR", Type: "cinema"},
	}
	for _, in := range fixtures {
		_, err := createUC.Execute(context.Background(), creator.Email, in, nil)
		require.NoError(t, err)
	}
}

func TestSearchEstablishments_Filters(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewEstablishmentGormRepository(db)
	seedSearchFixtures(t, db, repo)
	uc := NewSearchEstablishments(repo)

	// substring case-insensitive no nome
	results, total, err := uc.Execute(context.Background(), domain.SearchParams{Name: "padaria"})
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	require.Len(t, results, 2)

	// filtros exatos combinados
	results, total, err = uc.Execute(context.Background(), domain.SearchParams{
		City: "São Paulo",
		Type: "museu",
	})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, "Museu de Arte", results[0].Name)

	// estado
	_, total, err = uc.Execute(context.Background(), domain.SearchParams{State: "PR"})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)

	// sem filtro → tudo
	_, total, err = uc.Execute(context.Background(), domain.SearchParams{})
	require.NoError(t, err)
	require.EqualValues(t, 4, total)

	// filtro sem resultado
	results, total, err = uc.Execute(context.Background(), domain.SearchParams{City: "Manaus"})
	require.NoError(t, err)
	require.Zero(t, total)
	require.Empty(t, results)
}

func TestSearchEstablishments_PaginationAndSort(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewEstablishmentGormRepository(db)
	seedSearchFixtures(t, db, repo)
	uc := NewSearchEstablishments(repo)

	// ordenação ascendente por nome, páginas de 3
	page0, total, err := uc.Execute(context.Background(), domain.SearchParams{
		Page:          0,
		Size:          3,
		SortBy:        "name",
		SortDirection: "asc",
	})
	require.NoError(t, err)
	require.EqualValues(t, 4, total)
	require.Len(t, page0, 3)
	require.Equal(t, "Cinema Estrela", page0[0].Name)

	page1, total, err := uc.Execute(context.Background(), domain.SearchParams{
		Page:          1,
		Size:          3,
		SortBy:        "name",
		SortDirection: "asc",
	})
	require.NoError(t, err)
	require.EqualValues(t, 4, total)
	require.Len(t, page1, 1)
	require.Equal(t, "Padaria do Bairro", page1[0].Name)

	// sortBy desconhecido cai no padrão sem erro
	_, _, err = uc.Execute(context.Background(), domain.SearchParams{SortBy: "orçamento"})
	require.NoError(t, err)
}

func TestPhotoFileName(t *testing.T) {
	require.Equal(t, "abc.jpg", photoFileName(PhotoURLPrefix+"abc.jpg"))
	require.Equal(t, "abc.jpg", photoFileName("abc.jpg"))
	require.Empty(t, photoFileName(""))
}

func TestStoragePathStaysInsideRoot(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewLocalStorage(dir)
	require.NoError(t, err)

	name, err := store.Store(strings.NewReader("x"), "a.png")
	require.NoError(t, err)

	path, err := store.Path(name)
	require.NoError(t, err)
	require.Equal(t, dir, filepath.Dir(path))
}
