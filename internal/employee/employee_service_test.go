package employee

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	employeeerrors "github.com/Netosantos999/controle-ponto-app/internal/employee/errors"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	createFn     func(ctx context.Context, empl *Employee) error
	findAllFn    func(ctx context.Context) ([]Employee, error)
	findByIDFn   func(ctx context.Context, id string) (*Employee, error)
	findByNameFn func(ctx context.Context, name string) (*Employee, error)
	updateFn     func(ctx context.Context, empl *Employee) error
	deleteFn     func(ctx context.Context, id string) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f }
func (f *fakeRepo) Create(ctx context.Context, empl *Employee) error {
	return f.createFn(ctx, empl)
}
func (f *fakeRepo) FindAll(ctx context.Context) ([]Employee, error) {
	return f.findAllFn(ctx)
}
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*Employee, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) FindByName(ctx context.Context, name string) (*Employee, error) {
	return f.findByNameFn(ctx, name)
}
func (f *fakeRepo) Update(ctx context.Context, empl *Employee) error {
	return f.updateFn(ctx, empl)
}
func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func TestService_Create_Success(t *testing.T) {
	var persisted *Employee
	repo := &fakeRepo{
		createFn: func(_ context.Context, empl *Employee) error {
			persisted = empl
			return nil
		},
	}

	svc := NewService(repo, nil)
	resp, err := svc.Create(context.Background(), CreateEmployeeRequest{
		Name: "  Maria Souza  ",
		Role: "Auxiliar Administrativo",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Maria Souza", resp.Name)
	assert.Equal(t, "Auxiliar Administrativo", resp.Role)
	assert.NotNil(t, persisted)
	assert.Equal(t, "Maria Souza", persisted.Name)
}

func TestService_Create_RejectsForbiddenChars(t *testing.T) {
	repo := &fakeRepo{
		createFn: func(context.Context, *Employee) error {
			t.Fatal("repository should not be called for invalid names")
			return nil
		},
	}
	svc := NewService(repo, nil)

	for _, name := range []string{"", "   ", "Maria;Souza", "a|b", "user@host", `a\b`} {
		_, err := svc.Create(context.Background(), CreateEmployeeRequest{Name: name})
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeName, "name %q", name)
	}
}

func TestService_Create_DuplicateName(t *testing.T) {
	repo := &fakeRepo{
		createFn: func(context.Context, *Employee) error {
			return errors.New(`ERROR: duplicate key value violates unique constraint "uq_employee_name"`)
		},
	}
	svc := NewService(repo, nil)

	_, err := svc.Create(context.Background(), CreateEmployeeRequest{Name: "Maria Souza"})
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeAlreadyExists)
}

func TestService_GetByID_InvalidID(t *testing.T) {
	svc := NewService(&fakeRepo{}, nil)

	_, err := svc.GetByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
}

func TestService_GetByID_NotFound(t *testing.T) {
	repo := &fakeRepo{
		findByIDFn: func(context.Context, string) (*Employee, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewService(repo, nil)

	_, err := svc.GetByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}

func TestService_Roster_MapsNameAndRole(t *testing.T) {
	repo := &fakeRepo{
		findAllFn: func(context.Context) ([]Employee, error) {
			return []Employee{
				{ID: uuid.New(), Name: "Carlos Lima", Role: "Vigia Noturno"},
				{ID: uuid.New(), Name: "Maria Souza", Role: "Auxiliar Administrativo"},
			}, nil
		},
	}
	svc := NewService(repo, nil)

	roster, err := svc.Roster(context.Background())
	assert.NoError(t, err)
	assert.Len(t, roster, 2)
	assert.Equal(t, "Carlos Lima", roster[0].Name)
	assert.Equal(t, "Vigia Noturno", roster[0].Role)
}

func TestService_GetOptions_CacheHitSkipsRepository(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	mock.ExpectGet(EmployeeOptionsKey).
		SetVal(`[{"id":"11111111-1111-1111-1111-111111111111","name":"Maria Souza","role":"Auxiliar"}]`)

	repo := &fakeRepo{
		findAllFn: func(context.Context) ([]Employee, error) {
			t.Fatal("repository should not be hit on cache hit")
			return nil, nil
		},
	}
	svc := NewService(repo, rdb)

	opts, err := svc.GetOptions(context.Background())
	assert.NoError(t, err)
	assert.Len(t, opts, 1)
	assert.Equal(t, "Maria Souza", opts[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Update_InvalidatesOptionsCache(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	mock.ExpectDel(EmployeeOptionsKey).SetVal(1)

	id := uuid.New()
	repo := &fakeRepo{
		findByIDFn: func(context.Context, string) (*Employee, error) {
			return &Employee{ID: id, Name: "Maria Souza", Role: "Auxiliar"}, nil
		},
		updateFn: func(context.Context, *Employee) error { return nil },
	}
	svc := NewService(repo, rdb)

	resp, err := svc.Update(context.Background(), id.String(), UpdateEmployeeRequest{
		Name: "Maria S. Souza",
		Role: "Coordenadora",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Maria S. Souza", resp.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Delete_NotFound(t *testing.T) {
	repo := &fakeRepo{
		findByIDFn: func(context.Context, string) (*Employee, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewService(repo, nil)

	err := svc.Delete(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}
