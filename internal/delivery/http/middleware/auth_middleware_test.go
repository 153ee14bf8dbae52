package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "authsvc/internal/delivery/context"
	"authsvc/internal/domain/entity"
	domainerrors "authsvc/internal/domain/errors"
	"authsvc/internal/errors"
	mockUC "authsvc/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBearerToken(t *testing.T) {
	cases := map[string]struct {
		header string
		token  string
		ok     bool
	}{
		"standard":         {header: "Bearer abc.def.ghi", token: "abc.def.ghi", ok: true},
		"lowercase scheme": {header: "bearer abc", token: "abc", ok: true},
		"padded":           {header: "  Bearer   abc  ", token: "abc", ok: true},
		"empty":            {header: ""},
		"scheme only":      {header: "Bearer"},
		"blank token":      {header: "Bearer    "},
		"basic":            {header: "Basic YWRhOng="},
		"no scheme":        {header: "abc.def.ghi"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			token, ok := bearerToken(tc.header)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.token, token)
		})
	}
}

func newContext(header string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}

	return e.NewContext(req, httptest.NewRecorder())
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	m := NewAuthMiddleware(uc)
	account := &entity.PublicAccount{ID: uuid.New(), Name: "Ada", Role: entity.RoleUser}

	uc.EXPECT().Authenticate(mock.Anything, "good").Return(account, nil)

	c := newContext("Bearer good")
	var seen *entity.PublicAccount
	err := m.Authenticate(func(c echo.Context) error {
		seen, _ = deliverycontext.GetAccount(c)

		return nil
	})(c)
	require.NoError(t, err)
	assert.Same(t, account, seen)

	err = m.Authenticate(func(echo.Context) error {
		t.Fatal("next must not run without a token")

		return nil
	})(newContext(""))
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(nil)
	next := func(echo.Context) error { return nil }

	c := newContext("")
	assert.True(t, errors.Is(m.RequireRole(entity.RoleAdmin)(next)(c), domainerrors.ErrUnauthorized))

	deliverycontext.SetAccount(c, &entity.PublicAccount{Role: entity.RoleUser})
	assert.True(t, errors.Is(m.RequireRole(entity.RoleAdmin)(next)(c), domainerrors.ErrForbidden))
	assert.NoError(t, m.RequireRole(entity.RoleUser)(next)(c))
}
