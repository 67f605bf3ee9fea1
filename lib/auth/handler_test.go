package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"quickpay-backend/config"
	usersstore "quickpay-backend/lib/users/store"
	authutils "quickpay-backend/lib/utils/auth-utils"
	"quickpay-backend/models"
	authapimodels "quickpay-backend/models/api/auth"
	dbmodels "quickpay-backend/models/db"
)

type fakeUsersStore struct {
	usersstore.Provider
	recs map[string]*dbmodels.User
}

func (f fakeUsersStore) GetByID(userID string) (*dbmodels.User, error) {
	rec, ok := f.recs[userID]
	if !ok {
		return nil, nil
	}
	return rec, nil
}

func (f fakeUsersStore) FindByUsername(username string) (*dbmodels.User, error) {
	for _, rec := range f.recs {
		if rec.Username == username {
			return rec, nil
		}
	}
	return nil, nil
}

func (f fakeUsersStore) FindByUsernameAndPhone(username, phone string) (*dbmodels.User, error) {
	rec, _ := f.FindByUsername(username)
	if rec == nil || rec.PhoneNumber != phone {
		return nil, nil
	}
	return rec, nil
}

func (f fakeUsersStore) Update(userID string, updMap map[string]interface{}) error {
	if hash, ok := updMap["password"]; ok {
		f.recs[userID].Password = hash.(string)
	}
	return nil
}

func setTestConfig() {
	conf := &config.Configuration{}
	conf.Auth.JWTSecret = "test-secret"
	conf.Auth.JWTExpireInSec = 60
	conf.Auth.JWTRefreshExpireInSec = 120
	config.Conf = conf
}

func newTestHandler(t *testing.T) (impl, fakeUsersStore) {
	setTestConfig()
	hash, err := authutils.HashPassword("Secret#1")
	require.NoError(t, err)
	store := fakeUsersStore{recs: map[string]*dbmodels.User{
		"u1": {BaseModel: dbmodels.BaseModel{ID: "u1"}, Username: "ravi123", Password: hash, FirstName: "Ravi",
			LastName: "Kumar", PhoneNumber: "9876543210", Role: models.PayrollManagerRole, IsActive: true},
		"u2": {BaseModel: dbmodels.BaseModel{ID: "u2"}, Username: "asha456", Password: hash, Role: models.EmployeeRole},
	}}
	return impl{store: store}, store
}

func TestLogin(t *testing.T) {
	h, _ := newTestHandler(t)

	t.Run("success", func(t *testing.T) {
		resp, err := h.Login(authapimodels.LoginRequest{Username: "ravi123", Password: "Secret#1"})
		require.NoError(t, err)
		require.NotEmpty(t, resp.RefreshToken)

		token, err := jwt.Parse(resp.Token, func(token *jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		require.NoError(t, err)
		claims := token.Claims.(jwt.MapClaims)
		require.Equal(t, "u1", claims["sub"])
		require.Equal(t, "payroll_manager", claims["role"])
		require.Equal(t, "Ravi Kumar", claims["name"])
	})
	t.Run("wrong password", func(t *testing.T) {
		_, err := h.Login(authapimodels.LoginRequest{Username: "ravi123", Password: "nope"})
		require.True(t, errors.Is(err, models.ErrUnauthorized))
	})
	t.Run("unknown user", func(t *testing.T) {
		_, err := h.Login(authapimodels.LoginRequest{Username: "ghost", Password: "Secret#1"})
		require.True(t, errors.Is(err, models.ErrUnauthorized))
	})
	t.Run("blocked", func(t *testing.T) {
		_, err := h.Login(authapimodels.LoginRequest{Username: "asha456", Password: "Secret#1"})
		require.True(t, errors.Is(err, models.ErrForbidden))
		require.Equal(t, "account has been blocked", models.HumanMessage(err))
	})
}

func TestRefreshToken(t *testing.T) {
	h, _ := newTestHandler(t)
	resp, err := h.Login(authapimodels.LoginRequest{Username: "ravi123", Password: "Secret#1"})
	require.NoError(t, err)

	refreshed, err := h.RefreshToken(resp.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, refreshed.Token)

	_, err = h.RefreshToken(resp.Token)
	require.True(t, errors.Is(err, models.ErrUnauthorized))
}

func TestIsActive(t *testing.T) {
	h, _ := newTestHandler(t)
	cases := []struct {
		name   string
		userID string
		active bool
	}{
		{"active", "u1", true},
		{"blocked", "u2", false},
		{"deleted", "u3", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			active, err := h.IsActive(tc.userID)
			require.NoError(t, err)
			require.Equal(t, tc.active, active)
		})
	}
}

func TestResetPassword(t *testing.T) {
	h, store := newTestHandler(t)

	err := h.ResetPassword(authapimodels.PasswordResetRequest{
		Username: "ravi123", PhoneNumber: "1111111111", NewPassword: "N3w!pass", ConfirmPassword: "N3w!pass",
	})
	require.True(t, errors.Is(err, models.ErrNotFound))

	err = h.ResetPassword(authapimodels.PasswordResetRequest{
		Username: "ravi123", PhoneNumber: "9876543210", NewPassword: "N3w!pass", ConfirmPassword: "N3w!pass",
	})
	require.NoError(t, err)
	require.True(t, authutils.CheckPassword(store.recs["u1"].Password, "N3w!pass"))
}
