package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/toryoto/Dapps-Auth/internal/user"
	"github.com/toryoto/Dapps-Auth/internal/wallet"
)

type fakeProvider struct {
	accounts []string
	err      error
	calls    int
}

func (p *fakeProvider) RequestAccounts(ctx context.Context) ([]string, error) {
	p.calls++
	return p.accounts, p.err
}

func apiServer(t *testing.T, hits *int64, loginStatus, logoutStatus int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/login", func(rw http.ResponseWriter, req *http.Request) {
		atomic.AddInt64(hits, 1)

		var body map[string]string
		assert.NoError(t, json.NewDecoder(req.Body).Decode(&body))

		rw.Header().Set("Content-Type", "application/json")
		if loginStatus != http.StatusOK {
			rw.WriteHeader(loginStatus)
			_ = json.NewEncoder(rw).Encode(map[string]string{"error": "Échec de la connexion"})
			return
		}
		_ = json.NewEncoder(rw).Encode(map[string]interface{}{
			"user": user.User{
				ID:            "user-1",
				WalletAddress: body["wallet_address"],
				AuthType:      body["auth_type"],
			},
		})
	})
	mux.HandleFunc("/api/v1/auth/logout", func(rw http.ResponseWriter, req *http.Request) {
		atomic.AddInt64(hits, 1)
		rw.Header().Set("Content-Type", "application/json")
		rw.WriteHeader(logoutStatus)
		_ = json.NewEncoder(rw).Encode(map[string]string{"message": "Déconnexion réussie"})
	})
	return httptest.NewServer(mux)
}

func TestRestoreFromStoreWithoutNetwork(t *testing.T) {
	var hits int64
	server := apiServer(t, &hits, http.StatusOK, http.StatusOK)
	defer server.Close()

	stored := &user.User{ID: "user-1", WalletAddress: "0xabc123", AuthType: user.AuthTypeMetaMask}
	store := NewMemoryStore(stored)

	a := NewAuthContext(server.URL, wallet.NewConnector(nil, nil), store)

	assert.True(t, a.Authenticated())
	assert.Equal(t, "user-1", a.User().ID)
	assert.EqualValues(t, 0, atomic.LoadInt64(&hits))
}

func TestLoginSuccess(t *testing.T) {
	var hits int64
	server := apiServer(t, &hits, http.StatusOK, http.StatusOK)
	defer server.Close()

	store := NewMemoryStore(nil)
	connector := wallet.NewConnector(&fakeProvider{accounts: []string{"0xAbC123"}}, nil)
	a := NewAuthContext(server.URL, connector, store)

	assert.False(t, a.Authenticated())

	u, err := a.Login(context.Background(), wallet.MethodMetaMask)
	assert.NoError(t, err)
	assert.True(t, a.Authenticated())
	assert.Equal(t, "0xabc123", u.WalletAddress)
	assert.Equal(t, user.AuthTypeMetaMask, u.AuthType)

	// L'utilisateur est persisté sous la clé de session
	persisted, err := store.Load()
	assert.NoError(t, err)
	assert.Equal(t, "user-1", persisted.ID)
}

func TestLoginWalletRejectedSkipsAPI(t *testing.T) {
	var hits int64
	server := apiServer(t, &hits, http.StatusOK, http.StatusOK)
	defer server.Close()

	store := NewMemoryStore(nil)
	connector := wallet.NewConnector(&fakeProvider{err: wallet.ErrUserRejected}, nil)
	a := NewAuthContext(server.URL, connector, store)

	_, err := a.Login(context.Background(), wallet.MethodMetaMask)
	assert.ErrorIs(t, err, wallet.ErrUserRejected)
	assert.False(t, a.Authenticated())
	assert.EqualValues(t, 0, atomic.LoadInt64(&hits))
}

func TestLoginAPIFailureStaysUnauthenticated(t *testing.T) {
	var hits int64
	server := apiServer(t, &hits, http.StatusInternalServerError, http.StatusOK)
	defer server.Close()

	store := NewMemoryStore(nil)
	connector := wallet.NewConnector(&fakeProvider{accounts: []string{"0xabc123"}}, nil)
	a := NewAuthContext(server.URL, connector, store)

	_, err := a.Login(context.Background(), wallet.MethodMetaMask)
	assert.Error(t, err)
	assert.False(t, a.Authenticated())

	persisted, err := store.Load()
	assert.NoError(t, err)
	assert.Nil(t, persisted)
}

func TestLogoutClearsState(t *testing.T) {
	var hits int64
	server := apiServer(t, &hits, http.StatusOK, http.StatusOK)
	defer server.Close()

	stored := &user.User{ID: "user-1", WalletAddress: "0xabc123"}
	store := NewMemoryStore(stored)
	a := NewAuthContext(server.URL, wallet.NewConnector(nil, nil), store)
	assert.True(t, a.Authenticated())

	assert.NoError(t, a.Logout(context.Background()))
	assert.False(t, a.Authenticated())

	persisted, err := store.Load()
	assert.NoError(t, err)
	assert.Nil(t, persisted)
}

func TestLogoutClearsStateEvenOnStoreFailure(t *testing.T) {
	var hits int64
	server := apiServer(t, &hits, http.StatusOK, http.StatusInternalServerError)
	defer server.Close()

	stored := &user.User{ID: "user-1", WalletAddress: "0xabc123"}
	store := NewMemoryStore(stored)
	a := NewAuthContext(server.URL, wallet.NewConnector(nil, nil), store)

	// L'invalidation distante échoue mais l'état local est vidé quand même
	err := a.Logout(context.Background())
	assert.Error(t, err)
	assert.False(t, a.Authenticated())

	persisted, loadErr := store.Load()
	assert.NoError(t, loadErr)
	assert.Nil(t, persisted)
}
