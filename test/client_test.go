//go:build integration_test || all_tests

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"

	"github.com/phuong-practice-projects/healthy-system/internal/auth"
)

const testPassword = "test-password-123"

func (s *IntegrationTestSuite) doRequest(ctx context.Context, method, path, token string, body any) (int, []byte) {
	t := s.T()

	var reqBody io.Reader
	if body != nil {
		bodyJson, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(bodyJson)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reqBody)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, respBytes
}

// newUser registers a fresh user and logs them in.
func (s *IntegrationTestSuite) newUser(ctx context.Context) (auth.User, string) {
	t := s.T()

	email := gofakeit.Email()
	status, respBytes := s.doRequest(ctx, http.MethodPost, "/auth/register", "", auth.Registration{
		Credentials: auth.Credentials{Email: email, Password: testPassword},
		DisplayName: gofakeit.Name(),
	})
	require.Equal(t, http.StatusCreated, status, string(respBytes))

	var user auth.User
	require.NoError(t, json.Unmarshal(respBytes, &user))

	status, respBytes = s.doRequest(ctx, http.MethodPost, "/auth/login", "", auth.Credentials{
		Email:    email,
		Password: testPassword,
	})
	require.Equal(t, http.StatusOK, status, string(respBytes))

	var loginResp auth.LoginResponse
	require.NoError(t, json.Unmarshal(respBytes, &loginResp))
	require.NotEmpty(t, loginResp.Token)

	return user, loginResp.Token
}
