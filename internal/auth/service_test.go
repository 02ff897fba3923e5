package auth

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/curriculum/internal/core"
	"github.com/agenthands/curriculum/internal/core/model"
)

type memoryStore struct {
	students map[string]*model.StudentRecord
}

func (m *memoryStore) GetStudentRecord(ctx context.Context, id string) (*model.StudentRecord, error) {
	rec, ok := m.students[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", core.ErrStudentNotFound, id)
	}
	return rec, nil
}

func (m *memoryStore) RegisterStudent(ctx context.Context, s model.Student, hash string) error {
	if _, ok := m.students[s.StudentID]; ok {
		return core.ErrStudentExists
	}
	m.students[s.StudentID] = &model.StudentRecord{Student: s, PasswordHash: hash}
	return nil
}

func newTestService() *Service {
	store := &memoryStore{students: map[string]*model.StudentRecord{}}
	return NewService(store, NewTokenIssuer("secret", time.Minute), nil)
}

func TestRegisterThenAuthenticate(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	resp, err := svc.Register(ctx, model.Registration{StudentID: "A0001", Password: "pw", Email: "a@x.y"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, "A0001", resp.UserID)

	subject, err := svc.Tokens.Verify(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "A0001", subject)

	_, err = svc.Register(ctx, model.Registration{StudentID: "A0001", Password: "pw", Email: "a@x.y"})
	assert.ErrorIs(t, err, core.ErrStudentExists)

	login, err := svc.Authenticate(ctx, "A0001", "pw")
	require.NoError(t, err)
	assert.Equal(t, "A0001", login.UserID)

	_, err = svc.Authenticate(ctx, "A0001", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.True(t, IsAuthError(err))

	_, err = svc.Authenticate(ctx, "A0002", "pw")
	assert.ErrorIs(t, err, core.ErrStudentNotFound)
}

func TestRequireToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens := NewTokenIssuer("secret", time.Minute)

	r := gin.New()
	r.GET("/me", RequireToken(tokens), func(c *gin.Context) {
		c.String(http.StatusOK, Subject(c))
	})

	token, err := tokens.Issue("A0001")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		code   int
		body   string
	}{
		{"valid", "Bearer " + token, http.StatusOK, "A0001"},
		{"lowercase scheme", "bearer " + token, http.StatusOK, "A0001"},
		{"missing", "", http.StatusUnauthorized, ""},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized, ""},
		{"garbage", "Bearer abc.def.ghi", http.StatusUnauthorized, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.code, w.Code)
			if tt.code == http.StatusOK {
				assert.Equal(t, tt.body, w.Body.String())
			} else {
				assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
			}
		})
	}
}
