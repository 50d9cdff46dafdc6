package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"jobify_backend/internal/models"
	"jobify_backend/internal/repositories"
	"jobify_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStorage records operations in order so tests can assert the
// upload/persist/delete sequencing of the avatar swap.
type fakeStorage struct {
	objects map[string][]byte
	ops     *[]string
	saveErr error
}

func newFakeStorage(ops *[]string) *fakeStorage {
	return &fakeStorage{objects: map[string][]byte{}, ops: ops}
}

func (f *fakeStorage) Save(ctx context.Context, key string, reader io.Reader, contentType string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	data, _ := io.ReadAll(reader)
	f.objects[key] = data
	*f.ops = append(*f.ops, "save:"+key)
	return nil
}

func (f *fakeStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	data, ok := f.objects[key]
	if !ok {
		return nil, errors.New("no such object")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (f *fakeStorage) Delete(ctx context.Context, key string) error {
	delete(f.objects, key)
	*f.ops = append(*f.ops, "delete:"+key)
	return nil
}

func (f *fakeStorage) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := f.objects[key]
	return ok, nil
}

func (f *fakeStorage) GetURL(ctx context.Context, key string) (string, error) {
	return "https://cdn.test/" + key, nil
}

// stubUserRepo holds a single user and can be told to fail the update.
type stubUserRepo struct {
	user      *models.User
	ops       *[]string
	updateErr error
	fields    map[string]interface{}
}

func (s *stubUserRepo) FindByID(id string) (*models.User, error) {
	if s.user == nil || s.user.ID != id {
		return nil, repositories.ErrUserNotFound
	}
	clone := *s.user
	return &clone, nil
}

func (s *stubUserRepo) FindByEmail(email string) (*models.User, error) {
	if s.user == nil || s.user.Email != email {
		return nil, repositories.ErrUserNotFound
	}
	clone := *s.user
	return &clone, nil
}

func (s *stubUserRepo) Create(user *models.User) error {
	s.user = user
	return nil
}

func (s *stubUserRepo) UpdateProfile(userID string, fields map[string]interface{}) (*models.User, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	if s.user == nil || s.user.ID != userID {
		return nil, repositories.ErrUserNotFound
	}

	previous := *s.user
	s.fields = fields
	if avatar, ok := fields["avatar"].(string); ok {
		s.user.Avatar = avatar
	}
	if key, ok := fields["avatar_key"].(string); ok {
		s.user.AvatarKey = key
	}
	if s.ops != nil {
		*s.ops = append(*s.ops, "persist")
	}
	return &previous, nil
}

func (s *stubUserRepo) CountAll() (int64, error) {
	if s.user == nil {
		return 0, nil
	}
	return 1, nil
}

func writeTempAvatar(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "upload.png")
	require.NoError(t, os.WriteFile(path, []byte("fake png bytes"), 0644))
	return path
}

const testUserID = "2a3f8a60-0000-0000-0000-0000000000f1"

func testUser() *models.User {
	return &models.User{
		BaseModel: models.BaseModel{ID: testUserID},
		Name:      "Ada",
		Email:     "ada@test.com",
		AvatarKey: "avatars/old-key.png",
		Avatar:    "https://cdn.test/avatars/old-key.png",
	}
}

func TestUpdateUser_AvatarSwapDeletesOldAfterPersist(t *testing.T) {
	var ops []string
	store := newFakeStorage(&ops)
	repo := &stubUserRepo{user: testUser(), ops: &ops}
	svc := NewUserService(repo, newStubJobRepo(), store)

	tempPath := writeTempAvatar(t)
	avatar := &dto.AvatarUpload{TempPath: tempPath, ContentType: "image/png", Ext: ".png"}

	err := svc.UpdateUser(context.Background(), testUserID, &dto.UpdateUserRequest{}, avatar)
	require.NoError(t, err)

	// ordering invariant: save, then persist, then delete of the OLD key
	require.Len(t, ops, 3)
	assert.Contains(t, ops[0], "save:avatars/")
	assert.Equal(t, "persist", ops[1])
	assert.Equal(t, "delete:avatars/old-key.png", ops[2])

	// record now points at the new object
	assert.NotEqual(t, "avatars/old-key.png", repo.user.AvatarKey)
	assert.Contains(t, repo.user.Avatar, repo.user.AvatarKey)

	// temp file was cleaned up
	_, statErr := os.Stat(tempPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestUpdateUser_PersistFailureKeepsOldAvatar(t *testing.T) {
	var ops []string
	store := newFakeStorage(&ops)
	repo := &stubUserRepo{user: testUser(), ops: &ops, updateErr: errors.New("db down")}
	svc := NewUserService(repo, newStubJobRepo(), store)

	avatar := &dto.AvatarUpload{TempPath: writeTempAvatar(t), ContentType: "image/png", Ext: ".png"}

	err := svc.UpdateUser(context.Background(), testUserID, &dto.UpdateUserRequest{}, avatar)
	require.Error(t, err)

	for _, op := range ops {
		assert.NotEqual(t, "delete:avatars/old-key.png", op,
			"old avatar must not be deleted when the persist step fails")
	}
	assert.Equal(t, "avatars/old-key.png", repo.user.AvatarKey)
}

func TestUpdateUser_UploadFailureAbortsBeforePersist(t *testing.T) {
	var ops []string
	store := newFakeStorage(&ops)
	store.saveErr = errors.New("object store unavailable")
	repo := &stubUserRepo{user: testUser(), ops: &ops}
	svc := NewUserService(repo, newStubJobRepo(), store)

	tempPath := writeTempAvatar(t)
	avatar := &dto.AvatarUpload{TempPath: tempPath, ContentType: "image/png", Ext: ".png"}

	err := svc.UpdateUser(context.Background(), testUserID, &dto.UpdateUserRequest{}, avatar)
	require.Error(t, err)

	assert.NotContains(t, ops, "persist", "upload failure must fail closed")

	// temp file is removed even when the upload fails
	_, statErr := os.Stat(tempPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestUpdateUser_FieldsOnly(t *testing.T) {
	repo := &stubUserRepo{user: testUser()}
	var ops []string
	svc := NewUserService(repo, newStubJobRepo(), newFakeStorage(&ops))

	name := "Grace"
	err := svc.UpdateUser(context.Background(), testUserID, &dto.UpdateUserRequest{Name: &name}, nil)
	require.NoError(t, err)

	assert.Equal(t, "Grace", repo.fields["name"])
	assert.NotContains(t, repo.fields, "password_hash", "credential never changes through profile updates")
	assert.Empty(t, ops, "no storage traffic without an avatar")
}

func TestCurrentUser_PasswordNeverSerialized(t *testing.T) {
	repo := &stubUserRepo{user: testUser()}
	repo.user.PasswordHash = "$2a$10$secret"
	var ops []string
	svc := NewUserService(repo, newStubJobRepo(), newFakeStorage(&ops))

	user, err := svc.CurrentUser(testUserID)
	require.NoError(t, err)

	// the json tag on PasswordHash is "-"
	data, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret")
}
