package authz

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"lebonmeeple/internal/dto"
	"lebonmeeple/internal/entities"
	apperrors "lebonmeeple/pkg/errors"
	"lebonmeeple/pkg/types"
)

type stubPostRepo struct {
	posts map[uint64]*entities.Post
}

func (r *stubPostRepo) GetPosts(context.Context, types.Filter) ([]entities.Post, uint64, error) {
	return nil, 0, nil
}

func (r *stubPostRepo) FindPost(_ context.Context, id uint64) (*entities.Post, error) {
	post, ok := r.posts[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return post, nil
}

func (r *stubPostRepo) CreatePost(context.Context, uint64, dto.CreatePostDTO) (*entities.Post, error) {
	return nil, nil
}

func (r *stubPostRepo) UpdatePost(context.Context, uint64, dto.UpdatePostDTO) (*entities.Post, error) {
	return nil, nil
}

func (r *stubPostRepo) DeletePost(context.Context, uint64) (*entities.Post, error) {
	return nil, nil
}

type stubCommentRepo struct {
	comments map[uint64]*entities.Comment
}

func (r *stubCommentRepo) GetCommentsByPost(context.Context, uint64) ([]entities.Comment, error) {
	return nil, nil
}

func (r *stubCommentRepo) FindComment(_ context.Context, id uint64) (*entities.Comment, error) {
	comment, ok := r.comments[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return comment, nil
}

func (r *stubCommentRepo) CreateComment(context.Context, uint64, uint64, dto.CreateCommentDTO) (*entities.Comment, error) {
	return nil, nil
}

func (r *stubCommentRepo) UpdateComment(context.Context, uint64, dto.UpdateCommentDTO) (*entities.Comment, error) {
	return nil, nil
}

func (r *stubCommentRepo) DeleteComment(context.Context, uint64) (*entities.Comment, error) {
	return nil, nil
}

func newGatekeeperForTest() *Gatekeeper {
	posts := &stubPostRepo{posts: map[uint64]*entities.Post{
		10: {ID: 10, UserID: 1},
	}}
	comments := &stubCommentRepo{comments: map[uint64]*entities.Comment{
		20: {ID: 20, UserID: 1, PostID: 10},
	}}
	return NewGatekeeper(posts, comments, zap.NewNop())
}

func requireForbidden(t *testing.T, err error, message string) {
	t.Helper()
	require.Error(t, err)
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)
	assert.Equal(t, message, httpErr.Message)
}

func TestOwnerCanTouchOwnPost(t *testing.T) {
	g := newGatekeeperForTest()
	err := g.CheckOwnership(context.Background(), 1, []string{"USER"}, ResourcePost, 10)
	assert.NoError(t, err)
}

func TestNonOwnerIsForbidden(t *testing.T) {
	g := newGatekeeperForTest()
	err := g.CheckOwnership(context.Background(), 2, []string{"USER"}, ResourcePost, 10)
	requireForbidden(t, err, "Ce billet ne vous appartient pas")
}

func TestAdminBypassesOwnership(t *testing.T) {
	g := newGatekeeperForTest()

	assert.NoError(t, g.CheckOwnership(context.Background(), 99, []string{entities.RoleAdmin}, ResourcePost, 10))
	assert.NoError(t, g.CheckOwnership(context.Background(), 99, []string{entities.RoleAdmin}, ResourceComment, 20))
	assert.NoError(t, g.CheckOwnership(context.Background(), 99, []string{entities.RoleAdmin}, ResourceUser, 1))
}

func TestMissingTargetIsForbiddenNotLeaked(t *testing.T) {
	g := newGatekeeperForTest()

	err := g.CheckOwnership(context.Background(), 1, []string{"USER"}, ResourcePost, 999)
	requireForbidden(t, err, "Billet introuvable")

	err = g.CheckOwnership(context.Background(), 1, []string{"USER"}, ResourceComment, 999)
	requireForbidden(t, err, "Commentaire introuvable")
}

func TestCommentOwnership(t *testing.T) {
	g := newGatekeeperForTest()

	assert.NoError(t, g.CheckOwnership(context.Background(), 1, []string{"USER"}, ResourceComment, 20))

	err := g.CheckOwnership(context.Background(), 3, []string{"USER"}, ResourceComment, 20)
	requireForbidden(t, err, "Ce commentaire ne vous appartient pas")
}

func TestUserResourceComparesIDs(t *testing.T) {
	g := newGatekeeperForTest()

	assert.NoError(t, g.CheckOwnership(context.Background(), 5, []string{"USER"}, ResourceUser, 5))

	err := g.CheckOwnership(context.Background(), 5, []string{"USER"}, ResourceUser, 6)
	requireForbidden(t, err, "Ce profil ne vous appartient pas")
}
