package services

import (
	"context"
	"time"

	"lebonmeeple/internal/dto"
	"lebonmeeple/internal/entities"
	apperrors "lebonmeeple/pkg/errors"
	"lebonmeeple/pkg/types"
)

// Doublures en mémoire des répertoires, pour tester les services sans base.

type fakeUserRepo struct {
	users       map[uint64]*entities.User
	nextID      uint64
	createCalls int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint64]*entities.User), nextID: 1}
}

func (r *fakeUserRepo) CreateUser(_ context.Context, payload dto.SignupDTO, hashedPassword string) (*entities.User, error) {
	r.createCalls++
	for _, u := range r.users {
		if u.Email == payload.Email {
			return nil, apperrors.NewConflictError("Un compte existe déjà avec cette adresse e-mail")
		}
	}
	now := time.Now()
	user := &entities.User{
		ID:       r.nextID,
		Username: payload.Username,
		Email:    payload.Email,
		Password: hashedPassword,
		Roles:    []string{"USER"},
	}
	user.CreatedAt = &now
	r.users[user.ID] = user
	r.nextID++
	return user, nil
}

func (r *fakeUserRepo) FindUserByID(_ context.Context, id uint64) (*entities.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindUserByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *fakeUserRepo) UpdateUser(_ context.Context, id uint64, payload dto.UpdateUserDTO, hashedPassword *string) (*entities.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	if payload.Username.Valid {
		user.Username = payload.Username.String
	}
	if payload.Email.Valid {
		user.Email = payload.Email.String
	}
	if payload.Avatar.Valid {
		user.Avatar = &payload.Avatar.String
	}
	if hashedPassword != nil {
		user.Password = *hashedPassword
	}
	now := time.Now()
	user.UpdatedAt = &now
	return user, nil
}

type fakePostRepo struct {
	posts  map[uint64]*entities.Post
	nextID uint64
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[uint64]*entities.Post), nextID: 1}
}

func (r *fakePostRepo) GetPosts(_ context.Context, filter types.Filter) ([]entities.Post, uint64, error) {
	all := make([]entities.Post, 0, len(r.posts))
	for id := uint64(1); id < r.nextID; id++ {
		if p, ok := r.posts[id]; ok {
			all = append(all, *p)
		}
	}
	total := uint64(len(all))
	start := filter.Offset
	if start > len(all) {
		start = len(all)
	}
	end := start + filter.Limit
	if filter.Limit <= 0 || end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (r *fakePostRepo) FindPost(_ context.Context, id uint64) (*entities.Post, error) {
	post, ok := r.posts[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	clone := *post
	return &clone, nil
}

func (r *fakePostRepo) CreatePost(_ context.Context, userID uint64, payload dto.CreatePostDTO) (*entities.Post, error) {
	now := time.Now()
	post := &entities.Post{
		ID:     r.nextID,
		Title:  payload.Title,
		Body:   payload.Body,
		Image:  payload.Image,
		UserID: userID,
	}
	post.CreatedAt = &now
	r.posts[post.ID] = post
	r.nextID++
	return post, nil
}

func (r *fakePostRepo) UpdatePost(_ context.Context, id uint64, payload dto.UpdatePostDTO) (*entities.Post, error) {
	post, ok := r.posts[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	if payload.Title.Valid {
		post.Title = payload.Title.String
	}
	if payload.Body.Valid {
		post.Body = payload.Body.String
	}
	if payload.Image.Valid {
		post.Image = payload.Image.String
	}
	now := time.Now()
	post.UpdatedAt = &now
	clone := *post
	return &clone, nil
}

func (r *fakePostRepo) DeletePost(_ context.Context, id uint64) (*entities.Post, error) {
	post, ok := r.posts[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	delete(r.posts, id)
	return post, nil
}

type fakeCommentRepo struct {
	comments    map[uint64]*entities.Comment
	nextID      uint64
	deleteCalls int
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{comments: make(map[uint64]*entities.Comment), nextID: 1}
}

func (r *fakeCommentRepo) GetCommentsByPost(_ context.Context, postID uint64) ([]entities.Comment, error) {
	list := make([]entities.Comment, 0)
	for id := uint64(1); id < r.nextID; id++ {
		if c, ok := r.comments[id]; ok && c.PostID == postID {
			list = append(list, *c)
		}
	}
	return list, nil
}

func (r *fakeCommentRepo) FindComment(_ context.Context, id uint64) (*entities.Comment, error) {
	comment, ok := r.comments[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	clone := *comment
	return &clone, nil
}

func (r *fakeCommentRepo) CreateComment(_ context.Context, userID, postID uint64, payload dto.CreateCommentDTO) (*entities.Comment, error) {
	now := time.Now()
	comment := &entities.Comment{
		ID:     r.nextID,
		Body:   payload.Body,
		UserID: userID,
		PostID: postID,
	}
	comment.CreatedAt = &now
	r.comments[comment.ID] = comment
	r.nextID++
	return comment, nil
}

func (r *fakeCommentRepo) UpdateComment(_ context.Context, id uint64, payload dto.UpdateCommentDTO) (*entities.Comment, error) {
	comment, ok := r.comments[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	if payload.Body.Valid {
		comment.Body = payload.Body.String
	}
	now := time.Now()
	comment.UpdatedAt = &now
	clone := *comment
	return &clone, nil
}

func (r *fakeCommentRepo) DeleteComment(_ context.Context, id uint64) (*entities.Comment, error) {
	r.deleteCalls++
	comment, ok := r.comments[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	delete(r.comments, id)
	return comment, nil
}

type fakeGameRepo struct {
	games    map[uint64]*entities.Game
	getCalls int
}

func newFakeGameRepo() *fakeGameRepo {
	return &fakeGameRepo{games: make(map[uint64]*entities.Game)}
}

func (r *fakeGameRepo) GetGames(_ context.Context, _ types.Filter) ([]entities.Game, uint64, error) {
	r.getCalls++
	list := make([]entities.Game, 0, len(r.games))
	for _, g := range r.games {
		list = append(list, *g)
	}
	return list, uint64(len(list)), nil
}

func (r *fakeGameRepo) FindGame(_ context.Context, id uint64) (*entities.Game, error) {
	game, ok := r.games[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return game, nil
}

func (r *fakeGameRepo) GetGamesByPost(_ context.Context, _ uint64) ([]entities.Game, error) {
	return nil, nil
}

type fakeCache struct {
	values map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: make(map[string]string)}
}

func (c *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	if s, ok := value.(string); ok {
		c.values[key] = s
	}
	return nil
}

func (c *fakeCache) Get(_ context.Context, key string) (string, error) {
	v, ok := c.values[key]
	if !ok {
		return "", apperrors.ErrNotFound
	}
	return v, nil
}

func (c *fakeCache) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.values, k)
	}
	return nil
}

func (c *fakeCache) Incr(_ context.Context, key string) (int64, error) {
	n := int64(0)
	if v, ok := c.values[key]; ok {
		for _, ch := range v {
			n = n*10 + int64(ch-'0')
		}
	}
	n++
	c.values[key] = itoa(n)
	return n, nil
}

func (c *fakeCache) Expire(_ context.Context, _ string, _ time.Duration) (bool, error) {
	return true, nil
}

func itoa(n int64) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
