package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"devconnect/internal/config"
	"devconnect/internal/models"
	"devconnect/internal/service"
	"devconnect/internal/token"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testDeps bundles the stub repositories wired into a test server so
// individual tests can override behavior per case.
type testDeps struct {
	users    *userRepoStub
	profiles *profileRepoStub
	posts    *postRepoStub
	comments *commentRepoStub
}

func newTestServer(t *testing.T) (*fiber.App, *Server, *testDeps) {
	t.Helper()

	cfg := &config.Config{
		JWTSecret: "test-secret-test-secret-test-secret",
		TokenTTL:  time.Hour,
		Env:       "test",
	}

	deps := &testDeps{
		users:    noopUserRepo(),
		profiles: noopProfileRepo(),
		posts:    noopPostRepo(),
		comments: noopCommentRepo(),
	}

	s := &Server{
		config:      cfg,
		tokens:      token.NewService(cfg),
		userRepo:    deps.users,
		profileRepo: deps.profiles,
		postRepo:    deps.posts,
		commentRepo: deps.comments,
	}
	s.userService = service.NewUserService(deps.users, s.tokens)
	s.profileService = service.NewProfileService(deps.profiles)
	s.postService = service.NewPostService(deps.posts, deps.users)
	s.commentService = service.NewCommentService(deps.comments, deps.posts, deps.users)

	app := fiber.New()
	s.SetupRoutes(app)
	return app, s, deps
}

func authToken(t *testing.T, s *Server, userID uint) string {
	t.Helper()
	tok, err := s.tokens.Issue(userID)
	require.NoError(t, err)
	return tok
}

func doRequest(t *testing.T, app *fiber.App, method, target, token string, body io.Reader) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dest interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

func assertErrorBody(t *testing.T, resp *http.Response, wantMsg string) {
	t.Helper()
	var body models.ErrorResponse
	decodeBody(t, resp, &body)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, wantMsg, body.Errors[0].Msg)
}

// ---- repository stubs ----

type userRepoStub struct {
	getByIDFn    func(context.Context, uint) (*models.User, error)
	getByEmailFn func(context.Context, string) (*models.User, error)
	createFn     func(context.Context, *models.User) error
	updateFn     func(context.Context, *models.User) error
	deleteFn     func(context.Context, uint) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Name: "alice", Email: "alice@example.com"}, nil
		},
		getByEmailFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		createFn: func(_ context.Context, u *models.User) error {
			u.ID = 1
			return nil
		},
		updateFn: func(_ context.Context, _ *models.User) error { return nil },
		deleteFn: func(_ context.Context, _ uint) error { return nil },
	}
}

type profileRepoStub struct {
	getByOwnerFn       func(context.Context, uint) (*models.Profile, error)
	listFn             func(context.Context) ([]models.Profile, error)
	saveFn             func(context.Context, *models.Profile) error
	addExperienceFn    func(context.Context, uint, *models.Experience) error
	removeExperienceFn func(context.Context, uint, uint) error
	addEducationFn     func(context.Context, uint, *models.Education) error
	removeEducationFn  func(context.Context, uint, uint) error
	deleteWithUserFn   func(context.Context, uint) error
}

func (s *profileRepoStub) GetByOwner(ctx context.Context, ownerID uint) (*models.Profile, error) {
	return s.getByOwnerFn(ctx, ownerID)
}
func (s *profileRepoStub) List(ctx context.Context) ([]models.Profile, error) {
	return s.listFn(ctx)
}
func (s *profileRepoStub) Save(ctx context.Context, profile *models.Profile) error {
	return s.saveFn(ctx, profile)
}
func (s *profileRepoStub) AddExperience(ctx context.Context, profileID uint, exp *models.Experience) error {
	return s.addExperienceFn(ctx, profileID, exp)
}
func (s *profileRepoStub) RemoveExperience(ctx context.Context, profileID, expID uint) error {
	return s.removeExperienceFn(ctx, profileID, expID)
}
func (s *profileRepoStub) AddEducation(ctx context.Context, profileID uint, edu *models.Education) error {
	return s.addEducationFn(ctx, profileID, edu)
}
func (s *profileRepoStub) RemoveEducation(ctx context.Context, profileID, eduID uint) error {
	return s.removeEducationFn(ctx, profileID, eduID)
}
func (s *profileRepoStub) DeleteWithUser(ctx context.Context, ownerID uint) error {
	return s.deleteWithUserFn(ctx, ownerID)
}

func noopProfileRepo() *profileRepoStub {
	return &profileRepoStub{
		getByOwnerFn: func(_ context.Context, ownerID uint) (*models.Profile, error) {
			return &models.Profile{ID: 5, UserID: ownerID, Status: "Developer"}, nil
		},
		listFn:             func(_ context.Context) ([]models.Profile, error) { return []models.Profile{}, nil },
		saveFn:             func(_ context.Context, _ *models.Profile) error { return nil },
		addExperienceFn:    func(_ context.Context, _ uint, _ *models.Experience) error { return nil },
		removeExperienceFn: func(_ context.Context, _, _ uint) error { return nil },
		addEducationFn:     func(_ context.Context, _ uint, _ *models.Education) error { return nil },
		removeEducationFn:  func(_ context.Context, _, _ uint) error { return nil },
		deleteWithUserFn:   func(_ context.Context, _ uint) error { return nil },
	}
}

type postRepoStub struct {
	createFn  func(context.Context, *models.Post) error
	getByIDFn func(context.Context, uint) (*models.Post, error)
	listFn    func(context.Context) ([]models.Post, error)
	deleteFn  func(context.Context, uint) error
	likeFn    func(context.Context, uint, uint) error
	unlikeFn  func(context.Context, uint, uint) error
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) List(ctx context.Context) ([]models.Post, error) {
	return s.listFn(ctx)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *postRepoStub) Like(ctx context.Context, userID, postID uint) error {
	return s.likeFn(ctx, userID, postID)
}
func (s *postRepoStub) Unlike(ctx context.Context, userID, postID uint) error {
	return s.unlikeFn(ctx, userID, postID)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn: func(_ context.Context, p *models.Post) error {
			p.ID = 11
			return nil
		},
		getByIDFn: func(_ context.Context, id uint) (*models.Post, error) {
			return &models.Post{ID: id, UserID: 1, Text: "hello"}, nil
		},
		listFn:   func(_ context.Context) ([]models.Post, error) { return []models.Post{}, nil },
		deleteFn: func(_ context.Context, _ uint) error { return nil },
		likeFn:   func(_ context.Context, _, _ uint) error { return nil },
		unlikeFn: func(_ context.Context, _, _ uint) error { return nil },
	}
}

type commentRepoStub struct {
	createFn  func(context.Context, *models.Comment) error
	getByIDFn func(context.Context, uint) (*models.Comment, error)
	deleteFn  func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn: func(_ context.Context, c *models.Comment) error {
			c.ID = 21
			return nil
		},
		getByIDFn: func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, PostID: 1, UserID: 1, Text: "nice"}, nil
		},
		deleteFn: func(_ context.Context, _ uint) error { return nil },
	}
}
