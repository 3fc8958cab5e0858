// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"devconnect/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SeedPassword is the plaintext password shared by all generated accounts.
const SeedPassword = "password123"

var statuses = []string{
	"Developer", "Junior Developer", "Senior Developer", "Manager",
	"Student or Learning", "Instructor or Teacher", "Intern", "Other",
}

var skillPool = []string{
	"Go", "JavaScript", "TypeScript", "Python", "Rust", "SQL", "HTML", "CSS",
	"React", "Vue", "Node.js", "PostgreSQL", "Redis", "Docker", "Kubernetes",
	"AWS", "GraphQL", "gRPC",
}

// Seeder populates the database with generated users, profiles and posts.
type Seeder struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db: db,
		r:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll truncates all application tables.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	return s.db.Exec(
		"TRUNCATE TABLE comments, likes, posts, experiences, educations, profiles, users RESTART IDENTITY CASCADE",
	).Error
}

// CreateUser constructs and persists a sample user. Optional override
// functions may modify the generated user before saving.
func (s *Seeder) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     gofakeit.Name(),
		Email:    gofakeit.Email(),
		Password: string(hashed),
		Avatar:   fmt.Sprintf("https://i.pravatar.cc/200?u=%s", gofakeit.UUID()),
	}
	for _, override := range overrides {
		override(user)
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateProfile builds a profile for the user with a random career shape.
func (s *Seeder) CreateProfile(user *models.User) (*models.Profile, error) {
	skills := make([]string, 0, 4)
	for _, i := range s.r.Perm(len(skillPool))[:s.r.Intn(4)+2] {
		skills = append(skills, skillPool[i])
	}

	profile := &models.Profile{
		UserID:         user.ID,
		Company:        gofakeit.Company(),
		Website:        gofakeit.URL(),
		Location:       fmt.Sprintf("%s, %s", gofakeit.City(), gofakeit.Country()),
		Bio:            gofakeit.Sentence(12),
		Status:         statuses[s.r.Intn(len(statuses))],
		GithubUsername: strings.ToLower(gofakeit.Username()),
		Skills:         datatypes.JSONSlice[string](skills),
		Social: models.SocialLinks{
			Twitter:  fmt.Sprintf("https://twitter.com/%s", strings.ToLower(gofakeit.Username())),
			Linkedin: fmt.Sprintf("https://linkedin.com/in/%s", strings.ToLower(gofakeit.Username())),
		},
	}
	if err := s.db.Create(profile).Error; err != nil {
		return nil, err
	}

	for i := 0; i < s.r.Intn(3)+1; i++ {
		exp := &models.Experience{
			ProfileID:   profile.ID,
			Title:       gofakeit.JobTitle(),
			Company:     gofakeit.Company(),
			Location:    gofakeit.City(),
			From:        gofakeit.DateRange(time.Now().AddDate(-10, 0, 0), time.Now().AddDate(-2, 0, 0)).Format("2006-01-02"),
			Current:     i == 0,
			Description: gofakeit.Sentence(10),
		}
		if !exp.Current {
			exp.To = gofakeit.DateRange(time.Now().AddDate(-2, 0, 0), time.Now()).Format("2006-01-02")
		}
		if err := s.db.Create(exp).Error; err != nil {
			return nil, err
		}
	}

	edu := &models.Education{
		ProfileID: profile.ID,
		School:    fmt.Sprintf("%s University", gofakeit.City()),
		Degree:    "BSc",
		Field:     "Computer Science",
		From:      gofakeit.DateRange(time.Now().AddDate(-14, 0, 0), time.Now().AddDate(-10, 0, 0)).Format("2006-01-02"),
		To:        gofakeit.DateRange(time.Now().AddDate(-10, 0, 0), time.Now().AddDate(-6, 0, 0)).Format("2006-01-02"),
	}
	if err := s.db.Create(edu).Error; err != nil {
		return nil, err
	}

	return profile, nil
}

// CreatePost persists a post authored by the user, spread over the last 90 days.
func (s *Seeder) CreatePost(user *models.User) (*models.Post, error) {
	post := &models.Post{
		UserID:    user.ID,
		Text:      gofakeit.Paragraph(1, 3, 8, " "),
		Name:      user.Name,
		Avatar:    user.Avatar,
		CreatedAt: time.Now().Add(-time.Duration(s.r.Intn(90*24)) * time.Hour),
	}
	if err := s.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// Seed populates users with profiles, posts, likes and comments.
func (s *Seeder) Seed(numUsers, numPosts int) error {
	log.Printf("Seeding %d users...", numUsers)
	users := make([]*models.User, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		user, err := s.CreateUser()
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		if _, err := s.CreateProfile(user); err != nil {
			return fmt.Errorf("create profile: %w", err)
		}
		users = append(users, user)
	}

	log.Printf("Seeding %d posts with engagement...", numPosts)
	for i := 0; i < numPosts; i++ {
		author := users[s.r.Intn(len(users))]
		post, err := s.CreatePost(author)
		if err != nil {
			return fmt.Errorf("create post: %w", err)
		}

		// A random subset of users likes each post; the unique index keeps
		// repeat picks from double-liking.
		for _, j := range s.r.Perm(len(users))[:s.r.Intn(len(users)/2+1)] {
			s.db.Exec(
				`INSERT INTO likes (user_id, post_id, created_at) VALUES (?, ?, NOW())
				 ON CONFLICT (user_id, post_id) DO NOTHING`,
				users[j].ID, post.ID,
			)
		}

		for c := 0; c < s.r.Intn(4); c++ {
			commenter := users[s.r.Intn(len(users))]
			comment := &models.Comment{
				PostID: post.ID,
				UserID: commenter.ID,
				Text:   gofakeit.Sentence(8),
				Name:   commenter.Name,
				Avatar: commenter.Avatar,
			}
			if err := s.db.Create(comment).Error; err != nil {
				return fmt.Errorf("create comment: %w", err)
			}
		}
	}

	return nil
}
