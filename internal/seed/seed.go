// Package seed populates the database with development fixtures.
package seed

import (
	"context"
	"fmt"
	"os"

	"bloglist/internal/auth"
	"bloglist/internal/models"
	"bloglist/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
	"gopkg.in/yaml.v3"
)

// Fixture is a declarative seed file. Blog entries reference their owner by
// username.
type Fixture struct {
	Users []FixtureUser `yaml:"users"`
	Blogs []FixtureBlog `yaml:"blogs"`
}

// FixtureUser is a user entry in a seed file.
type FixtureUser struct {
	Username string `yaml:"username"`
	Name     string `yaml:"name"`
	Password string `yaml:"password"`
}

// FixtureBlog is a blog entry in a seed file.
type FixtureBlog struct {
	Title    string `yaml:"title"`
	Author   string `yaml:"author"`
	URL      string `yaml:"url"`
	Likes    int    `yaml:"likes"`
	Username string `yaml:"username"`
}

// LoadFixture reads and parses a yaml seed file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	return &f, nil
}

// DefaultFixture returns the canonical development data set: the root user
// and its two classic blogs.
func DefaultFixture() *Fixture {
	return &Fixture{
		Users: []FixtureUser{
			{Username: "root", Name: "Superuser", Password: "sekret"},
		},
		Blogs: []FixtureBlog{
			{
				Title:    "React patterns",
				Author:   "Michael Chan",
				URL:      "https://reactpatterns.com/",
				Likes:    7,
				Username: "root",
			},
			{
				Title:    "Go To Statement Considered Harmful",
				Author:   "Edsger W. Dijkstra",
				URL:      "http://www.u.arizona.edu/~rubinson/copyright_violations/Go_To_Considered_Harmful.html",
				Likes:    5,
				Username: "root",
			},
		},
	}
}

// RandomFixture generates n additional users with a few random blogs each.
func RandomFixture(n int) *Fixture {
	f := &Fixture{}
	for i := 0; i < n; i++ {
		username := fmt.Sprintf("%s%d", gofakeit.Username(), i)
		f.Users = append(f.Users, FixtureUser{
			Username: username,
			Name:     gofakeit.Name(),
			Password: gofakeit.Password(true, true, true, false, false, 12),
		})
		for j := 0; j < gofakeit.Number(1, 3); j++ {
			f.Blogs = append(f.Blogs, FixtureBlog{
				Title:    gofakeit.Sentence(4),
				Author:   gofakeit.Name(),
				URL:      gofakeit.URL(),
				Likes:    gofakeit.Number(0, 50),
				Username: username,
			})
		}
	}
	return f
}

// Apply inserts the fixture's users and blogs. Passwords are routed through
// the hasher; the plaintext never reaches the store.
func Apply(ctx context.Context, users repository.UserRepository, blogs repository.BlogRepository, hasher *auth.PasswordHasher, f *Fixture) error {
	byUsername := make(map[string]uint, len(f.Users))

	for _, fu := range f.Users {
		hash, err := hasher.Hash(fu.Password)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", fu.Username, err)
		}
		user := &models.User{Username: fu.Username, Name: fu.Name, PasswordHash: hash}
		if err := users.Create(ctx, user); err != nil {
			return fmt.Errorf("create user %s: %w", fu.Username, err)
		}
		byUsername[fu.Username] = user.ID
	}

	for _, fb := range f.Blogs {
		ownerID, ok := byUsername[fb.Username]
		if !ok {
			owner, err := users.GetByUsername(ctx, fb.Username)
			if err != nil {
				return err
			}
			if owner == nil {
				return fmt.Errorf("blog %q references unknown user %q", fb.Title, fb.Username)
			}
			ownerID = owner.ID
		}
		blog := &models.Blog{
			Title:  fb.Title,
			Author: fb.Author,
			URL:    fb.URL,
			Likes:  fb.Likes,
			UserID: ownerID,
		}
		if err := blogs.Create(ctx, blog); err != nil {
			return fmt.Errorf("create blog %q: %w", fb.Title, err)
		}
	}

	return nil
}
