package factory

import (
	"fmt"
	"sort"
	"strings"

	"github.com/brianvoe/gofakeit/v7"

	"blog-seeder/internal/domain/entity"
)

const (
	passwordLength      = 12
	rememberTokenLength = 10
	titleWords          = 6
)

// setter assigns an override value to one field of a record.
type setter[T any] func(rec *T, v any) error

var userFields = map[string]setter[entity.User]{
	"id": func(u *entity.User, v any) error {
		return assignInt(entity.KindUser, "id", &u.ID, v)
	},
	"name": func(u *entity.User, v any) error {
		return assign(entity.KindUser, "name", &u.Name, v)
	},
	"email": func(u *entity.User, v any) error {
		return assign(entity.KindUser, "email", &u.Email, v)
	},
	"password": func(u *entity.User, v any) error {
		return assign(entity.KindUser, "password", &u.Password, v)
	},
	"remember_token": func(u *entity.User, v any) error {
		return assign(entity.KindUser, "remember_token", &u.RememberToken, v)
	},
}

var articleFields = map[string]setter[entity.Article]{
	"id": func(a *entity.Article, v any) error {
		return assignInt(entity.KindArticle, "id", &a.ID, v)
	},
	"user_id": func(a *entity.Article, v any) error {
		return assignInt(entity.KindArticle, "user_id", &a.UserID, v)
	},
	"title": func(a *entity.Article, v any) error {
		return assign(entity.KindArticle, "title", &a.Title, v)
	},
	"content": func(a *entity.Article, v any) error {
		return assign(entity.KindArticle, "content", &a.Content, v)
	},
	"status": func(a *entity.Article, v any) error {
		return assign(entity.KindArticle, "status", &a.Status, v)
	},
}

// BuildUser generates a user: full name, email, plaintext password and a
// 10-letter remember token.
func BuildUser(faker *gofakeit.Faker, overrides Overrides) (any, error) {
	user := &entity.User{
		Name:          faker.Name(),
		Email:         faker.Email(),
		Password:      faker.Password(true, true, true, false, false, passwordLength),
		RememberToken: faker.LetterN(rememberTokenLength),
	}
	if err := apply(entity.KindUser, user, userFields, overrides); err != nil {
		return nil, err
	}
	return user, nil
}

// BuildArticle generates an article with a short sentence title, a random
// status and content made of a phone number, color, street address, company
// and browser user agent separated by single spaces.
func BuildArticle(faker *gofakeit.Faker, overrides Overrides) (any, error) {
	article := &entity.Article{
		Title: faker.Sentence(titleWords),
		Content: strings.Join([]string{
			faker.Phone(),
			faker.Color(),
			faker.Address().Address,
			faker.Company(),
			faker.UserAgent(),
		}, " "),
		Status: faker.Bool(),
	}
	if err := apply(entity.KindArticle, article, articleFields, overrides); err != nil {
		return nil, err
	}
	return article, nil
}

// apply sets overrides in sorted field order so the first reported error is stable.
func apply[T any](kind entity.Kind, rec *T, fields map[string]setter[T], overrides Overrides) error {
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		set, ok := fields[name]
		if !ok {
			return &entity.FieldError{Kind: kind, Field: name, Reason: "unknown field"}
		}
		if err := set(rec, overrides[name]); err != nil {
			return err
		}
	}
	return nil
}

func assign[V any](kind entity.Kind, field string, dst *V, v any) error {
	typed, ok := v.(V)
	if !ok {
		return &entity.FieldError{Kind: kind, Field: field, Reason: fmt.Sprintf("want %T, got %T", *dst, v)}
	}
	*dst = typed
	return nil
}

// assignInt accepts any Go integer type for int64 columns.
func assignInt(kind entity.Kind, field string, dst *int64, v any) error {
	switch n := v.(type) {
	case int:
		*dst = int64(n)
	case int32:
		*dst = int64(n)
	case int64:
		*dst = n
	default:
		return &entity.FieldError{Kind: kind, Field: field, Reason: fmt.Sprintf("want int64, got %T", v)}
	}
	return nil
}
