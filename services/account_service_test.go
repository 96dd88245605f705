package services

import (
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"

	"github.com/Pickmecarti/ITCC14-Api-Project-Student-Organization-Approval-System/utils"
)

func userRowSteps(t *testing.T, email, password string) []*dbStep {
	t.Helper()
	hash, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	return []*dbStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT \\* FROM `users` WHERE email = \\?"),
			args:    []driver.Value{email},
			columns: []string{"user_id", "name", "email", "password_hash", "role", "avatar"},
			rows: [][]driver.Value{
				{int64(1), "Jane Smith", email, hash, "student", "JS"},
			},
		},
	}
}

func TestAuthenticateSeededStudent(t *testing.T) {
	db, state, cleanup := newStubGormDB(t, userRowSteps(t, "student@example.com", "password123"))
	defer cleanup()

	svc := NewAccountService(db)
	user, err := svc.Authenticate("student@example.com", "password123")
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}

	if user.Name != "Jane Smith" || user.Role != "student" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}

func TestAuthenticateWrongPassword(t *testing.T) {
	db, state, cleanup := newStubGormDB(t, userRowSteps(t, "student@example.com", "password123"))
	defer cleanup()

	svc := NewAccountService(db)
	_, err := svc.Authenticate("student@example.com", "wrong-password")

	var authErr *AuthenticationError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthenticationError, got %v", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	steps := []*dbStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT \\* FROM `users` WHERE email = \\?"),
			args:    []driver.Value{"nobody@example.com"},
			columns: []string{"user_id"},
			rows:    [][]driver.Value{},
		},
	}
	db, state, cleanup := newStubGormDB(t, steps)
	defer cleanup()

	svc := NewAccountService(db)
	_, err := svc.Authenticate("nobody@example.com", "password123")

	var authErr *AuthenticationError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthenticationError, got %v", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}

func validRegistration() *RegisterInput {
	return &RegisterInput{
		Name:            "Ana Cruz",
		Email:           "ana@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
		Role:            "student",
		StudentID:       "2024-00001",
		Organization:    "Eco Club",
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	steps := []*dbStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile("SELECT count\\(\\*\\) FROM `users` WHERE email = \\?"),
			args:    []driver.Value{"ana@example.com"},
			columns: []string{"count"},
			rows:    [][]driver.Value{{int64(1)}},
		},
	}
	db, state, cleanup := newStubGormDB(t, steps)
	defer cleanup()

	svc := NewAccountService(db)
	_, err := svc.Register(validRegistration())

	var conflictErr *ConflictError
	if !errors.As(err, &conflictErr) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}

func TestRegisterPasswordMismatch(t *testing.T) {
	db, state, cleanup := newStubGormDB(t, nil)
	defer cleanup()

	input := validRegistration()
	input.ConfirmPassword = "different123"

	svc := NewAccountService(db)
	_, err := svc.Register(input)

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}

func TestRegisterRequiresStudentFields(t *testing.T) {
	db, state, cleanup := newStubGormDB(t, nil)
	defer cleanup()

	input := validRegistration()
	input.StudentID = ""

	svc := NewAccountService(db)
	_, err := svc.Register(input)

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}

func TestRegisterRejectsBadEmail(t *testing.T) {
	db, state, cleanup := newStubGormDB(t, nil)
	defer cleanup()

	input := validRegistration()
	input.Email = "not-an-email"

	svc := NewAccountService(db)
	_, err := svc.Register(input)

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if err := state.verifyComplete(); err != nil {
		t.Fatalf("%v", err)
	}
}
