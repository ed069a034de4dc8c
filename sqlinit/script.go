package sqlinit

import (
	"fmt"
	"strings"

	"github.com/ruteri/pgtls-bootstrap/interfaces"
)

// Script describes the role and database created on first container start.
type Script struct {
	User     string
	Password string
	// Database defaults to User.
	Database string
}

// Validate checks that a role name is present and that names contain no NUL
// bytes, which quoting would otherwise silently truncate.
func (s Script) Validate() error {
	if s.User == "" {
		return fmt.Errorf("%w: database user is required for the init script", interfaces.ErrInvalidConfig)
	}
	for _, value := range []string{s.User, s.Password, s.Database} {
		if strings.ContainsRune(value, 0) {
			return fmt.Errorf("%w: init script values must not contain NUL bytes", interfaces.ErrInvalidConfig)
		}
	}
	return nil
}

// Render returns the SQL statements. A role without password is created
// when Password is empty.
func (s Script) Render() string {
	database := s.Database
	if database == "" {
		database = s.User
	}

	var b strings.Builder
	b.WriteString("CREATE USER ")
	b.WriteString(QuoteIdentifier(s.User))
	if s.Password != "" {
		b.WriteString(" WITH PASSWORD")
		b.WriteString(passwordLiteral(s.Password))
	}
	b.WriteString(";\n")

	b.WriteString("CREATE DATABASE ")
	b.WriteString(QuoteIdentifier(database))
	b.WriteString(" OWNER ")
	b.WriteString(QuoteIdentifier(s.User))
	b.WriteString(";\n")

	return b.String()
}

// Build validates s, renders it and, when the parser is available, checks the
// result parses as PostgreSQL.
func (s Script) Build() (string, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}

	sql := s.Render()
	if err := Check(sql); err != nil {
		return "", fmt.Errorf("%w: rendered init script does not parse: %w", interfaces.ErrInvalidConfig, err)
	}
	return sql, nil
}

// passwordLiteral returns the quoted password with a single leading space.
func passwordLiteral(password string) string {
	quoted := QuoteLiteral(password)
	if strings.HasPrefix(quoted, " ") {
		return quoted
	}
	return " " + quoted
}
