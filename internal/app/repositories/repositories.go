package repositories

import (
	"time"

	"github.com/rs/zerolog"
)

// Repositories holds all the repository instances
type Repositories struct {
	MemberRepository *MemberRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db DBTX, queryTimeout time.Duration, lgr zerolog.Logger) *Repositories {
	return &Repositories{
		MemberRepository: NewMemberRepository(db, queryTimeout, lgr),
	}
}
