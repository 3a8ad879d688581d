package container

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/wil-portal/config"
	"github.com/oksasatya/wil-portal/internal/application"
	"github.com/oksasatya/wil-portal/internal/domain/entity"
	repo "github.com/oksasatya/wil-portal/internal/domain/repository"
	"github.com/oksasatya/wil-portal/pkg/helpers"
)

// Container holds the constructed components shared by router modules.
// Optional infrastructure is nil when disabled by configuration.
type Container struct {
	Config *config.Config
	Logger *logrus.Logger

	Redis     *redis.Client         // nil disables rate limiting
	Publisher application.Publisher // nil disables notification jobs

	JWT         *helpers.JWTManager
	Users       repo.UserRepository
	Programs    repo.ProgramRepository
	Revocations repo.RevocationStore
	Stats       entity.Stats
}

// SetPublisher stores p, keeping the interface nil when p is a nil pointer.
func (c *Container) SetPublisher(p *helpers.RabbitPublisher) {
	if p == nil {
		c.Publisher = nil
		return
	}
	c.Publisher = p
}
