package container

import (
	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/wisata-api/config"
	"github.com/oksasatya/wisata-api/internal/application"
	"github.com/oksasatya/wisata-api/internal/infrastructure/search"
	"github.com/oksasatya/wisata-api/pkg/helpers"
)

// Container holds the components built once at startup. It is passed to the
// router explicitly; optional clients are nil when not configured.
type Container struct {
	Config *config.Config
	Logger *logrus.Logger
	PG     *pgxpool.Pool
	JWT    *helpers.JWTManager
	Store  *helpers.GCSStore

	Redis     *redis.Client            // optional
	GCS       *storage.Client          // optional
	RabbitPub *helpers.RabbitPublisher // optional
	ES        *elasticsearch.Client    // optional
}

// Publisher returns the email job publisher, or nil when RabbitMQ is off.
func (c *Container) Publisher() application.JobPublisher {
	if c.RabbitPub == nil || !c.Config.MailSendEnabled {
		return nil
	}
	return c.RabbitPub
}

// ContentIndex returns the Elasticsearch content index, or nil when ES is off.
func (c *Container) ContentIndex() application.ContentIndex {
	if c.ES == nil {
		return nil
	}
	return search.NewContentIndex(c.ES, c.Config.ESContentsIndex)
}

// Close releases every client the container owns.
func (c *Container) Close() {
	c.RabbitPub.Close()
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
	if c.GCS != nil {
		_ = c.GCS.Close()
	}
	if c.PG != nil {
		c.PG.Close()
	}
}
