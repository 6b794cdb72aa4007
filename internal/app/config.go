package app

import (
	"strings"
	"time"

	"github.com/analysisdata/graph-backend/internal/ingestion"
	"github.com/analysisdata/graph-backend/internal/platform/envutil"
)

type Config struct {
	Port           string
	JWTSecretKey   string
	AccessTokenTTL time.Duration
	NodeBatchSize  int
	EdgeBatchSize  int
	AllowedOrigins []string
}

func LoadConfig() Config {
	cfg := Config{
		Port:           envutil.String("PORT", "8080"),
		JWTSecretKey:   envutil.String("JWT_SECRET_KEY", "defaultsecret"),
		AccessTokenTTL: envutil.Duration("ACCESS_TOKEN_TTL", time.Hour),
		NodeBatchSize:  envutil.Int("NODE_BATCH_SIZE", ingestion.DefaultNodeBatchSize),
		EdgeBatchSize:  envutil.Int("EDGE_BATCH_SIZE", ingestion.DefaultEdgeBatchSize),
	}
	if origins := envutil.String("CORS_ALLOWED_ORIGINS", ""); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			if o := strings.TrimSpace(origin); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}
	return cfg
}
