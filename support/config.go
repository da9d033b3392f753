package support

import (
	"context"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"

	"github.com/weegigs/visit-counter-go/visits"
)

const (
	TableNameSetting = "TABLE_NAME"
	BackendSetting   = "STORE_BACKEND"
	EndpointSetting  = "STORE_ENDPOINT"
)

const (
	BackendDynamoDB = "dynamodb"
	BackendRedis    = "redis"
	BackendMemory   = "memory"
)

const DefaultListenAddress = ":9080"

// Config is read from the environment once, when the function or server is assembled.
type Config struct {
	TableName        string `mapstructure:"TABLE_NAME"`
	SiteId           string `mapstructure:"SITE_ID"`
	Region           string `mapstructure:"STORE_REGION"`
	Endpoint         string `mapstructure:"STORE_ENDPOINT"`
	Backend          string `mapstructure:"STORE_BACKEND"`
	CreateTable      bool   `mapstructure:"STORE_CREATE_TABLE"`
	LogLevel         string `mapstructure:"LOG_LEVEL"`
	TraceExporter    string `mapstructure:"TRACE_EXPORTER"`
	HoneycombTeam    string `mapstructure:"HONEYCOMB_TEAM"`
	HoneycombDataset string `mapstructure:"HONEYCOMB_DATASET"`
	JaegerEndpoint   string `mapstructure:"JAEGER_ENDPOINT"`
	ListenAddress    string `mapstructure:"LISTEN_ADDRESS"`

	// only consulted when STORE_REGION is empty
	DefaultRegion string `mapstructure:"AWS_DEFAULT_REGION"`
}

func LoadConfig() (Config, error) {
	return ConfigFrom(environment(os.Environ()))
}

// ConfigFrom decodes settings from a name to value map. Missing settings take their defaults, a
// missing table name is left for the store provider to report.
func ConfigFrom(settings map[string]string) (Config, error) {
	var cfg Config

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &cfg,
	})
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to create configuration decoder")
	}

	if err := decoder.Decode(settings); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode configuration")
	}

	cfg.TableName = strings.TrimSpace(cfg.TableName)
	if cfg.SiteId == "" {
		cfg.SiteId = visits.DefaultSiteId.String()
	}
	if cfg.Region == "" {
		cfg.Region = cfg.DefaultRegion
	}
	if cfg.Backend == "" {
		cfg.Backend = BackendDynamoDB
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.ListenAddress == "" {
		cfg.ListenAddress = DefaultListenAddress
	}

	return cfg, nil
}

func (cfg Config) Site() visits.SiteId {
	return visits.SiteId(cfg.SiteId)
}

// RequireTableName is checked by every store before it is constructed.
func (cfg Config) RequireTableName() (string, error) {
	if len(cfg.TableName) == 0 {
		return "", visits.MissingSetting(TableNameSetting)
	}

	return cfg.TableName, nil
}

func SiteIdOf(cfg Config) visits.SiteId {
	return cfg.Site()
}

func environment(environ []string) map[string]string {
	settings := make(map[string]string, len(environ))
	for _, entry := range environ {
		name, value, found := strings.Cut(entry, "=")
		if !found {
			continue
		}
		settings[name] = value
	}

	return settings
}

// AWSConfig loads the default AWS configuration, applying the region and endpoint overrides.
func AWSConfig(ctx context.Context, cfg Config) (aws.Config, error) {
	var options []func(*config.LoadOptions) error

	if cfg.Region != "" {
		options = append(options, config.WithRegion(cfg.Region))
	}

	if cfg.Endpoint != "" {
		endpoint := cfg.Endpoint
		resolver := aws.EndpointResolverWithOptionsFunc(
			func(service, region string, options ...interface{}) (aws.Endpoint, error) {
				if service == dynamodb.ServiceID {
					return aws.Endpoint{
						PartitionID:   "aws",
						URL:           endpoint,
						SigningRegion: region,
					}, nil
				}
				return aws.Endpoint{}, &aws.EndpointNotFoundError{}
			},
		)
		options = append(options, config.WithEndpointResolverWithOptions(resolver))
	}

	awsConfig, err := config.LoadDefaultConfig(ctx, options...)
	if err != nil {
		return aws.Config{}, errors.Wrap(err, "failed to load aws configuration")
	}

	return awsConfig, nil
}
