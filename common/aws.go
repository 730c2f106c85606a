package common

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	log "github.com/sirupsen/logrus"
)

// LoadConfig resolves the AWS configuration and retrieves credentials once, so that a broken
// credential chain is reported before any API call is made.
func LoadConfig(ctx context.Context, params ClientParams) (aws.Config, error) {
	var opts []func(*config.LoadOptions) error
	if !TrimAndCheckEmptyString(&params.Region) {
		opts = append(opts, config.WithRegion(params.Region))
	}
	if !TrimAndCheckEmptyString(&params.Profile) {
		opts = append(opts, config.WithSharedConfigProfile(params.Profile))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, &AuthError{Op: "load config", Err: err}
	}
	if cfg.Credentials == nil {
		return aws.Config{}, &AuthError{Op: "load config", Err: errors.New("no credential provider configured")}
	}
	creds, err := cfg.Credentials.Retrieve(ctx)
	if err != nil {
		return aws.Config{}, &AuthError{Op: "retrieve credentials", Err: err}
	}
	log.WithFields(log.Fields{
		"region": cfg.Region,
		"source": creds.Source,
	}).Debug("resolved AWS credentials")
	return cfg, nil
}
