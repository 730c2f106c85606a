package tagging

import (
	"context"

	"github.com/a-pavithraa/lambstock/common"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/arn"
	"github.com/aws/aws-sdk-go-v2/service/resourcegroupstaggingapi"
	log "github.com/sirupsen/logrus"
)

const (
	ResourceType = "lambda:function"
	PageSize     = 50
)

type ServiceWrapper struct {
	Client resourcegroupstaggingapi.GetResourcesAPIClient
}

func Client(cfg aws.Config) *resourcegroupstaggingapi.Client {
	return resourcegroupstaggingapi.NewFromConfig(cfg)
}

// FetchTags returns the tags of every tagged Lambda function, following PaginationToken to the last page.
// When arns is non-empty only those resources are kept. Functions without tags have no entry.
func (wrapper ServiceWrapper) FetchTags(ctx context.Context, arns []string) (common.TagMap, error) {
	var wanted map[string]struct{}
	if len(arns) > 0 {
		wanted = make(map[string]struct{}, len(arns))
		for _, a := range arns {
			wanted[a] = struct{}{}
		}
	}

	paginator := resourcegroupstaggingapi.NewGetResourcesPaginator(wrapper.Client, &resourcegroupstaggingapi.GetResourcesInput{
		ResourceTypeFilters: []string{ResourceType},
		ResourcesPerPage:    aws.Int32(PageSize),
	})

	tags := make(common.TagMap)
	pages := 0
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			log.WithError(err).WithField("page", pages+1).Debug("GetResources failed")
			return nil, common.Classify("GetResources", err)
		}
		pages++
		for _, mapping := range page.ResourceTagMappingList {
			resourceArn := aws.ToString(mapping.ResourceARN)
			if _, err := arn.Parse(resourceArn); err != nil {
				log.WithField("arn", resourceArn).Debug("skipping mapping with malformed ARN")
				continue
			}
			if wanted != nil {
				if _, ok := wanted[resourceArn]; !ok {
					continue
				}
			}
			for _, tag := range mapping.Tags {
				tags[resourceArn] = append(tags[resourceArn], common.Tag{
					Key:         aws.ToString(tag.Key),
					Value:       aws.ToString(tag.Value),
					ResourceArn: resourceArn,
				})
			}
		}
	}
	log.WithFields(log.Fields{"pages": pages, "resources": len(tags)}).Debug("listed tags")
	return tags, nil
}
