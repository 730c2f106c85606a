package tagging

import (
	"context"
	"errors"
	"testing"

	"github.com/a-pavithraa/lambstock/common"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/resourcegroupstaggingapi"
	"github.com/aws/aws-sdk-go-v2/service/resourcegroupstaggingapi/types"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	arn1 = "arn:aws:lambda:eu-west-1:123456789012:function:one"
	arn2 = "arn:aws:lambda:eu-west-1:123456789012:function:two"
	arn3 = "arn:aws:lambda:eu-west-1:123456789012:function:three"
)

type mockTaggingApi struct {
	pages  map[string]*resourcegroupstaggingapi.GetResourcesOutput
	fail   bool
	inputs []*resourcegroupstaggingapi.GetResourcesInput
}

func (m *mockTaggingApi) GetResources(ctx context.Context, params *resourcegroupstaggingapi.GetResourcesInput, optFns ...func(*resourcegroupstaggingapi.Options)) (*resourcegroupstaggingapi.GetResourcesOutput, error) {
	m.inputs = append(m.inputs, params)
	if m.fail {
		return nil, &smithyhttp.RequestSendError{Err: errors.New("connection reset")}
	}
	return m.pages[aws.ToString(params.PaginationToken)], nil
}

func mapping(resourceArn string, kv ...string) types.ResourceTagMapping {
	m := types.ResourceTagMapping{ResourceARN: aws.String(resourceArn)}
	for i := 0; i+1 < len(kv); i += 2 {
		m.Tags = append(m.Tags, types.Tag{Key: aws.String(kv[i]), Value: aws.String(kv[i+1])})
	}
	return m
}

func pagedMock() *mockTaggingApi {
	return &mockTaggingApi{pages: map[string]*resourcegroupstaggingapi.GetResourcesOutput{
		"": {
			ResourceTagMappingList: []types.ResourceTagMapping{mapping(arn1, "team", "x", "env", "prod"), mapping("not-an-arn", "team", "y")},
			PaginationToken:        aws.String("next"),
		},
		"next": {
			ResourceTagMappingList: []types.ResourceTagMapping{mapping(arn2, "team", "y"), mapping(arn3)},
			PaginationToken:        aws.String(""),
		},
	}}
}

func TestFetchTags(t *testing.T) {
	mock := pagedMock()
	wrapper := ServiceWrapper{Client: mock}

	tags, err := wrapper.FetchTags(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, common.TagMap{
		arn1: {{Key: "team", Value: "x", ResourceArn: arn1}, {Key: "env", Value: "prod", ResourceArn: arn1}},
		arn2: {{Key: "team", Value: "y", ResourceArn: arn2}},
	}, tags)
	require.Len(t, mock.inputs, 2)
	assert.Equal(t, []string{ResourceType}, mock.inputs[0].ResourceTypeFilters)
	assert.Equal(t, "next", aws.ToString(mock.inputs[1].PaginationToken))
}

func TestFetchTagsRestrictedToArns(t *testing.T) {
	wrapper := ServiceWrapper{Client: pagedMock()}

	tags, err := wrapper.FetchTags(context.Background(), []string{arn2, arn3})
	require.NoError(t, err)
	assert.Equal(t, common.TagMap{
		arn2: {{Key: "team", Value: "y", ResourceArn: arn2}},
	}, tags)
}

func TestFetchTagsNetworkFailure(t *testing.T) {
	wrapper := ServiceWrapper{Client: &mockTaggingApi{fail: true}}

	tags, err := wrapper.FetchTags(context.Background(), nil)
	assert.Nil(t, tags)
	var networkErr *common.NetworkError
	assert.ErrorAs(t, err, &networkErr)
}
