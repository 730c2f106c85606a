package lambda

import (
	"context"

	"github.com/a-pavithraa/lambstock/common"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
	log "github.com/sirupsen/logrus"
)

// PageSize is sent as MaxItems. The service returns at most 50 functions per page regardless.
const PageSize int32 = 100

type ServiceWrapper struct {
	Client lambda.ListFunctionsAPIClient
}

func Client(cfg aws.Config) *lambda.Client {
	return lambda.NewFromConfig(cfg)
}

// FetchFunctions follows NextMarker until the last page and returns every function in API order.
// A failing page fails the whole listing.
func (wrapper ServiceWrapper) FetchFunctions(ctx context.Context) ([]common.Function, error) {
	paginator := lambda.NewListFunctionsPaginator(wrapper.Client, &lambda.ListFunctionsInput{}, func(o *lambda.ListFunctionsPaginatorOptions) {
		o.Limit = PageSize
	})

	var functions []common.Function
	seen := make(map[string]struct{})
	pages := 0
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			log.WithError(err).WithField("page", pages+1).Debug("ListFunctions failed")
			return nil, common.Classify("ListFunctions", err)
		}
		pages++
		for _, config := range page.Functions {
			function := toFunction(config)
			if _, dup := seen[function.Arn]; dup {
				continue
			}
			seen[function.Arn] = struct{}{}
			functions = append(functions, function)
		}
	}
	log.WithFields(log.Fields{"pages": pages, "functions": len(functions)}).Debug("listed functions")
	return functions, nil
}

func toFunction(config types.FunctionConfiguration) common.Function {
	return common.Function{
		Name:         aws.ToString(config.FunctionName),
		Arn:          aws.ToString(config.FunctionArn),
		Runtime:      string(config.Runtime),
		CodeSize:     config.CodeSize,
		MemorySize:   aws.ToInt32(config.MemorySize),
		LastModified: aws.ToString(config.LastModified),
	}
}
