package main

import (
	"context"
	"io"

	"github.com/a-pavithraa/lambstock/common"
	"github.com/a-pavithraa/lambstock/lambda"
	"github.com/a-pavithraa/lambstock/render"
	"github.com/a-pavithraa/lambstock/stock"
	"github.com/a-pavithraa/lambstock/tagging"
	log "github.com/sirupsen/logrus"
)

type FunctionSource interface {
	FetchFunctions(ctx context.Context) ([]common.Function, error)
}

type TagSource interface {
	FetchTags(ctx context.Context, arns []string) (common.TagMap, error)
}

// Sources builds the API adapters. It is only called once arguments have been validated.
type Sources func(ctx context.Context, params common.ClientParams) (FunctionSource, TagSource, error)

func AWSSources(ctx context.Context, params common.ClientParams) (FunctionSource, TagSource, error) {
	cfg, err := common.LoadConfig(ctx, params)
	if err != nil {
		return nil, nil, err
	}
	return lambda.ServiceWrapper{Client: lambda.Client(cfg)}, tagging.ServiceWrapper{Client: tagging.Client(cfg)}, nil
}

type ListParams struct {
	Filter   *common.TagFilter
	SortKey  common.SortKey
	ShowTags bool
	Format   render.Format
}

type dispatcher struct {
	sources Sources
	client  common.ClientParams
	out     io.Writer
	stage   Stage
}

func (d *dispatcher) enter(stage Stage) {
	log.WithFields(log.Fields{"from": d.stage, "to": stage}).Debug("stage")
	d.stage = stage
}

func (d *dispatcher) fail(err error) error {
	d.enter(Failed)
	return err
}

func (d *dispatcher) List(ctx context.Context, params ListParams) error {
	d.enter(Fetching)
	functionSource, tagSource, err := d.sources(ctx, d.client)
	if err != nil {
		return d.fail(err)
	}
	functions, err := functionSource.FetchFunctions(ctx)
	if err != nil {
		return d.fail(err)
	}
	var tags common.TagMap
	if params.Filter != nil || params.ShowTags {
		arns := make([]string, 0, len(functions))
		for _, f := range functions {
			arns = append(arns, f.Arn)
		}
		if tags, err = tagSource.FetchTags(ctx, arns); err != nil {
			return d.fail(err)
		}
	}

	d.enter(Filtering)
	functions = stock.Filter(functions, tags, params.Filter)

	d.enter(Sorting)
	functions = stock.Sort(functions, params.SortKey)

	d.enter(Rendering)
	if !params.ShowTags {
		tags = nil
	}
	if err := render.List(d.out, functions, tags, params.Format); err != nil {
		return err
	}
	d.enter(Done)
	return nil
}

func (d *dispatcher) Tags(ctx context.Context, format render.Format) error {
	d.enter(Fetching)
	_, tagSource, err := d.sources(ctx, d.client)
	if err != nil {
		return d.fail(err)
	}
	tags, err := tagSource.FetchTags(ctx, nil)
	if err != nil {
		return d.fail(err)
	}

	d.enter(Rendering)
	if err := render.Tags(d.out, tags, format); err != nil {
		return err
	}
	d.enter(Done)
	return nil
}
