// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package filter

import (
	"context"
	"fmt"
	"io"

	"github.com/sassoftware/viya-pdf-filter/logger"
	"golang.org/x/sync/errgroup"
)

// Decoder runs filter pipelines under a Config. It holds no per-call state
// and is safe for concurrent use.
type Decoder struct {
	cfg *Config
}

var defaultDecoder = &Decoder{cfg: NewDefaultConfig()}

// NewDecoder validates cfg and installs its logger. A nil cfg means the
// defaults.
func NewDecoder(cfg *Config) (*Decoder, error) {
	if cfg == nil {
		cfg = NewDefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	//Set the logger function
	if cfg.Logger != nil {
		logger.SetLogger(cfg.Logger)
	}

	logger.Debug(fmt.Sprintf("Decoder initialized: max_workers=%d max_output_bytes=%d job_timeout=%v",
		cfg.MaxWorkers, cfg.MaxOutputBytes, cfg.JobTimeout), cfg.DebugOn)

	return &Decoder{cfg: cfg}, nil
}

// Decode decodes data with a single filter.
func (d *Decoder) Decode(name Name, data []byte) ([]byte, error) {
	out, err := decodeOne(name, data)
	if err != nil {
		logger.Error(fmt.Sprintf("filter failed: filter=%q err=%v", name, err))
		return nil, err
	}
	if err := d.checkLimit(name, out); err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeAll applies names left to right, stopping at the first failure.
func (d *Decoder) DecodeAll(names []Name, data []byte) ([]byte, error) {
	return d.decodeAll(context.Background(), names, data)
}

// DecodeReader reads r to the end and decodes the content with names. The
// context is checked between stages.
func (d *Decoder) DecodeReader(ctx context.Context, names []Name, r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read stream: %w", err)
	}
	return d.decodeAll(ctx, names, data)
}

func (d *Decoder) decodeAll(ctx context.Context, names []Name, data []byte) ([]byte, error) {
	for i, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		in := len(data)
		out, err := d.Decode(name, data)
		if err != nil {
			logger.Debug(fmt.Sprintf("Pipeline aborted: stage=%d/%d filter=%q", i+1, len(names), name), d.cfg.DebugOn)
			return nil, err
		}
		logger.Debug(fmt.Sprintf("Stage decoded: stage=%d/%d filter=%q in=%d out=%d", i+1, len(names), name, in, len(out)), d.cfg.DebugOn)
		data = out
	}
	return data, nil
}

func (d *Decoder) checkLimit(name Name, out []byte) error {
	if d.cfg.MaxOutputBytes > 0 && int64(len(out)) > d.cfg.MaxOutputBytes {
		return &Error{Filter: name, Kind: ErrOutputLimit, Detail: fmt.Sprintf("%d bytes, limit %d", len(out), d.cfg.MaxOutputBytes)}
	}
	return nil
}

// Job is one encoded stream and the filters applied to it.
type Job struct {
	Filters []Name
	Data    []byte
}

// Result is the outcome of a Job.
type Result struct {
	Data []byte
	Err  error
}

// DecodeBatch decodes independent streams concurrently, at most MaxWorkers
// at a time. Results are in job order and carry per-job errors; the returned
// error is set only when ctx ends before the batch completes.
func (d *Decoder) DecodeBatch(ctx context.Context, jobs []Job) ([]Result, error) {
	logger.Debug(fmt.Sprintf("Starting batch: jobs=%d workers=%d", len(jobs), d.cfg.MaxWorkers), d.cfg.DebugOn)

	results := make([]Result, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.cfg.MaxWorkers)
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = d.runJob(gctx, job)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Debug(fmt.Sprintf("Batch cancelled: err=%v", err), d.cfg.DebugOn)
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Debug(fmt.Sprintf("Batch completed: jobs=%d", len(jobs)), d.cfg.DebugOn)
	return results, nil
}

func (d *Decoder) runJob(ctx context.Context, job Job) Result {
	if d.cfg.JobTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.cfg.JobTimeout)
		defer cancel()
	}
	out, err := d.decodeAll(ctx, job.Filters, job.Data)
	return Result{Data: out, Err: err}
}
