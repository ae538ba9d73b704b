package store

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/jpsleep/sleepcheck/ent"
	"github.com/jpsleep/sleepcheck/ent/llmrequestevent"
	"github.com/jpsleep/sleepcheck/ent/predicate"
)

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts LLMQueryOpts) ([]LLMEventRecord, error) {
	query := r.client.LLMRequestEvent.Query().
		Where(window[predicate.LLMRequestEvent](opts.QueryOpts)...).
		Order(ent.Desc(llmrequestevent.FieldSequence))
	if opts.Purpose != "" {
		query = query.Where(llmrequestevent.Purpose(opts.Purpose))
	}
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	records := make([]LLMEventRecord, len(events))
	for i, e := range events {
		records[i] = toLLMEventRecord(e)
	}
	return records, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error) {
	e, err := r.client.LLMRequestEvent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get LLM event %d: %w", id, err)
	}
	rec := toLLMEventRecord(e)
	return &rec, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error) {
	return r.llmUsage(ctx, func(e *ent.LLMRequestEvent) LLMUsage {
		return LLMUsage{Purpose: e.Purpose}
	})
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]LLMUsage, error) {
	return r.llmUsage(ctx, func(e *ent.LLMRequestEvent) LLMUsage {
		return LLMUsage{Model: e.Model}
	})
}

// llmUsage folds every event into the group named by key, busiest first.
func (r *eventRepo) llmUsage(ctx context.Context, key func(*ent.LLMRequestEvent) LLMUsage) ([]LLMUsage, error) {
	events, err := r.client.LLMRequestEvent.Query().
		Select(
			llmrequestevent.FieldPurpose,
			llmrequestevent.FieldModel,
			llmrequestevent.FieldInputTokens,
			llmrequestevent.FieldOutputTokens,
			llmrequestevent.FieldLatencyMs,
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM usage: %w", err)
	}

	// AvgLatencyMs holds the running sum until the final division.
	groups := make(map[LLMUsage]*LLMUsage)
	var out []LLMUsage
	for _, e := range events {
		k := key(e)
		g, ok := groups[k]
		if !ok {
			g = &LLMUsage{Purpose: k.Purpose, Model: k.Model}
			groups[k] = g
		}
		g.Calls++
		g.InputTokens += e.InputTokens
		g.OutputTokens += e.OutputTokens
		g.AvgLatencyMs += e.LatencyMs
	}
	for _, g := range groups {
		g.AvgLatencyMs /= int64(g.Calls)
		out = append(out, *g)
	}
	slices.SortFunc(out, func(a, b LLMUsage) int {
		if c := cmp.Compare(b.Calls, a.Calls); c != 0 {
			return c
		}
		return cmp.Compare(a.Purpose+a.Model, b.Purpose+b.Model)
	})
	return out, nil
}

func toLLMEventRecord(e *ent.LLMRequestEvent) LLMEventRecord {
	return LLMEventRecord{
		ID:        e.ID,
		Sequence:  e.Sequence,
		Timestamp: e.Timestamp,
		LLMRequestEventData: LLMRequestEventData{
			Provider:     e.Provider,
			Model:        e.Model,
			Purpose:      e.Purpose,
			InputTokens:  e.InputTokens,
			OutputTokens: e.OutputTokens,
			LatencyMs:    e.LatencyMs,
			Success:      e.Success,
			ErrorMessage: e.ErrorMessage,
			RequestBody:  e.RequestBody,
			ResponseBody: e.ResponseBody,
		},
	}
}
