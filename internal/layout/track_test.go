package layout

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func trackSizes(tracks []track) []int {
	sizes := make([]int, len(tracks))
	for i, t := range tracks {
		sizes[i] = t.size
	}
	return sizes
}

func trackOffsets(tracks []track) []int {
	offsets := make([]int, len(tracks))
	for i, t := range tracks {
		offsets[i] = t.offset
	}
	return offsets
}

func TestResolveTracks(t *testing.T) {
	type tc struct {
		defs      []Value
		items     []trackItem
		available int
		gap       int
		sizes     []int
		offsets   []int
	}

	tests := map[string]tc{
		"equal stars split evenly": {
			defs:      []Value{Star(1), Star(1)},
			available: 20,
			sizes:     []int{10, 10},
			offsets:   []int{0, 10},
		},
		"weighted stars": {
			defs:      []Value{Star(1), Star(3)},
			available: 20,
			sizes:     []int{5, 15},
			offsets:   []int{0, 5},
		},
		"rounding remainder goes left to right": {
			defs:      []Value{Star(1), Star(2)},
			available: 10,
			sizes:     []int{4, 6},
			offsets:   []int{0, 4},
		},
		"three equal stars with remainder": {
			defs:      []Value{Star(1), Star(1), Star(1)},
			available: 11,
			sizes:     []int{4, 4, 3},
			offsets:   []int{0, 4, 8},
		},
		"fixed auto and star with gaps": {
			defs:      []Value{Fixed(3), Auto(), Star(1)},
			items:     []trackItem{{index: 1, span: 1, content: 5}},
			available: 20,
			gap:       1,
			sizes:     []int{3, 5, 10},
			offsets:   []int{0, 4, 10},
		},
		"auto takes largest single-span item": {
			defs: []Value{Auto(), Star(1)},
			items: []trackItem{
				{index: 0, span: 1, content: 2},
				{index: 0, span: 1, content: 6},
				{index: 0, span: 2, content: 15},
			},
			available: 10,
			sizes:     []int{6, 4},
			offsets:   []int{0, 6},
		},
		"empty auto track collapses": {
			defs:      []Value{Auto(), Star(1)},
			available: 10,
			sizes:     []int{0, 10},
			offsets:   []int{0, 0},
		},
		"percent of available": {
			defs:      []Value{Percent(25), Star(1)},
			available: 40,
			sizes:     []int{10, 30},
			offsets:   []int{0, 10},
		},
		"huge star weight takes all free cells": {
			defs:      []Value{Star(1e307)},
			available: 20,
			sizes:     []int{20},
			offsets:   []int{0},
		},
		"maximal star weights split evenly": {
			defs:      []Value{Star(1e308), Star(1e308)},
			available: 20,
			sizes:     []int{10, 10},
			offsets:   []int{0, 10},
		},
		"huge star beside unit star": {
			defs:      []Value{Star(1e307), Star(1)},
			available: 20,
			sizes:     []int{20, 0},
			offsets:   []int{0, 20},
		},
		"invalid star weight counts as zero": {
			defs:      []Value{{Unit: UnitStar, Amount: math.NaN()}, Star(1)},
			available: 10,
			sizes:     []int{0, 10},
			offsets:   []int{0, 0},
		},
		"star gets nothing when fixed overflows": {
			defs:      []Value{Fixed(30), Star(1)},
			available: 20,
			sizes:     []int{30, 0},
			offsets:   []int{0, 30},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tracks := resolveTracks(tt.defs, tt.items, tt.available, tt.gap)
			if diff := cmp.Diff(tt.sizes, trackSizes(tracks)); diff != "" {
				t.Errorf("sizes mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.offsets, trackOffsets(tracks)); diff != "" {
				t.Errorf("offsets mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClampSpan(t *testing.T) {
	type tc struct {
		start, span, count int
		wantStart          int
		wantSpan           int
	}

	tests := map[string]tc{
		"in range":              {start: 1, span: 1, count: 3, wantStart: 1, wantSpan: 1},
		"past last track":       {start: 5, span: 1, count: 3, wantStart: 2, wantSpan: 1},
		"negative start":        {start: -1, span: 1, count: 3, wantStart: 0, wantSpan: 1},
		"zero span becomes one": {start: 0, span: 0, count: 3, wantStart: 0, wantSpan: 1},
		"span truncated":        {start: 1, span: 5, count: 3, wantStart: 1, wantSpan: 2},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			start, span := clampSpan(tt.start, tt.span, tt.count)
			if start != tt.wantStart || span != tt.wantSpan {
				t.Errorf("clampSpan(%d, %d, %d) = (%d, %d), want (%d, %d)",
					tt.start, tt.span, tt.count, start, span, tt.wantStart, tt.wantSpan)
			}
		})
	}
}

func TestContentExtent(t *testing.T) {
	defs := []Value{Fixed(3), Auto(), Star(2), Percent(50)}
	items := []trackItem{
		{index: 1, span: 1, content: 4},
		{index: 2, span: 1, content: 6},
	}

	// 3 + 4 + 6 + 0 + 3 gaps of 1
	if got := contentExtent(defs, items, 1); got != 16 {
		t.Errorf("contentExtent() = %d, want 16", got)
	}
}
