package md4coll

import "fmt"

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// state is the scratch of one search: both lanes, owned by that search alone.
type state [2]lane

func (st *state) reset(cv ChainingValue) {
	*st = state{}
	st[0].seed(cv)
	st[1].seed(cv)
}

func (st *state) pair() Pair {
	return Pair{st[0].x, st[1].x}
}

// Searcher runs the staged search. It is not safe for concurrent use; run one Searcher, with its
// own Source, per goroutine.
type Searcher struct {
	cv     ChainingValue
	bias   *Bias
	limits Limits
	src    Source
	logf   func(format string, v ...any)
	stats  Stats
}

// New validates cfg and returns a Searcher drawing words from src.
func New(src Source, cfg Config) (*Searcher, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil source", ErrInvalidConfig)
	}
	if b := cfg.Bias; b != nil {
		if b.Shift > 31 {
			return nil, fmt.Errorf("%w: bias shift %d exceeds 31", ErrInvalidConfig, b.Shift)
		}
		if b.Shift > 24 && uint32(b.Byte)>>(32-b.Shift) != 0 {
			return nil, fmt.Errorf("%w: bias byte %#02x does not fit above bit %d", ErrInvalidConfig, b.Byte, b.Shift)
		}
		bias := *b
		cfg.Bias = &bias
	}
	switch l := cfg.Limits; {
	case l == (Limits{}):
		cfg.Limits = DefaultLimits
	case l.Stage1 == 0 || l.Stage2 == 0 || l.Stage3 == 0 || l.Restarts == 0:
		return nil, fmt.Errorf("%w: limits %+v must all be positive", ErrInvalidConfig, l)
	}
	return &Searcher{cv: cfg.CV, bias: cfg.Bias, limits: cfg.Limits, src: src, logf: cfg.Logf}, nil
}

func (s *Searcher) Stats() Stats { return s.stats }

// Search runs Stage 1, Stage 2 and Stage 3 in turn. Exhausting Stage 2 or Stage 3 throws the whole
// state away and reruns Stage 1 on fresh words; exhausting Stage 1, or Limits.Restarts reruns,
// returns an *ExhaustedError.
func (s *Searcher) Search() (Pair, error) {
	var st state
	st.reset(s.cv)
	s.stats = Stats{}

	for stage, failed := 1, 0; ; {
		switch stage {
		case 1:
			if !s.sparse(&st) {
				return Pair{}, &ExhaustedError{1, s.stats}
			}
			stage = 2
		case 2:
			stage = 3
			if !s.closure(&st) {
				stage, failed = 0, 2
			}
		case 3:
			if s.extension(&st) {
				s.log("collision after %d restarts, %d stage-3 trials", s.stats.Restarts, s.stats.Stage3)
				return st.pair(), nil
			}
			s.log("stage 3 exhausted after %d trials, restart %d", s.limits.Stage3, s.stats.Restarts+1)
			stage, failed = 0, 3
		default:
			if s.stats.Restarts++; s.stats.Restarts > s.limits.Restarts {
				return Pair{}, &ExhaustedError{failed, s.stats}
			}
			st.reset(s.cv)
			stage = 1
		}
	}
}

func (s *Searcher) log(format string, v ...any) {
	if s.logf != nil {
		s.logf(format, v...)
	}
}
