package cavitypost

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunnerAllSucceed(t *testing.T) {
	cases := []Case{{Re: 100}, {Re: 200}, {Re: 300}}

	var mu sync.Mutex
	seen := map[int]bool{}
	r := &Runner{Workers: 2}
	errs := r.Run(cases, func(c Case) error {
		mu.Lock()
		seen[c.Re] = true
		mu.Unlock()
		return nil
	})

	assert.Nil(t, errs)
	assert.True(t, errs.AllNil())
	assert.Equal(t, map[int]bool{100: true, 200: true, 300: true}, seen)

	s := Summarize(cases, errs)
	assert.Equal(t, 3, s.Total)
	assert.Zero(t, s.Failed)
	assert.Equal(t, "3 processed, 0 failed", s.String())
}

func TestRunnerCollectsFailures(t *testing.T) {
	cases := []Case{{Re: 100}, {Re: 200}, {Re: 300}}

	boom := errors.New("no centerline data")
	r := &Runner{}
	errs := r.Run(cases, func(c Case) error {
		if c.Re == 200 {
			return boom
		}
		return nil
	})

	require.Len(t, errs, 3)
	assert.NoError(t, errs[0])
	assert.NoError(t, errs[2])
	require.Error(t, errs[1])
	assert.ErrorIs(t, errs[1], boom)

	var ce *CaseError
	require.ErrorAs(t, errs[1], &ce)
	assert.Equal(t, "Re200", ce.Case.ID())
	assert.Contains(t, errs.Error(), "Re200: no centerline data")

	s := Summarize(cases, errs)
	assert.Equal(t, 1, s.Failed)
	assert.Equal(t, []string{"Re200"}, s.FailedIDs)
}

func TestRunnerEmptySweep(t *testing.T) {
	r := &Runner{}
	errs := r.Run(nil, func(Case) error { t.Fatal("job ran"); return nil })
	assert.Nil(t, errs)
	assert.Equal(t, "0 processed, 0 failed", Summarize(nil, errs).String())
}
