package main

import (
	"fmt"

	seoaudit "github.com/TravisXO/CanonicalSeoAuditor"
	"github.com/TravisXO/CanonicalSeoAuditor/batch"
)

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	opts := []batch.Option{
		batch.WithConcurrency(c.Concurrency),
		batch.WithRPS(c.RPS),
	}
	if c.Save {
		opts = append(opts, batch.WithStore(deps.Audits))
	}

	runner := batch.NewRunner(deps.Fetcher, deps.Auditor, opts...)
	outcomes, err := runner.Run(deps.Ctx, c.URLs)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seoaudit.ErrorMessage(err))
		return err
	}

	failed := 0
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
			fmt.Fprintf(deps.Stdout, "%-50s  failed: %s\n", o.URL, seoaudit.ErrorMessage(o.Err))
			continue
		}
		fmt.Fprintf(deps.Stdout, "%-50s  %3d  %s\n", o.URL, o.Result.OverallScore, o.Result.Grade)
	}
	fmt.Fprintf(deps.Stdout, "\n%d audited, %d failed\n", len(outcomes)-failed, failed)

	return nil
}
