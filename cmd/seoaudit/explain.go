package main

import (
	"fmt"

	seoaudit "github.com/TravisXO/CanonicalSeoAuditor"
)

// Run executes the explain command.
func (c *ExplainCmd) Run(deps *Dependencies) error {
	record, err := deps.Audits.FindAuditByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seoaudit.ErrorMessage(err))
		return err
	}

	explanation, err := deps.Advisor.Explain(deps.Ctx, record)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seoaudit.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, explanation)
	return nil
}
